package ctxutil

import (
	"context"
	"time"
)

// WithDelayedTimeout returns a context that outlives parent by delay. It is
// meant for work that should be allowed to drain after a shutdown signal.
func WithDelayedTimeout(parent context.Context, delay time.Duration) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		select {
		case <-parent.Done():
			time.AfterFunc(delay, cancel)
		case <-ctx.Done():
		}
	}()
	return ctx, cancel
}
