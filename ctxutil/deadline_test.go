package ctxutil_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/xeptore/jamlist/ctxutil"
)

func TestWithDelayedTimeout(t *testing.T) {
	t.Parallel()

	t.Run("initially_active", func(t *testing.T) {
		t.Parallel()

		parentCtx, parentCancel := context.WithCancel(t.Context())
		defer parentCancel()

		ctx, cancel := ctxutil.WithDelayedTimeout(parentCtx, time.Second)
		defer cancel()

		select {
		case <-ctx.Done():
			assert.Fail(t, "expected returned context to be active initially")
		default:
		}
	})

	t.Run("cancels_after_delay", func(t *testing.T) {
		t.Parallel()

		parentCtx, parentCancel := context.WithCancel(t.Context())
		defer parentCancel()

		waitDur := 500 * time.Millisecond

		ctx, cancel := ctxutil.WithDelayedTimeout(parentCtx, waitDur)
		defer cancel()

		canceledAt := time.Now()
		parentCancel()

		select {
		case <-ctx.Done():
			assert.Fail(t, "expected returned context to remain active immediately after parent cancellation")
		default:
		}

		select {
		case <-ctx.Done():
			assert.GreaterOrEqual(t, time.Since(canceledAt), waitDur)
		case <-time.After(waitDur + 2*time.Second):
			assert.Fail(t, "expected returned context to be canceled after the delay")
		}
	})

	t.Run("explicit_cancel", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := ctxutil.WithDelayedTimeout(t.Context(), time.Hour)
		cancel()

		select {
		case <-ctx.Done():
		case <-time.After(time.Second):
			assert.Fail(t, "expected returned context to be canceled by its cancel function")
		}
	})
}
