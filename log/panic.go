package log

import (
	"bytes"
	"runtime/debug"

	"github.com/rs/zerolog"
)

// Panic records a recovered value together with the stack of the recovering
// goroutine, minus the frames of the runtime and the deferred recovery itself.
func Panic(thing any) func(e *zerolog.Event) {
	return func(e *zerolog.Event) {
		lines := bytes.Split(debug.Stack(), []byte("\n"))
		if len(lines) > 9 {
			lines = lines[9:]
		}
		e.Dict(
			"panic",
			zerolog.
				Dict().
				Any("content", thing).
				Bytes("stack_traces", bytes.Join(lines, []byte("\n"))),
		)
	}
}
