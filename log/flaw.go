package log

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/xeptore/flaw/v8"
)

// Flaw attaches err to the event. Flaw errors are expanded into their
// records, joined errors and stack traces; anything else is logged as a
// plain error field.
func Flaw(err error) func(e *zerolog.Event) {
	return func(e *zerolog.Event) {
		flawErr := new(flaw.Flaw)
		if !errors.As(err, &flawErr) {
			e.Err(err)
			return
		}

		e.Dict(
			"error",
			zerolog.
				Dict().
				Str("message", flawErr.Inner).
				Str("type_name", flawErr.InnerType).
				Str("syntax_representation", flawErr.InnerSyntaxRepr),
		)
		e.Array("records", flawRecords(flawErr))
		e.Array("joined_errors", flawJoinedErrors(flawErr))
		e.Array("stack_traces", flawStackTraces(flawErr))
	}
}

func flawRecords(f *flaw.Flaw) *zerolog.Array {
	out := zerolog.Arr()
	for _, v := range f.Records {
		b, err := json.MarshalWithOption(v.Payload, json.UnorderedMap(), json.DisableNormalizeUTF8(), json.DisableHTMLEscape())
		if nil != err {
			payload := zerolog.Dict().Str("error", err.Error()).Str("raw", fmt.Sprintf("%#+v", v.Payload))
			out.Dict(zerolog.Dict().Str("function", v.Function).Dict("payload", payload))
			continue
		}
		out.Dict(zerolog.Dict().Str("function", v.Function).RawJSON("payload", b))
	}
	return out
}

func flawJoinedErrors(f *flaw.Flaw) *zerolog.Array {
	out := zerolog.Arr()
	for _, v := range f.JoinedErrors {
		d := zerolog.
			Dict().
			Dict(
				"error",
				zerolog.
					Dict().
					Str("message", v.Message).
					Str("type_name", v.TypeName).
					Str("syntax_representation", v.SyntaxRepr),
			)
		if st := v.CallerStackTrace; nil != st {
			d.Dict(
				"caller_stack_trace",
				zerolog.
					Dict().
					Str("location", fmt.Sprintf("%s:%d", st.File, st.Line)).
					Str("function", st.Function),
			)
		} else {
			d.Stringer("caller_stack_trace", nil)
		}
		out.Dict(d)
	}
	return out
}

func flawStackTraces(f *flaw.Flaw) *zerolog.Array {
	out := zerolog.Arr()
	for _, v := range f.StackTrace {
		out.Dict(zerolog.Dict().Str("location", fmt.Sprintf("%s:%d", v.File, v.Line)).Str("function", v.Function))
	}
	return out
}
