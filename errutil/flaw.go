package errutil

import (
	"errors"
	"net/http"

	"github.com/xeptore/flaw/v8"
)

// UnknownErrorMessage is reported to clients when a failure carries no
// message of its own.
const UnknownErrorMessage = "Unknown error"

func HTTPResponseFlawPayload(res *http.Response) flaw.P {
	out := make(flaw.P, 7)
	out["status"] = res.Status
	out["status_code"] = res.StatusCode
	out["content_length"] = res.ContentLength
	out["proto"] = res.Proto
	out["proto_major"] = res.ProtoMajor
	out["proto_minor"] = res.ProtoMinor
	headers := make(flaw.P, len(res.Header))
	for k, v := range res.Header {
		headers[k] = v
	}
	out["headers"] = headers
	return out
}

func IsFlaw(err error) bool {
	if flawErr := new(flaw.Flaw); errors.As(err, &flawErr) {
		return true
	}
	return false
}

// Message returns the client-facing text of err. For flaws that is the
// message of the originating error, without the attached payloads.
func Message(err error) string {
	if nil == err {
		return UnknownErrorMessage
	}

	msg := err.Error()
	if flawErr := new(flaw.Flaw); errors.As(err, &flawErr) {
		msg = flawErr.Inner
	}
	if msg == "" {
		return UnknownErrorMessage
	}
	return msg
}
