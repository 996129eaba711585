package errutil

import (
	"fmt"

	"github.com/xeptore/flaw/v8"
)

type ErrInfo struct {
	Message    string
	TypeName   string
	SyntaxRepr string
	Children   []ErrInfo
}

func (e ErrInfo) FlawP() flaw.P {
	var children []flaw.P
	if len(e.Children) > 0 {
		children = make([]flaw.P, len(e.Children))
		for i, child := range e.Children {
			children[i] = child.FlawP()
		}
	}

	return flaw.P{
		"message":     e.Message,
		"type_name":   e.TypeName,
		"syntax_repr": e.SyntaxRepr,
		"children":    children,
	}
}

func newErrInfo(err error, children []ErrInfo) ErrInfo {
	return ErrInfo{
		Message:    err.Error(),
		TypeName:   fmt.Sprintf("%T", err),
		SyntaxRepr: fmt.Sprintf("%+#v", err),
		Children:   children,
	}
}

// Tree walks err's wrap chain, including joined errors, into a structure
// suitable for flaw payloads.
func Tree(err error) ErrInfo {
	if err == nil {
		panic("nil error")
	}

	//nolint:errorlint
	switch x := err.(type) {
	case interface{ Unwrap() error }:
		var children []ErrInfo
		if inner := x.Unwrap(); nil != inner {
			children = []ErrInfo{Tree(inner)}
		}
		return newErrInfo(err, children)
	case interface{ Unwrap() []error }:
		errs := x.Unwrap()
		joined := make([]ErrInfo, 0, len(errs))
		for _, inner := range errs {
			joined = append(joined, Tree(inner))
		}
		return newErrInfo(err, joined)
	default:
		return newErrInfo(err, nil)
	}
}
