package dictionary

import (
	"errors"
	"strings"
)

// Kind classifies a lookup failure
type Kind string

const (
	KindInvalidArgument  Kind = "InvalidArgument"
	KindTransport        Kind = "TransportError"
	KindUpstreamNotFound Kind = "UpstreamNotFound"
	KindUpstream         Kind = "UpstreamError"
	KindParse            Kind = "ParseError"
)

// Sentinels for errors.Is. A *Error matches the sentinel of the same Kind.
var (
	ErrInvalidArgument  = &Error{Kind: KindInvalidArgument}
	ErrTransport        = &Error{Kind: KindTransport}
	ErrUpstreamNotFound = &Error{Kind: KindUpstreamNotFound}
	ErrUpstream         = &Error{Kind: KindUpstream}
	ErrParse            = &Error{Kind: KindParse}
)

// Error is returned by every Fetch operation on failure.
// For upstream errors Message holds the API "title" and Detail holds
// its "message" and "resolution".
type Error struct {
	Kind       Kind
	Message    string
	Detail     string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("dictionary: ")
	b.WriteString(string(e.Kind))
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Detail != "" {
		b.WriteString(" (")
		b.WriteString(e.Detail)
		b.WriteString(")")
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same Kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the Kind of err, or "" if err is not a lookup error
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsNotFound reports whether the upstream API had no entry for the word
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUpstreamNotFound)
}

func invalidArgument(msg string) *Error {
	return &Error{Kind: KindInvalidArgument, Message: msg}
}
