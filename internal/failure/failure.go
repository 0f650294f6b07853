package failure

import (
	"errors"
	"fmt"
)

// Kind classifies where a pipeline failure came from.
type Kind int

const (
	KindOther  Kind = iota // transport or unclassified failure
	KindIO                 // local file unreadable or unwritable
	KindRepo               // HEAD or config content has an unexpected shape
	KindDecode             // forge response body has an unexpected shape
	KindAPI                // forge rejected the request
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io error"
	case KindRepo:
		return "repo error"
	case KindDecode:
		return "decode error"
	case KindAPI:
		return "api error"
	}
	return "error"
}

// ExitCode is the process exit status reported for a failure of this kind.
func (k Kind) ExitCode() int {
	switch k {
	case KindIO:
		return 2
	case KindRepo:
		return 3
	case KindAPI:
		return 4
	case KindDecode:
		return 5
	}
	return 1
}

// Error is a classified failure. Message is human readable and Err, when set,
// is the underlying cause whose text is appended to Message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	if e.Message == "" {
		return e.Err.Error()
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches another *Error with the same Kind, so errors.Is(err, &Error{Kind: KindRepo})
// works as a kind check.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Message == "" && t.Err == nil
}

func newf(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: cause}
}

// IO reports an unreadable or unwritable local file.
func IO(cause error, format string, args ...any) *Error {
	return newf(KindIO, cause, format, args...)
}

// Repo reports repository metadata with an unexpected shape.
func Repo(format string, args ...any) *Error {
	return newf(KindRepo, nil, format, args...)
}

// Decode reports a forge response that could not be decoded.
func Decode(cause error, format string, args ...any) *Error {
	return newf(KindDecode, cause, format, args...)
}

// API reports a request the forge rejected. The message is the forge's own reason.
func API(message string) *Error {
	return &Error{Kind: KindAPI, Message: message}
}

// Other reports a transport or otherwise unclassified failure.
func Other(cause error, format string, args ...any) *Error {
	return newf(KindOther, cause, format, args...)
}

// KindOf returns the kind of the first *Error in err's chain, or KindOther.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindOther
}

// ExitCode maps err to a process exit status; nil maps to 0.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return KindOf(err).ExitCode()
}
