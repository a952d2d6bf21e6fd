package authadapter

import (
	"errors"
	"fmt"
)

// Kind classifies an adapter failure.
type Kind int

const (
	// KindUnknown is returned by KindOf for errors that did not originate
	// from the adapter (provider network failures, decode errors).
	KindUnknown Kind = iota
	// KindConfiguration means the adapter cannot start.
	KindConfiguration
	// KindValidation means the attempt was malformed (no code).
	KindValidation
	// KindNotFound means the identity could not be verified.
	KindNotFound
	// KindNotImplemented means a provider hook is missing.
	KindNotImplemented
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindNotImplemented:
		return "not_implemented"
	default:
		return "unknown"
	}
}

// Error is an adapter failure tagged with its Kind.
type Error struct {
	Kind    Kind
	Adapter string
	Message string
}

func (e *Error) Error() string {
	if e.Adapter == "" {
		return e.Message
	}
	return fmt.Sprintf("%s %s", e.Adapter, e.Message)
}

// Is reports a match when target is an *Error of the same Kind, so the
// sentinels below work with errors.Is regardless of adapter or message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrConfiguration  = &Error{Kind: KindConfiguration, Message: "configuration error"}
	ErrValidation     = &Error{Kind: KindValidation, Message: "validation error"}
	ErrNotFound       = &Error{Kind: KindNotFound, Message: "not found"}
	ErrNotImplemented = &Error{Kind: KindNotImplemented, Message: "not implemented"}
)

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func newError(kind Kind, adapter, message string) *Error {
	return &Error{Kind: kind, Adapter: adapter, Message: message}
}

// invalidAuth is the single message used for every identity check so a
// client cannot tell which check failed.
func invalidAuth(adapter string) *Error {
	return newError(KindNotFound, adapter, "auth is invalid for this user")
}
