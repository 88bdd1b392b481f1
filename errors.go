package simplearg

import (
	"github.com/pkg/errors"
)

// Kinds of failure recorded by Arguments. They are the causes of the *Error
// returned by Arguments.Err, so test with errors.Is or errors.Cause.
var (
	// A token was not a valid value of the requested type.
	ErrFormat = errors.New("format error")
	// A numeric token was well formed but out of range for the destination.
	ErrRange = errors.New("range error")
	// Fewer tokens remained than a GetAll required.
	ErrArity = errors.New("arity error")
	// A token matched no declared name or alias.
	ErrUnknownVerb = errors.New("unknown verb")
	// A handler failed, or didn't consume its inline value.
	ErrHandler = errors.New("handler failed")
)

// Error is the accumulated diagnostic of a failed parse. Msg is the complete
// user facing text, including any prefixes handlers put there.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Cause() error {
	return e.Kind
}

func (e *Error) Unwrap() error {
	return e.Kind
}
