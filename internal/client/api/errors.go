package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable marks transport-level failures: the backend could not
	// be reached or answered with a server error.
	ErrUnavailable = errors.New("server unavailable")
)

// DecodeError reports a response body that did not match the expected
// schema. Callers can treat it as a hard boundary failure; responses are
// never silently defaulted.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s response: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
