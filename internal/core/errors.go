package core

import (
	"errors"
	"fmt"
)

// ErrEmptyInput rejects a send that carries neither text nor an image. It
// is returned before any network call.
var ErrEmptyInput = errors.New("empty input")

// InferenceError wraps a backend failure. The user's message stays in the
// history, no model reply is appended, and the session's in-flight mark is
// cleared; retrying is the caller's decision.
type InferenceError struct {
	Err error
}

func (e *InferenceError) Error() string {
	return fmt.Sprintf("inference failed: %v", e.Err)
}

func (e *InferenceError) Unwrap() error { return e.Err }
