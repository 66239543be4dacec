package unescape

import (
	"errors"
	"fmt"
)

// ErrInvalidEscape is the sentinel matched by every decode failure.
// Use errors.Is() to check for it; use errors.As() with
// *InvalidEscapeError to recover the offending byte offset.
var ErrInvalidEscape = errors.New("invalid escape sequence")

// InvalidEscapeError reports a malformed escape sequence.
//
// Index is always the byte offset of the backslash that began the
// sequence, never the trigger character's offset and never a position
// the handler advanced to before failing. Callers match on the exact
// index, so this convention is fixed.
type InvalidEscapeError struct {
	Index int // byte offset of the backslash in the input
}

func (e *InvalidEscapeError) Error() string {
	return fmt.Sprintf("invalid escape sequence at index %d", e.Index)
}

func (e *InvalidEscapeError) Unwrap() error {
	return ErrInvalidEscape
}

// newInvalidEscape creates the error for a malformed escape at the
// given backslash offset.
func newInvalidEscape(index int) error {
	return &InvalidEscapeError{Index: index}
}
