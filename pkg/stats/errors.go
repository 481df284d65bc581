package stats

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrSchemaMismatch means the producing engine and this package disagree
	// about the snapshot layout: an unknown record type or value kind tag,
	// misaligned lists, or a duplicate field.
	ErrSchemaMismatch = errors.New("stats schema mismatch")

	// ErrMissingField is returned by Record.Lookup for absent fields.
	ErrMissingField = errors.New("stats field missing")

	// ErrKindMismatch is wrapped by KindError.
	ErrKindMismatch = errors.New("stats value kind mismatch")

	// ErrReleased is returned when a snapshot handle is read after release.
	ErrReleased = errors.New("stats snapshot released")
)

// KindError is the panic value raised when a value is read through an
// accessor that does not match its kind.
type KindError struct {
	Field string
	Want  ValueKind
	Got   ValueKind
}

// Error describes the mismatch and the field, when known.
func (e *KindError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%v: want %s, have %s", ErrKindMismatch, e.Want, e.Got)
	}
	return fmt.Sprintf("%v: field %q: want %s, have %s", ErrKindMismatch, e.Field, e.Want, e.Got)
}

// Unwrap lets errors.Is match ErrKindMismatch.
func (e *KindError) Unwrap() error {
	return ErrKindMismatch
}
