package collections

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/hasbyte1/go-typed-collections/internal/store"
)

// Sentinel errors returned by Collection operations.
var (
	// ErrValidation matches every *ValidationError.
	ErrValidation = errors.New("collections: value rejected")

	// ErrInvalidType is the reason carried by a ValidationError when a value
	// from a dynamic source does not have the collection's element type.
	ErrInvalidType = errors.New("collections: value has the wrong type")

	// ErrLengthMismatch is returned by Combine when the receiver and the
	// source have different lengths.
	ErrLengthMismatch = store.ErrLengthMismatch

	// ErrIllegalKey is returned when a value cannot be used as a key.
	ErrIllegalKey = errors.New("collections: value cannot be used as a key")

	// ErrInvalidStep is returned by Nth when step <= 0.
	ErrInvalidStep = errors.New("collections: step must be greater than 0")

	// ErrUnsupportedSource is returned when an item source cannot be
	// normalised into entries.
	ErrUnsupportedSource = errors.New("collections: unsupported item source")

	// ErrMalformedJSON is returned by FromJSON for input that is not a
	// single well-formed JSON value.
	ErrMalformedJSON = errors.New("collections: malformed JSON")

	// ErrMacroNotFound is returned when an unregistered macro name is called.
	ErrMacroNotFound = errors.New("collections: macro not found")
)

// ValidationError reports a value rejected by a collection's validator, or a
// value of the wrong type read from a dynamic source.
//
// The collection that produced it is left unmodified.
type ValidationError struct {
	// Key is where the value was about to be stored, or NoKey when the
	// destination was not yet known.
	Key Key
	// Value is the rejected value.
	Value any
	// Reason is the validator's error, or ErrInvalidType.
	Reason error
}

func (e *ValidationError) Error() string {
	if e.Key.Valid() {
		return fmt.Sprintf("collections: value %#v at key %s rejected: %v", e.Value, e.Key, e.Reason)
	}
	return fmt.Sprintf("collections: value %#v rejected: %v", e.Value, e.Reason)
}

// Unwrap returns the validator's reason.
func (e *ValidationError) Unwrap() error { return e.Reason }

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
