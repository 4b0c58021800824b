package invoice

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a saved invoice id does not exist.
	ErrNotFound = errors.New("invoice not found")

	// ErrItemNotFound is returned by item updates on an unknown item id.
	// Item removal swallows it instead; removal is idempotent.
	ErrItemNotFound = errors.New("item not found")

	// ErrNoInvoice is returned by Save when nothing is in progress.
	ErrNoInvoice = errors.New("no invoice in progress")

	// Input preconditions, wrapped in ValidationError.
	ErrProductRequired   = errors.New("a product must be selected")
	ErrInvalidQuantity   = errors.New("quantity must be greater than zero")
	ErrInvalidDimensions = errors.New("width and height must be greater than zero")
	ErrPartiesRequired   = errors.New("vendor and party must be selected before saving")
	ErrNoItems           = errors.New("at least one item is required before saving")
)

// ValidationError wraps a precondition sentinel with optional detail.
// The operation that produced it made no state change.
type ValidationError struct {
	Err     error
	Details string
}

func (e *ValidationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}

	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is a user-input precondition failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// PersistenceError wraps a failure from the external store. The
// in-memory invoice was not advanced: a failed save leaves it in draft.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
