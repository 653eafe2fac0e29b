package records

import "errors"

var (
	// ErrNotFound indicates no record matches the lookup for that owner.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")
)
