package users

import "errors"

var (
	// ErrNotFound indicates no user matches the lookup.
	ErrNotFound = errors.New("user not found")

	// ErrDuplicateEmail indicates a registration with an email already present.
	ErrDuplicateEmail = errors.New("email already exists")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")
)
