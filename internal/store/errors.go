package store

import "errors"

// Sentinel errors surfaced by the store. The service layer maps these onto
// the API error taxonomy; the store itself stays HTTP-agnostic.
var (
	// ErrNotFound is returned when a record is absent or tombstoned.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists is returned when inserting over an existing public ID.
	ErrAlreadyExists = errors.New("record already exists")
	// ErrUserNotFound is returned when a user cannot be found by ID or email.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailExists is returned when registering an email that's already in use.
	ErrEmailExists = errors.New("email already in use")
)
