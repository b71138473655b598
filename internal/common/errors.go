// Package common defines sentinel errors and small helpers shared by the
// store, the CLI and the persistence layer. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Credential errors.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingCredentials = errors.New("phone and password are required")

	// Registration errors.
	ErrDuplicatePhone = errors.New("phone number already exists")
	ErrMissingFields  = errors.New("all fields are required")

	// ErrPersistence wraps any failure of the underlying key-value store.
	ErrPersistence = errors.New("persistence failure")
)
