// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrCredentialNotFound is returned when no credential exists for the given username.
	// Login treats this as a normal negative result, not a fault.
	ErrCredentialNotFound = errors.New("credential not found")
)
