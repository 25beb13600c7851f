// Package usecase implements the business logic for the employee feature.
package usecase

import "errors"

var (
	// ErrDuplicateEmail is returned when an employee with the same email already exists.
	ErrDuplicateEmail = errors.New("email already exists")

	// ErrEmployeeNotFound is returned when no employee matches the given ID.
	ErrEmployeeNotFound = errors.New("employee not found")
)
