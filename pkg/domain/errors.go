// Package domain holds the error taxonomy shared by every service.
package domain

import "errors"

// Common domain errors
var (
	// ErrNotFound is returned when a referenced account, goal or ledger entry does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrAlreadyExists is returned when trying to create a resource that already exists.
	ErrAlreadyExists = errors.New("resource already exists")
	// ErrValidation is returned when input validation fails (non-positive amount, malformed field).
	ErrValidation = errors.New("validation error")
	// ErrInsufficientFunds is returned when an operation would drive a balance
	// or a goal allocation negative.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrUnauthorized is returned when credentials are missing or invalid.
	ErrUnauthorized = errors.New("unauthorized")
)
