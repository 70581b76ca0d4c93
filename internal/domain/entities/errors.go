package entities

import "errors"

// Domain errors
var (
	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidLoginID    = errors.New("invalid login id")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrInvalidName       = errors.New("invalid name")

	// Summary errors
	ErrSummaryNotFound = errors.New("summary not found")

	// Token errors
	ErrInvalidToken = errors.New("invalid token")
)
