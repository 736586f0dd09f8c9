package model

import "errors"

var (
	// User related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Token related errors
	ErrInvalidToken = errors.New("invalid or expired token")

	// Product related errors
	ErrProductNotFound = errors.New("product not found")

	// Generic errors
	ErrInvalidInput = errors.New("invalid input")
)
