package auth

import "errors"

var (
	// ErrInvalidInput flags missing or malformed signup/profile fields.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateEmail is returned when a signup email is already taken.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials deliberately covers both an unknown email and a
	// wrong password so login responses do not reveal which emails exist.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotFound indicates the referenced user record does not exist.
	ErrNotFound = errors.New("user not found")

	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)
