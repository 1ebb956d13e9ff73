package business

import "errors"

var (
	// ErrInvalidCredentials is returned for both unknown emails and wrong
	// passwords so login failures do not leak which one it was.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailInUse is returned when registering with a taken email.
	ErrEmailInUse = errors.New("email already registered")
	// ErrWeakPassword is returned when the password fails the minimum policy.
	ErrWeakPassword = errors.New("password must be at least 8 characters")
)
