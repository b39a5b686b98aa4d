package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordMismatch   = errors.New("password does not match")
	ErrTooManyAttempts    = errors.New("too many login attempts")

	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
	ErrForbidden    = errors.New("access forbidden")

	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category already exists")

	ErrOrchidNotFound = errors.New("orchid not found")
	ErrOrchidExists   = errors.New("orchid already exists")

	ErrCommentLimit = errors.New("comment limit reached")
)
