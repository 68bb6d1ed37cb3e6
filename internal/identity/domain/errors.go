package domain

import "github.com/GoSim-25-26J-441/taskboard-backend/internal/apperr"

var (
	ErrUserNotFound       = apperr.New(apperr.NotFound, "user not found")
	ErrDuplicateEmail     = apperr.New(apperr.DuplicateEmail, "user with this email already exists")
	ErrInvalidCredentials = apperr.New(apperr.InvalidCredentials, "invalid email or password")
	ErrNameRequired       = apperr.New(apperr.InvalidInput, "name is required")
	ErrInvalidEmail       = apperr.New(apperr.InvalidInput, "invalid email format")
	ErrPasswordRequired   = apperr.New(apperr.InvalidInput, "password is required")
	ErrPasswordTooLong    = apperr.New(apperr.InvalidInput, "password must be at most 72 bytes")
)
