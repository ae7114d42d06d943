package domain

import "errors"

// Определение бизнес-ошибок
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordRequired   = errors.New("password is required")
	ErrUserNotFound       = errors.New("user not found")
	ErrIncorrectPassword  = errors.New("incorrect current password")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidID          = errors.New("invalid id")
	ErrInvalidMonth       = errors.New("month filter must look like YYYY-MM")
)
