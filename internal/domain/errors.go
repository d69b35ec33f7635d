package domain

import "errors"

var (
	ErrValidation        = errors.New("validation failed")
	ErrDuplicateUser     = errors.New("user with this email already exists")
	ErrNotFound          = errors.New("not found")
	ErrInvalidCredential = errors.New("invalid password")
	ErrUnauthenticated   = errors.New("please login first")
)
