package dto

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("not found")
	ErrAlreadyExists   = errors.New("already exists")
	ErrNotAuthorized   = errors.New("not authorized")
	ErrForbidden       = errors.New("forbidden")
	ErrInternalFailure = errors.New("internal failure")
)
