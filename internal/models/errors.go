package models

import "errors"

// Domain errors mapped to HTTP status codes at the handler boundary.
var (
	ErrStorageUnavailable = errors.New("database not configured")
	ErrNotFound           = errors.New("not found")
	ErrInvalidID          = errors.New("invalid id")
	ErrValidation         = errors.New("validation failed")
)
