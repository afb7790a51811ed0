package complaint

import "errors"

var (
	ErrValidation    = errors.New("validation error")
	ErrNotFound      = errors.New("complaint not found")
	ErrInvalidStatus = errors.New("invalid complaint status")
)
