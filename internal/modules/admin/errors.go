package admin

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrNotHost      = errors.New("user is not a host")
	ErrInvalidState = errors.New("invalid state for this operation")
)
