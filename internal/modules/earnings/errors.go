package earnings

import "errors"

var (
	ErrInvalidTier = errors.New("invalid commission tier")
	ErrNotEligible = errors.New("host not eligible for premium tier")
	ErrNotFound    = errors.New("host not found")
	ErrNotHost     = errors.New("user is not a host")
)
