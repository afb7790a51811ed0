package catalog

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrNotFound          = errors.New("vehicle not found")
	ErrForbidden         = errors.New("forbidden")
	ErrHostNotApproved   = errors.New("host is not approved")
	ErrHasFutureBookings = errors.New("vehicle has future confirmed bookings")
)
