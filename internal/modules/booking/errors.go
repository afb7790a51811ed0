package booking

import (
	"errors"
	"fmt"
)

var (
	ErrValidation              = errors.New("validation error")
	ErrVehicleNotFound         = errors.New("vehicle not found")
	ErrNotAvailable            = errors.New("vehicle not available")
	ErrOverbooking             = errors.New("overbooking constraint violation")
	ErrSessionExpired          = errors.New("reservation session expired")
	ErrPaymentVerification     = errors.New("payment verification failed")
	ErrPaymentNotCaptured      = errors.New("payment not captured")
	ErrAmountMismatch          = errors.New("paid amount does not match order")
	ErrPriceMismatch           = errors.New("price changed since quote")
	ErrNotFound                = errors.New("booking not found")
	ErrForbidden               = errors.New("forbidden")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)

// ReconciliationError is a confirm failure after money may already have
// moved at the gateway. It wraps the sentinel saying what went wrong and
// carries the gateway payment id, which must reach the user so support
// can trace the payment.
type ReconciliationError struct {
	PaymentID string
	Err       error
}

func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("%v (payment %s)", e.Err, e.PaymentID)
}

func (e *ReconciliationError) Unwrap() error { return e.Err }

func reconcile(paymentID string, err error) error {
	return &ReconciliationError{PaymentID: paymentID, Err: err}
}
