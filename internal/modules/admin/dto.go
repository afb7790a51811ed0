package admin

import (
	"time"

	"primedrew/internal/domain"
)

// RefundRow is one pending rental refund with the amounts the admin needs
// to settle it manually.
type RefundRow struct {
	BookingID       int64     `json:"booking_id"`
	UserID          int64     `json:"user_id"`
	TotalPrice      int64     `json:"total_price"`
	CancellationFee int64     `json:"cancellation_fee"`
	RefundAmount    int64     `json:"refund_amount"`
	PaymentID       string    `json:"payment_id"`
	CancelledAt     time.Time `json:"cancelled_at"`
}

// DepositRow is one pending deposit return.
type DepositRow struct {
	BookingID     int64                `json:"booking_id"`
	UserID        int64                `json:"user_id"`
	DepositAmount int64                `json:"deposit_amount"`
	BookingStatus domain.BookingStatus `json:"booking_status"`
	PaymentID     string               `json:"payment_id"`
}

type Statistics struct {
	Users             int64 `json:"users"`
	Hosts             int64 `json:"hosts"`
	PendingHosts      int64 `json:"pending_hosts"`
	Vehicles          int64 `json:"vehicles"`
	AvailableVehicles int64 `json:"available_vehicles"`
	Confirmed         int64 `json:"confirmed_bookings"`
	Cancelled         int64 `json:"cancelled_bookings"`
	Completed         int64 `json:"completed_bookings"`
	OpenComplaints    int64 `json:"open_complaints"`

	// Revenue is gross booking value across Confirmed and Completed
	// bookings, deposits included.
	Revenue               int64 `json:"revenue"`
	PendingRefunds        int64 `json:"pending_refunds"`
	PendingDepositRefunds int64 `json:"pending_deposit_refunds"`
}
