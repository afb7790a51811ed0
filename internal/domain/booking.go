package domain

import "time"

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "Confirmed"
	BookingCancelled BookingStatus = "Cancelled"
	BookingCompleted BookingStatus = "Completed"
)

// RefundStatus tracks administrative refund bookkeeping. No money moves
// here; settlement happens outside the platform.
type RefundStatus string

const (
	RefundNotApplicable RefundStatus = "NotApplicable"
	RefundPending       RefundStatus = "Pending"
	RefundProcessed     RefundStatus = "Processed"
	RefundDenied        RefundStatus = "Denied"
)

type Booking struct {
	ID        int64 `json:"id"`
	UserID    int64 `json:"user_id" validate:"required"`
	VehicleID int64 `json:"vehicle_id" validate:"required"`

	// [StartTime, EndTime) half-open; two Confirmed bookings on the same
	// vehicle must never overlap under that interval semantics.
	StartTime time.Time `json:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time" validate:"required"`

	// Whole rupees, immutable once set at confirmation.
	TotalPrice    int64 `json:"total_price"`
	DepositAmount int64 `json:"deposit_amount"`

	Status              BookingStatus `json:"status"`
	PaymentID           string        `json:"payment_id,omitempty"`
	RefundStatus        RefundStatus  `json:"refund_status"`
	DepositRefundStatus RefundStatus  `json:"deposit_refund_status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User    *User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Vehicle *Vehicle `json:"vehicle,omitempty" gorm:"foreignKey:VehicleID"`
}

// Terminal reports whether the booking status can no longer change.
func (b *Booking) Terminal() bool {
	return b.Status == BookingCancelled || b.Status == BookingCompleted
}
