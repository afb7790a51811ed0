package booking

import (
	"time"

	"primedrew/internal/pricing"
)

type CreateOrderRequest struct {
	VehicleCode string    `json:"vehicle_code" binding:"required"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	EndTime     time.Time `json:"end_time" binding:"required"`
}

// OrderResponse hands the client everything it needs to open the payment
// widget. Amount is in paise.
type OrderResponse struct {
	OrderID  string        `json:"order_id"`
	Amount   int64         `json:"amount"`
	Currency string        `json:"currency"`
	KeyID    string        `json:"key_id"`
	Prefill  Prefill       `json:"prefill"`
	Quote    pricing.Quote `json:"quote"`
}

// Prefill pre-populates the checkout widget's identity fields.
type Prefill struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type ConfirmRequest struct {
	PaymentID string `json:"razorpay_payment_id" binding:"required"`
}

type ConfirmResponse struct {
	BookingID     int64  `json:"booking_id"`
	Status        string `json:"status"`
	TotalPrice    int64  `json:"total_price"`
	DepositAmount int64  `json:"deposit_amount"`
}

type CancelResponse struct {
	BookingID       int64 `json:"booking_id"`
	CancellationFee int64 `json:"cancellation_fee"`
	RefundAmount    int64 `json:"refund_amount"`
}

// ReceiptResponse is the printable record of a paid booking.
type ReceiptResponse struct {
	BookingID     int64     `json:"booking_id"`
	PaymentID     string    `json:"payment_id"`
	VehicleCode   string    `json:"vehicle_code"`
	VehicleName   string    `json:"vehicle_name"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	TotalPrice    int64     `json:"total_price"`
	DepositAmount int64     `json:"deposit_amount"`
	Status        string    `json:"status"`
	BookedAt      time.Time `json:"booked_at"`
}

// BookingDetails is one row of a renter's booking history.
type BookingDetails struct {
	ID                  int64     `json:"id"`
	VehicleCode         string    `json:"vehicle_code"`
	VehicleName         string    `json:"vehicle_name"`
	StartTime           time.Time `json:"start_time"`
	EndTime             time.Time `json:"end_time"`
	TotalPrice          int64     `json:"total_price"`
	DepositAmount       int64     `json:"deposit_amount"`
	Status              string    `json:"status"`
	RefundStatus        string    `json:"refund_status"`
	DepositRefundStatus string    `json:"deposit_refund_status"`
}
