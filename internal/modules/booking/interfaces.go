package booking

import (
	"context"
	"time"

	"primedrew/internal/domain"
	"primedrew/internal/gateway/razorpay"
	"primedrew/internal/quotestore"
)

// BookingRepository defines the persistence operations the workflow needs.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	CheckAvailability(ctx context.Context, vehicleID int64, start, end time.Time) (bool, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error)
	Cancel(ctx context.Context, bookingID int64, now time.Time) (bool, error)
	MarkCompleted(ctx context.Context, bookingID int64, now time.Time) (bool, error)
}

type VehicleReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	GetByCode(ctx context.Context, code string) (*domain.Vehicle, error)
}

type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// PaymentGateway is the two-call surface of the payment provider, plus
// the publishable key the checkout widget needs.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (*razorpay.Order, error)
	FetchPayment(ctx context.Context, paymentID string) (*razorpay.Payment, error)
	KeyID() string
}

// QuoteStore holds the pending quote between order creation and
// confirmation.
type QuoteStore interface {
	Put(ctx context.Context, userID int64, q quotestore.PendingQuote) error
	Pop(ctx context.Context, userID int64) (*quotestore.PendingQuote, error)
	Clear(ctx context.Context, userID int64) error
}

type NotificationSender interface {
	Send(ctx context.Context, toPhone, body string) error
}
