package admin

import (
	"context"
	"time"

	"primedrew/internal/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
}

type VehicleRepository interface {
	SetAvailabilityForHost(ctx context.Context, hostID int64, available bool, now time.Time) error
}

type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	PendingRefunds(ctx context.Context) ([]domain.Booking, error)
	PendingDepositRefunds(ctx context.Context, now time.Time) ([]domain.Booking, error)
	SetRefundStatus(ctx context.Context, bookingID int64, status domain.RefundStatus, now time.Time) error
	SetDepositRefundStatus(ctx context.Context, bookingID int64, status domain.RefundStatus, now time.Time) error
}

type NotificationSender interface {
	Send(ctx context.Context, toPhone, body string) error
}
