package review

import (
	"context"

	"primedrew/internal/domain"
)

type ReviewRepository interface {
	CreateAndRecalc(ctx context.Context, rv *domain.Review) error
	ExistsForBooking(ctx context.Context, bookingID int64) (bool, error)
	ListByVehicle(ctx context.Context, vehicleID int64) ([]domain.Review, error)
}

type BookingReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}
