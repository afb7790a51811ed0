package earnings

import (
	"context"

	"primedrew/internal/domain"
	"primedrew/internal/repository"
)

type BookingEarningsReader interface {
	EarnableByHost(ctx context.Context, hostID int64) ([]repository.EarnableBooking, error)
	EarnableAll(ctx context.Context) ([]repository.EarnableBooking, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
}

type VehicleCounter interface {
	CountByHost(ctx context.Context, hostID int64) (int64, error)
}
