package catalog

import (
	"context"
	"time"

	"primedrew/internal/domain"
	"primedrew/internal/repository"
)

type VehicleRepository interface {
	Create(ctx context.Context, v *domain.Vehicle) error
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	GetByCode(ctx context.Context, code string) (*domain.Vehicle, error)
	List(ctx context.Context, f repository.VehicleFilter) ([]domain.Vehicle, error)
	ListByHost(ctx context.Context, hostID int64) ([]domain.Vehicle, error)
	CountByHost(ctx context.Context, hostID int64) (int64, error)
	Update(ctx context.Context, v *domain.Vehicle) error
	SetAvailability(ctx context.Context, vehicleID int64, available bool, now time.Time) error
}

type BookingReader interface {
	HasFutureConfirmed(ctx context.Context, vehicleID int64, now time.Time) (bool, error)
	ConfirmedRanges(ctx context.Context, from time.Time) (map[int64][]repository.BookedRange, error)
	DemandByType(ctx context.Context, city string, since time.Time) ([]repository.TypeDemand, error)
}

type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type ReviewReader interface {
	ListByVehicle(ctx context.Context, vehicleID int64) ([]domain.Review, error)
}
