package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"primedrew/internal/domain"
	"primedrew/internal/repository"
)

type Service struct {
	vehicles VehicleRepository
	bookings BookingReader
	users    UserReader
	reviews  ReviewReader

	// now is swappable in tests
	now func() time.Time
}

func NewService(vehicles VehicleRepository, bookings BookingReader, users UserReader, reviews ReviewReader) *Service {
	return &Service{
		vehicles: vehicles,
		bookings: bookings,
		users:    users,
		reviews:  reviews,
		now:      time.Now,
	}
}

// CreateVehicle lists a new vehicle for an approved host. The public code
// is derived from name, city and host, with a per-host sequence suffix.
func (s *Service) CreateVehicle(ctx context.Context, hostID int64, req CreateVehicleRequest) (*domain.Vehicle, error) {
	host, err := s.users.GetByID(ctx, hostID)
	if err != nil {
		return nil, ErrForbidden
	}
	if host.Role != domain.RoleHost || !host.IsApprovedHost || !host.IsActive {
		return nil, ErrHostNotApproved
	}

	fuel := domain.FuelType(req.Fuel)
	switch fuel {
	case domain.FuelPetrol, domain.FuelDiesel, domain.FuelElectric:
	default:
		return nil, ErrValidation
	}

	seq, err := s.vehicles.CountByHost(ctx, hostID)
	if err != nil {
		return nil, err
	}

	v := &domain.Vehicle{
		HostID:        hostID,
		Code:          fmt.Sprintf("%s-%s-%d-%d", slug(req.Name), slug(req.City), hostID, seq+1),
		Name:          req.Name,
		Brand:         req.Brand,
		Type:          req.Type,
		Fuel:          fuel,
		Gear:          req.Gear,
		City:          req.City,
		SubCity:       req.SubCity,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		BasePrice:     req.BasePrice,
		Rating:        4.0,
		ImageURL:      req.ImageURL,
		KmsPerUnit:    req.KmsPerUnit,
		Features:      req.Features,
		Specification: req.Specification,
		IsAvailable:   true,
	}

	if err := s.vehicles.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// UpdateVehicle edits a listing. Edits are refused while the vehicle has a
// Confirmed booking that has not ended: the renter paid for the terms as
// quoted.
func (s *Service) UpdateVehicle(ctx context.Context, hostID, vehicleID int64, req UpdateVehicleRequest) (*domain.Vehicle, error) {
	v, err := s.vehicles.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, ErrNotFound
	}
	if v.HostID != hostID {
		return nil, ErrForbidden
	}

	busy, err := s.bookings.HasFutureConfirmed(ctx, vehicleID, s.now())
	if err != nil {
		return nil, err
	}
	if busy {
		return nil, ErrHasFutureBookings
	}

	if req.Name != nil {
		v.Name = *req.Name
	}
	if req.Brand != nil {
		v.Brand = *req.Brand
	}
	if req.Gear != nil {
		v.Gear = *req.Gear
	}
	if req.BasePrice != nil {
		if *req.BasePrice <= 0 {
			return nil, ErrValidation
		}
		v.BasePrice = *req.BasePrice
	}
	if req.ImageURL != nil {
		v.ImageURL = *req.ImageURL
	}
	if req.KmsPerUnit != nil {
		v.KmsPerUnit = *req.KmsPerUnit
	}
	if req.Features != nil {
		v.Features = *req.Features
	}
	if req.Specification != nil {
		v.Specification = *req.Specification
	}

	if err := s.vehicles.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// SetAvailability takes a vehicle on or off the market. Withdrawing is
// refused while Confirmed bookings are outstanding.
func (s *Service) SetAvailability(ctx context.Context, hostID, vehicleID int64, available bool) error {
	v, err := s.vehicles.GetByID(ctx, vehicleID)
	if err != nil {
		return ErrNotFound
	}
	if v.HostID != hostID {
		return ErrForbidden
	}

	if !available {
		busy, err := s.bookings.HasFutureConfirmed(ctx, vehicleID, s.now())
		if err != nil {
			return err
		}
		if busy {
			return ErrHasFutureBookings
		}
	}

	return s.vehicles.SetAvailability(ctx, vehicleID, available, s.now())
}

func (s *Service) MyVehicles(ctx context.Context, hostID int64) ([]domain.Vehicle, error) {
	return s.vehicles.ListByHost(ctx, hostID)
}

// Inventory is the public listing: available vehicles with their upcoming
// Confirmed windows attached.
func (s *Service) Inventory(ctx context.Context, f InventoryFilter) ([]InventoryItem, error) {
	vehicles, err := s.vehicles.List(ctx, repository.VehicleFilter{
		City:          f.City,
		Type:          f.Type,
		Fuel:          f.Fuel,
		MaxPrice:      f.MaxPrice,
		OnlyAvailable: true,
	})
	if err != nil {
		return nil, err
	}

	ranges, err := s.bookings.ConfirmedRanges(ctx, s.now())
	if err != nil {
		return nil, err
	}

	out := make([]InventoryItem, 0, len(vehicles))
	for _, v := range vehicles {
		item := InventoryItem{Vehicle: v, BookedWindows: []BookedWindow{}}
		for _, r := range ranges[v.ID] {
			item.BookedWindows = append(item.BookedWindows, BookedWindow{Start: r.StartTime, End: r.EndTime})
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *Service) VehicleByCode(ctx context.Context, code string) (*VehicleDetails, error) {
	v, err := s.vehicles.GetByCode(ctx, code)
	if err != nil {
		return nil, ErrNotFound
	}

	reviews, err := s.reviews.ListByVehicle(ctx, v.ID)
	if err != nil {
		return nil, err
	}

	return &VehicleDetails{Vehicle: *v, Reviews: reviews}, nil
}

// DemandByType reports which vehicle types were booked most in the last
// 30 days, optionally per city. Hosts use it to decide what to list next.
func (s *Service) DemandByType(ctx context.Context, city string) ([]repository.TypeDemand, error) {
	since := s.now().AddDate(0, 0, -30)
	return s.bookings.DemandByType(ctx, city, since)
}

// slug lowercases and squeezes a display string into a URL-safe fragment.
func slug(in string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(in)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}
