package review

import (
	"context"
	"time"

	"primedrew/internal/domain"
)

type Service struct {
	reviews  ReviewRepository
	bookings BookingReader

	// now is swappable in tests
	now func() time.Time
}

func NewService(reviews ReviewRepository, bookings BookingReader) *Service {
	return &Service{reviews: reviews, bookings: bookings, now: time.Now}
}

// Create posts one review for a finished booking of the caller's own.
// Completion is derived from the rental window: a Confirmed booking whose
// end has passed is reviewable even before the status sweep flips it.
// The vehicle rating is recomputed atomically with the insert.
func (s *Service) Create(ctx context.Context, userID int64, req CreateReviewRequest) (*domain.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrValidation
	}

	b, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		return nil, ErrBookingNotFound
	}
	if b.UserID != userID {
		return nil, ErrForbidden
	}
	if !reviewable(b, s.now()) {
		return nil, ErrNotCompleted
	}

	exists, err := s.reviews.ExistsForBooking(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyReviewed
	}

	rv := &domain.Review{
		BookingID: req.BookingID,
		UserID:    userID,
		VehicleID: b.VehicleID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := s.reviews.CreateAndRecalc(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *Service) ListByVehicle(ctx context.Context, vehicleID int64) ([]domain.Review, error) {
	return s.reviews.ListByVehicle(ctx, vehicleID)
}

func reviewable(b *domain.Booking, now time.Time) bool {
	if b.Status == domain.BookingCompleted {
		return true
	}
	return b.Status == domain.BookingConfirmed && b.EndTime.Before(now)
}
