package review

import (
	"context"
	"testing"
	"time"

	"primedrew/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) CreateAndRecalc(ctx context.Context, rv *domain.Review) error {
	args := m.Called(ctx, rv)
	if rv != nil && args.Error(0) == nil {
		rv.ID = 11
	}
	return args.Error(0)
}

func (m *MockReviewRepository) ExistsForBooking(ctx context.Context, bookingID int64) (bool, error) {
	args := m.Called(ctx, bookingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReviewRepository) ListByVehicle(ctx context.Context, vehicleID int64) ([]domain.Review, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

type MockBookingReader struct {
	mock.Mock
}

func (m *MockBookingReader) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func completedBooking() *domain.Booking {
	return &domain.Booking{ID: 5, UserID: 1, VehicleID: 7, Status: domain.BookingCompleted}
}

func TestCreate_HappyPath(t *testing.T) {
	reviews := new(MockReviewRepository)
	bookings := new(MockBookingReader)
	bookings.On("GetByID", mock.Anything, int64(5)).Return(completedBooking(), nil)
	reviews.On("ExistsForBooking", mock.Anything, int64(5)).Return(false, nil)
	reviews.On("CreateAndRecalc", mock.Anything, mock.MatchedBy(func(rv *domain.Review) bool {
		return rv.BookingID == 5 && rv.UserID == 1 && rv.VehicleID == 7 && rv.Rating == 5
	})).Return(nil)

	svc := NewService(reviews, bookings)
	rv, err := svc.Create(context.Background(), 1, CreateReviewRequest{
		BookingID: 5, Rating: 5, Comment: "smooth ride",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), rv.ID)
}

func TestCreate_RatingOutOfRange(t *testing.T) {
	svc := NewService(new(MockReviewRepository), new(MockBookingReader))

	_, err := svc.Create(context.Background(), 1, CreateReviewRequest{BookingID: 5, Rating: 6})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(context.Background(), 1, CreateReviewRequest{BookingID: 5, Rating: 0.5})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreate_NotOwnBooking(t *testing.T) {
	reviews := new(MockReviewRepository)
	bookings := new(MockBookingReader)
	bookings.On("GetByID", mock.Anything, int64(5)).Return(completedBooking(), nil)

	svc := NewService(reviews, bookings)
	_, err := svc.Create(context.Background(), 2, CreateReviewRequest{BookingID: 5, Rating: 4})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCreate_RentalStillRunning(t *testing.T) {
	reviews := new(MockReviewRepository)
	bookings := new(MockBookingReader)
	b := completedBooking()
	b.Status = domain.BookingConfirmed
	b.EndTime = time.Now().Add(2 * time.Hour)
	bookings.On("GetByID", mock.Anything, int64(5)).Return(b, nil)

	svc := NewService(reviews, bookings)
	_, err := svc.Create(context.Background(), 1, CreateReviewRequest{BookingID: 5, Rating: 4})

	assert.ErrorIs(t, err, ErrNotCompleted)
}

// A Confirmed booking whose window has ended is reviewable before the
// completion sweep runs.
func TestCreate_ConfirmedButEnded(t *testing.T) {
	reviews := new(MockReviewRepository)
	bookings := new(MockBookingReader)
	b := completedBooking()
	b.Status = domain.BookingConfirmed
	b.EndTime = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	bookings.On("GetByID", mock.Anything, int64(5)).Return(b, nil)
	reviews.On("ExistsForBooking", mock.Anything, int64(5)).Return(false, nil)
	reviews.On("CreateAndRecalc", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(reviews, bookings)
	svc.now = func() time.Time { return time.Date(2026, 3, 10, 13, 0, 0, 0, time.UTC) }
	_, err := svc.Create(context.Background(), 1, CreateReviewRequest{BookingID: 5, Rating: 4})

	require.NoError(t, err)
}

func TestCreate_DuplicateReview(t *testing.T) {
	reviews := new(MockReviewRepository)
	bookings := new(MockBookingReader)
	bookings.On("GetByID", mock.Anything, int64(5)).Return(completedBooking(), nil)
	reviews.On("ExistsForBooking", mock.Anything, int64(5)).Return(true, nil)

	svc := NewService(reviews, bookings)
	_, err := svc.Create(context.Background(), 1, CreateReviewRequest{BookingID: 5, Rating: 4})

	assert.ErrorIs(t, err, ErrAlreadyReviewed)
	reviews.AssertNotCalled(t, "CreateAndRecalc", mock.Anything, mock.Anything)
}
