package catalog

import (
	"context"
	"testing"
	"time"

	"primedrew/internal/domain"
	"primedrew/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	args := m.Called(ctx, v)
	if v != nil && args.Error(0) == nil {
		v.ID = 77
	}
	return args.Error(0)
}

func (m *MockVehicleRepository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) GetByCode(ctx context.Context, code string) (*domain.Vehicle, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) List(ctx context.Context, f repository.VehicleFilter) ([]domain.Vehicle, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) ListByHost(ctx context.Context, hostID int64) ([]domain.Vehicle, error) {
	args := m.Called(ctx, hostID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) CountByHost(ctx context.Context, hostID int64) (int64, error) {
	args := m.Called(ctx, hostID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVehicleRepository) SetAvailability(ctx context.Context, vehicleID int64, available bool, now time.Time) error {
	args := m.Called(ctx, vehicleID, available, now)
	return args.Error(0)
}

type MockBookingReader struct {
	mock.Mock
}

func (m *MockBookingReader) HasFutureConfirmed(ctx context.Context, vehicleID int64, now time.Time) (bool, error) {
	args := m.Called(ctx, vehicleID, now)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingReader) ConfirmedRanges(ctx context.Context, from time.Time) (map[int64][]repository.BookedRange, error) {
	args := m.Called(ctx, from)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64][]repository.BookedRange), args.Error(1)
}

func (m *MockBookingReader) DemandByType(ctx context.Context, city string, since time.Time) ([]repository.TypeDemand, error) {
	args := m.Called(ctx, city, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.TypeDemand), args.Error(1)
}

type MockUserReader struct {
	mock.Mock
}

func (m *MockUserReader) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockReviewReader struct {
	mock.Mock
}

func (m *MockReviewReader) ListByVehicle(ctx context.Context, vehicleID int64) ([]domain.Review, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

var now = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func newService() (*Service, *MockVehicleRepository, *MockBookingReader, *MockUserReader, *MockReviewReader) {
	vehicles := new(MockVehicleRepository)
	bookings := new(MockBookingReader)
	users := new(MockUserReader)
	reviews := new(MockReviewReader)
	svc := NewService(vehicles, bookings, users, reviews)
	svc.now = func() time.Time { return now }
	return svc, vehicles, bookings, users, reviews
}

func approvedHost() *domain.User {
	return &domain.User{
		ID: 3, Role: domain.RoleHost,
		IsApprovedHost: true, IsActive: true,
		CommissionTier: domain.TierStandard,
	}
}

func TestCreateVehicle_GeneratesCode(t *testing.T) {
	svc, vehicles, _, users, _ := newService()
	users.On("GetByID", mock.Anything, int64(3)).Return(approvedHost(), nil)
	vehicles.On("CountByHost", mock.Anything, int64(3)).Return(int64(2), nil)
	vehicles.On("Create", mock.Anything, mock.MatchedBy(func(v *domain.Vehicle) bool {
		return v.Code == "swift-dzire-bengaluru-3-3" &&
			v.Rating == 4.0 &&
			v.IsAvailable
	})).Return(nil)

	v, err := svc.CreateVehicle(context.Background(), 3, CreateVehicleRequest{
		Name:      "Swift Dzire",
		Type:      "Sedan",
		Fuel:      "Petrol",
		City:      "Bengaluru",
		BasePrice: 120,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(77), v.ID)
}

func TestCreateVehicle_UnapprovedHost(t *testing.T) {
	svc, _, _, users, _ := newService()
	host := approvedHost()
	host.IsApprovedHost = false
	users.On("GetByID", mock.Anything, int64(3)).Return(host, nil)

	_, err := svc.CreateVehicle(context.Background(), 3, CreateVehicleRequest{
		Name: "Swift", Type: "Hatchback", Fuel: "Petrol", City: "Pune", BasePrice: 100,
	})

	assert.ErrorIs(t, err, ErrHostNotApproved)
}

func TestCreateVehicle_UnknownFuel(t *testing.T) {
	svc, _, _, users, _ := newService()
	users.On("GetByID", mock.Anything, int64(3)).Return(approvedHost(), nil)

	_, err := svc.CreateVehicle(context.Background(), 3, CreateVehicleRequest{
		Name: "Swift", Type: "Hatchback", Fuel: "Hydrogen", City: "Pune", BasePrice: 100,
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateVehicle_BlockedByFutureBooking(t *testing.T) {
	svc, vehicles, bookings, _, _ := newService()
	vehicles.On("GetByID", mock.Anything, int64(7)).Return(&domain.Vehicle{ID: 7, HostID: 3}, nil)
	bookings.On("HasFutureConfirmed", mock.Anything, int64(7), now).Return(true, nil)

	price := 200.0
	_, err := svc.UpdateVehicle(context.Background(), 3, 7, UpdateVehicleRequest{BasePrice: &price})

	assert.ErrorIs(t, err, ErrHasFutureBookings)
	vehicles.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateVehicle_NotOwner(t *testing.T) {
	svc, vehicles, _, _, _ := newService()
	vehicles.On("GetByID", mock.Anything, int64(7)).Return(&domain.Vehicle{ID: 7, HostID: 99}, nil)

	_, err := svc.UpdateVehicle(context.Background(), 3, 7, UpdateVehicleRequest{})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestSetAvailability_WithdrawBlockedByFutureBooking(t *testing.T) {
	svc, vehicles, bookings, _, _ := newService()
	vehicles.On("GetByID", mock.Anything, int64(7)).Return(&domain.Vehicle{ID: 7, HostID: 3, IsAvailable: true}, nil)
	bookings.On("HasFutureConfirmed", mock.Anything, int64(7), now).Return(true, nil)

	err := svc.SetAvailability(context.Background(), 3, 7, false)

	assert.ErrorIs(t, err, ErrHasFutureBookings)
}

func TestSetAvailability_RelistSkipsBookingCheck(t *testing.T) {
	svc, vehicles, bookings, _, _ := newService()
	vehicles.On("GetByID", mock.Anything, int64(7)).Return(&domain.Vehicle{ID: 7, HostID: 3, IsAvailable: false}, nil)
	vehicles.On("SetAvailability", mock.Anything, int64(7), true, now).Return(nil)

	err := svc.SetAvailability(context.Background(), 3, 7, true)

	require.NoError(t, err)
	bookings.AssertNotCalled(t, "HasFutureConfirmed", mock.Anything, mock.Anything, mock.Anything)
}

func TestInventory_AttachesBookedWindows(t *testing.T) {
	svc, vehicles, bookings, _, _ := newService()
	vehicles.On("List", mock.Anything, repository.VehicleFilter{City: "Pune", OnlyAvailable: true}).
		Return([]domain.Vehicle{{ID: 7, Code: "swift-pune-3-1"}, {ID: 8, Code: "i20-pune-3-2"}}, nil)
	bookings.On("ConfirmedRanges", mock.Anything, now).Return(map[int64][]repository.BookedRange{
		7: {{VehicleID: 7, StartTime: now.Add(time.Hour), EndTime: now.Add(4 * time.Hour)}},
	}, nil)

	items, err := svc.Inventory(context.Background(), InventoryFilter{City: "Pune"})

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Len(t, items[0].BookedWindows, 1)
	assert.Empty(t, items[1].BookedWindows)
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "swift-dzire", slug("  Swift   Dzire "))
	assert.Equal(t, "i20-n-line", slug("i20 N-Line"))
	assert.Equal(t, "", slug("  ***  "))
}
