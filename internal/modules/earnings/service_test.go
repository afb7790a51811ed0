package earnings

import (
	"context"
	"testing"

	"primedrew/internal/domain"
	"primedrew/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockEarningsReader struct {
	mock.Mock
}

func (m *MockEarningsReader) EarnableByHost(ctx context.Context, hostID int64) ([]repository.EarnableBooking, error) {
	args := m.Called(ctx, hostID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.EarnableBooking), args.Error(1)
}

func (m *MockEarningsReader) EarnableAll(ctx context.Context) ([]repository.EarnableBooking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.EarnableBooking), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

type MockVehicleCounter struct {
	mock.Mock
}

func (m *MockVehicleCounter) CountByHost(ctx context.Context, hostID int64) (int64, error) {
	args := m.Called(ctx, hostID)
	return args.Get(0).(int64), args.Error(1)
}

func host(tier int) *domain.User {
	return &domain.User{
		ID: 3, Role: domain.RoleHost,
		IsApprovedHost: true, IsActive: true,
		CommissionTier: tier,
	}
}

func TestHostReport_DepositExcludedFromBase(t *testing.T) {
	bookings := new(MockEarningsReader)
	users := new(MockUserRepository)
	users.On("GetByID", mock.Anything, int64(3)).Return(host(domain.TierStandard), nil)
	bookings.On("EarnableByHost", mock.Anything, int64(3)).Return([]repository.EarnableBooking{
		// total 854 with 500 deposit: base 354, host 70% = 248
		{BookingID: 5, VehicleID: 7, TotalPrice: 854, DepositAmount: 500, Status: "Completed"},
	}, nil)

	svc := NewService(bookings, users, new(MockVehicleCounter))
	report, err := svc.HostReport(context.Background(), 3)

	require.NoError(t, err)
	require.Len(t, report.Bookings, 1)
	assert.Equal(t, int64(354), report.Bookings[0].Base)
	assert.Equal(t, int64(248), report.Bookings[0].HostShare)
	assert.Equal(t, int64(106), report.Bookings[0].PlatformShare)
	assert.Equal(t, report.TotalBase, report.TotalHost+report.TotalPlatform)
}

func TestHostReport_PremiumTier(t *testing.T) {
	bookings := new(MockEarningsReader)
	users := new(MockUserRepository)
	users.On("GetByID", mock.Anything, int64(3)).Return(host(domain.TierPremium), nil)
	bookings.On("EarnableByHost", mock.Anything, int64(3)).Return([]repository.EarnableBooking{
		{BookingID: 5, TotalPrice: 6825, DepositAmount: 1500, Status: "Confirmed"},
	}, nil)

	svc := NewService(bookings, users, new(MockVehicleCounter))
	report, err := svc.HostReport(context.Background(), 3)

	require.NoError(t, err)
	// base 5325, 80% = 4260
	assert.Equal(t, int64(4260), report.Bookings[0].HostShare)
	assert.Equal(t, int64(1065), report.Bookings[0].PlatformShare)
}

func TestSetTier_InvalidValue(t *testing.T) {
	svc := NewService(new(MockEarningsReader), new(MockUserRepository), new(MockVehicleCounter))

	_, err := svc.SetTier(context.Background(), 3, 75)

	assert.ErrorIs(t, err, ErrInvalidTier)
}

func TestSetTier_PremiumRequiresListedVehicle(t *testing.T) {
	users := new(MockUserRepository)
	vehicles := new(MockVehicleCounter)
	users.On("GetByID", mock.Anything, int64(3)).Return(host(domain.TierStandard), nil)
	vehicles.On("CountByHost", mock.Anything, int64(3)).Return(int64(0), nil)

	svc := NewService(new(MockEarningsReader), users, vehicles)
	_, err := svc.SetTier(context.Background(), 3, domain.TierPremium)

	assert.ErrorIs(t, err, ErrNotEligible)
	users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSetTier_PremiumRequiresApproval(t *testing.T) {
	users := new(MockUserRepository)
	h := host(domain.TierStandard)
	h.IsApprovedHost = false
	users.On("GetByID", mock.Anything, int64(3)).Return(h, nil)

	svc := NewService(new(MockEarningsReader), users, new(MockVehicleCounter))
	_, err := svc.SetTier(context.Background(), 3, domain.TierPremium)

	assert.ErrorIs(t, err, ErrNotEligible)
}

func TestSetTier_DowngradeAlwaysAllowed(t *testing.T) {
	users := new(MockUserRepository)
	h := host(domain.TierPremium)
	h.IsApprovedHost = false // even a suspended host can be downgraded
	users.On("GetByID", mock.Anything, int64(3)).Return(h, nil)
	users.On("Update", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.CommissionTier == domain.TierStandard
	})).Return(nil)

	svc := NewService(new(MockEarningsReader), users, new(MockVehicleCounter))
	updated, err := svc.SetTier(context.Background(), 3, domain.TierStandard)

	require.NoError(t, err)
	assert.Equal(t, domain.TierStandard, updated.CommissionTier)
}

func TestSummary_MixedTiers(t *testing.T) {
	bookings := new(MockEarningsReader)
	users := new(MockUserRepository)
	bookings.On("EarnableAll", mock.Anything).Return([]repository.EarnableBooking{
		{BookingID: 1, HostID: 3, TotalPrice: 1000, DepositAmount: 0, Status: "Completed"},
		{BookingID: 2, HostID: 4, TotalPrice: 1000, DepositAmount: 0, Status: "Completed"},
	}, nil)
	users.On("GetByID", mock.Anything, int64(3)).Return(host(domain.TierStandard), nil)
	premium := host(domain.TierPremium)
	premium.ID = 4
	users.On("GetByID", mock.Anything, int64(4)).Return(premium, nil)

	svc := NewService(bookings, users, new(MockVehicleCounter))
	summary, err := svc.Summary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.Bookings)
	assert.Equal(t, int64(2000), summary.TotalBase)
	assert.Equal(t, int64(700+800), summary.TotalHost)
	assert.Equal(t, int64(300+200), summary.TotalPlatform)

	require.Len(t, summary.PerHost, 2)
	assert.Equal(t, HostPayout{HostID: 3, Tier: domain.TierStandard, Bookings: 1, PayoutDue: 700}, summary.PerHost[0])
	assert.Equal(t, HostPayout{HostID: 4, Tier: domain.TierPremium, Bookings: 1, PayoutDue: 800}, summary.PerHost[1])
}
