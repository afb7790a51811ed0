package complaint

import (
	"context"
	"testing"

	"primedrew/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockComplaintRepository struct {
	mock.Mock
}

func (m *MockComplaintRepository) Create(ctx context.Context, c *domain.Complaint) error {
	args := m.Called(ctx, c)
	if c != nil && args.Error(0) == nil {
		c.ID = 21
	}
	return args.Error(0)
}

func (m *MockComplaintRepository) GetByID(ctx context.Context, id int64) (*domain.Complaint, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Complaint), args.Error(1)
}

func (m *MockComplaintRepository) List(ctx context.Context, status domain.ComplaintStatus) ([]domain.Complaint, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Complaint), args.Error(1)
}

func (m *MockComplaintRepository) SetStatus(ctx context.Context, id int64, status domain.ComplaintStatus) (bool, error) {
	args := m.Called(ctx, id, status)
	return args.Bool(0), args.Error(1)
}

func TestCreate_StartsAsNew(t *testing.T) {
	repo := new(MockComplaintRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Complaint) bool {
		return c.Status == domain.ComplaintNew && c.Email == "angry@renter.in"
	})).Return(nil)

	svc := NewService(repo)
	created, err := svc.Create(context.Background(), CreateComplaintRequest{
		Name:    "Angry Renter",
		Email:   "Angry@Renter.in",
		Message: "The car smelled of fish.",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(21), created.ID)
}

func TestCreate_EmptyMessage(t *testing.T) {
	svc := NewService(new(MockComplaintRepository))

	_, err := svc.Create(context.Background(), CreateComplaintRequest{
		Name: "A", Email: "a@b.com", Message: "   ",
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateStatus_RejectsUnknown(t *testing.T) {
	svc := NewService(new(MockComplaintRepository))

	err := svc.UpdateStatus(context.Background(), 21, "Escalated")

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo := new(MockComplaintRepository)
	repo.On("SetStatus", mock.Anything, int64(99), domain.ComplaintResolved).Return(false, nil)

	svc := NewService(repo)
	err := svc.UpdateStatus(context.Background(), 99, "Resolved")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestList_FilterValidation(t *testing.T) {
	repo := new(MockComplaintRepository)
	repo.On("List", mock.Anything, domain.ComplaintStatus("")).Return([]domain.Complaint{}, nil)

	svc := NewService(repo)
	_, err := svc.List(context.Background(), "")
	require.NoError(t, err)

	_, err = svc.List(context.Background(), "Bogus")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
