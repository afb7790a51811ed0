package auth

import (
	"context"
	"testing"

	"primedrew/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil && args.Error(0) == nil {
		u.ID = 42
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

type stubJWT struct{}

func (stubJWT) GenerateToken(userID int64, role string) (string, error) {
	return "token", nil
}

func TestRegisterRenter(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, gorm.ErrRecordNotFound)
	users.On("GetByPhone", mock.Anything, mock.Anything).Return(nil, gorm.ErrRecordNotFound)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Role == domain.RoleRenter &&
			u.IsActive &&
			!u.IsApprovedHost &&
			u.CommissionTier == domain.TierStandard &&
			u.PasswordHash != "" && u.PasswordHash != "secret123"
	})).Return(nil)

	svc := NewService(users, stubJWT{})
	u, err := svc.RegisterRenter(context.Background(), RegisterRequest{
		Phone:     "+911234567890",
		Email:     "Renter@Example.com",
		Password:  "secret123",
		FirstName: "Asha",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), u.ID)
	assert.Equal(t, "renter@example.com", u.Email)
	assert.Empty(t, u.PasswordHash)
}

func TestRegisterHost_StartsUnapproved(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, gorm.ErrRecordNotFound)
	users.On("GetByPhone", mock.Anything, mock.Anything).Return(nil, gorm.ErrRecordNotFound)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Role == domain.RoleHost && !u.IsApprovedHost
	})).Return(nil)

	svc := NewService(users, stubJWT{})
	_, err := svc.RegisterHost(context.Background(), RegisterRequest{
		Phone:     "+911234567891",
		Email:     "host@example.com",
		Password:  "secret123",
		FirstName: "Ravi",
	})

	require.NoError(t, err)
	users.AssertExpectations(t)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, mock.Anything).Return(&domain.User{ID: 1}, nil)

	svc := NewService(users, stubJWT{})
	_, err := svc.RegisterRenter(context.Background(), RegisterRequest{
		Phone: "+911234567890", Email: "a@b.com", Password: "secret123", FirstName: "A",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin_Success(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "a@b.com").Return(&domain.User{
		ID: 1, Email: "a@b.com", PasswordHash: string(hash),
		Role: domain.RoleRenter, IsActive: true,
	}, nil)

	svc := NewService(users, stubJWT{})
	res, err := svc.Login(context.Background(), LoginRequest{Email: "a@b.com", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, "token", res.Token)
	assert.Empty(t, res.User.PasswordHash)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "a@b.com").Return(&domain.User{
		ID: 1, PasswordHash: string(hash), IsActive: true,
	}, nil)

	svc := NewService(users, stubJWT{})
	_, err := svc.Login(context.Background(), LoginRequest{Email: "a@b.com", Password: "nope"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(users, stubJWT{})
	_, err := svc.Login(context.Background(), LoginRequest{Email: "x@y.com", Password: "whatever"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_BlockedAccount(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "a@b.com").Return(&domain.User{
		ID: 1, PasswordHash: string(hash), IsActive: false,
	}, nil)

	svc := NewService(users, stubJWT{})
	_, err := svc.Login(context.Background(), LoginRequest{Email: "a@b.com", Password: "secret123"})

	assert.ErrorIs(t, err, ErrAccountBlocked)
}
