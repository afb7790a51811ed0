package auth

import (
	"context"
	"errors"
	"strings"

	"primedrew/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Service contains all business logic for authentication
type Service struct {
	users UserRepository
	jwt   jwtService
}

func NewService(users UserRepository, jwt jwtService) *Service {
	return &Service{users: users, jwt: jwt}
}

// RegisterRenter creates a renter account, active immediately.
func (s *Service) RegisterRenter(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	return s.register(ctx, req, domain.RoleRenter)
}

// RegisterHost creates a host account. Hosts start unapproved: they can
// log in but cannot list vehicles until an admin approves them.
func (s *Service) RegisterHost(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	return s.register(ctx, req, domain.RoleHost)
}

func (s *Service) register(ctx context.Context, req RegisterRequest, role domain.UserRole) (*domain.User, error) {
	if err := s.validateUnique(ctx, req.Email, req.Phone); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		Phone:          strings.TrimSpace(req.Phone),
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash:   string(hash),
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Role:           role,
		Address1:       req.Address1,
		Address2:       req.Address2,
		City:           req.City,
		State:          req.State,
		Pincode:        req.Pincode,
		DLNumber:       req.DLNumber,
		DLExpiry:       req.DLExpiry,
		IsActive:       true,
		CommissionTier: domain.TierStandard,
	}

	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	u.PasswordHash = ""
	return u, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !u.IsActive {
		return nil, ErrAccountBlocked
	}

	token, err := s.jwt.GenerateToken(u.ID, string(u.Role))
	if err != nil {
		return nil, err
	}

	u.PasswordHash = ""
	return &LoginResponse{Token: token, User: u}, nil
}

func (s *Service) Profile(ctx context.Context, userID int64) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, ErrNotFound
	}
	u.PasswordHash = ""
	return u, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, ErrNotFound
	}

	if req.FirstName != "" {
		u.FirstName = req.FirstName
	}
	if req.LastName != "" {
		u.LastName = req.LastName
	}
	if req.Address1 != "" {
		u.Address1 = req.Address1
	}
	if req.Address2 != "" {
		u.Address2 = req.Address2
	}
	if req.City != "" {
		u.City = req.City
	}
	if req.State != "" {
		u.State = req.State
	}
	if req.Pincode != "" {
		u.Pincode = req.Pincode
	}
	if req.DLNumber != "" {
		u.DLNumber = req.DLNumber
	}
	if req.DLExpiry != "" {
		u.DLExpiry = req.DLExpiry
	}

	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}

	u.PasswordHash = ""
	return u, nil
}

func (s *Service) validateUnique(ctx context.Context, email, phone string) error {
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if _, err := s.users.GetByPhone(ctx, phone); err == nil {
		return ErrPhoneTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return nil
}
