package repository

import (
	"context"
	"strings"
	"time"

	"primedrew/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) DB() *gorm.DB { return r.db }

type userModel struct {
	ID             int64     `gorm:"column:id;primaryKey"`
	Phone          string    `gorm:"column:phone;uniqueIndex"`
	Email          string    `gorm:"column:email;uniqueIndex"`
	PasswordHash   string    `gorm:"column:password_hash"`
	FirstName      string    `gorm:"column:first_name"`
	LastName       string    `gorm:"column:last_name"`
	Role           string    `gorm:"column:role"`
	Address1       *string   `gorm:"column:address1"`
	Address2       *string   `gorm:"column:address2"`
	City           *string   `gorm:"column:city"`
	State          *string   `gorm:"column:state"`
	Pincode        *string   `gorm:"column:pincode"`
	DLNumber       *string   `gorm:"column:dl_number"`
	DLExpiry       *string   `gorm:"column:dl_expiry"`
	IsApprovedHost bool      `gorm:"column:is_approved_host"`
	IsActive       bool      `gorm:"column:is_active"`
	CommissionTier int       `gorm:"column:commission_tier"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func strOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toDomainUser(m userModel) *domain.User {
	return &domain.User{
		ID:             m.ID,
		Phone:          m.Phone,
		Email:          m.Email,
		PasswordHash:   m.PasswordHash,
		FirstName:      m.FirstName,
		LastName:       m.LastName,
		Role:           domain.UserRole(m.Role),
		Address1:       strOrEmpty(m.Address1),
		Address2:       strOrEmpty(m.Address2),
		City:           strOrEmpty(m.City),
		State:          strOrEmpty(m.State),
		Pincode:        strOrEmpty(m.Pincode),
		DLNumber:       strOrEmpty(m.DLNumber),
		DLExpiry:       strOrEmpty(m.DLExpiry),
		IsApprovedHost: m.IsApprovedHost,
		IsActive:       m.IsActive,
		CommissionTier: m.CommissionTier,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toUserModel(u *domain.User) userModel {
	return userModel{
		ID:             u.ID,
		Phone:          strings.TrimSpace(u.Phone),
		Email:          strings.ToLower(strings.TrimSpace(u.Email)),
		PasswordHash:   u.PasswordHash,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Role:           string(u.Role),
		Address1:       strOrNil(u.Address1),
		Address2:       strOrNil(u.Address2),
		City:           strOrNil(u.City),
		State:          strOrNil(u.State),
		Pincode:        strOrNil(u.Pincode),
		DLNumber:       strOrNil(u.DLNumber),
		DLExpiry:       strOrNil(u.DLExpiry),
		IsApprovedHost: u.IsApprovedHost,
		IsActive:       u.IsActive,
		CommissionTier: u.CommissionTier,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*u = *toDomainUser(m)
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).
		Where("phone = ?", strings.TrimSpace(phone)).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	return r.db.WithContext(ctx).Save(&m).Error
}
