package domain

import "time"

type UserRole string

const (
	RoleRenter UserRole = "renter"
	RoleHost   UserRole = "host"
	RoleAdmin  UserRole = "super_admin"
)

// Commission tiers are the host's payout percentage of the commissionable
// base (total price minus deposit). Only these two values are valid.
const (
	TierStandard = 70
	TierPremium  = 80
)

type User struct {
	ID           int64    `json:"id"`
	Phone        string   `json:"phone" validate:"required"`
	Email        string   `json:"email" validate:"required,email"`
	PasswordHash string   `json:"-"`
	FirstName    string   `json:"first_name"`
	LastName     string   `json:"last_name"`
	Role         UserRole `json:"role"`

	Address1 string `json:"address1,omitempty"`
	Address2 string `json:"address2,omitempty"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
	Pincode  string `json:"pincode,omitempty"`

	DLNumber string `json:"dl_number,omitempty"`
	DLExpiry string `json:"dl_expiry,omitempty"`

	// Hosts must be approved by an admin before they can list vehicles.
	IsApprovedHost bool `json:"is_approved_host"`
	// Blocked accounts cannot log in; blocking a host also takes all of
	// their vehicles off the market.
	IsActive bool `json:"is_active"`

	CommissionTier int `json:"commission_tier"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
