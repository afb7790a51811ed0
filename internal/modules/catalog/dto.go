package catalog

import (
	"time"

	"primedrew/internal/domain"
)

type CreateVehicleRequest struct {
	Name          string   `json:"name" binding:"required"`
	Brand         string   `json:"brand"`
	Type          string   `json:"type" binding:"required"`
	Fuel          string   `json:"fuel" binding:"required"`
	Gear          string   `json:"gear"`
	City          string   `json:"city" binding:"required"`
	SubCity       string   `json:"sub_city"`
	Latitude      *float64 `json:"lat"`
	Longitude     *float64 `json:"lng"`
	BasePrice     float64  `json:"base_price" binding:"required,gt=0"`
	ImageURL      string   `json:"image_url"`
	KmsPerUnit    int      `json:"kms_per_unit"`
	Features      string   `json:"features"`
	Specification string   `json:"specification"`
}

// UpdateVehicleRequest uses pointers so "absent" and "zero" are
// distinguishable.
type UpdateVehicleRequest struct {
	Name          *string  `json:"name"`
	Brand         *string  `json:"brand"`
	Gear          *string  `json:"gear"`
	BasePrice     *float64 `json:"base_price"`
	ImageURL      *string  `json:"image_url"`
	KmsPerUnit    *int     `json:"kms_per_unit"`
	Features      *string  `json:"features"`
	Specification *string  `json:"specification"`
}

type InventoryFilter struct {
	City     string  `form:"city"`
	Type     string  `form:"type"`
	Fuel     string  `form:"fuel"`
	MaxPrice float64 `form:"max_price"`
}

// BookedWindow is a Confirmed interval shown on inventory listings.
type BookedWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// InventoryItem is one vehicle plus its upcoming booked windows, so
// renters can pick a free slot without round-tripping per vehicle.
type InventoryItem struct {
	Vehicle       domain.Vehicle `json:"vehicle"`
	BookedWindows []BookedWindow `json:"booked_windows"`
}

type VehicleDetails struct {
	Vehicle domain.Vehicle  `json:"vehicle"`
	Reviews []domain.Review `json:"reviews"`
}
