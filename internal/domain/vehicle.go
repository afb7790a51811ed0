package domain

import "time"

type FuelType string

const (
	FuelPetrol   FuelType = "Petrol"
	FuelDiesel   FuelType = "Diesel"
	FuelElectric FuelType = "Electric"
)

type Vehicle struct {
	ID     int64 `json:"id"`
	HostID int64 `json:"host_id" validate:"required"`

	// Code is the public, URL-safe identifier (name-city-host-seq);
	// the numeric ID never leaves the API.
	Code string `json:"code"`

	Name  string   `json:"name" validate:"required"`
	Brand string   `json:"brand"`
	Type  string   `json:"type"`
	Fuel  FuelType `json:"fuel"`
	Gear  string   `json:"gear"`

	City    string `json:"city"`
	SubCity string `json:"sub_city,omitempty"`

	Latitude  *float64 `json:"lat,omitempty"`
	Longitude *float64 `json:"lng,omitempty"`

	// BasePrice is the hourly rate in whole rupees.
	BasePrice     float64 `json:"base_price" validate:"required,gt=0"`
	Rating        float64 `json:"rating"`
	ImageURL      string  `json:"image_url,omitempty"`
	KmsPerUnit    int     `json:"kms_per_unit"`
	Features      string  `json:"features,omitempty"`
	Specification string  `json:"specification,omitempty"`

	// An unavailable vehicle may not enter a new reservation.
	IsAvailable bool `json:"is_available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
