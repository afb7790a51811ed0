// Package pricing computes rental quotes in whole rupees. The same
// computation runs at quote time and again at confirmation time; both
// sides must agree to within one rupee or the reservation is aborted.
package pricing

import (
	"math"
	"time"

	"primedrew/internal/domain"
)

const (
	taxRate = 0.18

	depositShort = 500
	depositMid   = 1500
	depositCap   = 5000
)

// Quote is a full server-side price breakdown for one rental interval.
type Quote struct {
	Hours    float64 `json:"hours"`
	Subtotal int64   `json:"subtotal"`
	Tax      int64   `json:"tax"`
	Deposit  int64   `json:"deposit"`
	Total    int64   `json:"total"`
}

// Compute prices the interval [start, end) at the given hourly base rate.
// A non-positive interval yields a zero quote; callers treat that as
// invalid input.
func Compute(basePerHour float64, fuel domain.FuelType, start, end time.Time) Quote {
	hours := end.Sub(start).Hours()
	if hours <= 0 {
		return Quote{}
	}

	subtotal := Subtotal(basePerHour, fuel, hours)
	deposit := Deposit(subtotal, hours)
	tax := Tax(subtotal)

	return Quote{
		Hours:    hours,
		Subtotal: subtotal,
		Tax:      tax,
		Deposit:  deposit,
		Total:    subtotal + tax + deposit,
	}
}

// Subtotal bills partial hours as full hours for rentals under a day;
// longer rentals are billed on the fractional duration. The fuel
// adjustment is applied before the long-duration discount, and rounding
// happens once at the end. That ordering is load-bearing: it has to
// reproduce the prices already agreed on persisted bookings.
func Subtotal(basePerHour float64, fuel domain.FuelType, hours float64) int64 {
	if hours <= 0 {
		return 0
	}

	billed := hours
	if hours < 24 {
		billed = math.Ceil(hours)
	}

	subtotal := billed * basePerHour

	switch fuel {
	case domain.FuelElectric:
		subtotal *= 0.95
	case domain.FuelDiesel:
		subtotal *= 1.05
	}

	switch {
	case hours >= 96:
		subtotal *= 0.85
	case hours >= 48:
		subtotal *= 0.95
	}

	return int64(math.Round(subtotal))
}

// Deposit is the refundable security amount, tiered by rental duration.
func Deposit(subtotal int64, hours float64) int64 {
	switch {
	case hours < 24:
		return depositShort
	case hours < 72:
		return depositMid
	default:
		d := math.Round((2000+0.10*float64(subtotal))/100) * 100
		return int64(math.Min(d, depositCap))
	}
}

// Tax is a flat 18% GST on the rental subtotal.
func Tax(subtotal int64) int64 {
	return int64(math.Round(float64(subtotal) * taxRate))
}
