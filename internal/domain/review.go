package domain

import "time"

// Review is one-to-one with a completed booking; the unique index on
// BookingID enforces at most one review per booking.
type Review struct {
	ID        int64     `json:"id"`
	BookingID int64     `json:"booking_id" gorm:"uniqueIndex"`
	UserID    int64     `json:"user_id"`
	VehicleID int64     `json:"vehicle_id"`
	Rating    float64   `json:"rating"`
	Comment   string    `json:"comment,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}
