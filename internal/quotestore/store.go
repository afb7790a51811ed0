// Package quotestore holds server-side price quotes between payment order
// creation and payment confirmation. A quote is claimable exactly once;
// popping it a second time fails, which makes double confirmation of the
// same order impossible.
package quotestore

import (
	"context"
	"time"
)

// PendingQuote is the server-side snapshot of a reservation in progress.
// The client never supplies prices at confirmation; they are read back
// from here and re-verified against a fresh computation.
type PendingQuote struct {
	UserID      int64     `json:"user_id"`
	VehicleID   int64     `json:"vehicle_id"`
	VehicleCode string    `json:"vehicle_code"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Subtotal    int64     `json:"subtotal"`
	Tax         int64     `json:"tax"`
	Deposit     int64     `json:"deposit"`
	Total       int64     `json:"total"`
	OrderID     string    `json:"order_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// Store keeps at most one pending quote per user.
type Store interface {
	// Put stores the quote, replacing any previous one for the user.
	Put(ctx context.Context, userID int64, q PendingQuote) error

	// Pop atomically removes and returns the user's quote. Returns nil
	// when there is none or it has expired.
	Pop(ctx context.Context, userID int64) (*PendingQuote, error)

	// Clear drops the user's quote if present.
	Clear(ctx context.Context, userID int64) error
}
