package repository

import (
	"context"
	"time"

	"primedrew/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) DB() *gorm.DB { return r.db }

type bookingModel struct {
	ID                  int64     `gorm:"column:id;primaryKey"`
	UserID              int64     `gorm:"column:user_id"`
	VehicleID           int64     `gorm:"column:vehicle_id"`
	StartTime           time.Time `gorm:"column:start_time"`
	EndTime             time.Time `gorm:"column:end_time"`
	TotalPrice          int64     `gorm:"column:total_price"`
	DepositAmount       int64     `gorm:"column:deposit_amount"`
	Status              string    `gorm:"column:status"`
	PaymentID           *string   `gorm:"column:payment_id"`
	RefundStatus        string    `gorm:"column:refund_status"`
	DepositRefundStatus string    `gorm:"column:deposit_refund_status"`
	CreatedAt           time.Time `gorm:"column:created_at"`
	UpdatedAt           time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var paymentID string
	if m.PaymentID != nil {
		paymentID = *m.PaymentID
	}

	return &domain.Booking{
		ID:                  m.ID,
		UserID:              m.UserID,
		VehicleID:           m.VehicleID,
		StartTime:           m.StartTime,
		EndTime:             m.EndTime,
		TotalPrice:          m.TotalPrice,
		DepositAmount:       m.DepositAmount,
		Status:              domain.BookingStatus(m.Status),
		PaymentID:           paymentID,
		RefundStatus:        domain.RefundStatus(m.RefundStatus),
		DepositRefundStatus: domain.RefundStatus(m.DepositRefundStatus),
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var paymentID *string
	if b.PaymentID != "" {
		v := b.PaymentID
		paymentID = &v
	}

	return bookingModel{
		ID:                  b.ID,
		UserID:              b.UserID,
		VehicleID:           b.VehicleID,
		StartTime:           b.StartTime,
		EndTime:             b.EndTime,
		TotalPrice:          b.TotalPrice,
		DepositAmount:       b.DepositAmount,
		Status:              string(b.Status),
		PaymentID:           paymentID,
		RefundStatus:        string(b.RefundStatus),
		DepositRefundStatus: string(b.DepositRefundStatus),
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}
}

// Create inserts the booking. On PostgreSQL a concurrent overlapping insert
// of another Confirmed booking trips the idx_no_overbooking exclusion
// constraint, which surfaces as a *pgconn.PgError with SQLSTATE 23505;
// the booking service maps that to an availability conflict.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// CheckAvailability reports whether [start, end) is free of Confirmed
// bookings for the vehicle. Half-open interval comparison: a booking
// ending exactly at `start` does not conflict. This is an early exit
// only; the exclusion constraint is what actually prevents double
// booking under concurrency.
func (r *BookingRepository) CheckAvailability(ctx context.Context, vehicleID int64, start, end time.Time) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("vehicle_id = ?", vehicleID).
		Where("status = ?", string(domain.BookingConfirmed)).
		Where("start_time < ? AND end_time > ?", end, start).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt == 0, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// BookedRange is one Confirmed interval, used to annotate inventory
// listings so renters can see when a vehicle is already taken.
type BookedRange struct {
	VehicleID int64     `gorm:"column:vehicle_id"`
	StartTime time.Time `gorm:"column:start_time"`
	EndTime   time.Time `gorm:"column:end_time"`
}

// ConfirmedRanges returns all future Confirmed intervals grouped by vehicle.
func (r *BookingRepository) ConfirmedRanges(ctx context.Context, from time.Time) (map[int64][]BookedRange, error) {
	var rows []BookedRange
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Select("vehicle_id, start_time, end_time").
		Where("status = ?", string(domain.BookingConfirmed)).
		Where("end_time > ?", from).
		Order("start_time ASC").
		Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make(map[int64][]BookedRange, len(rows))
	for _, row := range rows {
		out[row.VehicleID] = append(out[row.VehicleID], row)
	}
	return out, nil
}

// HasFutureConfirmed reports whether the vehicle has any Confirmed booking
// that has not ended yet. Hosts may not edit or withdraw such a vehicle.
func (r *BookingRepository) HasFutureConfirmed(ctx context.Context, vehicleID int64, now time.Time) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("vehicle_id = ?", vehicleID).
		Where("status = ?", string(domain.BookingConfirmed)).
		Where("end_time > ?", now).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

// ListByHost returns bookings (any status) on the host's vehicles.
func (r *BookingRepository) ListByHost(ctx context.Context, hostID int64) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Joins("JOIN vehicles ON vehicles.id = bookings.vehicle_id").
		Where("vehicles.host_id = ?", hostID).
		Order("bookings.created_at DESC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) ListByStatus(ctx context.Context, status domain.BookingStatus) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Order("created_at DESC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// PendingRefunds lists cancelled bookings whose rental refund has not been
// processed or denied yet.
func (r *BookingRepository) PendingRefunds(ctx context.Context) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Where("status = ?", string(domain.BookingCancelled)).
		Where("refund_status = ?", string(domain.RefundPending)).
		Order("updated_at ASC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// PendingDepositRefunds lists rentals whose window has ended and whose
// security deposit is still held. Confirmed bookings carry a Pending
// deposit trail from the moment they are created, so the queue filters to
// ended ones; future rentals are not actionable yet.
func (r *BookingRepository) PendingDepositRefunds(ctx context.Context, now time.Time) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Where("deposit_refund_status = ?", string(domain.RefundPending)).
		Where("status = ? OR (status = ? AND end_time <= ?)",
			string(domain.BookingCompleted), string(domain.BookingConfirmed), now).
		Order("updated_at ASC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// Cancel flips a Confirmed booking to Cancelled in one guarded UPDATE.
// The deposit folds into the single refund decision, so its own trail is
// closed. Returns false when the booking was not in the Confirmed state
// (already cancelled, completed, or missing).
func (r *BookingRepository) Cancel(ctx context.Context, bookingID int64, now time.Time) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("id = ?", bookingID).
		Where("status = ?", string(domain.BookingConfirmed)).
		Updates(map[string]interface{}{
			"status":                string(domain.BookingCancelled),
			"refund_status":         string(domain.RefundPending),
			"deposit_refund_status": string(domain.RefundNotApplicable),
			"updated_at":            now,
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// MarkCompleted transitions a Confirmed booking whose end time has passed.
// The deposit trail is untouched; it has been Pending since confirmation.
func (r *BookingRepository) MarkCompleted(ctx context.Context, bookingID int64, now time.Time) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("id = ?", bookingID).
		Where("status = ?", string(domain.BookingConfirmed)).
		Updates(map[string]interface{}{
			"status":     string(domain.BookingCompleted),
			"updated_at": now,
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *BookingRepository) SetRefundStatus(ctx context.Context, bookingID int64, status domain.RefundStatus, now time.Time) error {
	return r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("id = ?", bookingID).
		Updates(map[string]interface{}{
			"refund_status": string(status),
			"updated_at":    now,
		}).Error
}

func (r *BookingRepository) SetDepositRefundStatus(ctx context.Context, bookingID int64, status domain.RefundStatus, now time.Time) error {
	return r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("id = ?", bookingID).
		Updates(map[string]interface{}{
			"deposit_refund_status": string(status),
			"updated_at":            now,
		}).Error
}

// EarnableBooking is one commissionable booking row: a Confirmed or
// Completed booking joined to the host who owns the vehicle.
type EarnableBooking struct {
	BookingID     int64     `gorm:"column:booking_id"`
	VehicleID     int64     `gorm:"column:vehicle_id"`
	HostID        int64     `gorm:"column:host_id"`
	TotalPrice    int64     `gorm:"column:total_price"`
	DepositAmount int64     `gorm:"column:deposit_amount"`
	Status        string    `gorm:"column:status"`
	EndTime       time.Time `gorm:"column:end_time"`
}

func (r *BookingRepository) earnableQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&bookingModel{}).
		Select("bookings.id AS booking_id, bookings.vehicle_id, vehicles.host_id, bookings.total_price, bookings.deposit_amount, bookings.status, bookings.end_time").
		Joins("JOIN vehicles ON vehicles.id = bookings.vehicle_id").
		Where("bookings.status IN ?", []string{
			string(domain.BookingConfirmed),
			string(domain.BookingCompleted),
		}).
		Order("bookings.end_time DESC")
}

func (r *BookingRepository) EarnableByHost(ctx context.Context, hostID int64) ([]EarnableBooking, error) {
	var rows []EarnableBooking
	err := r.earnableQuery(ctx).Where("vehicles.host_id = ?", hostID).Scan(&rows).Error
	return rows, err
}

func (r *BookingRepository) EarnableAll(ctx context.Context) ([]EarnableBooking, error) {
	var rows []EarnableBooking
	err := r.earnableQuery(ctx).Scan(&rows).Error
	return rows, err
}

// TypeDemand is a per-vehicle-type count of recent Confirmed bookings.
type TypeDemand struct {
	Type  string `gorm:"column:type" json:"type"`
	Count int64  `gorm:"column:count" json:"count"`
}

// DemandByType aggregates Confirmed bookings since the cutoff by vehicle
// type, optionally narrowed to one city.
func (r *BookingRepository) DemandByType(ctx context.Context, city string, since time.Time) ([]TypeDemand, error) {
	q := r.db.WithContext(ctx).Model(&bookingModel{}).
		Select("vehicles.type AS type, COUNT(1) AS count").
		Joins("JOIN vehicles ON vehicles.id = bookings.vehicle_id").
		Where("bookings.status = ?", string(domain.BookingConfirmed)).
		Where("bookings.created_at >= ?", since).
		Group("vehicles.type").
		Order("count DESC")
	if city != "" {
		q = q.Where("vehicles.city = ?", city)
	}

	var rows []TypeDemand
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
