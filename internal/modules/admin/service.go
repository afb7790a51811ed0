package admin

import (
	"context"
	"math"
	"time"

	"primedrew/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	users    UserRepository
	vehicles VehicleRepository
	bookings BookingRepository
	notifs   NotificationSender
	db       *gorm.DB
	loggerf  func(format string, args ...interface{})

	cancelGrace  time.Duration
	cancelFeePct int

	// now is swappable in tests
	now func() time.Time
}

func NewService(
	users UserRepository,
	vehicles VehicleRepository,
	bookings BookingRepository,
	notifs NotificationSender,
	db *gorm.DB,
	cancelGrace time.Duration,
	cancelFeePct int,
	loggerf func(format string, args ...interface{}),
) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{
		users:        users,
		vehicles:     vehicles,
		bookings:     bookings,
		notifs:       notifs,
		db:           db,
		loggerf:      loggerf,
		cancelGrace:  cancelGrace,
		cancelFeePct: cancelFeePct,
		now:          time.Now,
	}
}

// ApproveHost flips a host to approved and notifies them by SMS. The SMS
// is best effort; the approval commits either way.
func (s *Service) ApproveHost(ctx context.Context, hostID int64) (*domain.User, error) {
	host, err := s.users.GetByID(ctx, hostID)
	if err != nil {
		return nil, ErrNotFound
	}
	if host.Role != domain.RoleHost {
		return nil, ErrNotHost
	}
	if host.IsApprovedHost {
		return nil, ErrInvalidState
	}

	host.IsApprovedHost = true
	if err := s.users.Update(ctx, host); err != nil {
		return nil, err
	}

	if s.notifs != nil && host.Phone != "" {
		msg := "Your PrimeDrew host account has been approved. You can now list vehicles."
		if err := s.notifs.Send(ctx, host.Phone, msg); err != nil {
			s.loggerf("approval sms failed host_id=%d err=%v", hostID, err)
		}
	}

	host.PasswordHash = ""
	return host, nil
}

// SetHostActive blocks or unblocks a host account. Blocking also takes
// every vehicle of the host off the market; unblocking does not relist
// them, the host does that explicitly.
func (s *Service) SetHostActive(ctx context.Context, hostID int64, active bool) (*domain.User, error) {
	host, err := s.users.GetByID(ctx, hostID)
	if err != nil {
		return nil, ErrNotFound
	}
	if host.Role != domain.RoleHost {
		return nil, ErrNotHost
	}

	host.IsActive = active
	if err := s.users.Update(ctx, host); err != nil {
		return nil, err
	}

	if !active {
		if err := s.vehicles.SetAvailabilityForHost(ctx, hostID, false, s.now()); err != nil {
			return nil, err
		}
	}

	host.PasswordHash = ""
	return host, nil
}

// PendingRefunds lists cancelled bookings awaiting the rental refund, with
// the withheld fee already computed.
func (s *Service) PendingRefunds(ctx context.Context) ([]RefundRow, error) {
	rows, err := s.bookings.PendingRefunds(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]RefundRow, 0, len(rows))
	for _, b := range rows {
		fee := s.cancellationFee(&b)
		out = append(out, RefundRow{
			BookingID:       b.ID,
			UserID:          b.UserID,
			TotalPrice:      b.TotalPrice,
			CancellationFee: fee,
			RefundAmount:    b.TotalPrice - fee,
			PaymentID:       b.PaymentID,
			CancelledAt:     b.UpdatedAt,
		})
	}
	return out, nil
}

func (s *Service) cancellationFee(b *domain.Booking) int64 {
	if b.UpdatedAt.Sub(b.CreatedAt) < s.cancelGrace {
		return 0
	}
	return int64(math.Round(float64(b.TotalPrice) * float64(s.cancelFeePct) / 100))
}

func (s *Service) PendingDepositRefunds(ctx context.Context) ([]DepositRow, error) {
	rows, err := s.bookings.PendingDepositRefunds(ctx, s.now())
	if err != nil {
		return nil, err
	}

	out := make([]DepositRow, 0, len(rows))
	for _, b := range rows {
		out = append(out, DepositRow{
			BookingID:     b.ID,
			UserID:        b.UserID,
			DepositAmount: b.DepositAmount,
			BookingStatus: b.Status,
			PaymentID:     b.PaymentID,
		})
	}
	return out, nil
}

// ResolveRefund marks the rental refund Processed or Denied. Only a
// cancelled booking with an unresolved refund qualifies; settling twice
// is refused.
func (s *Service) ResolveRefund(ctx context.Context, bookingID int64, approve bool) error {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return ErrNotFound
	}
	if b.Status != domain.BookingCancelled {
		return ErrInvalidState
	}
	if b.RefundStatus != domain.RefundPending {
		return ErrInvalidState
	}

	status := domain.RefundProcessed
	if !approve {
		status = domain.RefundDenied
	}
	return s.bookings.SetRefundStatus(ctx, bookingID, status, s.now())
}

// ResolveDepositRefund settles the security deposit trail of an ended
// rental. The only guard is the trail itself being unresolved; on
// cancellations the deposit has already folded into the rental refund.
func (s *Service) ResolveDepositRefund(ctx context.Context, bookingID int64, approve bool) error {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return ErrNotFound
	}
	if b.DepositRefundStatus != domain.RefundPending {
		return ErrInvalidState
	}

	status := domain.RefundProcessed
	if !approve {
		status = domain.RefundDenied
	}
	return s.bookings.SetDepositRefundStatus(ctx, bookingID, status, s.now())
}

// Stats is a set of platform-wide counters for the admin dashboard.
func (s *Service) Stats(ctx context.Context) (*Statistics, error) {
	st := &Statistics{}
	db := s.db.WithContext(ctx)

	counts := []struct {
		dst   *int64
		table string
		where string
		args  []interface{}
	}{
		{&st.Users, "users", "", nil},
		{&st.Hosts, "users", "role = ?", []interface{}{string(domain.RoleHost)}},
		{&st.PendingHosts, "users", "role = ? AND is_approved_host = ?", []interface{}{string(domain.RoleHost), false}},
		{&st.Vehicles, "vehicles", "", nil},
		{&st.AvailableVehicles, "vehicles", "is_available = ?", []interface{}{true}},
		{&st.Confirmed, "bookings", "status = ?", []interface{}{string(domain.BookingConfirmed)}},
		{&st.Cancelled, "bookings", "status = ?", []interface{}{string(domain.BookingCancelled)}},
		{&st.Completed, "bookings", "status = ?", []interface{}{string(domain.BookingCompleted)}},
		{&st.OpenComplaints, "complaints", "status <> ?", []interface{}{string(domain.ComplaintResolved)}},
	}

	for _, c := range counts {
		q := db.Table(c.table)
		if c.where != "" {
			q = q.Where(c.where, c.args...)
		}
		if err := q.Count(c.dst).Error; err != nil {
			return nil, err
		}
	}

	err := db.Table("bookings").
		Select("COALESCE(SUM(total_price), 0)").
		Where("status IN ?", []string{string(domain.BookingConfirmed), string(domain.BookingCompleted)}).
		Scan(&st.Revenue).Error
	if err != nil {
		return nil, err
	}

	if err := db.Table("bookings").
		Where("status = ? AND refund_status = ?", string(domain.BookingCancelled), string(domain.RefundPending)).
		Count(&st.PendingRefunds).Error; err != nil {
		return nil, err
	}

	now := s.now()
	err = db.Table("bookings").
		Where("deposit_refund_status = ?", string(domain.RefundPending)).
		Where("status = ? OR (status = ? AND end_time <= ?)",
			string(domain.BookingCompleted), string(domain.BookingConfirmed), now).
		Count(&st.PendingDepositRefunds).Error
	if err != nil {
		return nil, err
	}
	return st, nil
}
