package booking

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"primedrew/internal/domain"
	"primedrew/internal/pricing"
	"primedrew/internal/quotestore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// priceTolerance is the per-booking rupee slack allowed between the quoted
// total and the recomputation at confirmation time; it absorbs float
// rounding, never a real price change.
const priceTolerance = 1

type Service struct {
	bookings BookingRepository
	vehicles VehicleReader
	users    UserReader
	gateway  PaymentGateway
	quotes   QuoteStore
	notifs   NotificationSender
	loggerf  func(format string, args ...interface{})

	cancelGrace  time.Duration
	cancelFeePct int

	// now is swappable in tests
	now func() time.Time
}

func NewService(
	bookings BookingRepository,
	vehicles VehicleReader,
	users UserReader,
	gateway PaymentGateway,
	quotes QuoteStore,
	notifs NotificationSender,
	cancelGrace time.Duration,
	cancelFeePct int,
	loggerf func(format string, args ...interface{}),
) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{
		bookings:     bookings,
		vehicles:     vehicles,
		users:        users,
		gateway:      gateway,
		quotes:       quotes,
		notifs:       notifs,
		loggerf:      loggerf,
		cancelGrace:  cancelGrace,
		cancelFeePct: cancelFeePct,
		now:          time.Now,
	}
}

// CreateOrder is phase one of the reservation: validate, price, open a
// payment order at the gateway and stash the quote server-side. Nothing is
// written to the bookings table yet.
func (s *Service) CreateOrder(ctx context.Context, userID int64, req CreateOrderRequest) (*OrderResponse, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, ErrValidation
	}
	if req.StartTime.Before(s.now()) {
		return nil, ErrValidation
	}

	v, err := s.vehicles.GetByCode(ctx, req.VehicleCode)
	if err != nil {
		return nil, ErrVehicleNotFound
	}
	if !v.IsAvailable {
		return nil, ErrNotAvailable
	}

	ok, err := s.bookings.CheckAvailability(ctx, v.ID, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotAvailable
	}

	quote := pricing.Compute(v.BasePrice, v.Fuel, req.StartTime, req.EndTime)
	if quote.Total <= 0 {
		return nil, ErrValidation
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	receipt := "rcpt_" + uuid.NewString()
	order, err := s.gateway.CreateOrder(ctx, quote.Total*100, "INR", receipt)
	if err != nil {
		return nil, fmt.Errorf("create payment order: %w", err)
	}

	pq := quotestore.PendingQuote{
		UserID:      userID,
		VehicleID:   v.ID,
		VehicleCode: v.Code,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Subtotal:    quote.Subtotal,
		Tax:         quote.Tax,
		Deposit:     quote.Deposit,
		Total:       quote.Total,
		OrderID:     order.ID,
		CreatedAt:   s.now(),
	}
	if err := s.quotes.Put(ctx, userID, pq); err != nil {
		return nil, fmt.Errorf("store pending quote: %w", err)
	}

	return &OrderResponse{
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		KeyID:    s.gateway.KeyID(),
		Prefill:  Prefill{Name: u.FullName(), Email: u.Email, Phone: u.Phone},
		Quote:    quote,
	}, nil
}

// Confirm is phase two: the client reports a payment id, and every fact is
// re-verified server-side before the booking row is written. The quote is
// single-use; a second confirm of the same order finds nothing to claim.
func (s *Service) Confirm(ctx context.Context, userID int64, req ConfirmRequest) (*ConfirmResponse, error) {
	pq, err := s.quotes.Pop(ctx, userID)
	if err != nil {
		return nil, err
	}
	if pq == nil {
		return nil, ErrSessionExpired
	}

	payment, err := s.gateway.FetchPayment(ctx, req.PaymentID)
	if err != nil {
		s.loggerf("payment fetch failed payment_id=%s order_id=%s err=%v", req.PaymentID, pq.OrderID, err)
		return nil, reconcile(req.PaymentID, ErrPaymentVerification)
	}

	if payment.OrderID != pq.OrderID {
		s.loggerf("payment order mismatch payment_id=%s got_order=%s want_order=%s", payment.ID, payment.OrderID, pq.OrderID)
		return nil, reconcile(payment.ID, ErrPaymentVerification)
	}
	if !payment.Captured() {
		return nil, reconcile(payment.ID, ErrPaymentNotCaptured)
	}
	if payment.Amount != pq.Total*100 {
		// Money moved but for the wrong amount. Manual reconciliation,
		// keyed by the payment id.
		s.loggerf("RECONCILE amount mismatch payment_id=%s paid=%d expected=%d", payment.ID, payment.Amount, pq.Total*100)
		return nil, reconcile(payment.ID, ErrAmountMismatch)
	}

	v, err := s.vehicles.GetByID(ctx, pq.VehicleID)
	if err != nil {
		s.loggerf("RECONCILE vehicle gone payment_id=%s vehicle_id=%d", payment.ID, pq.VehicleID)
		return nil, ErrVehicleNotFound
	}

	ok, err := s.bookings.CheckAvailability(ctx, pq.VehicleID, pq.StartTime, pq.EndTime)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Captured payment with no booking to attach it to.
		s.loggerf("RECONCILE slot taken after capture payment_id=%s vehicle_id=%d", payment.ID, pq.VehicleID)
		return nil, reconcile(payment.ID, ErrNotAvailable)
	}

	fresh := pricing.Compute(v.BasePrice, v.Fuel, pq.StartTime, pq.EndTime)
	if diff := fresh.Total - pq.Total; diff > priceTolerance || diff < -priceTolerance {
		s.loggerf("RECONCILE price drift payment_id=%s quoted=%d fresh=%d", payment.ID, pq.Total, fresh.Total)
		return nil, reconcile(payment.ID, ErrPriceMismatch)
	}

	b := &domain.Booking{
		UserID:              userID,
		VehicleID:           pq.VehicleID,
		StartTime:           pq.StartTime,
		EndTime:             pq.EndTime,
		TotalPrice:          pq.Total,
		DepositAmount:       pq.Deposit,
		Status:              domain.BookingConfirmed,
		PaymentID:           payment.ID,
		// The deposit is held money owed back to the renter, so its
		// trail opens immediately; the rental refund only becomes a
		// question on cancellation.
		RefundStatus:        domain.RefundNotApplicable,
		DepositRefundStatus: domain.RefundPending,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "idx_no_overbooking" {
			s.loggerf("RECONCILE overbooking race payment_id=%s vehicle_id=%d", payment.ID, pq.VehicleID)
			return nil, reconcile(payment.ID, ErrOverbooking)
		}
		return nil, err
	}

	if s.notifs != nil {
		if u, err := s.users.GetByID(ctx, userID); err == nil && u.Phone != "" {
			msg := fmt.Sprintf("Your PrimeDrew booking #%d for %s is confirmed.", b.ID, v.Name)
			if err := s.notifs.Send(ctx, u.Phone, msg); err != nil {
				s.loggerf("booking sms failed booking_id=%d err=%v", b.ID, err)
			}
		}
	}

	return &ConfirmResponse{
		BookingID:     b.ID,
		Status:        string(b.Status),
		TotalPrice:    b.TotalPrice,
		DepositAmount: b.DepositAmount,
	}, nil
}

// Cancel moves a Confirmed booking to Cancelled and reports the fee. Free
// within the grace window after booking; afterwards a flat percentage of
// the total is withheld from the refund. The deposit folds into this one
// refund decision, so its separate trail closes on cancellation.
func (s *Service) Cancel(ctx context.Context, userID, bookingID int64) (*CancelResponse, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, ErrNotFound
	}
	if b.UserID != userID {
		return nil, ErrForbidden
	}
	if b.Status != domain.BookingConfirmed {
		return nil, ErrInvalidStatusTransition
	}

	now := s.now()
	ok, err := s.bookings.Cancel(ctx, bookingID, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		// lost the race with another cancel/complete
		return nil, ErrInvalidStatusTransition
	}

	fee := s.CancellationFee(b, now)
	return &CancelResponse{
		BookingID:       bookingID,
		CancellationFee: fee,
		RefundAmount:    b.TotalPrice - fee,
	}, nil
}

// CancellationFee is zero strictly inside the grace window after the
// booking was made; at the boundary and beyond, a percentage of the total
// is withheld, rounded to the rupee.
func (s *Service) CancellationFee(b *domain.Booking, at time.Time) int64 {
	if at.Sub(b.CreatedAt) < s.cancelGrace {
		return 0
	}
	return int64(math.Round(float64(b.TotalPrice) * float64(s.cancelFeePct) / 100))
}

// Complete marks a Confirmed booking whose rental period has ended, which
// makes it eligible for review and puts its held deposit in front of the
// admin queue.
func (s *Service) Complete(ctx context.Context, userID, bookingID int64) error {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return ErrNotFound
	}
	if b.UserID != userID {
		return ErrForbidden
	}
	if b.Status != domain.BookingConfirmed {
		return ErrInvalidStatusTransition
	}
	if s.now().Before(b.EndTime) {
		return ErrValidation
	}

	ok, err := s.bookings.MarkCompleted(ctx, bookingID, s.now())
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidStatusTransition
	}
	return nil
}

// MyBookings returns the renter's booking history, newest first, with
// vehicle identity resolved for display.
func (s *Service) MyBookings(ctx context.Context, userID int64) ([]BookingDetails, error) {
	rows, err := s.bookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]BookingDetails, 0, len(rows))
	for _, b := range rows {
		d := BookingDetails{
			ID:                  b.ID,
			StartTime:           b.StartTime,
			EndTime:             b.EndTime,
			TotalPrice:          b.TotalPrice,
			DepositAmount:       b.DepositAmount,
			Status:              string(b.Status),
			RefundStatus:        string(b.RefundStatus),
			DepositRefundStatus: string(b.DepositRefundStatus),
		}
		if v, err := s.vehicles.GetByID(ctx, b.VehicleID); err == nil {
			d.VehicleCode = v.Code
			d.VehicleName = v.Name
		}
		out = append(out, d)
	}
	return out, nil
}

// Receipt returns the paid record of the caller's own booking.
func (s *Service) Receipt(ctx context.Context, userID, bookingID int64) (*ReceiptResponse, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, ErrNotFound
	}
	if b.UserID != userID {
		return nil, ErrForbidden
	}

	r := &ReceiptResponse{
		BookingID:     b.ID,
		PaymentID:     b.PaymentID,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		TotalPrice:    b.TotalPrice,
		DepositAmount: b.DepositAmount,
		Status:        string(b.Status),
		BookedAt:      b.CreatedAt,
	}
	if v, err := s.vehicles.GetByID(ctx, b.VehicleID); err == nil {
		r.VehicleCode = v.Code
		r.VehicleName = v.Name
	}
	return r, nil
}
