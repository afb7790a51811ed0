package earnings

import (
	"context"
	"math"
	"sort"

	"primedrew/internal/domain"
	"primedrew/internal/repository"
)

type Service struct {
	bookings BookingEarningsReader
	users    UserRepository
	vehicles VehicleCounter
}

func NewService(bookings BookingEarningsReader, users UserRepository, vehicles VehicleCounter) *Service {
	return &Service{bookings: bookings, users: users, vehicles: vehicles}
}

// split divides the commissionable base of one booking. Base excludes the
// deposit; the host share is rounded to the rupee and the platform keeps
// the exact remainder so the two always sum to base.
func split(row repository.EarnableBooking, tier int) BookingEarning {
	base := row.TotalPrice - row.DepositAmount
	hostShare := int64(math.Round(float64(base) * float64(tier) / 100))
	return BookingEarning{
		BookingID:     row.BookingID,
		VehicleID:     row.VehicleID,
		Status:        row.Status,
		Base:          base,
		HostShare:     hostShare,
		PlatformShare: base - hostShare,
	}
}

// HostReport computes the host's payout ledger at their current tier.
func (s *Service) HostReport(ctx context.Context, hostID int64) (*HostReport, error) {
	host, err := s.users.GetByID(ctx, hostID)
	if err != nil {
		return nil, ErrNotFound
	}
	if host.Role != domain.RoleHost {
		return nil, ErrNotHost
	}

	rows, err := s.bookings.EarnableByHost(ctx, hostID)
	if err != nil {
		return nil, err
	}

	report := &HostReport{HostID: hostID, Tier: host.CommissionTier, Bookings: make([]BookingEarning, 0, len(rows))}
	for _, row := range rows {
		e := split(row, host.CommissionTier)
		report.Bookings = append(report.Bookings, e)
		report.TotalBase += e.Base
		report.TotalHost += e.HostShare
		report.TotalPlatform += e.PlatformShare
	}
	return report, nil
}

// SetTier changes a host's commission tier. The premium tier is reserved
// for approved, active hosts with at least one listed vehicle.
func (s *Service) SetTier(ctx context.Context, hostID int64, tier int) (*domain.User, error) {
	if tier != domain.TierStandard && tier != domain.TierPremium {
		return nil, ErrInvalidTier
	}

	host, err := s.users.GetByID(ctx, hostID)
	if err != nil {
		return nil, ErrNotFound
	}
	if host.Role != domain.RoleHost {
		return nil, ErrNotHost
	}

	if tier == domain.TierPremium {
		if !host.IsApprovedHost || !host.IsActive {
			return nil, ErrNotEligible
		}
		cnt, err := s.vehicles.CountByHost(ctx, hostID)
		if err != nil {
			return nil, err
		}
		if cnt < 1 {
			return nil, ErrNotEligible
		}
	}

	host.CommissionTier = tier
	if err := s.users.Update(ctx, host); err != nil {
		return nil, err
	}

	host.PasswordHash = ""
	return host, nil
}

// Summary aggregates the commission split across all hosts, each at their
// own tier.
func (s *Service) Summary(ctx context.Context) (*PlatformSummary, error) {
	rows, err := s.bookings.EarnableAll(ctx)
	if err != nil {
		return nil, err
	}

	tiers := make(map[int64]int)
	payouts := make(map[int64]*HostPayout)
	summary := &PlatformSummary{}
	for _, row := range rows {
		tier, ok := tiers[row.HostID]
		if !ok {
			tier = domain.TierStandard
			if host, err := s.users.GetByID(ctx, row.HostID); err == nil {
				tier = host.CommissionTier
			}
			tiers[row.HostID] = tier
		}

		e := split(row, tier)
		summary.Bookings++
		summary.TotalBase += e.Base
		summary.TotalHost += e.HostShare
		summary.TotalPlatform += e.PlatformShare

		p, ok := payouts[row.HostID]
		if !ok {
			p = &HostPayout{HostID: row.HostID, Tier: tier}
			payouts[row.HostID] = p
		}
		p.Bookings++
		p.PayoutDue += e.HostShare
	}

	summary.PerHost = make([]HostPayout, 0, len(payouts))
	for _, p := range payouts {
		summary.PerHost = append(summary.PerHost, *p)
	}
	sort.Slice(summary.PerHost, func(i, j int) bool {
		return summary.PerHost[i].HostID < summary.PerHost[j].HostID
	})
	return summary, nil
}
