package earnings

// BookingEarning is the commission split of one booking. The deposit is
// refundable money passing through the platform and never enters the
// split.
type BookingEarning struct {
	BookingID     int64  `json:"booking_id"`
	VehicleID     int64  `json:"vehicle_id"`
	Status        string `json:"status"`
	Base          int64  `json:"base"`
	HostShare     int64  `json:"host_share"`
	PlatformShare int64  `json:"platform_share"`
}

type HostReport struct {
	HostID        int64            `json:"host_id"`
	Tier          int              `json:"tier"`
	Bookings      []BookingEarning `json:"bookings"`
	TotalBase     int64            `json:"total_base"`
	TotalHost     int64            `json:"total_host"`
	TotalPlatform int64            `json:"total_platform"`
}

// HostPayout is the amount owed to one host across their bookings.
type HostPayout struct {
	HostID    int64 `json:"host_id"`
	Tier      int   `json:"tier"`
	Bookings  int64 `json:"bookings"`
	PayoutDue int64 `json:"payout_due"`
}

type PlatformSummary struct {
	Bookings      int64        `json:"bookings"`
	TotalBase     int64        `json:"total_base"`
	TotalHost     int64        `json:"total_host"`
	TotalPlatform int64        `json:"total_platform"`
	PerHost       []HostPayout `json:"per_host"`
}

type SetTierRequest struct {
	Tier int `json:"tier" binding:"required"`
}
