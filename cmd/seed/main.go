package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"primedrew/internal/database"
	"primedrew/internal/domain"
	"primedrew/internal/pricing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "primedrew.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM complaints")
	db.Exec("DELETE FROM vehicles")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	admin := domain.User{
		Email:        "admin@primedrew.in",
		Phone:        "+919800000001",
		PasswordHash: hash("admin123"),
		FirstName:    "Platform",
		LastName:     "Admin",
		Role:         domain.RoleAdmin,
		IsActive:     true,
	}
	db.Create(&admin)
	log.Println("Admin created: admin@primedrew.in / admin123")

	hosts := []domain.User{}
	hostSeed := []struct {
		email, first, last, city string
		approved                 bool
		tier                     int
	}{
		{"ravi@hosts.in", "Ravi", "Kumar", "Bengaluru", true, domain.TierPremium},
		{"meera@hosts.in", "Meera", "Shah", "Pune", true, domain.TierStandard},
		{"arjun@hosts.in", "Arjun", "Nair", "Kochi", false, domain.TierStandard},
	}
	for i, hs := range hostSeed {
		h := domain.User{
			Email:          hs.email,
			Phone:          fmt.Sprintf("+91980000010%d", i),
			PasswordHash:   hash("host123"),
			FirstName:      hs.first,
			LastName:       hs.last,
			Role:           domain.RoleHost,
			City:           hs.city,
			IsApprovedHost: hs.approved,
			IsActive:       true,
			CommissionTier: hs.tier,
		}
		db.Create(&h)
		hosts = append(hosts, h)
	}

	renters := []domain.User{}
	renterSeed := []struct{ email, first, last string }{
		{"asha@renters.in", "Asha", "Pillai"},
		{"vikram@renters.in", "Vikram", "Rao"},
	}
	for i, rs := range renterSeed {
		r := domain.User{
			Email:          rs.email,
			Phone:          fmt.Sprintf("+91980000020%d", i),
			PasswordHash:   hash("renter123"),
			FirstName:      rs.first,
			LastName:       rs.last,
			Role:           domain.RoleRenter,
			DLNumber:       fmt.Sprintf("KA01 2020000%d", i+1),
			DLExpiry:       "2030-01-01",
			IsActive:       true,
			CommissionTier: domain.TierStandard,
		}
		db.Create(&r)
		renters = append(renters, r)
	}

	// ================== VEHICLES ==================
	log.Println("Creating vehicles...")
	vehicles := seedVehicles(db, hosts)

	// ================== BOOKINGS ==================
	log.Println("Creating bookings...")

	start := time.Now().Truncate(time.Hour).Add(48 * time.Hour)
	end := start.Add(6 * time.Hour)
	q := pricing.Compute(vehicles[0].BasePrice, vehicles[0].Fuel, start, end)
	db.Create(&domain.Booking{
		UserID:              renters[0].ID,
		VehicleID:           vehicles[0].ID,
		StartTime:           start,
		EndTime:             end,
		TotalPrice:          q.Total,
		DepositAmount:       q.Deposit,
		Status:              domain.BookingConfirmed,
		PaymentID:           "pay_seed_confirmed1",
		RefundStatus:        domain.RefundNotApplicable,
		DepositRefundStatus: domain.RefundPending,
	})

	pastStart := time.Now().Add(-72 * time.Hour).Truncate(time.Hour)
	pastEnd := pastStart.Add(4 * time.Hour)
	pq := pricing.Compute(vehicles[1].BasePrice, vehicles[1].Fuel, pastStart, pastEnd)
	completed := domain.Booking{
		UserID:              renters[1].ID,
		VehicleID:           vehicles[1].ID,
		StartTime:           pastStart,
		EndTime:             pastEnd,
		TotalPrice:          pq.Total,
		DepositAmount:       pq.Deposit,
		Status:              domain.BookingCompleted,
		PaymentID:           "pay_seed_completed1",
		RefundStatus:        domain.RefundNotApplicable,
		DepositRefundStatus: domain.RefundPending,
	}
	db.Create(&completed)

	db.Create(&domain.Review{
		BookingID: completed.ID,
		UserID:    renters[1].ID,
		VehicleID: vehicles[1].ID,
		Rating:    5,
		Comment:   "Clean car, smooth pickup.",
	})

	db.Create(&domain.Complaint{
		Name:    "Walk-in Visitor",
		Email:   "visitor@example.in",
		Subject: "Billing question",
		Message: "I was charged twice for the same booking, please check.",
		Status:  domain.ComplaintNew,
	})

	log.Println("Seed complete.")
}

func hash(password string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("password hash failed:", err)
	}
	return string(h)
}

func seedVehicles(db *gorm.DB, hosts []domain.User) []domain.Vehicle {
	seed := []struct {
		host      int
		name      string
		brand     string
		vtype     string
		fuel      domain.FuelType
		gear      string
		city      string
		basePrice float64
	}{
		{0, "Swift Dzire", "Maruti", "Sedan", domain.FuelPetrol, "Manual", "Bengaluru", 120},
		{0, "Nexon EV", "Tata", "SUV", domain.FuelElectric, "Automatic", "Bengaluru", 180},
		{1, "Baleno", "Maruti", "Hatchback", domain.FuelPetrol, "Manual", "Pune", 100},
		{1, "Innova Crysta", "Toyota", "SUV", domain.FuelDiesel, "Manual", "Pune", 220},
	}

	out := make([]domain.Vehicle, 0, len(seed))
	seq := map[int64]int{}
	for _, s := range seed {
		host := hosts[s.host]
		seq[host.ID]++
		v := domain.Vehicle{
			HostID:      host.ID,
			Code:        fmt.Sprintf("%s-%s-%d-%d", slugify(s.name), slugify(s.city), host.ID, seq[host.ID]),
			Name:        s.name,
			Brand:       s.brand,
			Type:        s.vtype,
			Fuel:        s.fuel,
			Gear:        s.gear,
			City:        s.city,
			BasePrice:   s.basePrice,
			Rating:      4.0,
			KmsPerUnit:  15,
			IsAvailable: true,
		}
		db.Create(&v)
		out = append(out, v)
	}
	return out
}

func slugify(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+'a'-'A')
		case r == ' ' || r == '-' || r == '_':
			if len(out) > 0 && out[len(out)-1] != '-' {
				out = append(out, '-')
			}
		}
	}
	for len(out) > 0 && out[len(out)-1] == '-' {
		out = out[:len(out)-1]
	}
	return string(out)
}
