package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"primedrew/internal/domain"

	_ "modernc.org/sqlite" // registers the pure-Go "sqlite" driver
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate creates the schema and, on PostgreSQL, the exclusion constraint
// that makes the booking overlap check race-free: two concurrent inserts
// of Confirmed bookings with overlapping [start,end) ranges on the same
// vehicle cannot both commit. The application-level availability check is
// only an early exit; this constraint is the actual guarantee.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Vehicle{},
		&domain.Booking{},
		&domain.Review{},
		&domain.Complaint{},
	); err != nil {
		return err
	}

	if db.Dialector.Name() != "postgres" {
		return nil
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		return err
	}

	return db.Exec(`
DO $$
BEGIN
    IF NOT EXISTS (
        SELECT 1 FROM pg_constraint WHERE conname = 'idx_no_overbooking'
    ) THEN
        ALTER TABLE bookings
        ADD CONSTRAINT idx_no_overbooking
        EXCLUDE USING gist (
            vehicle_id WITH =,
            tstzrange(start_time, end_time, '[)') WITH &&
        ) WHERE (status = 'Confirmed');
    END IF;
END $$;
`).Error
}
