package main

import (
	"log"
	"os"
	"time"

	"primedrew/internal/database"
)

// Marks Confirmed bookings whose rental window has ended as Completed.
// Meant to run from cron; completion can also happen through the API when
// the renter reports the return. The deposit trail needs no touch here,
// it has been Pending since confirmation.
func main() {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	now := time.Now().UTC()
	res := db.Exec(`
		UPDATE bookings
		SET status = 'Completed', updated_at = ?
		WHERE status = 'Confirmed' AND end_time <= ?`, now, now)
	if res.Error != nil {
		log.Fatalf("booking sweep failed: %v", res.Error)
	}

	log.Printf("booking sweep completed: bookings_completed=%d", res.RowsAffected)
}
