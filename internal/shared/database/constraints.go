package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds critical database constraints for concurrency control
func MigrateConstraints(db *gorm.DB) error {
	// Per-class seat counters must never be persisted negative, whatever the
	// application-level clamp does
	err := db.Exec(`
		ALTER TABLE flights
		ADD CONSTRAINT IF NOT EXISTS chk_seat_counters_non_negative
		CHECK (economy_seats >= 0 AND business_seats >= 0 AND first_class_seats >= 0);
	`).Error
	if err != nil {
		return err
	}

	// Index for cross-booking seat-assignment conflict lookups
	err = db.Exec(`
		CREATE INDEX CONCURRENTLY IF NOT EXISTS idx_passengers_booking_seat
		ON passengers (booking_id, seat_number);
	`).Error
	if err != nil {
		return err
	}

	// Index for booking queries by flight
	err = db.Exec(`
		CREATE INDEX CONCURRENTLY IF NOT EXISTS idx_bookings_flight_id
		ON bookings (flight_id);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
