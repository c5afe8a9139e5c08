package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds database constraints that AutoMigrate cannot
// express. The partial unique index on tickets is what actually
// enforces at-most-one-active-ticket-per-seat-per-schedule under
// concurrent bookings; the application-level pre-check only produces a
// friendlier error message.
func MigrateConstraints(db *gorm.DB) error {
	// One ACTIVE ticket per (schedule, seat). Cancelled and used
	// tickets stay in the table without blocking rebooking.
	err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS ux_tickets_schedule_seat_active
		ON tickets (schedule_id, bus_seat_id)
		WHERE status = 'ACTIVE';
	`).Error
	if err != nil {
		return err
	}

	// Availability queries scan active tickets per schedule.
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_tickets_schedule_status
		ON tickets (schedule_id, status);
	`).Error
	if err != nil {
		return err
	}

	// Parcel tracking codes must be process-unique.
	err = db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS ux_parcels_tracking_code
		ON parcels (tracking_code);
	`).Error
	if err != nil {
		return err
	}

	// One liquidation per schedule.
	err = db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS ux_liquidations_schedule
		ON liquidations (schedule_id);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
