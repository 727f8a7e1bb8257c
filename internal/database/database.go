package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	_ "modernc.org/sqlite"
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

// EnsureBookingConstraints installs the storage-level guard against two
// overlapping non-cancelled room bookings. Only PostgreSQL can express the
// range-exclusion constraint; on SQLite (local dev, tests) inserts stay
// unguarded and overlap is only caught by the advisory availability check.
func EnsureBookingConstraints(db *gorm.DB) error {
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
    SELECT 1 FROM pg_constraint WHERE conname = 'idx_no_double_booking'
  ) THEN
    ALTER TABLE bookings
      ADD CONSTRAINT idx_no_double_booking
      EXCLUDE USING gist (
        room_id WITH =,
        tstzrange(check_in_date, check_out_date, '[)') WITH &&
      )
      WHERE (status <> 'cancelled' AND room_id IS NOT NULL);
  END IF;
END $$;
`).Error
}
