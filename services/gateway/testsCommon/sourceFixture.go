package testsCommon

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// FixtureNow is the request time the seeded rows are laid out around (a Sunday)
var FixtureNow = time.Date(2026, 10, 18, 14, 30, 0, 0, time.UTC)

const fixtureSchema = `
	CREATE TABLE IF NOT EXISTS users (
		id               INTEGER PRIMARY KEY AUTOINCREMENT,
		registered       TEXT NOT NULL,
		subscription_end TEXT,
		plan_type        TEXT
	);

	CREATE TABLE IF NOT EXISTS subscriptions (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id    INTEGER NOT NULL,
		registered TEXT NOT NULL,
		paid_at    TEXT,
		status     TEXT NOT NULL
	);
`

const fixtureRows = `
	INSERT INTO users (registered, subscription_end, plan_type) VALUES
		('2026-10-18 09:00:00', '2026-10-18 20:00:00', 'trial'),
		('2026-10-18 11:00:00', '2026-11-25 00:00:00', 'monthly'),
		('2026-10-16 10:00:00', '2026-10-21 00:00:00', 'trial'),
		('2026-10-16 12:00:00', '2026-10-01 00:00:00', 'trial'),
		('2026-10-13 08:00:00', NULL, NULL),
		('2026-10-07 08:00:00', '2026-10-18 10:00:00', 'trial'),
		('2026-09-15 08:00:00', '2026-11-10 00:00:00', 'yearly'),
		('2026-09-30 23:59:59', NULL, NULL),
		('2026-08-31 12:00:00', NULL, NULL),
		('2026-10-01 00:00:00', NULL, NULL);

	INSERT INTO subscriptions (user_id, registered, paid_at, status) VALUES
		(1, '2026-10-18 10:00:00', '2026-10-18 10:05:00', 'paid'),
		(2, '2026-10-18 12:00:00', NULL, 'pending'),
		(3, '2026-10-14 09:00:00', '2026-10-15 09:00:00', 'paid'),
		(7, '2026-09-20 09:00:00', '2026-09-25 09:00:00', 'paid'),
		(8, '2026-09-10 09:00:00', '2026-09-10 09:30:00', 'refunded');
`

// SeedSourceDatabase creates the users and subscriptions tables in the sqlite file at dbPath and fills them
// with rows laid out around FixtureNow
func SeedSourceDatabase(dbPath string) error {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = db.Close()
	}()

	_, err = db.Exec(fixtureSchema)
	if err != nil {
		return fmt.Errorf("failed to create fixture schema: %w", err)
	}

	_, err = db.Exec(fixtureRows)
	if err != nil {
		return fmt.Errorf("failed to insert fixture rows: %w", err)
	}

	return nil
}
