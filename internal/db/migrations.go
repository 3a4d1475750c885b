package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS lookups (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			query        TEXT NOT NULL,
			location     TEXT NOT NULL,
			latitude     REAL NOT NULL,
			longitude    REAL NOT NULL,
			weather_type TEXT DEFAULT 'current' CHECK(weather_type IN ('current', 'forecast')),
			source       TEXT CHECK(source IN ('coordinates', 'geocoder', 'city_table', 'default')),
			summary      TEXT NOT NULL,
			created_at   DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_lookups_created ON lookups(created_at);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating lookups table: %w", err)
	}

	return nil
}
