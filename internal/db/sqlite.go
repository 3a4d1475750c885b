// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/brisa-ai/brisa/internal/weather"
)

// SQLite implements weather.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// SaveLookup records a completed weather lookup.
// An unset CreatedAt means now.
func (s *SQLite) SaveLookup(ctx context.Context, l *weather.Lookup) error {
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO lookups (
			query, location, latitude, longitude, weather_type, source, summary, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		l.Query,
		l.Location,
		l.Latitude,
		l.Longitude,
		l.Type,
		l.Source,
		l.Summary,
		l.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting lookup: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	l.ID = id

	return nil
}

// RecentLookups returns the most recent lookups, newest first.
func (s *SQLite) RecentLookups(ctx context.Context, limit int) ([]*weather.Lookup, error) {
	query := `
		SELECT id, query, location, latitude, longitude, weather_type, source, summary, created_at
		FROM lookups
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying lookups: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var lookups []*weather.Lookup
	for rows.Next() {
		var (
			l         weather.Lookup
			createdAt string
		)

		err := rows.Scan(
			&l.ID,
			&l.Query,
			&l.Location,
			&l.Latitude,
			&l.Longitude,
			&l.Type,
			&l.Source,
			&l.Summary,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning lookup: %w", err)
		}

		l.CreatedAt, err = parseTime(createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing created at: %w", err)
		}

		lookups = append(lookups, &l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating lookups: %w", err)
	}

	return lookups, nil
}

// ClearLookups deletes the entire lookup history and returns how many rows it removed.
func (s *SQLite) ClearLookups(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM lookups`)
	if err != nil {
		return 0, fmt.Errorf("clearing lookups: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting cleared lookups: %w", err)
	}

	return rows, nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// parseTime parses a timestamp in the formats SQLite might return.
func parseTime(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format: %s", s)
}
