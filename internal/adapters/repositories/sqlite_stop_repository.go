package repositories

import (
	"context"
	"courier-route-service/internal/domain"
	"courier-route-service/internal/ports"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// SQLite-backed implementation of the StopRepository port.
type SqliteStopRepository struct{ DB *sql.DB }

func NewSqliteStopRepository(db *sql.DB) *SqliteStopRepository {
	return &SqliteStopRepository{DB: db}
}

// Return all stops in insertion order.
func (s *SqliteStopRepository) ListStops(ctx context.Context) ([]domain.Stop, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite stop repository: DB is nil")
	}

	query := `
	SELECT
		stop_id,
		name,
		address,
		lat,
		lon
	FROM stops
	ORDER BY position;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stops: query stops table: %w", err)
	}
	defer rows.Close()

	stops := make([]domain.Stop, 0, 64)
	for rows.Next() {
		var stop domain.Stop
		if err := rows.Scan(&stop.ID, &stop.Name, &stop.Address, &stop.Point.Lat, &stop.Point.Lon); err != nil {
			return nil, fmt.Errorf("list stops: scan row: %w", err)
		}
		stops = append(stops, stop)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list stops: row iteration: %w", err)
	}

	return stops, nil
}

// Insert a stop, or update it in place when the ID already exists.
// Updates keep the original position so listing order stays stable
// across re-imports.
func (s *SqliteStopRepository) SaveStop(ctx context.Context, stop domain.Stop) error {
	if s.DB == nil {
		return errors.New("sqlite stop repository: DB is nil")
	}
	if strings.TrimSpace(stop.ID) == "" {
		return errors.New("save stop: ID must be non-empty")
	}

	query := `
	INSERT INTO stops (stop_id, name, address, lat, lon)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT (stop_id) DO UPDATE
	SET name = excluded.name,
		address = excluded.address,
		lat = excluded.lat,
		lon = excluded.lon;
	`
	if _, err := s.DB.ExecContext(ctx, query, stop.ID, stop.Name, stop.Address, stop.Point.Lat, stop.Point.Lon); err != nil {
		return fmt.Errorf("save stop %q: %w", stop.ID, err)
	}

	return nil
}

// Remove a stop by ID.
func (s *SqliteStopRepository) DeleteStop(ctx context.Context, id string) error {
	if s.DB == nil {
		return errors.New("sqlite stop repository: DB is nil")
	}

	res, err := s.DB.ExecContext(ctx, `DELETE FROM stops WHERE stop_id = ?;`, id)
	if err != nil {
		return fmt.Errorf("delete stop %q: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete stop %q: rows affected: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("delete stop %q: %w", id, ports.ErrStopNotFound)
	}

	return nil
}
