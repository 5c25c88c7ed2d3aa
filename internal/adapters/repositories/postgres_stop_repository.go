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

// Postgres-backed implementation of the StopRepository port.
type PostgresStopRepository struct{ DB *sql.DB }

func NewPostgresStopRepository(db *sql.DB) *PostgresStopRepository {
	return &PostgresStopRepository{DB: db}
}

// Return all stops in insertion order.
func (p *PostgresStopRepository) ListStops(ctx context.Context) ([]domain.Stop, error) {
	if p.DB == nil {
		return nil, errors.New("postgres stop repository: DB is nil")
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
	rows, err := p.DB.QueryContext(ctx, query)
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
func (p *PostgresStopRepository) SaveStop(ctx context.Context, stop domain.Stop) error {
	if p.DB == nil {
		return errors.New("postgres stop repository: DB is nil")
	}
	if strings.TrimSpace(stop.ID) == "" {
		return errors.New("save stop: ID must be non-empty")
	}

	query := `
	INSERT INTO stops (stop_id, name, address, lat, lon)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (stop_id) DO UPDATE
	SET name = EXCLUDED.name,
		address = EXCLUDED.address,
		lat = EXCLUDED.lat,
		lon = EXCLUDED.lon;
	`
	if _, err := p.DB.ExecContext(ctx, query, stop.ID, stop.Name, stop.Address, stop.Point.Lat, stop.Point.Lon); err != nil {
		return fmt.Errorf("save stop %q: %w", stop.ID, err)
	}

	return nil
}

// Remove a stop by ID.
func (p *PostgresStopRepository) DeleteStop(ctx context.Context, id string) error {
	if p.DB == nil {
		return errors.New("postgres stop repository: DB is nil")
	}

	res, err := p.DB.ExecContext(ctx, `DELETE FROM stops WHERE stop_id = $1;`, id)
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
