package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/apperrors"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/domain"
	portsrepo "github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/ports/repositories"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/models"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/utils/mapping"
)

type PgxLocationRepository struct {
	BaseRepository
}

func newPgxLocationRepository(db *pgxpool.Pool) portsrepo.LocationRepository {
	return &PgxLocationRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.LocationRepository = (*PgxLocationRepository)(nil)

const locationColumns = `location_id, name, kind, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanLocation(row pgx.Row) (models.Location, error) {
	var m models.Location
	err := row.Scan(
		&m.LocationID,
		&m.Name,
		&m.Kind,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxLocationRepository) SaveLocation(ctx context.Context, location domain.Location) error {
	m := mapping.ToModelLocation(location)
	query := `
		INSERT INTO locations (location_id, name, kind, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.LocationID,
		m.Name,
		m.Kind,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("location %q already exists: %w", location.Name, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save location: %w", err)
	}
	return nil
}

func (r *PgxLocationRepository) FindLocationByID(ctx context.Context, locationID string) (*domain.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations WHERE location_id = $1;`
	m, err := scanLocation(r.Pool.QueryRow(ctx, query, locationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find location %s: %w", locationID, err)
	}
	d := mapping.ToDomainLocation(m)
	return &d, nil
}

func (r *PgxLocationRepository) ListLocations(ctx context.Context, activeOnly bool) ([]domain.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Location, error) {
		return scanLocation(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan locations: %w", err)
	}
	return mapping.ToDomainLocationSlice(ms), nil
}

func (r *PgxLocationRepository) UpdateLocation(ctx context.Context, location domain.Location) error {
	m := mapping.ToModelLocation(location)
	query := `
		UPDATE locations
		SET name = $2, is_active = $3, last_updated_at = $4, last_updated_by = $5
		WHERE location_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.LocationID,
		m.Name,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update location %s: %w", location.LocationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
