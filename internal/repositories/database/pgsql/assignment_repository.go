package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/apperrors"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/domain"
	portsrepo "github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/ports/repositories"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/models"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/utils/mapping"
)

type PgxAssignmentRepository struct {
	BaseRepository
}

func newPgxAssignmentRepository(db *pgxpool.Pool) portsrepo.AssignmentRepository {
	return &PgxAssignmentRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.AssignmentRepository = (*PgxAssignmentRepository)(nil)

const assignmentColumns = `assignment_id, officer_id, location_id, stream_id, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanAssignment(row pgx.Row) (models.OfficerAssignment, error) {
	var m models.OfficerAssignment
	err := row.Scan(
		&m.AssignmentID,
		&m.OfficerID,
		&m.LocationID,
		&m.StreamID,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxAssignmentRepository) SaveAssignment(ctx context.Context, assignment domain.OfficerAssignment) error {
	m := mapping.ToModelOfficerAssignment(assignment)
	query := `
		INSERT INTO officer_assignments (assignment_id, officer_id, location_id, stream_id, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AssignmentID,
		m.OfficerID,
		m.LocationID,
		m.StreamID,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save assignment: %w", err)
	}
	return nil
}

func (r *PgxAssignmentRepository) DeactivateAssignment(ctx context.Context, assignmentID, updatedBy string) error {
	query := `
		UPDATE officer_assignments
		SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE assignment_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, assignmentID, time.Now(), updatedBy)
	if err != nil {
		return fmt.Errorf("failed to deactivate assignment %s: %w", assignmentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxAssignmentRepository) ListAssignmentsByOfficer(ctx context.Context, officerID string, activeOnly bool) ([]domain.OfficerAssignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM officer_assignments WHERE officer_id = $1`
	if activeOnly {
		query += ` AND is_active`
	}
	query += `;`

	rows, err := r.Pool.Query(ctx, query, officerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments for officer %s: %w", officerID, err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.OfficerAssignment, error) {
		return scanAssignment(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan assignments for officer %s: %w", officerID, err)
	}
	return mapping.ToDomainOfficerAssignmentSlice(ms), nil
}

func (r *PgxAssignmentRepository) ListAssignmentsByLocation(ctx context.Context, locationID string) ([]domain.OfficerAssignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM officer_assignments WHERE location_id = $1;`

	rows, err := r.Pool.Query(ctx, query, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments for location %s: %w", locationID, err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.OfficerAssignment, error) {
		return scanAssignment(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan assignments for location %s: %w", locationID, err)
	}
	return mapping.ToDomainOfficerAssignmentSlice(ms), nil
}

// FindActiveAssignment returns an active posting that covers the stream
// at the location, treating a NULL stream_id as covering every stream.
func (r *PgxAssignmentRepository) FindActiveAssignment(ctx context.Context, officerID, locationID, streamID string) (*domain.OfficerAssignment, error) {
	query := `
		SELECT ` + assignmentColumns + `
		FROM officer_assignments
		WHERE officer_id = $1 AND location_id = $2 AND is_active
		  AND (stream_id IS NULL OR stream_id = $3)
		ORDER BY stream_id NULLS LAST
		LIMIT 1;
	`
	m, err := scanAssignment(r.Pool.QueryRow(ctx, query, officerID, locationID, streamID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find active assignment: %w", err)
	}
	d := mapping.ToDomainOfficerAssignment(m)
	return &d, nil
}
