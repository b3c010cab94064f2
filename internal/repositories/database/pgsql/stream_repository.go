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

type PgxStreamRepository struct {
	BaseRepository
}

func newPgxStreamRepository(db *pgxpool.Pool) portsrepo.StreamRepository {
	return &PgxStreamRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.StreamRepository = (*PgxStreamRepository)(nil)

const streamColumns = `stream_id, name, is_active, created_at, created_by, last_updated_at, last_updated_by`
const codeColumns = `code_id, stream_id, code, name, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanStream(row pgx.Row) (models.RevenueStream, error) {
	var m models.RevenueStream
	err := row.Scan(
		&m.StreamID,
		&m.Name,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func scanCode(row pgx.Row) (models.RevenueCode, error) {
	var m models.RevenueCode
	err := row.Scan(
		&m.CodeID,
		&m.StreamID,
		&m.Code,
		&m.Name,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxStreamRepository) SaveStream(ctx context.Context, stream domain.RevenueStream) error {
	m := mapping.ToModelRevenueStream(stream)
	query := `
		INSERT INTO revenue_streams (stream_id, name, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.StreamID,
		m.Name,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("stream %q already exists: %w", stream.Name, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save stream: %w", err)
	}
	return nil
}

func (r *PgxStreamRepository) FindStreamByID(ctx context.Context, streamID string) (*domain.RevenueStream, error) {
	query := `SELECT ` + streamColumns + ` FROM revenue_streams WHERE stream_id = $1;`
	m, err := scanStream(r.Pool.QueryRow(ctx, query, streamID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find stream %s: %w", streamID, err)
	}
	d := mapping.ToDomainRevenueStream(m)
	return &d, nil
}

func (r *PgxStreamRepository) ListStreams(ctx context.Context, activeOnly bool) ([]domain.RevenueStream, error) {
	query := `SELECT ` + streamColumns + ` FROM revenue_streams`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query streams: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.RevenueStream, error) {
		return scanStream(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan streams: %w", err)
	}
	return mapping.ToDomainRevenueStreamSlice(ms), nil
}

func (r *PgxStreamRepository) UpdateStream(ctx context.Context, stream domain.RevenueStream) error {
	m := mapping.ToModelRevenueStream(stream)
	query := `
		UPDATE revenue_streams
		SET name = $2, is_active = $3, last_updated_at = $4, last_updated_by = $5
		WHERE stream_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.StreamID,
		m.Name,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update stream %s: %w", stream.StreamID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxStreamRepository) SaveCode(ctx context.Context, code domain.RevenueCode) error {
	m := mapping.ToModelRevenueCode(code)
	query := `
		INSERT INTO revenue_codes (code_id, stream_id, code, name, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CodeID,
		m.StreamID,
		m.Code,
		m.Name,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("code %q already exists under stream %s: %w", code.Code, code.StreamID, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save revenue code: %w", err)
	}
	return nil
}

func (r *PgxStreamRepository) FindCodeByID(ctx context.Context, codeID string) (*domain.RevenueCode, error) {
	query := `SELECT ` + codeColumns + ` FROM revenue_codes WHERE code_id = $1;`
	m, err := scanCode(r.Pool.QueryRow(ctx, query, codeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find revenue code %s: %w", codeID, err)
	}
	d := mapping.ToDomainRevenueCode(m)
	return &d, nil
}

func (r *PgxStreamRepository) ListCodes(ctx context.Context, activeOnly bool) ([]domain.RevenueCode, error) {
	query := `SELECT ` + codeColumns + ` FROM revenue_codes`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY code;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query revenue codes: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.RevenueCode, error) {
		return scanCode(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan revenue codes: %w", err)
	}
	return mapping.ToDomainRevenueCodeSlice(ms), nil
}

func (r *PgxStreamRepository) ListCodesByStream(ctx context.Context, streamID string) ([]domain.RevenueCode, error) {
	query := `SELECT ` + codeColumns + ` FROM revenue_codes WHERE stream_id = $1 ORDER BY code;`

	rows, err := r.Pool.Query(ctx, query, streamID)
	if err != nil {
		return nil, fmt.Errorf("failed to query codes for stream %s: %w", streamID, err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.RevenueCode, error) {
		return scanCode(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan codes for stream %s: %w", streamID, err)
	}
	return mapping.ToDomainRevenueCodeSlice(ms), nil
}

func (r *PgxStreamRepository) UpdateCode(ctx context.Context, code domain.RevenueCode) error {
	m := mapping.ToModelRevenueCode(code)
	query := `
		UPDATE revenue_codes
		SET name = $2, is_active = $3, last_updated_at = $4, last_updated_by = $5
		WHERE code_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.CodeID,
		m.Name,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update revenue code %s: %w", code.CodeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
