package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/domain"
	portsrepo "github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/ports/repositories"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/models"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/utils/mapping"
)

type PgxCollectionRepository struct {
	BaseRepository
}

func newPgxCollectionRepository(db *pgxpool.Pool) portsrepo.CollectionRepository {
	return &PgxCollectionRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.CollectionRepository = (*PgxCollectionRepository)(nil)

const collectionColumns = `collection_id, officer_id, location_id, code_id, period, amount, submitted_at`

func scanCollection(row pgx.Row) (models.CollectionEvent, error) {
	var m models.CollectionEvent
	err := row.Scan(
		&m.CollectionID,
		&m.OfficerID,
		&m.LocationID,
		&m.CodeID,
		&m.Period,
		&m.Amount,
		&m.SubmittedAt,
	)
	return m, err
}

// UpsertCollections writes the whole batch inside one transaction.
// Each event is inserted or, when the officer already reported that
// code at that location for that month, the amount is replaced. The
// conflict target mirrors the table's unique constraint. A failure on
// any row rolls back every row.
func (r *PgxCollectionRepository) UpsertCollections(ctx context.Context, events []domain.CollectionEvent) ([]domain.CollectionEvent, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `
		INSERT INTO collection_events (collection_id, officer_id, location_id, code_id, period, amount, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (officer_id, location_id, code_id, period) DO UPDATE SET
			amount = EXCLUDED.amount,
			submitted_at = EXCLUDED.submitted_at
		RETURNING ` + collectionColumns + `;
	`
	saved := make([]domain.CollectionEvent, 0, len(events))
	for _, event := range events {
		m := mapping.ToModelCollectionEvent(event)
		row, err := scanCollection(tx.QueryRow(ctx, query,
			m.CollectionID,
			m.OfficerID,
			m.LocationID,
			m.CodeID,
			m.Period,
			m.Amount,
			m.SubmittedAt,
		))
		if err != nil {
			return nil, fmt.Errorf("failed to upsert collection for code %s: %w", event.CodeID, err)
		}
		saved = append(saved, mapping.ToDomainCollectionEvent(row))
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return saved, nil
}

func (r *PgxCollectionRepository) ListCollectionsForYear(ctx context.Context, year int) ([]domain.CollectionEvent, error) {
	query := `
		SELECT ` + collectionColumns + `
		FROM collection_events
		WHERE period >= $1 AND period < $2;
	`
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query collections for %d: %w", year, err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.CollectionEvent, error) {
		return scanCollection(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan collections for %d: %w", year, err)
	}
	return mapping.ToDomainCollectionEventSlice(ms), nil
}

func (r *PgxCollectionRepository) ListCollectionsForLocationMonth(ctx context.Context, locationID string, period time.Time) ([]domain.CollectionEvent, error) {
	query := `
		SELECT ` + collectionColumns + `
		FROM collection_events
		WHERE location_id = $1 AND period = $2;
	`
	rows, err := r.Pool.Query(ctx, query, locationID, period)
	if err != nil {
		return nil, fmt.Errorf("failed to query collections for location %s: %w", locationID, err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.CollectionEvent, error) {
		return scanCollection(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan collections for location %s: %w", locationID, err)
	}
	return mapping.ToDomainCollectionEventSlice(ms), nil
}

func (r *PgxCollectionRepository) ListOfficerCollections(ctx context.Context, officerID, locationID, streamID string, year int) ([]domain.CollectionEvent, error) {
	query := `
		SELECT ce.collection_id, ce.officer_id, ce.location_id, ce.code_id, ce.period, ce.amount, ce.submitted_at
		FROM collection_events ce
		JOIN revenue_codes rc ON rc.code_id = ce.code_id
		WHERE ce.officer_id = $1 AND ce.location_id = $2
		  AND ce.period >= $3 AND ce.period < $4
	`
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)
	args := []any{officerID, locationID, from, to}
	if streamID != "" {
		query += ` AND rc.stream_id = $5`
		args = append(args, streamID)
	}
	query += ` ORDER BY ce.period, rc.code;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query officer collections: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.CollectionEvent, error) {
		return scanCollection(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan officer collections: %w", err)
	}
	return mapping.ToDomainCollectionEventSlice(ms), nil
}
