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

type PgxBudgetRepository struct {
	BaseRepository
}

func newPgxBudgetRepository(db *pgxpool.Pool) portsrepo.BudgetRepository {
	return &PgxBudgetRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.BudgetRepository = (*PgxBudgetRepository)(nil)

const budgetColumns = `budget_id, stream_id, year, annual_amount, monthly_target, created_at, created_by, last_updated_at, last_updated_by`

func scanBudget(row pgx.Row) (models.BudgetTarget, error) {
	var m models.BudgetTarget
	err := row.Scan(
		&m.BudgetID,
		&m.StreamID,
		&m.Year,
		&m.AnnualAmount,
		&m.MonthlyTarget,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// UpsertBudget inserts the target or, when one already exists for the
// stream and year, replaces its figures. The original row's identity and
// created_* audit columns survive a replacement.
func (r *PgxBudgetRepository) UpsertBudget(ctx context.Context, budget domain.BudgetTarget) (*domain.BudgetTarget, error) {
	m := mapping.ToModelBudgetTarget(budget)
	query := `
		INSERT INTO budget_targets (budget_id, stream_id, year, annual_amount, monthly_target, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (stream_id, year) DO UPDATE SET
			annual_amount = EXCLUDED.annual_amount,
			monthly_target = EXCLUDED.monthly_target,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by
		RETURNING ` + budgetColumns + `;
	`
	saved, err := scanBudget(r.Pool.QueryRow(ctx, query,
		m.BudgetID,
		m.StreamID,
		m.Year,
		m.AnnualAmount,
		m.MonthlyTarget,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert budget for stream %s year %d: %w", budget.StreamID, budget.Year, err)
	}
	d := mapping.ToDomainBudgetTarget(saved)
	return &d, nil
}

func (r *PgxBudgetRepository) FindBudget(ctx context.Context, streamID string, year int) (*domain.BudgetTarget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budget_targets WHERE stream_id = $1 AND year = $2;`
	m, err := scanBudget(r.Pool.QueryRow(ctx, query, streamID, year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find budget for stream %s year %d: %w", streamID, year, err)
	}
	d := mapping.ToDomainBudgetTarget(m)
	return &d, nil
}

func (r *PgxBudgetRepository) ListBudgetsForYear(ctx context.Context, year int) ([]domain.BudgetTarget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budget_targets WHERE year = $1;`

	rows, err := r.Pool.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets for %d: %w", year, err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.BudgetTarget, error) {
		return scanBudget(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan budgets for %d: %w", year, err)
	}
	return mapping.ToDomainBudgetTargetSlice(ms), nil
}
