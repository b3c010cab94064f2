package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	portsrepo "github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/ports/repositories"
)

type PgxDashboardRepository struct {
	BaseRepository
}

func newPgxDashboardRepository(db *pgxpool.Pool) portsrepo.DashboardRepository {
	return &PgxDashboardRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.DashboardRepository = (*PgxDashboardRepository)(nil)

func (r *PgxDashboardRepository) countRows(ctx context.Context, query string) (int, error) {
	var count int
	if err := r.Pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PgxDashboardRepository) CountActiveLocations(ctx context.Context) (int, error) {
	count, err := r.countRows(ctx, `SELECT COUNT(*) FROM locations WHERE is_active;`)
	if err != nil {
		return 0, fmt.Errorf("failed to count locations: %w", err)
	}
	return count, nil
}

func (r *PgxDashboardRepository) CountActiveStreams(ctx context.Context) (int, error) {
	count, err := r.countRows(ctx, `SELECT COUNT(*) FROM revenue_streams WHERE is_active;`)
	if err != nil {
		return 0, fmt.Errorf("failed to count streams: %w", err)
	}
	return count, nil
}

func (r *PgxDashboardRepository) CountActiveCodes(ctx context.Context) (int, error) {
	count, err := r.countRows(ctx, `SELECT COUNT(*) FROM revenue_codes WHERE is_active;`)
	if err != nil {
		return 0, fmt.Errorf("failed to count revenue codes: %w", err)
	}
	return count, nil
}

func (r *PgxDashboardRepository) CountActiveOfficers(ctx context.Context) (int, error) {
	count, err := r.countRows(ctx, `SELECT COUNT(*) FROM users WHERE role = 'officer' AND is_active;`)
	if err != nil {
		return 0, fmt.Errorf("failed to count officers: %w", err)
	}
	return count, nil
}

func (r *PgxDashboardRepository) SumCollectedForPeriod(ctx context.Context, period time.Time) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM collection_events WHERE period = $1;`
	var sum decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, period).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum collections for period: %w", err)
	}
	return sum, nil
}
