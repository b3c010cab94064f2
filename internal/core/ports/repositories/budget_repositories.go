package repositories

import (
	"context"

	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/domain"
)

// BudgetRepository defines operations for annual budget targets.
type BudgetRepository interface {
	// UpsertBudget inserts or replaces the target for (stream, year) using
	// the database-level uniqueness constraint, and returns the saved row.
	UpsertBudget(ctx context.Context, budget domain.BudgetTarget) (*domain.BudgetTarget, error)

	// FindBudget retrieves the target for (stream, year).
	FindBudget(ctx context.Context, streamID string, year int) (*domain.BudgetTarget, error)

	// ListBudgetsForYear retrieves every stream's target for one year.
	ListBudgetsForYear(ctx context.Context, year int) ([]domain.BudgetTarget, error)
}
