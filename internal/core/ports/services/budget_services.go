package services

import (
	"context"

	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/domain"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/dto"
)

// BudgetSvcFacade defines operations for managing budget targets.
type BudgetSvcFacade interface {
	// UpsertBudget sets or replaces the target for a stream and year.
	// Re-posting the same stream/year overwrites the earlier figures.
	UpsertBudget(ctx context.Context, req dto.UpsertBudgetRequest, requestingUserID string) (*domain.BudgetTarget, error)

	// GetBudget retrieves the target for a stream and year.
	GetBudget(ctx context.Context, streamID string, year int) (*domain.BudgetTarget, error)

	// ListBudgetsForYear retrieves every target entered for a year.
	ListBudgetsForYear(ctx context.Context, year int) ([]domain.BudgetTarget, error)
}
