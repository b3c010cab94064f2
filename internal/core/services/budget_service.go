package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/apperrors"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/domain"
	portsrepo "github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/ports/repositories"
	portssvc "github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/ports/services"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/dto"
)

// budgetService implements the BudgetSvcFacade interface
type budgetService struct {
	BaseService
	budgetRepo portsrepo.BudgetRepository
	streamRepo portsrepo.StreamRepository
}

// NewBudgetService creates a new budget target service
func NewBudgetService(budgetRepo portsrepo.BudgetRepository, streamRepo portsrepo.StreamRepository) portssvc.BudgetSvcFacade {
	return &budgetService{budgetRepo: budgetRepo, streamRepo: streamRepo}
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

// UpsertBudget sets or replaces the target for a stream and year. The
// annual and monthly figures are stored as entered; neither is derived
// from the other.
func (s *budgetService) UpsertBudget(ctx context.Context, req dto.UpsertBudgetRequest, requestingUserID string) (*domain.BudgetTarget, error) {
	if req.AnnualAmount.IsNegative() || req.MonthlyTarget.IsNegative() {
		return nil, fmt.Errorf("budget figures must not be negative: %w", apperrors.ErrValidation)
	}

	if _, err := s.streamRepo.FindStreamByID(ctx, req.StreamID); err != nil {
		return nil, fmt.Errorf("failed to find stream %s for budget: %w", req.StreamID, err)
	}

	now := time.Now()
	budget := domain.BudgetTarget{
		BudgetID:      uuid.NewString(),
		StreamID:      req.StreamID,
		Year:          req.Year,
		AnnualAmount:  req.AnnualAmount,
		MonthlyTarget: req.MonthlyTarget,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	saved, err := s.budgetRepo.UpsertBudget(ctx, budget)
	if err != nil {
		s.LogError(ctx, err, "Failed to upsert budget", slog.String("stream_id", req.StreamID), slog.Int("year", req.Year))
		return nil, fmt.Errorf("failed to upsert budget: %w", err)
	}

	s.LogInfo(ctx, "Budget target saved", slog.String("stream_id", req.StreamID), slog.Int("year", req.Year))
	return saved, nil
}

// GetBudget retrieves the target for a stream and year.
func (s *budgetService) GetBudget(ctx context.Context, streamID string, year int) (*domain.BudgetTarget, error) {
	budget, err := s.budgetRepo.FindBudget(ctx, streamID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to get budget for stream %s year %d: %w", streamID, year, err)
	}
	return budget, nil
}

// ListBudgetsForYear retrieves every target entered for a year.
func (s *budgetService) ListBudgetsForYear(ctx context.Context, year int) ([]domain.BudgetTarget, error) {
	budgets, err := s.budgetRepo.ListBudgetsForYear(ctx, year)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budgets", slog.Int("year", year))
		return nil, fmt.Errorf("failed to list budgets for %d: %w", year, err)
	}
	if budgets == nil {
		budgets = []domain.BudgetTarget{}
	}
	return budgets, nil
}
