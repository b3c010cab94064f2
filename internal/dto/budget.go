package dto

import (
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpsertBudgetRequest sets or replaces the budget target for a stream
// and year. Annual and monthly figures are entered independently.
type UpsertBudgetRequest struct {
	StreamID      string          `json:"streamID" binding:"required"`
	Year          int             `json:"year" binding:"required,min=2000,max=2100"`
	AnnualAmount  decimal.Decimal `json:"annualAmount" binding:"required"`
	MonthlyTarget decimal.Decimal `json:"monthlyTarget" binding:"required"`
}

// ListBudgetsParams defines query parameters for listing budget targets.
type ListBudgetsParams struct {
	Year int `form:"year" binding:"required,min=2000,max=2100"`
}

// BudgetResponse is the API representation of a budget target.
type BudgetResponse struct {
	BudgetID      string          `json:"budgetID"`
	StreamID      string          `json:"streamID"`
	Year          int             `json:"year"`
	AnnualAmount  decimal.Decimal `json:"annualAmount"`
	MonthlyTarget decimal.Decimal `json:"monthlyTarget"`
}

// ListBudgetsResponse wraps the list of budget targets for a year.
type ListBudgetsResponse struct {
	Year    int              `json:"year"`
	Budgets []BudgetResponse `json:"budgets"`
}

// ToBudgetResponse converts a domain.BudgetTarget to its API representation.
func ToBudgetResponse(budget *domain.BudgetTarget) BudgetResponse {
	return BudgetResponse{
		BudgetID:      budget.BudgetID,
		StreamID:      budget.StreamID,
		Year:          budget.Year,
		AnnualAmount:  budget.AnnualAmount,
		MonthlyTarget: budget.MonthlyTarget,
	}
}

// ToListBudgetsResponse converts a slice of domain.BudgetTarget to ListBudgetsResponse.
func ToListBudgetsResponse(budgets []domain.BudgetTarget, year int) ListBudgetsResponse {
	out := make([]BudgetResponse, len(budgets))
	for i := range budgets {
		out[i] = ToBudgetResponse(&budgets[i])
	}
	return ListBudgetsResponse{Year: year, Budgets: out}
}
