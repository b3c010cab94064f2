package models

import "github.com/shopspring/decimal"

// BudgetTarget represents a budget target row. One row exists per
// (stream, year); replacements go through an upsert.
type BudgetTarget struct {
	BudgetID      string          `db:"budget_id"`
	StreamID      string          `db:"stream_id"`
	Year          int             `db:"year"`
	AnnualAmount  decimal.Decimal `db:"annual_amount"`
	MonthlyTarget decimal.Decimal `db:"monthly_target"`
	AuditFields
}
