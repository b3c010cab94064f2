package domain

import "github.com/shopspring/decimal"

// BudgetTarget is the administrator-set annual and monthly goal for a
// stream in a given year. At most one exists per (stream, year); the
// database enforces the uniqueness.
//
// AnnualAmount and MonthlyTarget are entered independently and need not
// agree (annual != monthly*12 is allowed).
type BudgetTarget struct {
	BudgetID      string          `json:"budgetID"`
	StreamID      string          `json:"streamID"`
	Year          int             `json:"year"`
	AnnualAmount  decimal.Decimal `json:"annualAmount"`
	MonthlyTarget decimal.Decimal `json:"monthlyTarget"`
	AuditFields
}
