package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MatrixRow is one aggregated (location, stream) output row of an annual
// report, with twelve month buckets for collected amounts and budget
// targets. BudgetTotal carries the independently entered annual figure,
// not the sum of the monthly buckets.
type MatrixRow struct {
	LocationID     string              `json:"locationID"`
	LocationName   string              `json:"locationName"`
	StreamID       string              `json:"streamID"`
	StreamName     string              `json:"streamName"`
	Collected      [12]decimal.Decimal `json:"collected"`
	Budget         [12]decimal.Decimal `json:"budget"`
	CollectedTotal decimal.Decimal     `json:"collectedTotal"`
	BudgetTotal    decimal.Decimal     `json:"budgetTotal"`
}

// RollupRow is the single-month counterpart of MatrixRow: one scalar
// collected total per (location, stream) pair for the month in scope.
type RollupRow struct {
	LocationID    string          `json:"locationID"`
	LocationName  string          `json:"locationName"`
	StreamID      string          `json:"streamID"`
	StreamName    string          `json:"streamName"`
	Collected     decimal.Decimal `json:"collected"`
	AnnualBudget  decimal.Decimal `json:"annualBudget"`
	MonthlyTarget decimal.Decimal `json:"monthlyTarget"`
	CodesCount    int             `json:"codesCount"`
}

// CodeRollupRow is the per-code breakdown of a monthly location report.
type CodeRollupRow struct {
	StreamName string          `json:"streamName"`
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	Collected  decimal.Decimal `json:"collected"`
}

// AnnualReport is the assembled annual matrix together with its build
// sequence. Warning is non-empty when a partial data-source failure
// degraded the report to zero budgets or zero collections.
type AnnualReport struct {
	Year     int
	Sequence uint64
	Warning  string
	Rows     []MatrixRow
}

// MonthlyLocationReport is the assembled single-month report for one
// location, with both the per-stream rollup and the per-code breakdown.
type MonthlyLocationReport struct {
	Location Location
	Period   time.Time
	Sequence uint64
	Warning  string
	Rows     []RollupRow
	Codes    []CodeRollupRow
	Total    decimal.Decimal
	Officers int
}

// DashboardCounts backs the admin landing-page tiles.
type DashboardCounts struct {
	Locations      int             `json:"locations"`
	Streams        int             `json:"streams"`
	Codes          int             `json:"codes"`
	Officers       int             `json:"officers"`
	MonthCollected decimal.Decimal `json:"monthCollected"`
}
