package dto

import (
	"time"

	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AnnualMatrixParams defines query parameters for the annual matrix report.
type AnnualMatrixParams struct {
	Year int `form:"year" binding:"required,min=2000,max=2100"`
}

// ExportParams defines query parameters for report file exports.
type ExportParams struct {
	Year   int    `form:"year" binding:"required,min=2000,max=2100"`
	Format string `form:"format" binding:"required,oneof=csv xlsx pdf"`
	View   string `form:"view,default=both" binding:"omitempty,oneof=collected budget both"`
}

// MonthlyExportParams defines query parameters for exporting the
// per-location monthly report as a file.
type MonthlyExportParams struct {
	LocationID string `form:"locationID" binding:"required"`
	Period     string `form:"period" binding:"required,yearmonth"`
	Format     string `form:"format" binding:"required,oneof=csv xlsx pdf"`
}

// MonthlyReportParams defines query parameters for the per-location
// monthly report. Period uses the YYYY-MM form.
type MonthlyReportParams struct {
	LocationID string `form:"locationID" binding:"required"`
	Period     string `form:"period" binding:"required,yearmonth"`
}

// MatrixRowResponse is one (location, stream) row of the annual report.
type MatrixRowResponse struct {
	LocationID     string              `json:"locationID"`
	LocationName   string              `json:"locationName"`
	StreamID       string              `json:"streamID"`
	StreamName     string              `json:"streamName"`
	Collected      [12]decimal.Decimal `json:"collected"`
	Budget         [12]decimal.Decimal `json:"budget"`
	CollectedTotal decimal.Decimal     `json:"collectedTotal"`
	BudgetTotal    decimal.Decimal     `json:"budgetTotal"`
}

// AnnualMatrixResponse represents the annual budget-versus-collection report.
// Sequence increases with every rebuild so clients can discard stale
// payloads. Warning is set when the report was degraded by a partial
// data-source failure.
type AnnualMatrixResponse struct {
	Year     int                 `json:"year"`
	Sequence uint64              `json:"sequence"`
	Warning  string              `json:"warning,omitempty"`
	Rows     []MatrixRowResponse `json:"rows"`
	Totals   struct {
		Collected decimal.Decimal `json:"collected"`
		Budget    decimal.Decimal `json:"budget"`
	} `json:"totals"`
}

// RollupRowResponse is one (location, stream) row of a single-month report.
type RollupRowResponse struct {
	LocationID    string          `json:"locationID"`
	LocationName  string          `json:"locationName"`
	StreamID      string          `json:"streamID"`
	StreamName    string          `json:"streamName"`
	Collected     decimal.Decimal `json:"collected"`
	AnnualBudget  decimal.Decimal `json:"annualBudget"`
	MonthlyTarget decimal.Decimal `json:"monthlyTarget"`
	CodesCount    int             `json:"codesCount"`
}

// CodeRollupRowResponse is one per-code line of a monthly location report.
type CodeRollupRowResponse struct {
	StreamName string          `json:"streamName"`
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	Collected  decimal.Decimal `json:"collected"`
}

// MonthlyLocationReportResponse represents the single-location monthly report.
type MonthlyLocationReportResponse struct {
	LocationID   string                  `json:"locationID"`
	LocationName string                  `json:"locationName"`
	Period       string                  `json:"period"`
	Sequence     uint64                  `json:"sequence"`
	Warning      string                  `json:"warning,omitempty"`
	Rows         []RollupRowResponse     `json:"rows"`
	Codes        []CodeRollupRowResponse `json:"codes"`
	Total        decimal.Decimal         `json:"total"`
	Officers     int                     `json:"officers"`
}

// ToAnnualMatrixResponse converts aggregated matrix rows to the API response.
func ToAnnualMatrixResponse(rows []domain.MatrixRow, year int, sequence uint64, warning string) AnnualMatrixResponse {
	response := AnnualMatrixResponse{
		Year:     year,
		Sequence: sequence,
		Warning:  warning,
		Rows:     make([]MatrixRowResponse, len(rows)),
	}

	totalCollected := decimal.Zero
	totalBudget := decimal.Zero
	for i, row := range rows {
		response.Rows[i] = MatrixRowResponse{
			LocationID:     row.LocationID,
			LocationName:   row.LocationName,
			StreamID:       row.StreamID,
			StreamName:     row.StreamName,
			Collected:      row.Collected,
			Budget:         row.Budget,
			CollectedTotal: row.CollectedTotal,
			BudgetTotal:    row.BudgetTotal,
		}
		totalCollected = totalCollected.Add(row.CollectedTotal)
		totalBudget = totalBudget.Add(row.BudgetTotal)
	}

	response.Totals.Collected = totalCollected
	response.Totals.Budget = totalBudget
	return response
}

// ToMonthlyLocationReportResponse converts monthly rollup rows to the API response.
func ToMonthlyLocationReportResponse(location *domain.Location, period time.Time, rows []domain.RollupRow, codes []domain.CodeRollupRow, total decimal.Decimal, sequence uint64, warning string, officers int) MonthlyLocationReportResponse {
	response := MonthlyLocationReportResponse{
		LocationID:   location.LocationID,
		LocationName: location.Name,
		Period:       period.Format("2006-01"),
		Sequence:     sequence,
		Warning:      warning,
		Rows:         make([]RollupRowResponse, len(rows)),
		Codes:        make([]CodeRollupRowResponse, len(codes)),
		Total:        total,
		Officers:     officers,
	}

	for i, row := range rows {
		response.Rows[i] = RollupRowResponse{
			LocationID:    row.LocationID,
			LocationName:  row.LocationName,
			StreamID:      row.StreamID,
			StreamName:    row.StreamName,
			Collected:     row.Collected,
			AnnualBudget:  row.AnnualBudget,
			MonthlyTarget: row.MonthlyTarget,
			CodesCount:    row.CodesCount,
		}
	}
	for i, row := range codes {
		response.Codes[i] = CodeRollupRowResponse{
			StreamName: row.StreamName,
			Code:       row.Code,
			Name:       row.Name,
			Collected:  row.Collected,
		}
	}
	return response
}
