package services

import (
	"context"
	"time"

	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/domain"
)

// ReportScope narrows a report to what the requesting user may see.
// Admins and MDA users get the full matrix; officers are limited to the
// locations and streams of their active assignments.
type ReportScope struct {
	UserID string
	Role   domain.Role
}

// ReportingSvcFacade defines operations for building the aggregated
// budget-versus-collection reports.
type ReportingSvcFacade interface {
	// AnnualMatrix builds the year's location-by-stream report.
	AnnualMatrix(ctx context.Context, year int, scope ReportScope) (*domain.AnnualReport, error)

	// MonthlyLocationReport builds the single-month report for one
	// location, with the per-code breakdown.
	MonthlyLocationReport(ctx context.Context, locationID string, period time.Time, scope ReportScope) (*domain.MonthlyLocationReport, error)
}
