package services

import (
	"context"
	"time"

	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/domain"
)

// DashboardSvcFacade defines operations backing the admin landing page.
type DashboardSvcFacade interface {
	// Counts returns the active reference-data counts plus the sum
	// collected in the given month.
	Counts(ctx context.Context, period time.Time) (*domain.DashboardCounts, error)
}
