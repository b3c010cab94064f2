package services

import (
	"context"
	"fmt"
	"time"

	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/domain"
	portsrepo "github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/ports/repositories"
	portssvc "github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/ports/services"
)

// dashboardService implements the DashboardSvcFacade interface
type dashboardService struct {
	BaseService
	dashboardRepo portsrepo.DashboardRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(dashboardRepo portsrepo.DashboardRepository) portssvc.DashboardSvcFacade {
	return &dashboardService{dashboardRepo: dashboardRepo}
}

var _ portssvc.DashboardSvcFacade = (*dashboardService)(nil)

// Counts returns the active reference-data counts plus the sum collected
// in the given month.
func (s *dashboardService) Counts(ctx context.Context, period time.Time) (*domain.DashboardCounts, error) {
	locations, err := s.dashboardRepo.CountActiveLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count locations: %w", err)
	}
	streams, err := s.dashboardRepo.CountActiveStreams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count streams: %w", err)
	}
	codes, err := s.dashboardRepo.CountActiveCodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count revenue codes: %w", err)
	}
	officers, err := s.dashboardRepo.CountActiveOfficers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count officers: %w", err)
	}
	collected, err := s.dashboardRepo.SumCollectedForPeriod(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("failed to sum month collections: %w", err)
	}

	return &domain.DashboardCounts{
		Locations:      locations,
		Streams:        streams,
		Codes:          codes,
		Officers:       officers,
		MonthCollected: collected,
	}, nil
}
