package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/domain"
	portsrepo "github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/ports/repositories"
	portssvc "github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/ports/services"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/dto"
)

// locationService implements the LocationSvcFacade interface
type locationService struct {
	BaseService
	locationRepo portsrepo.LocationRepository
}

// NewLocationService creates a new location service
func NewLocationService(locationRepo portsrepo.LocationRepository) portssvc.LocationSvcFacade {
	return &locationService{locationRepo: locationRepo}
}

var _ portssvc.LocationSvcFacade = (*locationService)(nil)

// CreateLocation registers a new LGA or MDA.
func (s *locationService) CreateLocation(ctx context.Context, req dto.CreateLocationRequest, creatorUserID string) (*domain.Location, error) {
	now := time.Now()
	location := domain.Location{
		LocationID: uuid.NewString(),
		Name:       req.Name,
		Kind:       domain.LocationKind(req.Kind),
		IsActive:   true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.locationRepo.SaveLocation(ctx, location); err != nil {
		s.LogError(ctx, err, "Failed to create location", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to create location: %w", err)
	}

	s.LogInfo(ctx, "Location created", slog.String("location_id", location.LocationID), slog.String("kind", req.Kind))
	return &location, nil
}

// GetLocationByID retrieves a location by ID.
func (s *locationService) GetLocationByID(ctx context.Context, locationID string) (*domain.Location, error) {
	location, err := s.locationRepo.FindLocationByID(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get location %s: %w", locationID, err)
	}
	return location, nil
}

// ListLocations retrieves locations, optionally active only.
func (s *locationService) ListLocations(ctx context.Context, activeOnly bool) ([]domain.Location, error) {
	locations, err := s.locationRepo.ListLocations(ctx, activeOnly)
	if err != nil {
		s.LogError(ctx, err, "Failed to list locations")
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	if locations == nil {
		locations = []domain.Location{}
	}
	return locations, nil
}

// UpdateLocation updates a location's name or active flag.
func (s *locationService) UpdateLocation(ctx context.Context, locationID string, req dto.UpdateLocationRequest, requestingUserID string) (*domain.Location, error) {
	location, err := s.locationRepo.FindLocationByID(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to find location %s for update: %w", locationID, err)
	}

	if req.Name != nil {
		location.Name = *req.Name
	}
	if req.IsActive != nil {
		location.IsActive = *req.IsActive
	}
	location.LastUpdatedAt = time.Now()
	location.LastUpdatedBy = requestingUserID

	if err := s.locationRepo.UpdateLocation(ctx, *location); err != nil {
		s.LogError(ctx, err, "Failed to update location", slog.String("location_id", locationID))
		return nil, fmt.Errorf("failed to update location %s: %w", locationID, err)
	}

	s.LogInfo(ctx, "Location updated", slog.String("location_id", locationID))
	return location, nil
}
