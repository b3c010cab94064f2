package services

import (
	"context"
	"errors"
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

// collectionService implements the CollectionSvcFacade interface
type collectionService struct {
	BaseService
	collectionRepo portsrepo.CollectionRepository
	assignmentRepo portsrepo.AssignmentRepository
	streamRepo     portsrepo.StreamRepository
	locationRepo   portsrepo.LocationRepository
}

// NewCollectionService creates a new collection entry service
func NewCollectionService(
	collectionRepo portsrepo.CollectionRepository,
	assignmentRepo portsrepo.AssignmentRepository,
	streamRepo portsrepo.StreamRepository,
	locationRepo portsrepo.LocationRepository,
) portssvc.CollectionSvcFacade {
	return &collectionService{
		collectionRepo: collectionRepo,
		assignmentRepo: assignmentRepo,
		streamRepo:     streamRepo,
		locationRepo:   locationRepo,
	}
}

var _ portssvc.CollectionSvcFacade = (*collectionService)(nil)

// RecordCollections upserts a month of figures for one location on behalf
// of the submitting officer. Every entry is checked against the officer's
// active assignments before anything is written, and the batch lands in
// one transaction, so a bad entry rejects the whole submission.
func (s *collectionService) RecordCollections(ctx context.Context, officerID string, req dto.RecordCollectionsRequest) ([]domain.CollectionEvent, error) {
	period, err := time.Parse("2006-01", req.Period)
	if err != nil {
		return nil, fmt.Errorf("period must use the YYYY-MM form: %w", apperrors.ErrValidation)
	}

	location, err := s.locationRepo.FindLocationByID(ctx, req.LocationID)
	if err != nil {
		return nil, fmt.Errorf("failed to find location %s: %w", req.LocationID, err)
	}
	if !location.IsActive {
		return nil, fmt.Errorf("location %s is inactive: %w", req.LocationID, apperrors.ErrValidation)
	}

	// Resolve each code and verify the officer's posting first.
	events := make([]domain.CollectionEvent, 0, len(req.Entries))
	now := time.Now()
	for _, entry := range req.Entries {
		if entry.Amount.IsNegative() {
			return nil, fmt.Errorf("amount for code %s must not be negative: %w", entry.CodeID, apperrors.ErrValidation)
		}

		code, err := s.streamRepo.FindCodeByID(ctx, entry.CodeID)
		if err != nil {
			return nil, fmt.Errorf("failed to find revenue code %s: %w", entry.CodeID, err)
		}
		if !code.IsActive {
			return nil, fmt.Errorf("revenue code %s is inactive: %w", entry.CodeID, apperrors.ErrValidation)
		}

		if _, err := s.assignmentRepo.FindActiveAssignment(ctx, officerID, req.LocationID, code.StreamID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				s.LogWarn(ctx, "Officer not posted for stream at location",
					slog.String("officer_id", officerID),
					slog.String("location_id", req.LocationID),
					slog.String("stream_id", code.StreamID))
				return nil, fmt.Errorf("officer is not posted to this location and stream: %w", apperrors.ErrForbidden)
			}
			return nil, fmt.Errorf("failed to check officer assignment: %w", err)
		}

		events = append(events, domain.CollectionEvent{
			CollectionID: uuid.NewString(),
			OfficerID:    officerID,
			LocationID:   req.LocationID,
			CodeID:       entry.CodeID,
			Period:       period,
			Amount:       entry.Amount,
			SubmittedAt:  now,
		})
	}

	saved, err := s.collectionRepo.UpsertCollections(ctx, events)
	if err != nil {
		s.LogError(ctx, err, "Failed to upsert collection batch",
			slog.String("location_id", req.LocationID),
			slog.String("period", req.Period))
		return nil, fmt.Errorf("failed to record collections for %s: %w", req.Period, err)
	}

	s.LogInfo(ctx, "Monthly collections recorded",
		slog.String("officer_id", officerID),
		slog.String("location_id", req.LocationID),
		slog.String("period", req.Period),
		slog.Int("entries", len(saved)))
	return saved, nil
}

// ListOfficerCollections retrieves an officer's own submissions for a
// location and year, optionally narrowed to one stream.
func (s *collectionService) ListOfficerCollections(ctx context.Context, officerID string, params dto.ListOfficerCollectionsParams) ([]domain.CollectionEvent, error) {
	events, err := s.collectionRepo.ListOfficerCollections(ctx, officerID, params.LocationID, params.StreamID, params.Year)
	if err != nil {
		s.LogError(ctx, err, "Failed to list officer collections", slog.String("officer_id", officerID))
		return nil, fmt.Errorf("failed to list officer collections: %w", err)
	}
	if events == nil {
		events = []domain.CollectionEvent{}
	}
	return events, nil
}
