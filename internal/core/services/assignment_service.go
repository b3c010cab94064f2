package services

import (
	"context"
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

// assignmentService implements the AssignmentSvcFacade interface
type assignmentService struct {
	BaseService
	assignmentRepo portsrepo.AssignmentRepository
	userRepo       portsrepo.UserRepository
	locationRepo   portsrepo.LocationRepository
	streamRepo     portsrepo.StreamRepository
}

// NewAssignmentService creates a new officer assignment service
func NewAssignmentService(
	assignmentRepo portsrepo.AssignmentRepository,
	userRepo portsrepo.UserRepository,
	locationRepo portsrepo.LocationRepository,
	streamRepo portsrepo.StreamRepository,
) portssvc.AssignmentSvcFacade {
	return &assignmentService{
		assignmentRepo: assignmentRepo,
		userRepo:       userRepo,
		locationRepo:   locationRepo,
		streamRepo:     streamRepo,
	}
}

var _ portssvc.AssignmentSvcFacade = (*assignmentService)(nil)

// CreateAssignment posts an officer to a location, optionally narrowed to
// one stream. The user must hold the officer role.
func (s *assignmentService) CreateAssignment(ctx context.Context, req dto.CreateAssignmentRequest, creatorUserID string) (*domain.OfficerAssignment, error) {
	officer, err := s.userRepo.FindUserByID(ctx, req.OfficerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find officer %s: %w", req.OfficerID, err)
	}
	if officer.Role != domain.RoleOfficer {
		return nil, fmt.Errorf("user %s is not an officer: %w", req.OfficerID, apperrors.ErrValidation)
	}

	if _, err := s.locationRepo.FindLocationByID(ctx, req.LocationID); err != nil {
		return nil, fmt.Errorf("failed to find location %s: %w", req.LocationID, err)
	}

	if req.StreamID != nil {
		if _, err := s.streamRepo.FindStreamByID(ctx, *req.StreamID); err != nil {
			return nil, fmt.Errorf("failed to find stream %s: %w", *req.StreamID, err)
		}
	}

	now := time.Now()
	assignment := domain.OfficerAssignment{
		AssignmentID: uuid.NewString(),
		OfficerID:    req.OfficerID,
		LocationID:   req.LocationID,
		StreamID:     req.StreamID,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.assignmentRepo.SaveAssignment(ctx, assignment); err != nil {
		s.LogError(ctx, err, "Failed to create assignment",
			slog.String("officer_id", req.OfficerID),
			slog.String("location_id", req.LocationID))
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	s.LogInfo(ctx, "Officer posted",
		slog.String("assignment_id", assignment.AssignmentID),
		slog.String("officer_id", req.OfficerID),
		slog.String("location_id", req.LocationID))
	return &assignment, nil
}

// DeactivateAssignment retires an assignment without deleting it.
func (s *assignmentService) DeactivateAssignment(ctx context.Context, assignmentID, requestingUserID string) error {
	if err := s.assignmentRepo.DeactivateAssignment(ctx, assignmentID, requestingUserID); err != nil {
		s.LogError(ctx, err, "Failed to deactivate assignment", slog.String("assignment_id", assignmentID))
		return fmt.Errorf("failed to deactivate assignment %s: %w", assignmentID, err)
	}
	s.LogInfo(ctx, "Assignment deactivated", slog.String("assignment_id", assignmentID))
	return nil
}

// ListAssignmentsByOfficer retrieves an officer's assignments.
func (s *assignmentService) ListAssignmentsByOfficer(ctx context.Context, officerID string, activeOnly bool) ([]domain.OfficerAssignment, error) {
	assignments, err := s.assignmentRepo.ListAssignmentsByOfficer(ctx, officerID, activeOnly)
	if err != nil {
		s.LogError(ctx, err, "Failed to list assignments for officer", slog.String("officer_id", officerID))
		return nil, fmt.Errorf("failed to list assignments for officer %s: %w", officerID, err)
	}
	if assignments == nil {
		assignments = []domain.OfficerAssignment{}
	}
	return assignments, nil
}

// ListAssignmentsByLocation retrieves the assignments at a location.
func (s *assignmentService) ListAssignmentsByLocation(ctx context.Context, locationID string) ([]domain.OfficerAssignment, error) {
	assignments, err := s.assignmentRepo.ListAssignmentsByLocation(ctx, locationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list assignments for location", slog.String("location_id", locationID))
		return nil, fmt.Errorf("failed to list assignments for location %s: %w", locationID, err)
	}
	if assignments == nil {
		assignments = []domain.OfficerAssignment{}
	}
	return assignments, nil
}
