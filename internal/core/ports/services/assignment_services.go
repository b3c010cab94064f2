package services

import (
	"context"

	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/domain"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/dto"
)

// AssignmentSvcFacade defines operations for posting officers to locations.
type AssignmentSvcFacade interface {
	// CreateAssignment posts an officer to a location, optionally
	// narrowed to one stream.
	CreateAssignment(ctx context.Context, req dto.CreateAssignmentRequest, creatorUserID string) (*domain.OfficerAssignment, error)

	// DeactivateAssignment retires an assignment without deleting it.
	DeactivateAssignment(ctx context.Context, assignmentID, requestingUserID string) error

	// ListAssignmentsByOfficer retrieves an officer's assignments.
	ListAssignmentsByOfficer(ctx context.Context, officerID string, activeOnly bool) ([]domain.OfficerAssignment, error)

	// ListAssignmentsByLocation retrieves the assignments at a location.
	ListAssignmentsByLocation(ctx context.Context, locationID string) ([]domain.OfficerAssignment, error)
}
