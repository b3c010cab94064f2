package repositories

import (
	"context"

	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/domain"
)

// AssignmentRepository defines operations for officer-to-location scoping.
type AssignmentRepository interface {
	// SaveAssignment persists a new assignment.
	SaveAssignment(ctx context.Context, assignment domain.OfficerAssignment) error

	// DeactivateAssignment marks an assignment inactive.
	DeactivateAssignment(ctx context.Context, assignmentID, updatedBy string) error

	// ListAssignmentsByOfficer retrieves an officer's assignments,
	// optionally restricted to active ones.
	ListAssignmentsByOfficer(ctx context.Context, officerID string, activeOnly bool) ([]domain.OfficerAssignment, error)

	// ListAssignmentsByLocation retrieves the active assignments at a
	// location.
	ListAssignmentsByLocation(ctx context.Context, locationID string) ([]domain.OfficerAssignment, error)

	// FindActiveAssignment retrieves an active assignment granting the
	// officer access to (location, stream): either an exact stream match
	// or a whole-location assignment.
	FindActiveAssignment(ctx context.Context, officerID, locationID, streamID string) (*domain.OfficerAssignment, error)
}
