package dto

import (
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/domain"
)

// CreateAssignmentRequest posts an officer to a location. A missing
// streamID covers every stream at that location.
type CreateAssignmentRequest struct {
	OfficerID  string  `json:"officerID" binding:"required"`
	LocationID string  `json:"locationID" binding:"required"`
	StreamID   *string `json:"streamID"`
}

// AssignmentResponse is the API representation of an officer assignment.
type AssignmentResponse struct {
	AssignmentID string  `json:"assignmentID"`
	OfficerID    string  `json:"officerID"`
	LocationID   string  `json:"locationID"`
	StreamID     *string `json:"streamID,omitempty"`
	IsActive     bool    `json:"isActive"`
}

// ListAssignmentsResponse wraps a list of assignments.
type ListAssignmentsResponse struct {
	Assignments []AssignmentResponse `json:"assignments"`
}

// ToAssignmentResponse converts a domain.OfficerAssignment to its API representation.
func ToAssignmentResponse(a *domain.OfficerAssignment) AssignmentResponse {
	return AssignmentResponse{
		AssignmentID: a.AssignmentID,
		OfficerID:    a.OfficerID,
		LocationID:   a.LocationID,
		StreamID:     a.StreamID,
		IsActive:     a.IsActive,
	}
}

// ToListAssignmentsResponse converts a slice of domain.OfficerAssignment to ListAssignmentsResponse.
func ToListAssignmentsResponse(assignments []domain.OfficerAssignment) ListAssignmentsResponse {
	out := make([]AssignmentResponse, len(assignments))
	for i := range assignments {
		out[i] = ToAssignmentResponse(&assignments[i])
	}
	return ListAssignmentsResponse{Assignments: out}
}
