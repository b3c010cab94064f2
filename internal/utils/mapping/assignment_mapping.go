package mapping

import (
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/domain"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/models"
)

// ToModelOfficerAssignment converts a domain OfficerAssignment to a model OfficerAssignment
func ToModelOfficerAssignment(d domain.OfficerAssignment) models.OfficerAssignment {
	return models.OfficerAssignment{
		AssignmentID: d.AssignmentID,
		OfficerID:    d.OfficerID,
		LocationID:   d.LocationID,
		StreamID:     d.StreamID,
		IsActive:     d.IsActive,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainOfficerAssignment converts a model OfficerAssignment to a domain OfficerAssignment
func ToDomainOfficerAssignment(m models.OfficerAssignment) domain.OfficerAssignment {
	return domain.OfficerAssignment{
		AssignmentID: m.AssignmentID,
		OfficerID:    m.OfficerID,
		LocationID:   m.LocationID,
		StreamID:     m.StreamID,
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainOfficerAssignmentSlice converts a slice of model OfficerAssignments to a slice of domain OfficerAssignments
func ToDomainOfficerAssignmentSlice(ms []models.OfficerAssignment) []domain.OfficerAssignment {
	ds := make([]domain.OfficerAssignment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainOfficerAssignment(m)
	}
	return ds
}
