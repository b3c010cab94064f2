package mapping

import (
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/domain"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/models"
)

// ToModelLocation converts a domain Location to a model Location
func ToModelLocation(d domain.Location) models.Location {
	return models.Location{
		LocationID:  d.LocationID,
		Name:        d.Name,
		Kind:        string(d.Kind),
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLocation converts a model Location to a domain Location
func ToDomainLocation(m models.Location) domain.Location {
	return domain.Location{
		LocationID:  m.LocationID,
		Name:        m.Name,
		Kind:        domain.LocationKind(m.Kind),
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLocationSlice converts a slice of model Locations to a slice of domain Locations
func ToDomainLocationSlice(ms []models.Location) []domain.Location {
	ds := make([]domain.Location, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLocation(m)
	}
	return ds
}
