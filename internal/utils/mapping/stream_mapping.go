package mapping

import (
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/domain"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/models"
)

// ToModelRevenueStream converts a domain RevenueStream to a model RevenueStream
func ToModelRevenueStream(d domain.RevenueStream) models.RevenueStream {
	return models.RevenueStream{
		StreamID:    d.StreamID,
		Name:        d.Name,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRevenueStream converts a model RevenueStream to a domain RevenueStream
func ToDomainRevenueStream(m models.RevenueStream) domain.RevenueStream {
	return domain.RevenueStream{
		StreamID:    m.StreamID,
		Name:        m.Name,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRevenueStreamSlice converts a slice of model RevenueStreams to a slice of domain RevenueStreams
func ToDomainRevenueStreamSlice(ms []models.RevenueStream) []domain.RevenueStream {
	ds := make([]domain.RevenueStream, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRevenueStream(m)
	}
	return ds
}

// ToModelRevenueCode converts a domain RevenueCode to a model RevenueCode
func ToModelRevenueCode(d domain.RevenueCode) models.RevenueCode {
	return models.RevenueCode{
		CodeID:      d.CodeID,
		StreamID:    d.StreamID,
		Code:        d.Code,
		Name:        d.Name,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRevenueCode converts a model RevenueCode to a domain RevenueCode
func ToDomainRevenueCode(m models.RevenueCode) domain.RevenueCode {
	return domain.RevenueCode{
		CodeID:      m.CodeID,
		StreamID:    m.StreamID,
		Code:        m.Code,
		Name:        m.Name,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRevenueCodeSlice converts a slice of model RevenueCodes to a slice of domain RevenueCodes
func ToDomainRevenueCodeSlice(ms []models.RevenueCode) []domain.RevenueCode {
	ds := make([]domain.RevenueCode, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRevenueCode(m)
	}
	return ds
}
