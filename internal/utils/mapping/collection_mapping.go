package mapping

import (
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/domain"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/models"
)

// ToModelCollectionEvent converts a domain CollectionEvent to a model CollectionEvent
func ToModelCollectionEvent(d domain.CollectionEvent) models.CollectionEvent {
	return models.CollectionEvent{
		CollectionID: d.CollectionID,
		OfficerID:    d.OfficerID,
		LocationID:   d.LocationID,
		CodeID:       d.CodeID,
		Period:       d.Period,
		Amount:       d.Amount,
		SubmittedAt:  d.SubmittedAt,
	}
}

// ToDomainCollectionEvent converts a model CollectionEvent to a domain CollectionEvent
func ToDomainCollectionEvent(m models.CollectionEvent) domain.CollectionEvent {
	return domain.CollectionEvent{
		CollectionID: m.CollectionID,
		OfficerID:    m.OfficerID,
		LocationID:   m.LocationID,
		CodeID:       m.CodeID,
		Period:       m.Period,
		Amount:       m.Amount,
		SubmittedAt:  m.SubmittedAt,
	}
}

// ToDomainCollectionEventSlice converts a slice of model CollectionEvents to a slice of domain CollectionEvents
func ToDomainCollectionEventSlice(ms []models.CollectionEvent) []domain.CollectionEvent {
	ds := make([]domain.CollectionEvent, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCollectionEvent(m)
	}
	return ds
}
