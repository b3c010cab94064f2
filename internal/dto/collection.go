package dto

import (
	"time"

	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CollectionEntry is one code/amount pair within a monthly submission.
type CollectionEntry struct {
	CodeID string          `json:"codeID" binding:"required"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// RecordCollectionsRequest submits a month of figures for one location.
// Period uses the YYYY-MM form. Resubmitting a period replaces the
// officer's earlier figures for the same codes.
type RecordCollectionsRequest struct {
	LocationID string            `json:"locationID" binding:"required"`
	Period     string            `json:"period" binding:"required,yearmonth"`
	Entries    []CollectionEntry `json:"entries" binding:"required,min=1,dive"`
}

// ListOfficerCollectionsParams defines query parameters for an officer's
// own submission history.
type ListOfficerCollectionsParams struct {
	LocationID string `form:"locationID" binding:"required"`
	StreamID   string `form:"streamID"`
	Year       int    `form:"year" binding:"required,min=2000,max=2100"`
}

// CollectionResponse is the API representation of a collection event.
type CollectionResponse struct {
	CollectionID string          `json:"collectionID"`
	OfficerID    string          `json:"officerID"`
	LocationID   string          `json:"locationID"`
	CodeID       string          `json:"codeID"`
	Period       string          `json:"period"`
	Amount       decimal.Decimal `json:"amount"`
	SubmittedAt  time.Time       `json:"submittedAt"`
}

// ListCollectionsResponse wraps a list of collection events.
type ListCollectionsResponse struct {
	Collections []CollectionResponse `json:"collections"`
}

// ToCollectionResponse converts a domain.CollectionEvent to its API representation.
func ToCollectionResponse(event *domain.CollectionEvent) CollectionResponse {
	return CollectionResponse{
		CollectionID: event.CollectionID,
		OfficerID:    event.OfficerID,
		LocationID:   event.LocationID,
		CodeID:       event.CodeID,
		Period:       event.Period.Format("2006-01"),
		Amount:       event.Amount,
		SubmittedAt:  event.SubmittedAt,
	}
}

// ToListCollectionsResponse converts a slice of domain.CollectionEvent to ListCollectionsResponse.
func ToListCollectionsResponse(events []domain.CollectionEvent) ListCollectionsResponse {
	out := make([]CollectionResponse, len(events))
	for i := range events {
		out[i] = ToCollectionResponse(&events[i])
	}
	return ListCollectionsResponse{Collections: out}
}
