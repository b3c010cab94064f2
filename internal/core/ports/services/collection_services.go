package services

import (
	"context"

	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/domain"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/dto"
)

// CollectionSvcFacade defines operations for recording and reading
// collection figures.
type CollectionSvcFacade interface {
	// RecordCollections upserts a month of figures for one location on
	// behalf of the submitting officer. The officer must hold an active
	// assignment covering each entry's stream at that location.
	RecordCollections(ctx context.Context, officerID string, req dto.RecordCollectionsRequest) ([]domain.CollectionEvent, error)

	// ListOfficerCollections retrieves an officer's own submissions for
	// a location and year, optionally narrowed to one stream.
	ListOfficerCollections(ctx context.Context, officerID string, params dto.ListOfficerCollectionsParams) ([]domain.CollectionEvent, error)
}
