package repositories

import (
	"context"
	"time"

	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/domain"
)

// CollectionRepository defines operations for submitted collection events.
type CollectionRepository interface {
	// UpsertCollections writes the batch in a single transaction,
	// replacing the amount where a row already exists for (officer,
	// location, code, period). Nothing is written when any row fails.
	UpsertCollections(ctx context.Context, events []domain.CollectionEvent) ([]domain.CollectionEvent, error)

	// ListCollectionsForYear retrieves every event whose period falls in
	// the calendar year.
	ListCollectionsForYear(ctx context.Context, year int) ([]domain.CollectionEvent, error)

	// ListCollectionsForLocationMonth retrieves every event for one
	// location in one calendar month.
	ListCollectionsForLocationMonth(ctx context.Context, locationID string, period time.Time) ([]domain.CollectionEvent, error)

	// ListOfficerCollections retrieves an officer's events for one
	// location and stream across the calendar year. Stream membership is
	// resolved through the event's revenue code.
	ListOfficerCollections(ctx context.Context, officerID, locationID, streamID string, year int) ([]domain.CollectionEvent, error)
}
