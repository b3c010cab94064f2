package repositories

import (
	"context"

	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/domain"
)

// LocationRepository defines operations for LGA/MDA reference data.
type LocationRepository interface {
	// SaveLocation persists a new location.
	SaveLocation(ctx context.Context, location domain.Location) error

	// FindLocationByID retrieves a location by its ID.
	FindLocationByID(ctx context.Context, locationID string) (*domain.Location, error)

	// ListLocations retrieves locations ordered by name, optionally
	// restricted to active ones.
	ListLocations(ctx context.Context, activeOnly bool) ([]domain.Location, error)

	// UpdateLocation persists changes to name and active flag.
	UpdateLocation(ctx context.Context, location domain.Location) error
}

// StreamRepository defines operations for revenue streams and their codes.
type StreamRepository interface {
	// SaveStream persists a new revenue stream.
	SaveStream(ctx context.Context, stream domain.RevenueStream) error

	// FindStreamByID retrieves a stream by its ID.
	FindStreamByID(ctx context.Context, streamID string) (*domain.RevenueStream, error)

	// ListStreams retrieves streams ordered by name, optionally restricted
	// to active ones.
	ListStreams(ctx context.Context, activeOnly bool) ([]domain.RevenueStream, error)

	// UpdateStream persists changes to name and active flag.
	UpdateStream(ctx context.Context, stream domain.RevenueStream) error

	// SaveCode persists a new revenue code under a stream.
	SaveCode(ctx context.Context, code domain.RevenueCode) error

	// FindCodeByID retrieves a code by its ID.
	FindCodeByID(ctx context.Context, codeID string) (*domain.RevenueCode, error)

	// ListCodes retrieves codes ordered by code, optionally restricted to
	// active ones.
	ListCodes(ctx context.Context, activeOnly bool) ([]domain.RevenueCode, error)

	// ListCodesByStream retrieves the active codes under one stream.
	ListCodesByStream(ctx context.Context, streamID string) ([]domain.RevenueCode, error)

	// UpdateCode persists changes to a code's fields and active flag.
	UpdateCode(ctx context.Context, code domain.RevenueCode) error
}
