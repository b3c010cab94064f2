package services

import (
	"context"

	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/domain"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/dto"
)

// LocationSvcFacade defines operations for managing locations.
type LocationSvcFacade interface {
	// CreateLocation registers a new LGA or MDA.
	CreateLocation(ctx context.Context, req dto.CreateLocationRequest, creatorUserID string) (*domain.Location, error)

	// GetLocationByID retrieves a location by ID.
	GetLocationByID(ctx context.Context, locationID string) (*domain.Location, error)

	// ListLocations retrieves locations, optionally active only.
	ListLocations(ctx context.Context, activeOnly bool) ([]domain.Location, error)

	// UpdateLocation updates a location's name or active flag.
	UpdateLocation(ctx context.Context, locationID string, req dto.UpdateLocationRequest, requestingUserID string) (*domain.Location, error)
}

// StreamSvcFacade defines operations for managing revenue streams and
// the codes beneath them.
type StreamSvcFacade interface {
	// CreateStream registers a new revenue stream.
	CreateStream(ctx context.Context, req dto.CreateStreamRequest, creatorUserID string) (*domain.RevenueStream, error)

	// GetStreamByID retrieves a stream by ID.
	GetStreamByID(ctx context.Context, streamID string) (*domain.RevenueStream, error)

	// ListStreams retrieves streams, optionally active only.
	ListStreams(ctx context.Context, activeOnly bool) ([]domain.RevenueStream, error)

	// UpdateStream updates a stream's name or active flag.
	UpdateStream(ctx context.Context, streamID string, req dto.UpdateStreamRequest, requestingUserID string) (*domain.RevenueStream, error)

	// CreateCode registers a new revenue code under a stream.
	CreateCode(ctx context.Context, streamID string, req dto.CreateCodeRequest, creatorUserID string) (*domain.RevenueCode, error)

	// ListCodes retrieves revenue codes, optionally active only.
	ListCodes(ctx context.Context, activeOnly bool) ([]domain.RevenueCode, error)

	// ListCodesByStream retrieves the codes under one stream.
	ListCodesByStream(ctx context.Context, streamID string) ([]domain.RevenueCode, error)

	// UpdateCode updates a revenue code's name or active flag.
	UpdateCode(ctx context.Context, codeID string, req dto.UpdateCodeRequest, requestingUserID string) (*domain.RevenueCode, error)
}
