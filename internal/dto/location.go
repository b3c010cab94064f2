package dto

import (
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/domain"
)

// CreateLocationRequest defines the data needed to register a location.
type CreateLocationRequest struct {
	Name string `json:"name" binding:"required"`
	Kind string `json:"kind" binding:"required,oneof=lga mda"`
}

// UpdateLocationRequest defines the data allowed for updating a location.
type UpdateLocationRequest struct {
	Name     *string `json:"name"`
	IsActive *bool   `json:"isActive"`
}

// ListLocationsParams defines query parameters for listing locations.
type ListLocationsParams struct {
	ActiveOnly bool `form:"activeOnly"`
}

// LocationResponse is the API representation of a location.
type LocationResponse struct {
	LocationID string `json:"locationID"`
	Name       string `json:"name"`
	Kind       string `json:"kind"`
	IsActive   bool   `json:"isActive"`
}

// ListLocationsResponse wraps the list of locations.
type ListLocationsResponse struct {
	Locations []LocationResponse `json:"locations"`
}

// ToLocationResponse converts a domain.Location to its API representation.
func ToLocationResponse(loc *domain.Location) LocationResponse {
	return LocationResponse{
		LocationID: loc.LocationID,
		Name:       loc.Name,
		Kind:       string(loc.Kind),
		IsActive:   loc.IsActive,
	}
}

// ToListLocationsResponse converts a slice of domain.Location to ListLocationsResponse.
func ToListLocationsResponse(locations []domain.Location) ListLocationsResponse {
	out := make([]LocationResponse, len(locations))
	for i := range locations {
		out[i] = ToLocationResponse(&locations[i])
	}
	return ListLocationsResponse{Locations: out}
}
