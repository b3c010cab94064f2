package domain

// LocationKind distinguishes local-government areas from ministries,
// departments and agencies. Both are tracked the same way.
type LocationKind string

const (
	LocationLGA LocationKind = "lga"
	LocationMDA LocationKind = "mda"
)

// Location is an administrative area or agency against which collections
// are tracked.
type Location struct {
	LocationID string       `json:"locationID"`
	Name       string       `json:"name"`
	Kind       LocationKind `json:"kind"`
	IsActive   bool         `json:"isActive"`
	AuditFields
}
