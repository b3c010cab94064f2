package models

// Location represents an LGA or MDA row.
type Location struct {
	LocationID string `db:"location_id"`
	Name       string `db:"name"`
	Kind       string `db:"kind"`
	IsActive   bool   `db:"is_active"`
	AuditFields
}
