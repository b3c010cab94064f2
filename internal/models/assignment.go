package models

// OfficerAssignment represents an officer posting row. A NULL stream_id
// covers every stream at the location.
type OfficerAssignment struct {
	AssignmentID string  `db:"assignment_id"`
	OfficerID    string  `db:"officer_id"`
	LocationID   string  `db:"location_id"`
	StreamID     *string `db:"stream_id"`
	IsActive     bool    `db:"is_active"`
	AuditFields
}
