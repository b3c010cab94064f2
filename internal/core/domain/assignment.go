package domain

// OfficerAssignment scopes an officer to a location, optionally narrowed
// to one revenue stream. A nil StreamID covers every stream at the
// location.
type OfficerAssignment struct {
	AssignmentID string  `json:"assignmentID"`
	OfficerID    string  `json:"officerID"`
	LocationID   string  `json:"locationID"`
	StreamID     *string `json:"streamID,omitempty"`
	IsActive     bool    `json:"isActive"`
	AuditFields
}

// CoversStream reports whether the assignment grants access to the given
// stream at its location.
func (a OfficerAssignment) CoversStream(streamID string) bool {
	return a.StreamID == nil || *a.StreamID == streamID
}
