package models

// RevenueStream represents a revenue stream row.
type RevenueStream struct {
	StreamID string `db:"stream_id"`
	Name     string `db:"name"`
	IsActive bool   `db:"is_active"`
	AuditFields
}

// RevenueCode represents a revenue code row under a stream.
type RevenueCode struct {
	CodeID   string `db:"code_id"`
	StreamID string `db:"stream_id"`
	Code     string `db:"code"`
	Name     string `db:"name"`
	IsActive bool   `db:"is_active"`
	AuditFields
}
