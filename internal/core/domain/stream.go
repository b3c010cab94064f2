package domain

// RevenueStream is a category of revenue that groups one or more
// revenue codes.
type RevenueStream struct {
	StreamID string `json:"streamID"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
	AuditFields
}

// RevenueCode is the finest-grained billable code under a stream. It is
// the key actually referenced by collection events; the stream is always
// resolved through the code.
type RevenueCode struct {
	CodeID   string `json:"codeID"`
	StreamID string `json:"streamID"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
	AuditFields
}
