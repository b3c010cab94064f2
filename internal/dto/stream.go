package dto

import (
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/domain"
)

// CreateStreamRequest defines the data needed to register a revenue stream.
type CreateStreamRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateStreamRequest defines the data allowed for updating a stream.
type UpdateStreamRequest struct {
	Name     *string `json:"name"`
	IsActive *bool   `json:"isActive"`
}

// CreateCodeRequest defines the data needed to register a revenue code
// under a stream.
type CreateCodeRequest struct {
	Code string `json:"code" binding:"required"`
	Name string `json:"name" binding:"required"`
}

// UpdateCodeRequest defines the data allowed for updating a revenue code.
type UpdateCodeRequest struct {
	Name     *string `json:"name"`
	IsActive *bool   `json:"isActive"`
}

// StreamResponse is the API representation of a revenue stream.
type StreamResponse struct {
	StreamID string `json:"streamID"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
}

// ListStreamsResponse wraps the list of streams.
type ListStreamsResponse struct {
	Streams []StreamResponse `json:"streams"`
}

// CodeResponse is the API representation of a revenue code.
type CodeResponse struct {
	CodeID   string `json:"codeID"`
	StreamID string `json:"streamID"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
}

// ListCodesResponse wraps the list of revenue codes.
type ListCodesResponse struct {
	Codes []CodeResponse `json:"codes"`
}

// ToStreamResponse converts a domain.RevenueStream to its API representation.
func ToStreamResponse(stream *domain.RevenueStream) StreamResponse {
	return StreamResponse{
		StreamID: stream.StreamID,
		Name:     stream.Name,
		IsActive: stream.IsActive,
	}
}

// ToListStreamsResponse converts a slice of domain.RevenueStream to ListStreamsResponse.
func ToListStreamsResponse(streams []domain.RevenueStream) ListStreamsResponse {
	out := make([]StreamResponse, len(streams))
	for i := range streams {
		out[i] = ToStreamResponse(&streams[i])
	}
	return ListStreamsResponse{Streams: out}
}

// ToCodeResponse converts a domain.RevenueCode to its API representation.
func ToCodeResponse(code *domain.RevenueCode) CodeResponse {
	return CodeResponse{
		CodeID:   code.CodeID,
		StreamID: code.StreamID,
		Code:     code.Code,
		Name:     code.Name,
		IsActive: code.IsActive,
	}
}

// ToListCodesResponse converts a slice of domain.RevenueCode to ListCodesResponse.
func ToListCodesResponse(codes []domain.RevenueCode) ListCodesResponse {
	out := make([]CodeResponse, len(codes))
	for i := range codes {
		out[i] = ToCodeResponse(&codes[i])
	}
	return ListCodesResponse{Codes: out}
}
