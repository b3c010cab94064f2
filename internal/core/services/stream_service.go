package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/domain"
	portsrepo "github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/ports/repositories"
	portssvc "github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/ports/services"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/dto"
)

// streamService implements the StreamSvcFacade interface
type streamService struct {
	BaseService
	streamRepo portsrepo.StreamRepository
}

// NewStreamService creates a new revenue stream service
func NewStreamService(streamRepo portsrepo.StreamRepository) portssvc.StreamSvcFacade {
	return &streamService{streamRepo: streamRepo}
}

var _ portssvc.StreamSvcFacade = (*streamService)(nil)

// CreateStream registers a new revenue stream.
func (s *streamService) CreateStream(ctx context.Context, req dto.CreateStreamRequest, creatorUserID string) (*domain.RevenueStream, error) {
	now := time.Now()
	stream := domain.RevenueStream{
		StreamID: uuid.NewString(),
		Name:     req.Name,
		IsActive: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.streamRepo.SaveStream(ctx, stream); err != nil {
		s.LogError(ctx, err, "Failed to create stream", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to create stream: %w", err)
	}

	s.LogInfo(ctx, "Stream created", slog.String("stream_id", stream.StreamID))
	return &stream, nil
}

// GetStreamByID retrieves a stream by ID.
func (s *streamService) GetStreamByID(ctx context.Context, streamID string) (*domain.RevenueStream, error) {
	stream, err := s.streamRepo.FindStreamByID(ctx, streamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get stream %s: %w", streamID, err)
	}
	return stream, nil
}

// ListStreams retrieves streams, optionally active only.
func (s *streamService) ListStreams(ctx context.Context, activeOnly bool) ([]domain.RevenueStream, error) {
	streams, err := s.streamRepo.ListStreams(ctx, activeOnly)
	if err != nil {
		s.LogError(ctx, err, "Failed to list streams")
		return nil, fmt.Errorf("failed to list streams: %w", err)
	}
	if streams == nil {
		streams = []domain.RevenueStream{}
	}
	return streams, nil
}

// UpdateStream updates a stream's name or active flag.
func (s *streamService) UpdateStream(ctx context.Context, streamID string, req dto.UpdateStreamRequest, requestingUserID string) (*domain.RevenueStream, error) {
	stream, err := s.streamRepo.FindStreamByID(ctx, streamID)
	if err != nil {
		return nil, fmt.Errorf("failed to find stream %s for update: %w", streamID, err)
	}

	if req.Name != nil {
		stream.Name = *req.Name
	}
	if req.IsActive != nil {
		stream.IsActive = *req.IsActive
	}
	stream.LastUpdatedAt = time.Now()
	stream.LastUpdatedBy = requestingUserID

	if err := s.streamRepo.UpdateStream(ctx, *stream); err != nil {
		s.LogError(ctx, err, "Failed to update stream", slog.String("stream_id", streamID))
		return nil, fmt.Errorf("failed to update stream %s: %w", streamID, err)
	}

	s.LogInfo(ctx, "Stream updated", slog.String("stream_id", streamID))
	return stream, nil
}

// CreateCode registers a new revenue code under a stream. The stream
// must exist; the repository enforces code uniqueness within it.
func (s *streamService) CreateCode(ctx context.Context, streamID string, req dto.CreateCodeRequest, creatorUserID string) (*domain.RevenueCode, error) {
	if _, err := s.streamRepo.FindStreamByID(ctx, streamID); err != nil {
		return nil, fmt.Errorf("failed to find stream %s for new code: %w", streamID, err)
	}

	now := time.Now()
	code := domain.RevenueCode{
		CodeID:   uuid.NewString(),
		StreamID: streamID,
		Code:     req.Code,
		Name:     req.Name,
		IsActive: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.streamRepo.SaveCode(ctx, code); err != nil {
		s.LogError(ctx, err, "Failed to create revenue code", slog.String("stream_id", streamID), slog.String("code", req.Code))
		return nil, fmt.Errorf("failed to create revenue code: %w", err)
	}

	s.LogInfo(ctx, "Revenue code created", slog.String("code_id", code.CodeID), slog.String("stream_id", streamID))
	return &code, nil
}

// ListCodes retrieves revenue codes, optionally active only.
func (s *streamService) ListCodes(ctx context.Context, activeOnly bool) ([]domain.RevenueCode, error) {
	codes, err := s.streamRepo.ListCodes(ctx, activeOnly)
	if err != nil {
		s.LogError(ctx, err, "Failed to list revenue codes")
		return nil, fmt.Errorf("failed to list revenue codes: %w", err)
	}
	if codes == nil {
		codes = []domain.RevenueCode{}
	}
	return codes, nil
}

// ListCodesByStream retrieves the codes under one stream.
func (s *streamService) ListCodesByStream(ctx context.Context, streamID string) ([]domain.RevenueCode, error) {
	codes, err := s.streamRepo.ListCodesByStream(ctx, streamID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list codes for stream", slog.String("stream_id", streamID))
		return nil, fmt.Errorf("failed to list codes for stream %s: %w", streamID, err)
	}
	if codes == nil {
		codes = []domain.RevenueCode{}
	}
	return codes, nil
}

// UpdateCode updates a revenue code's name or active flag.
func (s *streamService) UpdateCode(ctx context.Context, codeID string, req dto.UpdateCodeRequest, requestingUserID string) (*domain.RevenueCode, error) {
	code, err := s.streamRepo.FindCodeByID(ctx, codeID)
	if err != nil {
		return nil, fmt.Errorf("failed to find code %s for update: %w", codeID, err)
	}

	if req.Name != nil {
		code.Name = *req.Name
	}
	if req.IsActive != nil {
		code.IsActive = *req.IsActive
	}
	code.LastUpdatedAt = time.Now()
	code.LastUpdatedBy = requestingUserID

	if err := s.streamRepo.UpdateCode(ctx, *code); err != nil {
		s.LogError(ctx, err, "Failed to update revenue code", slog.String("code_id", codeID))
		return nil, fmt.Errorf("failed to update revenue code %s: %w", codeID, err)
	}

	s.LogInfo(ctx, "Revenue code updated", slog.String("code_id", codeID))
	return code, nil
}
