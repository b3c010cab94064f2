package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/apperrors"
	portssvc "github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/ports/services"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/dto"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/middleware"
)

// streamHandler handles HTTP requests for revenue streams and the
// revenue codes beneath them.
type streamHandler struct {
	streamService portssvc.StreamSvcFacade
}

func newStreamHandler(ss portssvc.StreamSvcFacade) *streamHandler {
	return &streamHandler{streamService: ss}
}

// registerStreamRoutes registers routes for streams and codes. Reads
// are open to every authenticated role; writes are admin only.
func registerStreamRoutes(rg *gin.RouterGroup, streamService portssvc.StreamSvcFacade) {
	h := newStreamHandler(streamService)

	streams := rg.Group("/streams")
	{
		streams.GET("", h.listStreams)
		streams.GET("/:streamID", h.getStreamByID)
		streams.GET("/:streamID/codes", h.listCodesByStream)
		streams.POST("", adminOnly(), h.createStream)
		streams.PUT("/:streamID", adminOnly(), h.updateStream)
		streams.POST("/:streamID/codes", adminOnly(), h.createCode)
	}

	codes := rg.Group("/codes")
	{
		codes.GET("", h.listCodes)
		codes.PUT("/:codeID", adminOnly(), h.updateCode)
	}
}

func (h *streamHandler) createStream(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateStreamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	created, err := h.streamService.CreateStream(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create stream", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create stream"})
		}
		return
	}

	logger.Info("Stream created", slog.String("stream_id", created.StreamID))
	c.JSON(http.StatusCreated, dto.ToStreamResponse(created))
}

func (h *streamHandler) listStreams(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	activeOnly := c.Query("activeOnly") == "true"
	streams, err := h.streamService.ListStreams(c.Request.Context(), activeOnly)
	if err != nil {
		logger.Error("Failed to list streams", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list streams"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListStreamsResponse(streams))
}

func (h *streamHandler) getStreamByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	streamID := c.Param("streamID")

	stream, err := h.streamService.GetStreamByID(c.Request.Context(), streamID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Stream not found"})
		} else {
			logger.Error("Failed to get stream", slog.String("stream_id", streamID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve stream"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToStreamResponse(stream))
}

func (h *streamHandler) updateStream(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	streamID := c.Param("streamID")

	var req dto.UpdateStreamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	updated, err := h.streamService.UpdateStream(c.Request.Context(), streamID, req, requestingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Stream not found"})
		} else {
			logger.Error("Failed to update stream", slog.String("stream_id", streamID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update stream"})
		}
		return
	}

	logger.Info("Stream updated", slog.String("stream_id", streamID))
	c.JSON(http.StatusOK, dto.ToStreamResponse(updated))
}

// createCode godoc
// @Summary Register a revenue code under a stream
// @Description Adds a specific revenue head (e.g. a levy or permit) under a stream. Admin only.
// @Tags streams
// @Accept json
// @Produce json
// @Param streamID path string true "Stream ID"
// @Param code body dto.CreateCodeRequest true "Code details"
// @Success 201 {object} dto.CodeResponse
// @Failure 404 {object} map[string]string "Stream not found"
// @Failure 409 {object} map[string]string "Code already exists"
// @Security BearerAuth
// @Router /streams/{streamID}/codes [post]
func (h *streamHandler) createCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	streamID := c.Param("streamID")

	var req dto.CreateCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	created, err := h.streamService.CreateCode(c.Request.Context(), streamID, req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Stream not found"})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Code already exists"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create code", slog.String("stream_id", streamID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create code"})
		}
		return
	}

	logger.Info("Revenue code created", slog.String("code_id", created.CodeID), slog.String("stream_id", streamID))
	c.JSON(http.StatusCreated, dto.ToCodeResponse(created))
}

func (h *streamHandler) listCodes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	activeOnly := c.Query("activeOnly") == "true"
	codes, err := h.streamService.ListCodes(c.Request.Context(), activeOnly)
	if err != nil {
		logger.Error("Failed to list codes", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list codes"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCodesResponse(codes))
}

func (h *streamHandler) listCodesByStream(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	streamID := c.Param("streamID")

	codes, err := h.streamService.ListCodesByStream(c.Request.Context(), streamID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Stream not found"})
		} else {
			logger.Error("Failed to list codes for stream", slog.String("stream_id", streamID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list codes"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListCodesResponse(codes))
}

func (h *streamHandler) updateCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	codeID := c.Param("codeID")

	var req dto.UpdateCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	updated, err := h.streamService.UpdateCode(c.Request.Context(), codeID, req, requestingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Code not found"})
		} else {
			logger.Error("Failed to update code", slog.String("code_id", codeID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update code"})
		}
		return
	}

	logger.Info("Revenue code updated", slog.String("code_id", codeID))
	c.JSON(http.StatusOK, dto.ToCodeResponse(updated))
}
