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

// collectionHandler handles HTTP requests for monthly collection figures.
type collectionHandler struct {
	collectionService portssvc.CollectionSvcFacade
}

func newCollectionHandler(cs portssvc.CollectionSvcFacade) *collectionHandler {
	return &collectionHandler{collectionService: cs}
}

// registerCollectionRoutes registers routes for collection submissions.
// Only field officers record figures, and they only read their own.
func registerCollectionRoutes(rg *gin.RouterGroup, collectionService portssvc.CollectionSvcFacade) {
	h := newCollectionHandler(collectionService)

	collections := rg.Group("/collections", officerOnly())
	{
		collections.POST("", h.recordCollections)
		collections.GET("", h.listOwnCollections)
	}
}

// recordCollections godoc
// @Summary Submit a month of collection figures
// @Description Records per-code amounts for one location and period on behalf of the submitting officer. Resubmitting a period replaces the officer's earlier figures for the same codes. The officer must hold an active assignment covering each entry's stream at the location.
// @Tags collections
// @Accept json
// @Produce json
// @Param submission body dto.RecordCollectionsRequest true "Monthly figures"
// @Success 201 {object} dto.ListCollectionsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Officer not posted to this location and stream"
// @Failure 404 {object} map[string]string "Location or code not found"
// @Security BearerAuth
// @Router /collections [post]
func (h *collectionHandler) recordCollections(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordCollectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordCollections", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	officerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	saved, err := h.collectionService.RecordCollections(c.Request.Context(), officerID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			logger.Warn("Submission rejected for missing assignment", slog.String("location_id", req.LocationID))
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record collections", slog.String("location_id", req.LocationID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record collections"})
		}
		return
	}

	logger.Info("Collections recorded",
		slog.String("location_id", req.LocationID),
		slog.String("period", req.Period),
		slog.Int("entries", len(saved)))
	c.JSON(http.StatusCreated, dto.ToListCollectionsResponse(saved))
}

// listOwnCollections godoc
// @Summary List the caller's own submissions
// @Description Retrieves the submitting officer's collection history for a location and year, optionally narrowed to one stream.
// @Tags collections
// @Produce json
// @Param locationID query string true "Location ID"
// @Param year query int true "Year"
// @Param streamID query string false "Stream ID"
// @Success 200 {object} dto.ListCollectionsResponse
// @Security BearerAuth
// @Router /collections [get]
func (h *collectionHandler) listOwnCollections(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListOfficerCollectionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	officerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	events, err := h.collectionService.ListOfficerCollections(c.Request.Context(), officerID, params)
	if err != nil {
		logger.Error("Failed to list collections", slog.String("location_id", params.LocationID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list collections"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCollectionsResponse(events))
}
