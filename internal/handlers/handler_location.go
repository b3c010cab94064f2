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

// locationHandler handles HTTP requests related to LGAs and MDAs.
type locationHandler struct {
	locationService portssvc.LocationSvcFacade
}

func newLocationHandler(ls portssvc.LocationSvcFacade) *locationHandler {
	return &locationHandler{locationService: ls}
}

// registerLocationRoutes registers routes related to locations. Reads
// are open to every authenticated role; writes are admin only.
func registerLocationRoutes(rg *gin.RouterGroup, locationService portssvc.LocationSvcFacade) {
	h := newLocationHandler(locationService)

	locations := rg.Group("/locations")
	{
		locations.GET("", h.listLocations)
		locations.GET("/:locationID", h.getLocationByID)
		locations.POST("", adminOnly(), h.createLocation)
		locations.PUT("/:locationID", adminOnly(), h.updateLocation)
	}
}

// createLocation godoc
// @Summary Register a new location
// @Description Adds an LGA or MDA to the reference data. Admin only.
// @Tags locations
// @Accept json
// @Produce json
// @Param location body dto.CreateLocationRequest true "Location details"
// @Success 201 {object} dto.LocationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /locations [post]
func (h *locationHandler) createLocation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	created, err := h.locationService.CreateLocation(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create location", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create location"})
		}
		return
	}

	logger.Info("Location created", slog.String("location_id", created.LocationID), slog.String("kind", string(created.Kind)))
	c.JSON(http.StatusCreated, dto.ToLocationResponse(created))
}

// listLocations godoc
// @Summary List locations
// @Tags locations
// @Produce json
// @Param activeOnly query bool false "Return only active locations"
// @Success 200 {object} dto.ListLocationsResponse
// @Security BearerAuth
// @Router /locations [get]
func (h *locationHandler) listLocations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListLocationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	locations, err := h.locationService.ListLocations(c.Request.Context(), params.ActiveOnly)
	if err != nil {
		logger.Error("Failed to list locations", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list locations"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListLocationsResponse(locations))
}

// getLocationByID godoc
// @Summary Get a location by ID
// @Tags locations
// @Produce json
// @Param locationID path string true "Location ID"
// @Success 200 {object} dto.LocationResponse
// @Failure 404 {object} map[string]string "Location not found"
// @Security BearerAuth
// @Router /locations/{locationID} [get]
func (h *locationHandler) getLocationByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	locationID := c.Param("locationID")

	location, err := h.locationService.GetLocationByID(c.Request.Context(), locationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
		} else {
			logger.Error("Failed to get location", slog.String("location_id", locationID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve location"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToLocationResponse(location))
}

// updateLocation godoc
// @Summary Update a location
// @Description Renames a location or toggles its active flag. A retired location keeps its history but leaves new reports. Admin only.
// @Tags locations
// @Accept json
// @Produce json
// @Param locationID path string true "Location ID"
// @Param location body dto.UpdateLocationRequest true "Fields to update"
// @Success 200 {object} dto.LocationResponse
// @Failure 404 {object} map[string]string "Location not found"
// @Security BearerAuth
// @Router /locations/{locationID} [put]
func (h *locationHandler) updateLocation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	locationID := c.Param("locationID")

	var req dto.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	updated, err := h.locationService.UpdateLocation(c.Request.Context(), locationID, req, requestingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
		} else {
			logger.Error("Failed to update location", slog.String("location_id", locationID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update location"})
		}
		return
	}

	logger.Info("Location updated", slog.String("location_id", locationID))
	c.JSON(http.StatusOK, dto.ToLocationResponse(updated))
}
