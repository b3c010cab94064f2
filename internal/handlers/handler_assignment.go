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

// assignmentHandler handles HTTP requests for officer postings.
type assignmentHandler struct {
	assignmentService portssvc.AssignmentSvcFacade
}

func newAssignmentHandler(as portssvc.AssignmentSvcFacade) *assignmentHandler {
	return &assignmentHandler{assignmentService: as}
}

// registerAssignmentRoutes registers routes for officer assignments.
// Posting and recalling officers is an admin operation.
func registerAssignmentRoutes(rg *gin.RouterGroup, assignmentService portssvc.AssignmentSvcFacade) {
	h := newAssignmentHandler(assignmentService)

	assignments := rg.Group("/assignments", adminOnly())
	{
		assignments.POST("", h.createAssignment)
		assignments.DELETE("/:assignmentID", h.deactivateAssignment)
	}

	rg.GET("/officers/:officerID/assignments", adminOnly(), h.listAssignmentsByOfficer)
	rg.GET("/locations/:locationID/assignments", adminOnly(), h.listAssignmentsByLocation)
}

// createAssignment godoc
// @Summary Post an officer to a location
// @Description Creates an active assignment. Omitting streamID covers every stream at the location. Admin only.
// @Tags assignments
// @Accept json
// @Produce json
// @Param assignment body dto.CreateAssignmentRequest true "Assignment details"
// @Success 201 {object} dto.AssignmentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Officer, location or stream not found"
// @Security BearerAuth
// @Router /assignments [post]
func (h *assignmentHandler) createAssignment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	created, err := h.assignmentService.CreateAssignment(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create assignment", slog.String("officer_id", req.OfficerID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create assignment"})
		}
		return
	}

	logger.Info("Officer posted",
		slog.String("assignment_id", created.AssignmentID),
		slog.String("officer_id", created.OfficerID),
		slog.String("location_id", created.LocationID))
	c.JSON(http.StatusCreated, dto.ToAssignmentResponse(created))
}

// deactivateAssignment godoc
// @Summary Recall an officer from a posting
// @Description Deactivates an assignment without deleting it. The officer's past submissions are unaffected. Admin only.
// @Tags assignments
// @Param assignmentID path string true "Assignment ID"
// @Success 204 "Assignment deactivated"
// @Failure 404 {object} map[string]string "Assignment not found"
// @Security BearerAuth
// @Router /assignments/{assignmentID} [delete]
func (h *assignmentHandler) deactivateAssignment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assignmentID := c.Param("assignmentID")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.assignmentService.DeactivateAssignment(c.Request.Context(), assignmentID, requestingUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Assignment not found"})
		} else {
			logger.Error("Failed to deactivate assignment", slog.String("assignment_id", assignmentID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate assignment"})
		}
		return
	}

	logger.Info("Assignment deactivated", slog.String("assignment_id", assignmentID))
	c.Status(http.StatusNoContent)
}

func (h *assignmentHandler) listAssignmentsByOfficer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	officerID := c.Param("officerID")
	activeOnly := c.Query("activeOnly") == "true"

	assignments, err := h.assignmentService.ListAssignmentsByOfficer(c.Request.Context(), officerID, activeOnly)
	if err != nil {
		logger.Error("Failed to list assignments for officer", slog.String("officer_id", officerID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list assignments"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListAssignmentsResponse(assignments))
}

func (h *assignmentHandler) listAssignmentsByLocation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	locationID := c.Param("locationID")

	assignments, err := h.assignmentService.ListAssignmentsByLocation(c.Request.Context(), locationID)
	if err != nil {
		logger.Error("Failed to list assignments for location", slog.String("location_id", locationID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list assignments"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListAssignmentsResponse(assignments))
}
