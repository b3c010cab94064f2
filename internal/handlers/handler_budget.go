package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/apperrors"
	portssvc "github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/ports/services"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/dto"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/middleware"
)

// budgetHandler handles HTTP requests related to budget targets.
type budgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
}

func newBudgetHandler(bs portssvc.BudgetSvcFacade) *budgetHandler {
	return &budgetHandler{budgetService: bs}
}

// registerBudgetRoutes registers routes for budget targets. Budgets are
// maintained by administrators and MDA users.
func registerBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade) {
	h := newBudgetHandler(budgetService)

	budgets := rg.Group("/budgets", adminOrMDA())
	{
		budgets.PUT("", h.upsertBudget)
		budgets.GET("", h.listBudgetsForYear)
		budgets.GET("/:streamID/:year", h.getBudget)
	}
}

// upsertBudget godoc
// @Summary Set or replace a budget target
// @Description Enters the annual amount and monthly target for a stream and year. Re-posting the same stream and year overwrites the earlier figures.
// @Tags budgets
// @Accept json
// @Produce json
// @Param budget body dto.UpsertBudgetRequest true "Budget target"
// @Success 200 {object} dto.BudgetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Stream not found"
// @Security BearerAuth
// @Router /budgets [put]
func (h *budgetHandler) upsertBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpsertBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	saved, err := h.budgetService.UpsertBudget(c.Request.Context(), req, requestingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Stream not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to upsert budget", slog.String("stream_id", req.StreamID), slog.Int("year", req.Year), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save budget"})
		}
		return
	}

	logger.Info("Budget target saved", slog.String("stream_id", saved.StreamID), slog.Int("year", saved.Year))
	c.JSON(http.StatusOK, dto.ToBudgetResponse(saved))
}

// listBudgetsForYear godoc
// @Summary List budget targets for a year
// @Tags budgets
// @Produce json
// @Param year query int true "Budget year"
// @Success 200 {object} dto.ListBudgetsResponse
// @Security BearerAuth
// @Router /budgets [get]
func (h *budgetHandler) listBudgetsForYear(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListBudgetsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	budgets, err := h.budgetService.ListBudgetsForYear(c.Request.Context(), params.Year)
	if err != nil {
		logger.Error("Failed to list budgets", slog.Int("year", params.Year), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list budgets"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListBudgetsResponse(budgets, params.Year))
}

// getBudget godoc
// @Summary Get the budget target for a stream and year
// @Tags budgets
// @Produce json
// @Param streamID path string true "Stream ID"
// @Param year path int true "Budget year"
// @Success 200 {object} dto.BudgetResponse
// @Failure 404 {object} map[string]string "Budget not found"
// @Security BearerAuth
// @Router /budgets/{streamID}/{year} [get]
func (h *budgetHandler) getBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	streamID := c.Param("streamID")

	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Year must be a number"})
		return
	}

	budget, err := h.budgetService.GetBudget(c.Request.Context(), streamID, year)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Budget not found"})
		} else {
			logger.Error("Failed to get budget", slog.String("stream_id", streamID), slog.Int("year", year), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve budget"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetResponse(budget))
}
