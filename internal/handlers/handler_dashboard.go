package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/ports/services"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/dto"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/middleware"
)

// dashboardHandler handles HTTP requests for the landing-page tiles.
type dashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
}

func newDashboardHandler(ds portssvc.DashboardSvcFacade) *dashboardHandler {
	return &dashboardHandler{dashboardService: ds}
}

func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvcFacade) {
	h := newDashboardHandler(dashboardService)

	rg.GET("/dashboard", adminOrMDA(), h.getDashboard)
}

// getDashboard godoc
// @Summary Dashboard counts
// @Description Returns active reference-data counts plus the total collected in the given month. Defaults to the current month.
// @Tags dashboard
// @Produce json
// @Param period query string false "Month in YYYY-MM form"
// @Success 200 {object} dto.DashboardResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (h *dashboardHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	period := time.Now().UTC()
	if raw := c.Query("period"); raw != "" {
		parsed, err := time.Parse("2006-01", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Period must be in YYYY-MM form"})
			return
		}
		period = parsed
	}
	period = time.Date(period.Year(), period.Month(), 1, 0, 0, 0, 0, time.UTC)

	counts, err := h.dashboardService.Counts(c.Request.Context(), period)
	if err != nil {
		logger.Error("Failed to build dashboard counts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(counts))
}
