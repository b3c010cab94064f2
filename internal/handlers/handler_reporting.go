package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/apperrors"
	portssvc "github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/ports/services"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/dto"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/export"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/middleware"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/platform/config"
)

// reportingHandler handles HTTP requests for the aggregated reports and
// their file exports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
	letterhead       []string
}

func newReportingHandler(rs portssvc.ReportingSvcFacade, cfg *config.Config) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		letterhead:       cfg.ExportLetterhead,
	}
}

// registerReportingRoutes registers the report routes. Every role may
// read reports; officers see only their assigned locations and streams.
// File exports are for administrators and MDA users.
func registerReportingRoutes(rg *gin.RouterGroup, cfg *config.Config, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService, cfg)

	reports := rg.Group("/reports")
	{
		reports.GET("/annual", h.getAnnualMatrix)
		reports.GET("/monthly", h.getMonthlyLocationReport)
		reports.GET("/annual/export", adminOrMDA(), h.exportAnnualMatrix)
		reports.GET("/monthly/export", adminOrMDA(), h.exportMonthlyReport)
	}
}

// reportScope derives the requesting user's report scope from the
// request context.
func reportScope(c *gin.Context) (portssvc.ReportScope, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		return portssvc.ReportScope{}, false
	}
	role, ok := middleware.GetRoleFromContext(c)
	if !ok {
		return portssvc.ReportScope{}, false
	}
	return portssvc.ReportScope{UserID: userID, Role: role}, true
}

// getAnnualMatrix godoc
// @Summary Annual budget-versus-collection report
// @Description Builds the location-by-stream matrix for a year, with twelve month buckets per row. Officers receive only the rows their active assignments cover.
// @Tags reports
// @Produce json
// @Param year query int true "Report year"
// @Success 200 {object} dto.AnnualMatrixResponse
// @Failure 503 {object} map[string]string "Reference data unavailable"
// @Security BearerAuth
// @Router /reports/annual [get]
func (h *reportingHandler) getAnnualMatrix(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.AnnualMatrixParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	scope, ok := reportScope(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	report, err := h.reportingService.AnnualMatrix(c.Request.Context(), params.Year, scope)
	if err != nil {
		logger.Error("Failed to build annual report", slog.Int("year", params.Year), slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Report is unavailable"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAnnualMatrixResponse(report.Rows, report.Year, report.Sequence, report.Warning))
}

// getMonthlyLocationReport godoc
// @Summary Monthly report for one location
// @Description Builds the single-month report for a location, including the per-code breakdown and the count of officers posted there.
// @Tags reports
// @Produce json
// @Param locationID query string true "Location ID"
// @Param period query string true "Month in YYYY-MM form"
// @Success 200 {object} dto.MonthlyLocationReportResponse
// @Failure 404 {object} map[string]string "Location not found"
// @Security BearerAuth
// @Router /reports/monthly [get]
func (h *reportingHandler) getMonthlyLocationReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.MonthlyReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	period, err := time.Parse("2006-01", params.Period)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Period must be in YYYY-MM form"})
		return
	}

	scope, ok := reportScope(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	report, err := h.reportingService.MonthlyLocationReport(c.Request.Context(), params.LocationID, period, scope)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
		} else if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You are not posted to this location"})
		} else {
			logger.Error("Failed to build monthly report",
				slog.String("location_id", params.LocationID),
				slog.String("period", params.Period),
				slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Report is unavailable"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthlyLocationReportResponse(
		&report.Location, report.Period, report.Rows, report.Codes,
		report.Total, report.Sequence, report.Warning, report.Officers))
}

// exportAnnualMatrix godoc
// @Summary Export the annual report as a file
// @Description Streams the annual matrix as CSV, XLSX or PDF. The view parameter picks the collected figures, the budget targets, or both.
// @Tags reports
// @Produce octet-stream
// @Param year query int true "Report year"
// @Param format query string true "File format (csv, xlsx, pdf)"
// @Param view query string false "View (collected, budget, both)"
// @Success 200 {file} file "Report file"
// @Security BearerAuth
// @Router /reports/annual/export [get]
func (h *reportingHandler) exportAnnualMatrix(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ExportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	scope, ok := reportScope(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	report, err := h.reportingService.AnnualMatrix(c.Request.Context(), params.Year, scope)
	if err != nil {
		logger.Error("Failed to build annual report for export", slog.Int("year", params.Year), slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Report is unavailable"})
		return
	}

	view := export.ViewBoth
	switch params.View {
	case "collected":
		view = export.ViewCollected
	case "budget":
		view = export.ViewBudget
	}

	doc := export.BuildAnnualDocument(report, view, h.letterhead)
	filename := fmt.Sprintf("revenue-report-%d.%s", params.Year, params.Format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	switch params.Format {
	case "csv":
		c.Header("Content-Type", "text/csv; charset=utf-8")
		err = export.WriteCSV(c.Writer, doc)
	case "xlsx":
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		err = export.WriteXLSX(c.Writer, doc)
	case "pdf":
		c.Header("Content-Type", "application/pdf")
		err = export.WritePDF(c.Writer, doc)
	}
	if err != nil {
		// Headers may already be on the wire; log and abort the stream.
		logger.Error("Failed to stream report export", slog.String("format", params.Format), slog.String("error", err.Error()))
		c.Abort()
		return
	}

	logger.Info("Report exported",
		slog.Int("year", params.Year),
		slog.String("format", params.Format),
		slog.String("view", params.View),
		slog.Uint64("sequence", report.Sequence))
}

// exportMonthlyReport godoc
// @Summary Export a monthly location report as a file
// @Description Streams the single-month report for one location as CSV, XLSX or PDF.
// @Tags reports
// @Produce octet-stream
// @Param locationID query string true "Location ID"
// @Param period query string true "Month in YYYY-MM form"
// @Param format query string true "File format (csv, xlsx, pdf)"
// @Success 200 {file} file "Report file"
// @Security BearerAuth
// @Router /reports/monthly/export [get]
func (h *reportingHandler) exportMonthlyReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.MonthlyExportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	period, err := time.Parse("2006-01", params.Period)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Period must be in YYYY-MM form"})
		return
	}

	scope, ok := reportScope(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	report, err := h.reportingService.MonthlyLocationReport(c.Request.Context(), params.LocationID, period, scope)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
			return
		}
		if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You are not posted to this location"})
			return
		}
		logger.Error("Failed to build monthly report for export",
			slog.String("location_id", params.LocationID),
			slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Report is unavailable"})
		return
	}

	doc := export.BuildMonthlyDocument(report, h.letterhead)
	filename := fmt.Sprintf("monthly-report-%s.%s", params.Period, params.Format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	switch params.Format {
	case "csv":
		c.Header("Content-Type", "text/csv; charset=utf-8")
		err = export.WriteCSV(c.Writer, doc)
	case "xlsx":
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		err = export.WriteXLSX(c.Writer, doc)
	case "pdf":
		c.Header("Content-Type", "application/pdf")
		err = export.WritePDF(c.Writer, doc)
	}
	if err != nil {
		logger.Error("Failed to stream monthly export", slog.String("format", params.Format), slog.String("error", err.Error()))
		c.Abort()
		return
	}

	logger.Info("Monthly report exported",
		slog.String("location_id", params.LocationID),
		slog.String("period", params.Period),
		slog.String("format", params.Format))
}
