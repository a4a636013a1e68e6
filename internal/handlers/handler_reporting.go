package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/kyigit/hotel_folio_app/internal/core/ports/services"
	"github.com/kyigit/hotel_folio_app/internal/dto"
	"github.com/kyigit/hotel_folio_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for daily reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(reportingService portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: reportingService}
}

// registerReportingRoutes registers routes related to reports.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/daily", h.getDailyReport)
	}
}

// getDailyReport godoc
// @Summary Get the daily report
// @Description Aggregates orders, payments and stays for one business day. Defaults to today when no date is given.
// @Tags reports
// @Produce json
// @Param date query string false "Report date (YYYY-MM-DD)"
// @Success 200 {object} dto.DailyReportResponse
// @Failure 400 {object} ErrorResponse "Invalid date"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/daily [get]
func (h *reportingHandler) getDailyReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	date := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.ParseInLocation(time.DateOnly, dateStr, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	report, err := h.reportingService.BuildDailyReport(c.Request.Context(), date)
	if err != nil {
		logger.Error("Failed to build daily report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build daily report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDailyReportResponse(*report))
}
