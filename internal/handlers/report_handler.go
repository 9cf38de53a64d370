package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"financehub/internal/logger"
	"financehub/internal/services"
)

// ReportHandler serves monthly and yearly reports.
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetMonthlyReport handles the monthly report
// @Summary     Monthly report
// @Tags        reports
// @Produce     json
// @Param       year  query int false "Year (default current)"
// @Param       month query int false "Month 1-12 (default current)"
// @Success     200 {object} finance.MonthlyReport "Monthly report"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /reports/monthly [get]
func (h *ReportHandler) GetMonthlyReport(c *gin.Context) {
	year, month, err := parsePeriod(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.reportService.GetMonthlyReport(year, month))
}

// GetMonthlyCSV handles the monthly report download
// @Summary     Monthly report as CSV
// @Tags        reports
// @Produce     text/csv
// @Param       year  query int false "Year (default current)"
// @Param       month query int false "Month 1-12 (default current)"
// @Success     200 {string} string "CSV rows of section, item, amount"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /reports/monthly.csv [get]
func (h *ReportHandler) GetMonthlyCSV(c *gin.Context) {
	year, month, err := parsePeriod(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="report-%04d-%02d.csv"`, year, int(month)))
	c.Status(http.StatusOK)
	if err := h.reportService.WriteMonthlyCSV(c.Writer, year, month); err != nil {
		// Headers are already sent.
		logger.Get().Errorw("failed to write monthly csv", "error", err, "year", year, "month", int(month))
	}
}

// GetYearlyReport handles the yearly report
// @Summary     Yearly report
// @Tags        reports
// @Produce     json
// @Param       year query int false "Year (default current)"
// @Success     200 {object} finance.YearlyReport "Yearly report"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /reports/yearly [get]
func (h *ReportHandler) GetYearlyReport(c *gin.Context) {
	year, err := parseYear(c, time.Now().UTC().Year())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.reportService.GetYearlyReport(year))
}
