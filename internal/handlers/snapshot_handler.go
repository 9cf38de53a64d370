package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "financehub/internal/errors"
	"financehub/internal/pagination"
	"financehub/internal/services"
)

// SnapshotHandler handles monthly summary snapshot requests.
type SnapshotHandler struct {
	snapshotService services.SnapshotServicer
	auditService    services.AuditServicer
}

// NewSnapshotHandler creates a new SnapshotHandler.
func NewSnapshotHandler(snapshotService services.SnapshotServicer, auditService services.AuditServicer) *SnapshotHandler {
	return &SnapshotHandler{snapshotService: snapshotService, auditService: auditService}
}

// RecordSnapshot handles recording the current month's snapshot.
// @Summary     Record a snapshot
// @Description Record (or overwrite) the summary snapshot of the current month
// @Tags        snapshots
// @Produce     json
// @Success     201 {object} models.SummarySnapshot "Snapshot recorded"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /snapshots [post]
func (h *SnapshotHandler) RecordSnapshot(c *gin.Context) {
	snapshot, err := h.snapshotService.RecordSnapshot(c.Request.Context(), time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("RECORD_SNAPSHOT", "summary_snapshot", snapshot.ID, c.ClientIP(),
		map[string]interface{}{"year": snapshot.Year, "month": snapshot.Month})

	c.JSON(http.StatusCreated, gin.H{"snapshot": snapshot})
}

// GetSnapshots handles listing snapshots.
// @Summary     List snapshots
// @Description Get paginated monthly snapshots, newest period first
// @Tags        snapshots
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.SummarySnapshot] "Paginated snapshots"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /snapshots [get]
func (h *SnapshotHandler) GetSnapshots(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.snapshotService.GetSnapshots(c.Request.Context(), page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetSnapshot handles retrieving one month's snapshot.
// @Summary     Get snapshot
// @Tags        snapshots
// @Produce     json
// @Param       year  path int true "Year"
// @Param       month path int true "Month 1-12"
// @Success     200 {object} models.SummarySnapshot "Snapshot"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Snapshot not found"
// @Router      /snapshots/{year}/{month} [get]
func (h *SnapshotHandler) GetSnapshot(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1 {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid year"))
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid month, must be 1-12"))
		return
	}

	snapshot, err := h.snapshotService.GetSnapshot(c.Request.Context(), year, time.Month(month))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"snapshot": snapshot})
}
