package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "financehub/internal/errors"
	"financehub/internal/models"
	"financehub/internal/pagination"
	"financehub/internal/services"
)

type mockSnapshotService struct {
	recordSnapshotFn func(ctx context.Context, now time.Time) (*models.SummarySnapshot, error)
	getSnapshotFn    func(ctx context.Context, year int, month time.Month) (*models.SummarySnapshot, error)
}

func (m *mockSnapshotService) RecordSnapshot(ctx context.Context, now time.Time) (*models.SummarySnapshot, error) {
	if m.recordSnapshotFn != nil {
		return m.recordSnapshotFn(ctx, now)
	}
	return &models.SummarySnapshot{ID: "snap-1", Year: now.Year(), Month: int(now.Month())}, nil
}

func (m *mockSnapshotService) GetSnapshots(_ context.Context, page pagination.PageRequest) (*pagination.PageResponse[models.SummarySnapshot], error) {
	page.Defaults()
	resp := pagination.NewPageResponse([]models.SummarySnapshot{}, page.Page, page.PageSize, 0)
	return &resp, nil
}

func (m *mockSnapshotService) GetSnapshot(ctx context.Context, year int, month time.Month) (*models.SummarySnapshot, error) {
	if m.getSnapshotFn != nil {
		return m.getSnapshotFn(ctx, year, month)
	}
	return &models.SummarySnapshot{Year: year, Month: int(month)}, nil
}

var _ services.SnapshotServicer = (*mockSnapshotService)(nil)

func setupSnapshotRouter(handler *SnapshotHandler) *gin.Engine {
	r := gin.New()
	r.POST("/snapshots", handler.RecordSnapshot)
	r.GET("/snapshots", handler.GetSnapshots)
	r.GET("/snapshots/:year/:month", handler.GetSnapshot)
	return r
}

func TestSnapshotHandler_RecordSnapshot(t *testing.T) {
	t.Run("returns 201 and audits", func(t *testing.T) {
		audit := &mockAuditService{}
		r := setupSnapshotRouter(NewSnapshotHandler(&mockSnapshotService{}, audit))

		rec := doRequest(r, "POST", "/snapshots", "")

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if len(audit.entries) != 1 || audit.entries[0].resourceID != "snap-1" {
			t.Errorf("unexpected audit entries: %+v", audit.entries)
		}
	})

	t.Run("returns 500 on storage failure", func(t *testing.T) {
		svc := &mockSnapshotService{
			recordSnapshotFn: func(context.Context, time.Time) (*models.SummarySnapshot, error) {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, context.DeadlineExceeded)
			},
		}
		r := setupSnapshotRouter(NewSnapshotHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/snapshots", "")

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INTERNAL_ERROR")
	})
}

func TestSnapshotHandler_GetSnapshots(t *testing.T) {
	r := setupSnapshotRouter(NewSnapshotHandler(&mockSnapshotService{}, &mockAuditService{}))

	rec := doRequest(r, "GET", "/snapshots?page=2&page_size=5", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if parseJSON(t, rec)["page_size"].(float64) != 5 {
		t.Error("expected page_size 5")
	}
}

func TestSnapshotHandler_GetSnapshot(t *testing.T) {
	t.Run("returns 200", func(t *testing.T) {
		r := setupSnapshotRouter(NewSnapshotHandler(&mockSnapshotService{}, &mockAuditService{}))

		rec := doRequest(r, "GET", "/snapshots/2025/3", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		snap := parseJSON(t, rec)["snapshot"].(map[string]interface{})
		if snap["month"].(float64) != 3 {
			t.Errorf("expected month 3, got %v", snap["month"])
		}
	})

	t.Run("returns 400 on invalid month", func(t *testing.T) {
		r := setupSnapshotRouter(NewSnapshotHandler(&mockSnapshotService{}, &mockAuditService{}))

		rec := doRequest(r, "GET", "/snapshots/2025/13", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when missing", func(t *testing.T) {
		svc := &mockSnapshotService{
			getSnapshotFn: func(context.Context, int, time.Month) (*models.SummarySnapshot, error) {
				return nil, apperrors.ErrSnapshotNotFound
			},
		}
		r := setupSnapshotRouter(NewSnapshotHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/snapshots/2020/1", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "SNAPSHOT_NOT_FOUND")
	})
}
