package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "financehub/internal/errors"
	"financehub/internal/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test", "")
}

func TestRequestLogging(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogging())
	r.GET("/ping", func(c *gin.Context) {
		if _, ok := c.Get(RequestIDKey); !ok {
			t.Error("expected request id in context")
		}
		c.Status(http.StatusOK)
	})

	t.Run("generates request id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest("GET", "/ping", nil))

		if _, err := uuid.Parse(rec.Header().Get("X-Request-ID")); err != nil {
			t.Errorf("expected uuid request id, got %q", rec.Header().Get("X-Request-ID"))
		}
	})

	t.Run("reuses valid client id", func(t *testing.T) {
		id := uuid.New().String()
		req := httptest.NewRequest("GET", "/ping", nil)
		req.Header.Set("X-Request-ID", id)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Header().Get("X-Request-ID") != id {
			t.Errorf("expected %s, got %s", id, rec.Header().Get("X-Request-ID"))
		}
	})

	t.Run("replaces malformed client id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/ping", nil)
		req.Header.Set("X-Request-ID", "<script>")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Header().Get("X-Request-ID") == "<script>" {
			t.Error("expected malformed id to be replaced")
		}
	})
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/app", func(c *gin.Context) {
		_ = c.Error(apperrors.ErrBankAccountNotFound)
	})
	r.GET("/unexpected", func(c *gin.Context) {
		_ = c.Error(errors.New("boom"))
	})
	r.GET("/bind", func(c *gin.Context) {
		_ = c.Error(errors.New("amount is required")).SetType(gin.ErrorTypeBind)
	})
	r.GET("/written", func(c *gin.Context) {
		c.Status(http.StatusAccepted)
		c.Writer.WriteHeaderNow()
		_ = c.Error(errors.New("late failure"))
	})
	r.GET("/ok", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	tests := []struct {
		path       string
		wantStatus int
		wantCode   string
	}{
		{"/app", http.StatusNotFound, "BANK_ACCOUNT_NOT_FOUND"},
		{"/unexpected", http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"/bind", http.StatusBadRequest, "INVALID_INPUT"},
		{"/written", http.StatusAccepted, ""},
		{"/ok", http.StatusNoContent, ""},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest("GET", tt.path, nil))

			if rec.Code != tt.wantStatus {
				t.Errorf("expected %d, got %d", tt.wantStatus, rec.Code)
			}
			if tt.wantCode == "" {
				return
			}
			var body struct {
				Error struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to parse body: %v", err)
			}
			if body.Error.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, body.Error.Code)
			}
		})
	}
}
