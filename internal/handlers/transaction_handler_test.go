package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "financehub/internal/errors"
	"financehub/internal/finance"
	"financehub/internal/models"
	"financehub/internal/pagination"
)

func setupTransactionRouter(handler *TransactionHandler) *gin.Engine {
	r := gin.New()
	r.POST("/transactions", handler.CreateTransaction)
	r.GET("/transactions", handler.GetTransactions)
	r.GET("/transactions/summary", handler.GetSummary)
	r.GET("/transactions/:id", handler.GetTransactionByID)
	r.DELETE("/transactions/:id", handler.DeleteTransaction)
	return r
}

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		var got models.Transaction
		txSvc := &mockTransactionService{
			createTransactionFn: func(_ context.Context, tx models.Transaction) (*models.Transaction, error) {
				got = tx
				tx.ID = "tx-1"
				return &tx, nil
			},
		}
		audit := &mockAuditService{}
		r := setupTransactionRouter(NewTransactionHandler(txSvc, audit))

		rec := doRequest(r, "POST", "/transactions",
			`{"date":"2025-03-01","amount":499.5,"category":"Groceries","kind":"essential","payment_mode":"upi"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		tx := result["transaction"].(map[string]interface{})
		if tx["amount"].(float64) != 499.5 {
			t.Errorf("expected amount 499.5, got %v", tx["amount"])
		}
		if tx["date"] != "2025-03-01" {
			t.Errorf("expected date 2025-03-01, got %v", tx["date"])
		}
		if got.Kind != models.TransactionKindEssential || got.PaymentMode != models.PaymentModeUPI {
			t.Errorf("unexpected transaction passed to service: %+v", got)
		}
		if len(audit.entries) != 1 || audit.entries[0].action != "CREATE_TRANSACTION" || audit.entries[0].resourceID != "tx-1" {
			t.Errorf("unexpected audit entries: %+v", audit.entries)
		}
	})

	tests := []struct {
		name string
		body string
	}{
		{"zero amount", `{"date":"2025-03-01","amount":0,"category":"Food","kind":"essential","payment_mode":"upi"}`},
		{"negative amount", `{"date":"2025-03-01","amount":-5,"category":"Food","kind":"essential","payment_mode":"upi"}`},
		{"missing date", `{"amount":10,"category":"Food","kind":"essential","payment_mode":"upi"}`},
		{"bad date", `{"date":"03/01/2025","amount":10,"category":"Food","kind":"essential","payment_mode":"upi"}`},
		{"missing category", `{"date":"2025-03-01","amount":10,"kind":"essential","payment_mode":"upi"}`},
		{"invalid kind", `{"date":"2025-03-01","amount":10,"category":"Food","kind":"luxury","payment_mode":"upi"}`},
		{"invalid payment mode", `{"date":"2025-03-01","amount":10,"category":"Food","kind":"other","payment_mode":"cheque"}`},
	}
	for _, tt := range tests {
		t.Run("returns 400 on "+tt.name, func(t *testing.T) {
			r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}, &mockAuditService{}))

			rec := doRequest(r, "POST", "/transactions", tt.body)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
			assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
		})
	}

	t.Run("returns 409 on duplicate id", func(t *testing.T) {
		txSvc := &mockTransactionService{
			createTransactionFn: func(_ context.Context, _ models.Transaction) (*models.Transaction, error) {
				return nil, apperrors.ErrDuplicateID
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/transactions",
			`{"id":"tx-1","date":"2025-03-01","amount":10,"category":"Food","kind":"other","payment_mode":"cash"}`)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "DUPLICATE_ID")
	})
}

func TestTransactionHandler_GetTransactions(t *testing.T) {
	t.Run("passes filters and pagination", func(t *testing.T) {
		var gotFilter finance.TransactionFilter
		var gotPage pagination.PageRequest
		txSvc := &mockTransactionService{
			getTransactionsFn: func(filter finance.TransactionFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
				gotFilter, gotPage = filter, page
				resp := pagination.NewPageResponse([]models.Transaction{{ID: "tx-1"}}, 2, 10, 11)
				return &resp, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/transactions?kind=other&payment_mode=credit_card&bank_account=HDFC&page=2&page_size=10", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotFilter.Kind != models.TransactionKindOther || gotFilter.PaymentMode != models.PaymentModeCreditCard || gotFilter.BankAccount != "HDFC" {
			t.Errorf("unexpected filter: %+v", gotFilter)
		}
		if gotPage.Page != 2 || gotPage.PageSize != 10 {
			t.Errorf("unexpected page: %+v", gotPage)
		}
		result := parseJSON(t, rec)
		if result["total_pages"].(float64) != 2 {
			t.Errorf("expected 2 pages, got %v", result["total_pages"])
		}
	})

	t.Run("returns 400 on invalid kind", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}, &mockAuditService{}))

		rec := doRequest(r, "GET", "/transactions?kind=transfer", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on page size over limit", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}, &mockAuditService{}))

		rec := doRequest(r, "GET", "/transactions?page_size=500", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_GetSummary(t *testing.T) {
	txSvc := &mockTransactionService{
		getSummaryFn: func(filter finance.TransactionFilter, _ time.Time) (*finance.TrackerView, error) {
			if filter.PaymentMode != models.PaymentModeCash {
				t.Errorf("expected cash filter, got %q", filter.PaymentMode)
			}
			return &finance.TrackerView{
				TransactionTotals: finance.TransactionTotals{Count: 3},
				Days:              []finance.DayGroup{},
			}, nil
		},
	}
	r := setupTransactionRouter(NewTransactionHandler(txSvc, &mockAuditService{}))

	rec := doRequest(r, "GET", "/transactions/summary?payment_mode=cash", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if parseJSON(t, rec)["count"].(float64) != 3 {
		t.Error("expected count 3")
	}
}

func TestTransactionHandler_GetTransactionByID(t *testing.T) {
	t.Run("returns 200", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}, &mockAuditService{}))

		rec := doRequest(r, "GET", "/transactions/tx-9", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		tx := parseJSON(t, rec)["transaction"].(map[string]interface{})
		if tx["id"] != "tx-9" {
			t.Errorf("expected id tx-9, got %v", tx["id"])
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		txSvc := &mockTransactionService{
			getTransactionByIDFn: func(string) (*models.Transaction, error) {
				return nil, apperrors.ErrTransactionNotFound
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/transactions/missing", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "TRANSACTION_NOT_FOUND")
	})
}

func TestTransactionHandler_DeleteTransaction(t *testing.T) {
	t.Run("returns 200 and audits", func(t *testing.T) {
		audit := &mockAuditService{}
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}, audit))

		rec := doRequest(r, "DELETE", "/transactions/tx-1", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if len(audit.entries) != 1 || audit.entries[0].action != "DELETE_TRANSACTION" {
			t.Errorf("unexpected audit entries: %+v", audit.entries)
		}
	})

	t.Run("returns 404 and skips audit when not found", func(t *testing.T) {
		txSvc := &mockTransactionService{
			deleteTransactionFn: func(context.Context, string) error { return apperrors.ErrTransactionNotFound },
		}
		audit := &mockAuditService{}
		r := setupTransactionRouter(NewTransactionHandler(txSvc, audit))

		rec := doRequest(r, "DELETE", "/transactions/missing", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		if len(audit.entries) != 0 {
			t.Errorf("expected no audit entries, got %d", len(audit.entries))
		}
	})
}
