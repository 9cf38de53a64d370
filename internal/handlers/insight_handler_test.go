package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"financehub/internal/finance"
	"financehub/internal/services"
)

type mockInsightService struct {
	getDashboardFn func(year int, month time.Month) *finance.DashboardView
	getBudgetFn    func(year int, month time.Month) *finance.BudgetView
}

func (m *mockInsightService) GetDashboard(year int, month time.Month) *finance.DashboardView {
	if m.getDashboardFn != nil {
		return m.getDashboardFn(year, month)
	}
	return &finance.DashboardView{Year: year, Month: int(month)}
}

func (m *mockInsightService) GetIncomeSummary() *finance.IncomeView {
	return &finance.IncomeView{TotalIncome: decimal.NewFromInt(180000)}
}

func (m *mockInsightService) GetBudget(year int, month time.Month) *finance.BudgetView {
	if m.getBudgetFn != nil {
		return m.getBudgetFn(year, month)
	}
	return &finance.BudgetView{Year: year, Month: int(month)}
}

func (m *mockInsightService) GetInvestments() *finance.InvestmentView {
	return &finance.InvestmentView{ProjectionHorizonMonths: finance.ProjectionHorizonMonths}
}

var _ services.InsightServicer = (*mockInsightService)(nil)

func setupInsightRouter(handler *InsightHandler) *gin.Engine {
	r := gin.New()
	r.GET("/insights/dashboard", handler.GetDashboard)
	r.GET("/insights/income", handler.GetIncome)
	r.GET("/insights/budget", handler.GetBudget)
	r.GET("/insights/investments", handler.GetInvestments)
	return r
}

func TestInsightHandler_GetDashboard(t *testing.T) {
	t.Run("uses requested period", func(t *testing.T) {
		var gotYear int
		var gotMonth time.Month
		svc := &mockInsightService{
			getDashboardFn: func(year int, month time.Month) *finance.DashboardView {
				gotYear, gotMonth = year, month
				return &finance.DashboardView{Year: year, Month: int(month), SavingsRate: 75.72}
			},
		}
		r := setupInsightRouter(NewInsightHandler(svc))

		rec := doRequest(r, "GET", "/insights/dashboard?year=2025&month=3", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotYear != 2025 || gotMonth != time.March {
			t.Errorf("expected 2025-03, got %d-%d", gotYear, gotMonth)
		}
		if parseJSON(t, rec)["savings_rate"].(float64) != 75.72 {
			t.Error("expected savings rate 75.72")
		}
	})

	t.Run("returns 400 on invalid month", func(t *testing.T) {
		r := setupInsightRouter(NewInsightHandler(&mockInsightService{}))

		rec := doRequest(r, "GET", "/insights/dashboard?month=13", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestInsightHandler_Views(t *testing.T) {
	r := setupInsightRouter(NewInsightHandler(&mockInsightService{}))

	tests := []struct {
		path  string
		key   string
		value float64
	}{
		{"/insights/income", "total_income", 180000},
		{"/insights/budget?year=2024&month=12", "month", 12},
		{"/insights/investments", "projection_horizon_months", 120},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := doRequest(r, "GET", tt.path, "")

			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			if got := parseJSON(t, rec)[tt.key]; got != tt.value {
				t.Errorf("expected %s %v, got %v", tt.key, tt.value, got)
			}
		})
	}
}
