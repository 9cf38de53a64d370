package services

import (
	"time"

	"financehub/internal/finance"
)

// insightService serves the derived views. Every call recomputes from the
// current collections.
type insightService struct {
	ledger *Ledger
}

// NewInsightService creates a new InsightServicer.
func NewInsightService(ledger *Ledger) InsightServicer {
	return &insightService{ledger: ledger}
}

func (s *insightService) GetDashboard(year int, month time.Month) *finance.DashboardView {
	view := finance.Dashboard(s.ledger.Snapshot(), year, month)
	return &view
}

func (s *insightService) GetIncomeSummary() *finance.IncomeView {
	view := finance.IncomeSummary(s.ledger.Snapshot().Incomes)
	return &view
}

func (s *insightService) GetBudget(year int, month time.Month) *finance.BudgetView {
	view := finance.BudgetPlan(s.ledger.Snapshot(), year, month)
	return &view
}

func (s *insightService) GetInvestments() *finance.InvestmentView {
	view := finance.Investments(s.ledger.Snapshot())
	return &view
}
