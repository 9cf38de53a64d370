package services

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"financehub/internal/finance"
)

// reportService builds monthly and yearly reports.
type reportService struct {
	ledger *Ledger
}

// NewReportService creates a new ReportServicer.
func NewReportService(ledger *Ledger) ReportServicer {
	return &reportService{ledger: ledger}
}

// GetMonthlyReport returns the report for one month.
func (s *reportService) GetMonthlyReport(year int, month time.Month) *finance.MonthlyReport {
	report := finance.Monthly(s.ledger.Snapshot(), year, month)
	return &report
}

// GetYearlyReport returns the report for one year.
func (s *reportService) GetYearlyReport(year int) *finance.YearlyReport {
	report := finance.Yearly(s.ledger.Snapshot(), year)
	return &report
}

// WriteMonthlyCSV writes the monthly report as CSV rows of
// section, item and amount.
func (s *reportService) WriteMonthlyCSV(w io.Writer, year int, month time.Month) error {
	report := s.GetMonthlyReport(year, month)

	cw := csv.NewWriter(w)
	amount := func(d decimal.Decimal) string { return d.StringFixed(2) }
	rows := [][]string{
		{"section", "item", "amount"},
		{"summary", "income", amount(report.Income)},
		{"summary", "variable_expenses", amount(report.VariableExpenses)},
		{"summary", "fixed_expenses", amount(report.FixedExpenses)},
		{"summary", "total_expenses", amount(report.TotalExpenses)},
		{"summary", "savings", amount(report.Savings)},
		{"summary", "savings_rate", strconv.FormatFloat(report.SavingsRate, 'f', 2, 64)},
		{"summary", "bank_balance", amount(report.BankBalance)},
		{"summary", "credit_card_debt", amount(report.CreditCardDebt)},
	}
	for _, c := range report.ExpensesByCategory {
		rows = append(rows, []string{"category", csvText(c.Key), amount(c.Amount)})
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	return cw.Error()
}

// csvText quotes free text that a spreadsheet would evaluate as a formula.
func csvText(s string) string {
	if s != "" && strings.ContainsRune("=+-@", rune(s[0])) {
		return "'" + s
	}
	return s
}
