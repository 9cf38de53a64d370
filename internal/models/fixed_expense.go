package models

import "github.com/shopspring/decimal"

// FixedExpenseCategories are the suggested categories for fixed expenses.
var FixedExpenseCategories = []string{"Housing", "Utilities", "Services", "Insurance", "EMI/Loans", "Other"}

// FixedExpense is a bill that recurs every month regardless of its due day.
type FixedExpense struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
	DueDay   int             `json:"due_day"`
	Category string          `json:"category"`
}
