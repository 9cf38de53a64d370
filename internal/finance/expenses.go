package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"financehub/internal/models"
)

func transactionAmount(t models.Transaction) decimal.Decimal { return t.Amount }

// MonthExpenses returns the non-income transactions dated in the given
// calendar month.
func MonthExpenses(transactions []models.Transaction, year int, month time.Month) []models.Transaction {
	return filter(transactions, func(t models.Transaction) bool {
		return t.IsExpense() && t.Date.InMonth(year, month)
	})
}

// MonthlyVariableExpenses sums the non-income transactions of a calendar month.
func MonthlyVariableExpenses(transactions []models.Transaction, year int, month time.Month) decimal.Decimal {
	return sum(MonthExpenses(transactions, year, month), transactionAmount)
}

// YearlyVariableExpenses sums the non-income transactions of a calendar year.
func YearlyVariableExpenses(transactions []models.Transaction, year int) decimal.Decimal {
	return sum(filter(transactions, func(t models.Transaction) bool {
		return t.IsExpense() && t.Date.InYear(year)
	}), transactionAmount)
}

// TotalFixedExpenses sums every fixed expense. Due days are irrelevant: each
// fixed expense recurs every month.
func TotalFixedExpenses(fixedExpenses []models.FixedExpense) decimal.Decimal {
	return sum(fixedExpenses, func(f models.FixedExpense) decimal.Decimal { return f.Amount })
}

// ExpensesByCategory groups a month's spending by category.
func ExpensesByCategory(transactions []models.Transaction, year int, month time.Month) map[string]decimal.Decimal {
	return sumBy(MonthExpenses(transactions, year, month),
		func(t models.Transaction) string { return t.Category }, transactionAmount)
}

// ExpensesByPaymentMode groups a month's spending by payment mode.
func ExpensesByPaymentMode(transactions []models.Transaction, year int, month time.Month) map[models.PaymentMode]decimal.Decimal {
	return sumBy(MonthExpenses(transactions, year, month),
		func(t models.Transaction) models.PaymentMode { return t.PaymentMode }, transactionAmount)
}

// ExpensesByKind groups a month's spending by kind. Both expense kinds are
// always present, even when zero.
func ExpensesByKind(transactions []models.Transaction, year int, month time.Month) map[models.TransactionKind]decimal.Decimal {
	groups := make(map[models.TransactionKind]decimal.Decimal, len(models.ExpenseKinds))
	for _, k := range models.ExpenseKinds {
		groups[k] = decimal.Zero
	}
	for _, t := range MonthExpenses(transactions, year, month) {
		groups[t.Kind] = groups[t.Kind].Add(t.Amount)
	}
	return groups
}

// FixedExpensesByCategory groups fixed expenses by category.
func FixedExpensesByCategory(fixedExpenses []models.FixedExpense) map[string]decimal.Decimal {
	return sumBy(fixedExpenses,
		func(f models.FixedExpense) string { return f.Category },
		func(f models.FixedExpense) decimal.Decimal { return f.Amount })
}
