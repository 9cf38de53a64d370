package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"financehub/internal/models"
)

// MonthlyReport summarizes one calendar month.
type MonthlyReport struct {
	Year               int              `json:"year"`
	Month              int              `json:"month"`
	Income             decimal.Decimal  `json:"income"`
	VariableExpenses   decimal.Decimal  `json:"variable_expenses"`
	FixedExpenses      decimal.Decimal  `json:"fixed_expenses"`
	TotalExpenses      decimal.Decimal  `json:"total_expenses"`
	Savings            decimal.Decimal  `json:"savings"`
	SavingsRate        float64          `json:"savings_rate"`
	BankBalance        decimal.Decimal  `json:"bank_balance"`
	CreditCardDebt     decimal.Decimal  `json:"credit_card_debt"`
	ExpensesByCategory []CategoryAmount `json:"expenses_by_category"`
}

// Monthly builds the report for the given month.
func Monthly(c models.Collections, year int, month time.Month) MonthlyReport {
	income := TotalIncome(c.Incomes)
	variable := MonthlyVariableExpenses(c.Transactions, year, month)
	fixed := TotalFixedExpenses(c.FixedExpenses)
	return MonthlyReport{
		Year:               year,
		Month:              int(month),
		Income:             money(income),
		VariableExpenses:   money(variable),
		FixedExpenses:      money(fixed),
		TotalExpenses:      money(variable.Add(fixed)),
		Savings:            money(RemainingBudget(income, variable, fixed)),
		SavingsRate:        percent(SavingsRate(income, variable, fixed)),
		BankBalance:        money(NetBankBalance(c.BankAccounts)),
		CreditCardDebt:     money(TotalCreditCardDebt(c.BankAccounts)),
		ExpensesByCategory: moneyList(Sorted(ExpensesByCategory(c.Transactions, year, month))),
	}
}

// YearlyReport summarizes one calendar year. Income and fixed expenses are
// monthly figures scaled by twelve; variable expenses are the year's
// recorded spending.
type YearlyReport struct {
	Year             int             `json:"year"`
	Income           decimal.Decimal `json:"income"`
	VariableExpenses decimal.Decimal `json:"variable_expenses"`
	FixedExpenses    decimal.Decimal `json:"fixed_expenses"`
	TotalExpenses    decimal.Decimal `json:"total_expenses"`
	Savings          decimal.Decimal `json:"savings"`
	SavingsRate      float64         `json:"savings_rate"`
}

// Yearly builds the report for the given year.
func Yearly(c models.Collections, year int) YearlyReport {
	twelve := decimal.NewFromInt(12)
	income := TotalIncome(c.Incomes).Mul(twelve)
	variable := YearlyVariableExpenses(c.Transactions, year)
	fixed := TotalFixedExpenses(c.FixedExpenses).Mul(twelve)
	return YearlyReport{
		Year:             year,
		Income:           money(income),
		VariableExpenses: money(variable),
		FixedExpenses:    money(fixed),
		TotalExpenses:    money(variable.Add(fixed)),
		Savings:          money(RemainingBudget(income, variable, fixed)),
		SavingsRate:      percent(SavingsRate(income, variable, fixed)),
	}
}
