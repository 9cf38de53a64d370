package finance

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"financehub/internal/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(dec(want)) {
		t.Errorf("expected %s, got %s", want, got.String())
	}
}

func assertFloat(t *testing.T, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func expense(date models.Date, amount, category string, kind models.TransactionKind, mode models.PaymentMode) models.Transaction {
	return models.Transaction{
		ID:          date.String() + "-" + category + "-" + amount,
		Date:        date,
		Amount:      dec(amount),
		Category:    category,
		Kind:        kind,
		PaymentMode: mode,
	}
}

// sampleCollections mirrors a typical household: two salaries, four fixed
// bills and 12000 of variable spending in March 2025.
func sampleCollections() models.Collections {
	return models.Collections{
		Incomes: []models.Income{
			{ID: "1", Source: "Salary", Amount: dec("95000"), Person: models.PersonA},
			{ID: "2", Source: "Salary", Amount: dec("85000"), Person: models.PersonB},
		},
		FixedExpenses: []models.FixedExpense{
			{ID: "1", Name: "Rent", Amount: dec("25000"), DueDay: 5, Category: "Housing"},
			{ID: "2", Name: "Electricity", Amount: dec("2500"), DueDay: 10, Category: "Utilities"},
			{ID: "3", Name: "Internet", Amount: dec("1200"), DueDay: 15, Category: "Utilities"},
			{ID: "4", Name: "Maid", Amount: dec("3000"), DueDay: 1, Category: "Services"},
		},
		Transactions: []models.Transaction{
			expense(models.NewDate(2025, time.March, 20), "4000", "Groceries", models.TransactionKindEssential, models.PaymentModeUPI),
			expense(models.NewDate(2025, time.March, 12), "5000", "Dining Out", models.TransactionKindOther, models.PaymentModeCreditCard),
			expense(models.NewDate(2025, time.March, 3), "3000", "Groceries", models.TransactionKindEssential, models.PaymentModeCash),
			expense(models.NewDate(2025, time.March, 1), "180000", "Salary", models.TransactionKindIncome, models.PaymentModeDebit),
			expense(models.NewDate(2025, time.February, 27), "7000", "Travel", models.TransactionKindOther, models.PaymentModeUPI),
		},
		BankAccounts: []models.BankAccount{
			{ID: "1", Name: "HDFC Salary Account", Balance: dec("85000"), Type: models.AccountTypeSavings},
			{ID: "2", Name: "ICICI Savings", Balance: dec("45000"), Type: models.AccountTypeSavings},
			{ID: "3", Name: "HDFC Credit Card", Balance: dec("-15000"), Type: models.AccountTypeCreditCard},
			{ID: "4", Name: "SBI Savings", Balance: dec("25000"), Type: models.AccountTypeCurrent},
		},
		Contributions: []models.Contribution{
			{ID: "1", Name: "Nifty Index", Amount: dec("5000"), Frequency: models.FrequencyMonthly, Category: models.ContributionCategoryIndexFund, ExpectedReturn: 12},
			{ID: "2", Name: "ELSS", Amount: dec("9000"), Frequency: models.FrequencyQuarterly, Category: models.ContributionCategoryTaxSaving, ExpectedReturn: 8},
		},
		InsurancePolicies: []models.InsurancePolicy{
			{ID: "1", Name: "Term Plan", Premium: dec("12000"), Frequency: models.FrequencyYearly, Type: models.PolicyTypeTerm, CoverAmount: dec("10000000"), DueDay: 15},
			{ID: "2", Name: "Family Floater", Premium: dec("6000"), Frequency: models.FrequencyHalfYearly, Type: models.PolicyTypeHealth, CoverAmount: dec("500000"), DueDay: 1},
		},
	}
}
