package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"financehub/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() string {
	return fmt.Sprintf("test-%d", counter.Add(1))
}

// Money parses a decimal literal and panics on malformed input.
func Money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// NewTransaction builds a transaction with a unique id.
func NewTransaction(date models.Date, amount string, kind models.TransactionKind) models.Transaction {
	return models.Transaction{
		ID:          nextID(),
		Date:        date,
		Amount:      Money(amount),
		Category:    "Groceries",
		Kind:        kind,
		PaymentMode: models.PaymentModeUPI,
	}
}

// NewBankAccount builds an account with a unique id.
func NewBankAccount(name, balance string, accountType models.AccountType) models.BankAccount {
	return models.BankAccount{
		ID:          nextID(),
		Name:        name,
		Balance:     Money(balance),
		Type:        accountType,
		LastUpdated: time.Now().UTC(),
	}
}

// NewIncome builds an income with a unique id.
func NewIncome(amount string, person models.Person) models.Income {
	return models.Income{ID: nextID(), Source: "Salary", Amount: Money(amount), Person: person}
}

// NewFixedExpense builds a fixed expense due on the 5th.
func NewFixedExpense(name, amount, category string) models.FixedExpense {
	return models.FixedExpense{ID: nextID(), Name: name, Amount: Money(amount), DueDay: 5, Category: category}
}

// NewContribution builds an equity SIP.
func NewContribution(amount string, frequency models.Frequency, expectedReturn float64) models.Contribution {
	return models.Contribution{
		ID:             nextID(),
		Name:           "Test SIP",
		Amount:         Money(amount),
		Frequency:      frequency,
		Category:       models.ContributionCategoryEquity,
		StartDate:      models.NewDate(2024, time.January, 1),
		ExpectedReturn: expectedReturn,
	}
}

// NewInsurancePolicy builds a policy due on the 1st.
func NewInsurancePolicy(premium string, frequency models.Frequency, policyType models.PolicyType, cover string) models.InsurancePolicy {
	return models.InsurancePolicy{
		ID:          nextID(),
		Name:        "Test Policy",
		Premium:     Money(premium),
		Frequency:   frequency,
		Type:        policyType,
		CoverAmount: Money(cover),
		DueDay:      1,
	}
}

// CreateTestSnapshot stores a summary snapshot for the given month.
func CreateTestSnapshot(t *testing.T, db *gorm.DB, year int, month time.Month) *models.SummarySnapshot {
	t.Helper()

	snap := &models.SummarySnapshot{
		Year:                year,
		Month:               int(month),
		RecordedAt:          time.Date(year, month, 28, 0, 0, 0, 0, time.UTC),
		TotalIncome:         Money("180000"),
		VariableExpenses:    Money("12000"),
		FixedExpenses:       Money("31700"),
		SavingsRate:         75.72,
		NetBankBalance:      Money("155000"),
		CreditCardDebt:      Money("15000"),
		NetWorth:            Money("140000"),
		MonthlyContribution: Money("8000"),
		MonthlyPremium:      Money("2000"),
	}
	if err := db.Create(snap).Error; err != nil {
		t.Fatalf("failed to create test snapshot: %v", err)
	}
	return snap
}
