package services

import (
	"time"

	"github.com/shopspring/decimal"

	"financehub/internal/models"
)

// Sample records written the first time the application starts, so a new
// household sees a populated dashboard.

func seedBankAccounts() []models.BankAccount {
	now := time.Now().UTC()
	return []models.BankAccount{
		{ID: "1", Name: "HDFC Salary Account", Balance: decimal.NewFromInt(85000), Type: models.AccountTypeSavings, LastUpdated: now},
		{ID: "2", Name: "ICICI Savings", Balance: decimal.NewFromInt(45000), Type: models.AccountTypeSavings, LastUpdated: now},
		{ID: "3", Name: "HDFC Credit Card", Balance: decimal.NewFromInt(-15000), Type: models.AccountTypeCreditCard, LastUpdated: now},
		{ID: "4", Name: "SBI Savings", Balance: decimal.NewFromInt(25000), Type: models.AccountTypeSavings, LastUpdated: now},
	}
}

func seedIncomes() []models.Income {
	return []models.Income{
		{ID: "1", Source: "Salary", Amount: decimal.NewFromInt(95000), Person: models.PersonA},
		{ID: "2", Source: "Salary", Amount: decimal.NewFromInt(85000), Person: models.PersonB},
	}
}

func seedFixedExpenses() []models.FixedExpense {
	return []models.FixedExpense{
		{ID: "1", Name: "Rent", Amount: decimal.NewFromInt(25000), DueDay: 5, Category: "Housing"},
		{ID: "2", Name: "Electricity", Amount: decimal.NewFromInt(2500), DueDay: 10, Category: "Utilities"},
		{ID: "3", Name: "Internet", Amount: decimal.NewFromInt(1200), DueDay: 15, Category: "Utilities"},
		{ID: "4", Name: "Maid", Amount: decimal.NewFromInt(3000), DueDay: 1, Category: "Services"},
	}
}
