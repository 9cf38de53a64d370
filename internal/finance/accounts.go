package finance

import (
	"github.com/shopspring/decimal"

	"financehub/internal/models"
)

// RecentActivityLimit is how many transactions AccountActivity lists as recent.
const RecentActivityLimit = 5

func accountBalance(a models.BankAccount) decimal.Decimal { return a.Balance }

// NetBankBalance sums the balances of every account that is not a credit card.
func NetBankBalance(accounts []models.BankAccount) decimal.Decimal {
	return sum(filter(accounts, func(a models.BankAccount) bool { return !a.IsCreditCard() }), accountBalance)
}

// TotalCreditCardDebt is the negated sum of all credit card balances.
// Balances are summed before negating, so an overpaid card with a positive
// balance reduces the reported debt and the result can be negative.
func TotalCreditCardDebt(accounts []models.BankAccount) decimal.Decimal {
	return sum(filter(accounts, models.BankAccount.IsCreditCard), accountBalance).Neg()
}

// NetWorth is the net bank balance minus credit card debt.
func NetWorth(accounts []models.BankAccount) decimal.Decimal {
	return NetBankBalance(accounts).Sub(TotalCreditCardDebt(accounts))
}

// CreditCardAlert reports whether any credit card debt is outstanding.
func CreditCardAlert(accounts []models.BankAccount) bool {
	return TotalCreditCardDebt(accounts).IsPositive()
}

// AccountCounts returns the number of bank accounts and of credit cards.
func AccountCounts(accounts []models.BankAccount) (bankAccounts, creditCards int) {
	for _, a := range accounts {
		if a.IsCreditCard() {
			creditCards++
		} else {
			bankAccounts++
		}
	}
	return bankAccounts, creditCards
}

// Activity summarizes the transactions that reference one account.
type Activity struct {
	Account          models.BankAccount   `json:"account"`
	TransactionCount int                  `json:"transaction_count"`
	TotalSpent       decimal.Decimal      `json:"total_spent"`
	Recent           []models.Transaction `json:"recent"`
}

// AccountActivity collects the transactions whose bank account reference
// equals the account's name. Recent keeps collection order, which is newest
// first.
func AccountActivity(account models.BankAccount, transactions []models.Transaction) Activity {
	matched := filter(transactions, func(t models.Transaction) bool { return t.BankAccount == account.Name })
	recent := matched
	if len(recent) > RecentActivityLimit {
		recent = recent[:RecentActivityLimit]
	}
	return Activity{
		Account:          account,
		TransactionCount: len(matched),
		TotalSpent:       money(sum(matched, transactionAmount)),
		Recent:           recent,
	}
}
