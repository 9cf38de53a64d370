package models

import "github.com/shopspring/decimal"

// TransactionKind classifies a transaction for budgeting.
type TransactionKind string

const (
	TransactionKindEssential TransactionKind = "essential"
	TransactionKindOther     TransactionKind = "other"
	TransactionKindIncome    TransactionKind = "income"
)

// ExpenseKinds are the kinds counted as spending.
var ExpenseKinds = []TransactionKind{TransactionKindEssential, TransactionKindOther}

// PaymentMode is the instrument used to settle a transaction.
type PaymentMode string

const (
	PaymentModeUPI        PaymentMode = "upi"
	PaymentModeCreditCard PaymentMode = "credit_card"
	PaymentModeCash       PaymentMode = "cash"
	PaymentModeDebit      PaymentMode = "debit"
)

// Category suggestions offered per kind. Category is free text; these are
// only hints for clients.
var (
	EssentialCategories = []string{"Groceries", "Rent", "Utilities", "Healthcare", "Transport", "Insurance"}
	OtherCategories     = []string{"Entertainment", "Dining Out", "Shopping", "Travel", "Hobbies", "Misc"}
)

// Transaction is one variable cash movement.
type Transaction struct {
	ID          string          `json:"id"`
	Date        Date            `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Kind        TransactionKind `json:"kind"`
	PaymentMode PaymentMode     `json:"payment_mode"`
	// BankAccount holds the name of a BankAccount. The reference is not
	// enforced and may dangle after the account is deleted.
	BankAccount string `json:"bank_account,omitempty"`
	Description string `json:"description"`
}

// IsExpense reports whether the transaction counts towards spending.
func (t Transaction) IsExpense() bool {
	return t.Kind != TransactionKindIncome
}
