package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType represents the type of bank account
type AccountType string

const (
	AccountTypeSavings    AccountType = "savings"
	AccountTypeCurrent    AccountType = "current"
	AccountTypeCreditCard AccountType = "credit_card"
)

// BankAccount is a bank or card balance tracked by hand.
// Credit card balances are kept at or below zero: the negative amount is
// what is owed.
type BankAccount struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Balance     decimal.Decimal `json:"balance"`
	Type        AccountType     `json:"type"`
	LastUpdated time.Time       `json:"last_updated"`
}

// IsCreditCard reports whether the account is a credit card.
func (a BankAccount) IsCreditCard() bool {
	return a.Type == AccountTypeCreditCard
}
