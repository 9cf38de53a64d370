package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"financehub/internal/finance"
	"financehub/internal/models"
	"financehub/internal/pagination"
)

// bankAccountService handles bank account records.
type bankAccountService struct {
	ledger *Ledger
}

// NewBankAccountService creates a new BankAccountServicer.
func NewBankAccountService(ledger *Ledger) BankAccountServicer {
	return &bankAccountService{ledger: ledger}
}

// CreateBankAccount adds an account. Names are not required to be unique.
func (s *bankAccountService) CreateBankAccount(ctx context.Context, account models.BankAccount) (*models.BankAccount, error) {
	account.LastUpdated = time.Now().UTC()
	return bankAccounts.add(ctx, s.ledger, account)
}

// GetBankAccounts returns a page of accounts in insertion order.
func (s *bankAccountService) GetBankAccounts(page pagination.PageRequest) (*pagination.PageResponse[models.BankAccount], error) {
	result := pagination.Slice(bankAccounts.list(s.ledger), page)
	return &result, nil
}

// GetBankAccountByID returns one account.
func (s *bankAccountService) GetBankAccountByID(id string) (*models.BankAccount, error) {
	return bankAccounts.get(s.ledger, id)
}

// UpdateBalance sets an account's balance and refreshes LastUpdated.
func (s *bankAccountService) UpdateBalance(ctx context.Context, id string, balance decimal.Decimal) (*models.BankAccount, error) {
	return bankAccounts.update(ctx, s.ledger, id, func(a models.BankAccount) models.BankAccount {
		a.Balance = balance
		a.LastUpdated = time.Now().UTC()
		return a
	})
}

// DeleteBankAccount removes an account. Transactions that reference it by
// name are left untouched.
func (s *bankAccountService) DeleteBankAccount(ctx context.Context, id string) error {
	_, err := bankAccounts.remove(ctx, s.ledger, id)
	return err
}

// GetAccountActivity summarizes the transactions that reference an account.
func (s *bankAccountService) GetAccountActivity(id string) (*finance.Activity, error) {
	account, err := bankAccounts.get(s.ledger, id)
	if err != nil {
		return nil, err
	}
	activity := finance.AccountActivity(*account, transactions.list(s.ledger))
	return &activity, nil
}
