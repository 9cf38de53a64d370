package services

import (
	"context"
	"time"

	"financehub/internal/finance"
	"financehub/internal/models"
	"financehub/internal/pagination"
)

// transactionService handles transaction records.
type transactionService struct {
	ledger *Ledger
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(ledger *Ledger) TransactionServicer {
	return &transactionService{ledger: ledger}
}

// CreateTransaction records a transaction. New transactions go first, so
// the collection stays newest first.
func (s *transactionService) CreateTransaction(ctx context.Context, tx models.Transaction) (*models.Transaction, error) {
	return transactions.add(ctx, s.ledger, tx)
}

// GetTransactions returns a page of the transactions matching filter.
func (s *transactionService) GetTransactions(filter finance.TransactionFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	result := pagination.Slice(finance.FilterTransactions(transactions.list(s.ledger), filter), page)
	return &result, nil
}

// GetTransactionByID returns one transaction.
func (s *transactionService) GetTransactionByID(id string) (*models.Transaction, error) {
	return transactions.get(s.ledger, id)
}

// DeleteTransaction removes a transaction.
func (s *transactionService) DeleteTransaction(ctx context.Context, id string) error {
	_, err := transactions.remove(ctx, s.ledger, id)
	return err
}

// GetSummary returns the expense tracker view of the matching transactions.
func (s *transactionService) GetSummary(filter finance.TransactionFilter, now time.Time) (*finance.TrackerView, error) {
	view := finance.Tracker(transactions.list(s.ledger), filter, now)
	return &view, nil
}
