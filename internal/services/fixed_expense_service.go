package services

import (
	"context"

	"financehub/internal/models"
	"financehub/internal/pagination"
)

type fixedExpenseService struct {
	ledger *Ledger
}

// NewFixedExpenseService creates a new FixedExpenseServicer.
func NewFixedExpenseService(ledger *Ledger) FixedExpenseServicer {
	return &fixedExpenseService{ledger: ledger}
}

func (s *fixedExpenseService) CreateFixedExpense(ctx context.Context, expense models.FixedExpense) (*models.FixedExpense, error) {
	return fixedExpenses.add(ctx, s.ledger, expense)
}

func (s *fixedExpenseService) GetFixedExpenses(page pagination.PageRequest) (*pagination.PageResponse[models.FixedExpense], error) {
	result := pagination.Slice(fixedExpenses.list(s.ledger), page)
	return &result, nil
}

func (s *fixedExpenseService) DeleteFixedExpense(ctx context.Context, id string) error {
	_, err := fixedExpenses.remove(ctx, s.ledger, id)
	return err
}
