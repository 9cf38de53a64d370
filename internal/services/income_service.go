package services

import (
	"context"

	"financehub/internal/models"
	"financehub/internal/pagination"
)

type incomeService struct {
	ledger *Ledger
}

// NewIncomeService creates a new IncomeServicer.
func NewIncomeService(ledger *Ledger) IncomeServicer {
	return &incomeService{ledger: ledger}
}

func (s *incomeService) CreateIncome(ctx context.Context, income models.Income) (*models.Income, error) {
	return incomes.add(ctx, s.ledger, income)
}

func (s *incomeService) GetIncomes(page pagination.PageRequest) (*pagination.PageResponse[models.Income], error) {
	result := pagination.Slice(incomes.list(s.ledger), page)
	return &result, nil
}

func (s *incomeService) DeleteIncome(ctx context.Context, id string) error {
	_, err := incomes.remove(ctx, s.ledger, id)
	return err
}
