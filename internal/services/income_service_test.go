package services

import (
	"context"
	"testing"

	"financehub/internal/models"
	"financehub/internal/pagination"
	"financehub/internal/testutil"
)

func TestIncomeService(t *testing.T) {
	ledger, _ := newTestLedger(t)
	svc := NewIncomeService(ledger)
	ctx := context.Background()

	a, err := svc.CreateIncome(ctx, testutil.NewIncome("95000", models.PersonA))
	testutil.AssertNoError(t, err)
	_, err = svc.CreateIncome(ctx, testutil.NewIncome("85000", models.PersonB))
	testutil.AssertNoError(t, err)

	page, err := svc.GetIncomes(pagination.PageRequest{})
	testutil.AssertNoError(t, err)
	if page.TotalItems != 2 || page.Data[0].ID != a.ID {
		t.Errorf("expected 2 incomes in insertion order, got %+v", page.Data)
	}

	testutil.AssertNoError(t, svc.DeleteIncome(ctx, a.ID))
	testutil.AssertAppError(t, svc.DeleteIncome(ctx, a.ID), "INCOME_NOT_FOUND")
}
