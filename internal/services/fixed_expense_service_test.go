package services

import (
	"context"
	"testing"

	"financehub/internal/pagination"
	"financehub/internal/testutil"
)

func TestFixedExpenseService(t *testing.T) {
	ledger, _ := newTestLedger(t)
	svc := NewFixedExpenseService(ledger)
	ctx := context.Background()

	rent, err := svc.CreateFixedExpense(ctx, testutil.NewFixedExpense("Rent", "25000", "Housing"))
	testutil.AssertNoError(t, err)
	_, err = svc.CreateFixedExpense(ctx, testutil.NewFixedExpense("Internet", "1200", "Utilities"))
	testutil.AssertNoError(t, err)

	page, err := svc.GetFixedExpenses(pagination.PageRequest{PageSize: 1})
	testutil.AssertNoError(t, err)
	if page.TotalItems != 2 || len(page.Data) != 1 || page.Data[0].Name != "Rent" {
		t.Errorf("unexpected first page: %+v", page)
	}

	testutil.AssertNoError(t, svc.DeleteFixedExpense(ctx, rent.ID))
	testutil.AssertAppError(t, svc.DeleteFixedExpense(ctx, "missing"), "FIXED_EXPENSE_NOT_FOUND")

	page, err = svc.GetFixedExpenses(pagination.PageRequest{})
	testutil.AssertNoError(t, err)
	if page.TotalItems != 1 {
		t.Errorf("expected 1 fixed expense, got %d", page.TotalItems)
	}
}
