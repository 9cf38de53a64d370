package services

import (
	"context"
	"testing"
	"time"

	"financehub/internal/models"
	"financehub/internal/pagination"
	"financehub/internal/testutil"
)

func TestCreateBankAccount(t *testing.T) {
	ledger, _ := newTestLedger(t)
	svc := NewBankAccountService(ledger)

	account := testutil.NewBankAccount("HDFC Salary", "85000", models.AccountTypeSavings)
	account.LastUpdated = time.Time{}
	created, err := svc.CreateBankAccount(context.Background(), account)
	testutil.AssertNoError(t, err)

	if created.LastUpdated.IsZero() {
		t.Error("expected last_updated to be set")
	}
	page, err := svc.GetBankAccounts(pagination.PageRequest{})
	testutil.AssertNoError(t, err)
	if page.TotalItems != 1 {
		t.Errorf("expected 1 account, got %d", page.TotalItems)
	}
}

func TestUpdateBalance(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ledger, _ := newTestLedger(t)
		svc := NewBankAccountService(ledger)
		ctx := context.Background()

		account := testutil.NewBankAccount("HDFC Credit Card", "-15000", models.AccountTypeCreditCard)
		account.LastUpdated = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
		created, err := svc.CreateBankAccount(ctx, account)
		testutil.AssertNoError(t, err)
		before := created.LastUpdated

		updated, err := svc.UpdateBalance(ctx, created.ID, testutil.Money("-5000.50"))
		testutil.AssertNoError(t, err)
		testutil.AssertDecimal(t, updated.Balance, "-5000.50")
		if updated.LastUpdated.Before(before) {
			t.Error("expected last_updated to move forward")
		}

		got, err := svc.GetBankAccountByID(created.ID)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimal(t, got.Balance, "-5000.50")
	})

	t.Run("not_found", func(t *testing.T) {
		ledger, _ := newTestLedger(t)
		_, err := NewBankAccountService(ledger).UpdateBalance(context.Background(), "missing", testutil.Money("1"))
		testutil.AssertAppError(t, err, "BANK_ACCOUNT_NOT_FOUND")
	})
}

func TestDeleteBankAccount(t *testing.T) {
	ledger, _ := newTestLedger(t)
	svc := NewBankAccountService(ledger)
	txSvc := NewTransactionService(ledger)
	ctx := context.Background()

	created, err := svc.CreateBankAccount(ctx, testutil.NewBankAccount("ICICI", "100", models.AccountTypeSavings))
	testutil.AssertNoError(t, err)
	tx := testutil.NewTransaction(models.NewDate(2025, time.March, 1), "50", models.TransactionKindOther)
	tx.BankAccount = "ICICI"
	_, err = txSvc.CreateTransaction(ctx, tx)
	testutil.AssertNoError(t, err)

	testutil.AssertNoError(t, svc.DeleteBankAccount(ctx, created.ID))
	_, err = svc.GetBankAccountByID(created.ID)
	testutil.AssertAppError(t, err, "BANK_ACCOUNT_NOT_FOUND")

	// Referencing transactions survive.
	got, err := txSvc.GetTransactionByID(tx.ID)
	testutil.AssertNoError(t, err)
	if got.BankAccount != "ICICI" {
		t.Errorf("expected bank account reference ICICI, got %s", got.BankAccount)
	}
}

func TestGetAccountActivity(t *testing.T) {
	ledger, _ := newTestLedger(t)
	svc := NewBankAccountService(ledger)
	txSvc := NewTransactionService(ledger)
	ctx := context.Background()

	account, err := svc.CreateBankAccount(ctx, testutil.NewBankAccount("HDFC Credit Card", "-15000", models.AccountTypeCreditCard))
	testutil.AssertNoError(t, err)
	for i := 1; i <= 7; i++ {
		tx := testutil.NewTransaction(models.NewDate(2025, time.March, i), "100", models.TransactionKindOther)
		tx.BankAccount = "HDFC Credit Card"
		_, err := txSvc.CreateTransaction(ctx, tx)
		testutil.AssertNoError(t, err)
	}
	_, err = txSvc.CreateTransaction(ctx, testutil.NewTransaction(models.NewDate(2025, time.March, 9), "999", models.TransactionKindOther))
	testutil.AssertNoError(t, err)

	activity, err := svc.GetAccountActivity(account.ID)
	testutil.AssertNoError(t, err)
	if activity.TransactionCount != 7 {
		t.Errorf("expected 7 transactions, got %d", activity.TransactionCount)
	}
	testutil.AssertDecimal(t, activity.TotalSpent, "700")
	if len(activity.Recent) != 5 {
		t.Errorf("expected 5 recent transactions, got %d", len(activity.Recent))
	}

	_, err = svc.GetAccountActivity("missing")
	testutil.AssertAppError(t, err, "BANK_ACCOUNT_NOT_FOUND")
}
