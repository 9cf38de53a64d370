package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	apperrors "financehub/internal/errors"
	"financehub/internal/logger"
	"financehub/internal/models"
	"financehub/internal/store"
	"financehub/internal/testutil"
)

func init() {
	logger.Init("test", "")
}

// mockBackend is a store.Backend with overridable behavior.
type mockBackend struct {
	getFn func(ctx context.Context, name models.CollectionName) ([]byte, bool, error)
	putFn func(ctx context.Context, name models.CollectionName, payload []byte) error
}

func (m *mockBackend) Get(ctx context.Context, name models.CollectionName) ([]byte, bool, error) {
	if m.getFn != nil {
		return m.getFn(ctx, name)
	}
	return nil, false, nil
}

func (m *mockBackend) Put(ctx context.Context, name models.CollectionName, payload []byte) error {
	if m.putFn != nil {
		return m.putFn(ctx, name, payload)
	}
	return nil
}

// newTestLedger returns a loaded, unseeded ledger backed by a fresh database.
func newTestLedger(t *testing.T) (*Ledger, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	ledger := NewLedger(store.New(db), false)
	if err := ledger.Load(context.Background()); err != nil {
		t.Fatalf("failed to load ledger: %v", err)
	}
	return ledger, db
}

func TestLedgerLoad(t *testing.T) {
	t.Run("empty_without_seed", func(t *testing.T) {
		ledger, _ := newTestLedger(t)
		data := ledger.Snapshot()

		if len(data.Transactions) != 0 || len(data.BankAccounts) != 0 || len(data.Incomes) != 0 {
			t.Errorf("expected empty collections, got %+v", data)
		}
		if data.Transactions == nil {
			t.Error("expected non-nil empty transactions")
		}
	})

	t.Run("seeds_defaults", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		ledger := NewLedger(store.New(db), true)
		testutil.AssertNoError(t, ledger.Load(context.Background()))
		data := ledger.Snapshot()

		if len(data.BankAccounts) != 4 {
			t.Errorf("expected 4 seeded accounts, got %d", len(data.BankAccounts))
		}
		if len(data.Incomes) != 2 {
			t.Errorf("expected 2 seeded incomes, got %d", len(data.Incomes))
		}
		if len(data.FixedExpenses) != 4 {
			t.Errorf("expected 4 seeded fixed expenses, got %d", len(data.FixedExpenses))
		}
		if len(data.Transactions) != 0 || len(data.Contributions) != 0 || len(data.InsurancePolicies) != 0 {
			t.Error("expected unseeded collections to be empty")
		}

		// Seeds are persisted, so a second load does not reseed.
		var count int64
		db.Model(&models.CollectionRecord{}).Count(&count)
		if count != int64(len(models.CollectionNames)) {
			t.Errorf("expected %d stored collections, got %d", len(models.CollectionNames), count)
		}
	})

	t.Run("stored_collection_is_not_reseeded", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		s := store.New(db)
		ctx := context.Background()

		testutil.AssertNoError(t, store.SaveCollection(ctx, s, models.CollectionBankAccounts, []models.BankAccount{}))

		ledger := NewLedger(s, true)
		testutil.AssertNoError(t, ledger.Load(ctx))
		if n := len(ledger.Snapshot().BankAccounts); n != 0 {
			t.Errorf("expected stored empty accounts to stay empty, got %d", n)
		}
	})

	t.Run("read_failure", func(t *testing.T) {
		backend := &mockBackend{
			getFn: func(ctx context.Context, name models.CollectionName) ([]byte, bool, error) {
				return nil, false, errors.New("disk unavailable")
			},
		}
		ledger := NewLedger(backend, false)
		if err := ledger.Load(context.Background()); err == nil {
			t.Fatal("expected load error")
		}
	})

	t.Run("reloads_persisted_mutations", func(t *testing.T) {
		ledger, db := newTestLedger(t)
		ctx := context.Background()

		_, err := NewIncomeService(ledger).CreateIncome(ctx, testutil.NewIncome("50000", models.PersonA))
		testutil.AssertNoError(t, err)

		reloaded := NewLedger(store.New(db), true)
		testutil.AssertNoError(t, reloaded.Load(ctx))
		if n := len(reloaded.Snapshot().Incomes); n != 1 {
			t.Errorf("expected 1 income after reload, got %d", n)
		}
	})
}

func TestLedgerMutations(t *testing.T) {
	t.Run("assigns_id", func(t *testing.T) {
		ledger, _ := newTestLedger(t)
		income := testutil.NewIncome("1000", models.PersonB)
		income.ID = ""

		created, err := incomes.add(context.Background(), ledger, income)
		testutil.AssertNoError(t, err)
		if created.ID == "" {
			t.Error("expected generated id")
		}
	})

	t.Run("duplicate_id", func(t *testing.T) {
		ledger, _ := newTestLedger(t)
		ctx := context.Background()
		income := testutil.NewIncome("1000", models.PersonB)

		_, err := incomes.add(ctx, ledger, income)
		testutil.AssertNoError(t, err)
		_, err = incomes.add(ctx, ledger, income)
		testutil.AssertAppError(t, err, "DUPLICATE_ID")

		if n := len(ledger.Snapshot().Incomes); n != 1 {
			t.Errorf("expected 1 income, got %d", n)
		}
	})

	t.Run("transactions_prepend_others_append", func(t *testing.T) {
		ledger, _ := newTestLedger(t)
		ctx := context.Background()
		day := models.NewDate(2025, time.March, 1)

		first, _ := transactions.add(ctx, ledger, testutil.NewTransaction(day, "10", models.TransactionKindEssential))
		second, _ := transactions.add(ctx, ledger, testutil.NewTransaction(day, "20", models.TransactionKindEssential))
		txs := ledger.Snapshot().Transactions
		if txs[0].ID != second.ID || txs[1].ID != first.ID {
			t.Errorf("expected newest transaction first, got %s, %s", txs[0].ID, txs[1].ID)
		}

		a, _ := incomes.add(ctx, ledger, testutil.NewIncome("1", models.PersonA))
		b, _ := incomes.add(ctx, ledger, testutil.NewIncome("2", models.PersonA))
		list := ledger.Snapshot().Incomes
		if list[0].ID != a.ID || list[1].ID != b.ID {
			t.Errorf("expected insertion order, got %s, %s", list[0].ID, list[1].ID)
		}
	})

	t.Run("remove_unknown_id", func(t *testing.T) {
		ledger, _ := newTestLedger(t)
		_, err := fixedExpenses.remove(context.Background(), ledger, "missing")
		testutil.AssertAppError(t, err, "FIXED_EXPENSE_NOT_FOUND")
	})

	t.Run("snapshot_is_not_mutated", func(t *testing.T) {
		ledger, _ := newTestLedger(t)
		ctx := context.Background()
		income, _ := incomes.add(ctx, ledger, testutil.NewIncome("1", models.PersonA))

		before := ledger.Snapshot()
		_, err := incomes.remove(ctx, ledger, income.ID)
		testutil.AssertNoError(t, err)

		if len(before.Incomes) != 1 {
			t.Errorf("expected earlier snapshot to keep 1 income, got %d", len(before.Incomes))
		}
		if len(ledger.Snapshot().Incomes) != 0 {
			t.Error("expected income to be removed")
		}
	})

	t.Run("save_failure_is_not_fatal", func(t *testing.T) {
		var puts int
		backend := &mockBackend{
			putFn: func(ctx context.Context, name models.CollectionName, payload []byte) error {
				puts++
				return errors.New("quota exceeded")
			},
		}
		ledger := NewLedger(backend, false)
		testutil.AssertNoError(t, ledger.Load(context.Background()))
		puts = 0

		created, err := incomes.add(context.Background(), ledger, testutil.NewIncome("1000", models.PersonA))
		testutil.AssertNoError(t, err)
		if puts != 1 {
			t.Errorf("expected 1 write attempt, got %d", puts)
		}

		got, err := incomes.get(ledger, created.ID)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimal(t, got.Amount, "1000")
	})

	t.Run("cancelled_context_still_persists", func(t *testing.T) {
		var stored bool
		backend := &mockBackend{
			putFn: func(ctx context.Context, name models.CollectionName, payload []byte) error {
				if ctx.Err() == nil && name == models.CollectionIncomes {
					stored = true
				}
				return nil
			},
		}
		ledger := NewLedger(backend, false)
		testutil.AssertNoError(t, ledger.Load(context.Background()))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := incomes.add(ctx, ledger, testutil.NewIncome("1000", models.PersonA))
		testutil.AssertNoError(t, err)
		if !stored {
			t.Error("expected write with a live context")
		}
	})
}

func TestLedgerUpdate(t *testing.T) {
	ledger, _ := newTestLedger(t)
	ctx := context.Background()
	account, _ := bankAccounts.add(ctx, ledger, testutil.NewBankAccount("Savings", "100", models.AccountTypeSavings))

	_, err := bankAccounts.update(ctx, ledger, "missing", func(a models.BankAccount) models.BankAccount { return a })
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) || appErr != apperrors.ErrBankAccountNotFound {
		t.Errorf("expected ErrBankAccountNotFound, got %v", err)
	}

	updated, err := bankAccounts.update(ctx, ledger, account.ID, func(a models.BankAccount) models.BankAccount {
		a.Name = "Renamed"
		return a
	})
	testutil.AssertNoError(t, err)
	if updated.Name != "Renamed" {
		t.Errorf("expected name Renamed, got %s", updated.Name)
	}
}
