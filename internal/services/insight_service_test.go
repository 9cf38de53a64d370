package services

import (
	"context"
	"testing"
	"time"

	"financehub/internal/models"
	"financehub/internal/store"
	"financehub/internal/testutil"
)

// newSeededLedger returns a ledger holding the default sample records plus
// 12000 of March 2025 spending and one 5000 SIP.
func newSeededLedger(t *testing.T) *Ledger {
	t.Helper()
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	ledger := NewLedger(store.New(db), true)
	ctx := context.Background()
	testutil.AssertNoError(t, ledger.Load(ctx))

	txSvc := NewTransactionService(ledger)
	dining := testutil.NewTransaction(models.NewDate(2025, time.March, 10), "4000", models.TransactionKindOther)
	dining.Category = "Dining"
	dining.PaymentMode = models.PaymentModeCreditCard
	for _, tx := range []models.Transaction{
		testutil.NewTransaction(models.NewDate(2025, time.March, 5), "8000", models.TransactionKindEssential),
		dining,
		testutil.NewTransaction(models.NewDate(2025, time.March, 1), "180000", models.TransactionKindIncome),
		testutil.NewTransaction(models.NewDate(2025, time.February, 5), "7000", models.TransactionKindEssential),
	} {
		_, err := txSvc.CreateTransaction(ctx, tx)
		testutil.AssertNoError(t, err)
	}
	_, err := NewInvestmentService(ledger).CreateContribution(ctx, testutil.NewContribution("5000", models.FrequencyMonthly, 12))
	testutil.AssertNoError(t, err)
	return ledger
}

func TestGetDashboard(t *testing.T) {
	svc := NewInsightService(newSeededLedger(t))
	view := svc.GetDashboard(2025, time.March)

	testutil.AssertDecimal(t, view.TotalIncome, "180000")
	testutil.AssertDecimal(t, view.VariableExpenses, "12000")
	testutil.AssertDecimal(t, view.FixedExpenses, "31700")
	if view.SavingsRate != 75.72 {
		t.Errorf("expected savings rate 75.72, got %v", view.SavingsRate)
	}
	if view.SavingsAlert {
		t.Error("expected no savings alert")
	}
	testutil.AssertDecimal(t, view.NetBankBalance, "155000")
	testutil.AssertDecimal(t, view.CreditCardDebt, "15000")
	testutil.AssertDecimal(t, view.NetWorth, "140000")
	if !view.CreditCardAlert {
		t.Error("expected credit card alert")
	}
	if view.BankAccountCount != 3 || view.CreditCardCount != 1 {
		t.Errorf("expected 3 accounts and 1 card, got %d and %d", view.BankAccountCount, view.CreditCardCount)
	}
	testutil.AssertDecimal(t, view.MonthlyContribution, "5000")
	if len(view.ExpensesByCategory) != 2 || view.ExpensesByCategory[0].Key != "Groceries" {
		t.Errorf("unexpected categories: %+v", view.ExpensesByCategory)
	}
}

func TestGetBudget(t *testing.T) {
	svc := NewInsightService(newSeededLedger(t))

	t.Run("march", func(t *testing.T) {
		view := svc.GetBudget(2025, time.March)
		testutil.AssertDecimal(t, view.Remaining, "136300")
		testutil.AssertDecimal(t, view.EmergencyFundTarget, "262200")
		testutil.AssertDecimal(t, view.Rule.Needs.Recommended, "90000")
		testutil.AssertDecimal(t, view.Rule.Needs.Actual, "31700")
	})

	t.Run("empty_month", func(t *testing.T) {
		view := svc.GetBudget(2024, time.January)
		testutil.AssertDecimal(t, view.VariableExpenses, "0")
		testutil.AssertDecimal(t, view.Remaining, "148300")
	})
}

func TestGetIncomeSummary(t *testing.T) {
	view := NewInsightService(newSeededLedger(t)).GetIncomeSummary()

	testutil.AssertDecimal(t, view.TotalIncome, "180000")
	testutil.AssertDecimal(t, view.YearlyIncome, "2160000")
	if len(view.ByPerson) != 2 {
		t.Fatalf("expected 2 people, got %d", len(view.ByPerson))
	}
	if view.ByPerson[0].Person != models.PersonA || view.ByPerson[0].Share != 52.78 {
		t.Errorf("unexpected first share: %+v", view.ByPerson[0])
	}
}

func TestGetInvestments(t *testing.T) {
	view := NewInsightService(newSeededLedger(t)).GetInvestments()

	testutil.AssertDecimal(t, view.MonthlyContribution, "5000")
	testutil.AssertDecimal(t, view.TotalFutureValue, "1161695")
	testutil.AssertDecimal(t, view.TermCover.Min, "21600000")
	testutil.AssertDecimal(t, view.TermCover.Max, "32400000")
	if len(view.Contributions) != 1 {
		t.Fatalf("expected 1 contribution, got %d", len(view.Contributions))
	}
	if view.Contributions[0].ShareOfIncome != 2.78 {
		t.Errorf("expected share 2.78, got %v", view.Contributions[0].ShareOfIncome)
	}
}
