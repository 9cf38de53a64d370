package services

import (
	"context"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"financehub/internal/finance"
	"financehub/internal/models"
	"financehub/internal/pagination"
)

// TransactionServicer defines the contract for transaction records.
type TransactionServicer interface {
	CreateTransaction(ctx context.Context, tx models.Transaction) (*models.Transaction, error)
	GetTransactions(filter finance.TransactionFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(id string) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
	GetSummary(filter finance.TransactionFilter, now time.Time) (*finance.TrackerView, error)
}

// BankAccountServicer defines the contract for bank account records.
type BankAccountServicer interface {
	CreateBankAccount(ctx context.Context, account models.BankAccount) (*models.BankAccount, error)
	GetBankAccounts(page pagination.PageRequest) (*pagination.PageResponse[models.BankAccount], error)
	GetBankAccountByID(id string) (*models.BankAccount, error)
	UpdateBalance(ctx context.Context, id string, balance decimal.Decimal) (*models.BankAccount, error)
	DeleteBankAccount(ctx context.Context, id string) error
	GetAccountActivity(id string) (*finance.Activity, error)
}

// IncomeServicer defines the contract for income records.
type IncomeServicer interface {
	CreateIncome(ctx context.Context, income models.Income) (*models.Income, error)
	GetIncomes(page pagination.PageRequest) (*pagination.PageResponse[models.Income], error)
	DeleteIncome(ctx context.Context, id string) error
}

// FixedExpenseServicer defines the contract for fixed expense records.
type FixedExpenseServicer interface {
	CreateFixedExpense(ctx context.Context, expense models.FixedExpense) (*models.FixedExpense, error)
	GetFixedExpenses(page pagination.PageRequest) (*pagination.PageResponse[models.FixedExpense], error)
	DeleteFixedExpense(ctx context.Context, id string) error
}

// InvestmentServicer defines the contract for recurring contributions and
// insurance policies.
type InvestmentServicer interface {
	CreateContribution(ctx context.Context, sip models.Contribution) (*models.Contribution, error)
	GetContributions(page pagination.PageRequest) (*pagination.PageResponse[models.Contribution], error)
	DeleteContribution(ctx context.Context, id string) error
	CreatePolicy(ctx context.Context, policy models.InsurancePolicy) (*models.InsurancePolicy, error)
	GetPolicies(page pagination.PageRequest) (*pagination.PageResponse[models.InsurancePolicy], error)
	DeletePolicy(ctx context.Context, id string) error
}

// InsightServicer defines the contract for the derived views.
type InsightServicer interface {
	GetDashboard(year int, month time.Month) *finance.DashboardView
	GetIncomeSummary() *finance.IncomeView
	GetBudget(year int, month time.Month) *finance.BudgetView
	GetInvestments() *finance.InvestmentView
}

// ReportServicer defines the contract for monthly and yearly reports.
type ReportServicer interface {
	GetMonthlyReport(year int, month time.Month) *finance.MonthlyReport
	GetYearlyReport(year int) *finance.YearlyReport
	WriteMonthlyCSV(w io.Writer, year int, month time.Month) error
}

// SnapshotServicer defines the contract for monthly summary snapshots.
type SnapshotServicer interface {
	RecordSnapshot(ctx context.Context, now time.Time) (*models.SummarySnapshot, error)
	GetSnapshots(ctx context.Context, page pagination.PageRequest) (*pagination.PageResponse[models.SummarySnapshot], error)
	GetSnapshot(ctx context.Context, year int, month time.Month) (*models.SummarySnapshot, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
