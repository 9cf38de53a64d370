// Package server assembles the FinanceHub HTTP API.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "financehub/internal/docs" // Swagger docs
	apperrors "financehub/internal/errors"
	"financehub/internal/handlers"
	"financehub/internal/middleware"
	"financehub/internal/services"
)

// Services bundles everything the HTTP layer depends on.
type Services struct {
	Transactions  services.TransactionServicer
	BankAccounts  services.BankAccountServicer
	Incomes       services.IncomeServicer
	FixedExpenses services.FixedExpenseServicer
	Investments   services.InvestmentServicer
	Insights      services.InsightServicer
	Reports       services.ReportServicer
	Snapshots     services.SnapshotServicer
	Audit         services.AuditServicer
}

// NewServices wires the services over a loaded ledger and the database
// holding snapshots and audit logs.
func NewServices(db *gorm.DB, ledger *services.Ledger) Services {
	return Services{
		Transactions:  services.NewTransactionService(ledger),
		BankAccounts:  services.NewBankAccountService(ledger),
		Incomes:       services.NewIncomeService(ledger),
		FixedExpenses: services.NewFixedExpenseService(ledger),
		Investments:   services.NewInvestmentService(ledger),
		Insights:      services.NewInsightService(ledger),
		Reports:       services.NewReportService(ledger),
		Snapshots:     services.NewSnapshotService(db, ledger),
		Audit:         services.NewAuditService(db),
	}
}

// NewRouter builds the gin engine with middleware and every API route.
func NewRouter(svc Services) *gin.Engine {
	transactionHandler := handlers.NewTransactionHandler(svc.Transactions, svc.Audit)
	bankAccountHandler := handlers.NewBankAccountHandler(svc.BankAccounts, svc.Audit)
	incomeHandler := handlers.NewIncomeHandler(svc.Incomes, svc.Audit)
	fixedExpenseHandler := handlers.NewFixedExpenseHandler(svc.FixedExpenses, svc.Audit)
	investmentHandler := handlers.NewInvestmentHandler(svc.Investments, svc.Audit)
	insightHandler := handlers.NewInsightHandler(svc.Insights)
	reportHandler := handlers.NewReportHandler(svc.Reports)
	snapshotHandler := handlers.NewSnapshotHandler(svc.Snapshots, svc.Audit)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(cors())

	// Unknown paths get the standard error body from ErrorHandler.
	router.NoRoute(func(c *gin.Context) {
		_ = c.Error(apperrors.WithMessage(apperrors.ErrNotFound, "No route for "+c.Request.Method+" "+c.Request.URL.Path))
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/summary", transactionHandler.GetSummary)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	accounts := v1.Group("/bank-accounts")
	accounts.POST("", bankAccountHandler.CreateBankAccount)
	accounts.GET("", bankAccountHandler.GetBankAccounts)
	accounts.GET("/:id", bankAccountHandler.GetBankAccountByID)
	accounts.PUT("/:id/balance", bankAccountHandler.UpdateBalance)
	accounts.DELETE("/:id", bankAccountHandler.DeleteBankAccount)
	accounts.GET("/:id/activity", bankAccountHandler.GetAccountActivity)

	incomes := v1.Group("/incomes")
	incomes.POST("", incomeHandler.CreateIncome)
	incomes.GET("", incomeHandler.GetIncomes)
	incomes.DELETE("/:id", incomeHandler.DeleteIncome)

	fixedExpenses := v1.Group("/fixed-expenses")
	fixedExpenses.POST("", fixedExpenseHandler.CreateFixedExpense)
	fixedExpenses.GET("", fixedExpenseHandler.GetFixedExpenses)
	fixedExpenses.DELETE("/:id", fixedExpenseHandler.DeleteFixedExpense)

	contributions := v1.Group("/contributions")
	contributions.POST("", investmentHandler.CreateContribution)
	contributions.GET("", investmentHandler.GetContributions)
	contributions.DELETE("/:id", investmentHandler.DeleteContribution)

	policies := v1.Group("/insurance-policies")
	policies.POST("", investmentHandler.CreatePolicy)
	policies.GET("", investmentHandler.GetPolicies)
	policies.DELETE("/:id", investmentHandler.DeletePolicy)

	insights := v1.Group("/insights")
	insights.GET("/dashboard", insightHandler.GetDashboard)
	insights.GET("/income", insightHandler.GetIncome)
	insights.GET("/budget", insightHandler.GetBudget)
	insights.GET("/investments", insightHandler.GetInvestments)

	reports := v1.Group("/reports")
	reports.GET("/monthly", reportHandler.GetMonthlyReport)
	reports.GET("/monthly.csv", reportHandler.GetMonthlyCSV)
	reports.GET("/yearly", reportHandler.GetYearlyReport)

	snapshots := v1.Group("/snapshots")
	snapshots.POST("", snapshotHandler.RecordSnapshot)
	snapshots.GET("", snapshotHandler.GetSnapshots)
	snapshots.GET("/:year/:month", snapshotHandler.GetSnapshot)

	return router
}

// cors allows the browser dashboard to call the API from another origin.
func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
