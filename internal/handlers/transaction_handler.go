package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "financehub/internal/errors"
	"financehub/internal/finance"
	"financehub/internal/models"
	"financehub/internal/pagination"
	"financehub/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
	auditService       services.AuditServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer, auditService services.AuditServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService, auditService: auditService}
}

// CreateTransactionRequest represents the request payload for creating a transaction
type CreateTransactionRequest struct {
	ID          string                 `json:"id" binding:"max=64"`
	Date        models.Date            `json:"date" swaggertype:"string" example:"2025-03-01" binding:"required"`
	Amount      decimal.Decimal        `json:"amount" swaggertype:"number" binding:"required,gt=0"`
	Category    string                 `json:"category" binding:"required,max=100"`
	Kind        models.TransactionKind `json:"kind" binding:"required,transaction_kind"`
	PaymentMode models.PaymentMode     `json:"payment_mode" binding:"required,payment_mode"`
	BankAccount string                 `json:"bank_account" binding:"max=100"`
	Description string                 `json:"description" binding:"max=500"`
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Create a transaction
// @Description Record an expense or income transaction. New transactions are listed first.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Duplicate id"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transaction, err := h.transactionService.CreateTransaction(c.Request.Context(), models.Transaction{
		ID:          req.ID,
		Date:        req.Date,
		Amount:      req.Amount,
		Category:    req.Category,
		Kind:        req.Kind,
		PaymentMode: req.PaymentMode,
		BankAccount: req.BankAccount,
		Description: req.Description,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("CREATE_TRANSACTION", "transaction", transaction.ID, c.ClientIP(),
		map[string]interface{}{"kind": req.Kind, "amount": req.Amount, "category": req.Category})

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// GetTransactions handles listing transactions
// @Summary     List transactions
// @Description Get a paginated list of transactions, newest first, with optional filters
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       page         query int    false "Page number (default 1)"
// @Param       page_size    query int    false "Items per page (default 20, max 100)"
// @Param       kind         query string false "Filter by kind (essential, other, income)"
// @Param       payment_mode query string false "Filter by payment mode (upi, credit_card, cash, debit)"
// @Param       bank_account query string false "Filter by bank account name"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /transactions [get]
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter, err := parseTransactionFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.transactionService.GetTransactions(filter, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetSummary handles the expense tracker summary
// @Summary     Transaction summary
// @Description Today's and this month's totals plus transactions grouped by day, newest day first
// @Tags        transactions
// @Produce     json
// @Param       kind         query string false "Filter by kind (essential, other, income)"
// @Param       payment_mode query string false "Filter by payment mode (upi, credit_card, cash, debit)"
// @Param       bank_account query string false "Filter by bank account name"
// @Success     200 {object} finance.TrackerView "Tracker summary"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /transactions/summary [get]
func (h *TransactionHandler) GetSummary(c *gin.Context) {
	filter, err := parseTransactionFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.transactionService.GetSummary(filter, time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func parseTransactionFilter(c *gin.Context) (finance.TransactionFilter, error) {
	var filter finance.TransactionFilter

	if v := c.Query("kind"); v != "" {
		kind := models.TransactionKind(v)
		switch kind {
		case models.TransactionKindEssential, models.TransactionKindOther, models.TransactionKindIncome:
			filter.Kind = kind
		default:
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid kind, must be essential, other, or income")
		}
	}

	if v := c.Query("payment_mode"); v != "" {
		mode := models.PaymentMode(v)
		switch mode {
		case models.PaymentModeUPI, models.PaymentModeCreditCard, models.PaymentModeCash, models.PaymentModeDebit:
			filter.PaymentMode = mode
		default:
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid payment_mode, must be upi, credit_card, cash, or debit")
		}
	}

	filter.BankAccount = c.Query("bank_account")
	return filter, nil
}

// GetTransactionByID handles the retrieval of a single transaction
// @Summary     Get transaction by ID
// @Tags        transactions
// @Produce     json
// @Param       id path string true "Transaction ID"
// @Success     200 {object} models.Transaction "Transaction"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	transaction, err := h.transactionService.GetTransactionByID(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// DeleteTransaction handles the deletion of a transaction
// @Summary     Delete transaction
// @Tags        transactions
// @Produce     json
// @Param       id path string true "Transaction ID"
// @Success     200 {object} MessageResponse "Transaction deleted"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	id := c.Param("id")
	if err := h.transactionService.DeleteTransaction(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("DELETE_TRANSACTION", "transaction", id, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}
