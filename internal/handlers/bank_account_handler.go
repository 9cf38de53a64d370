package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "financehub/internal/errors"
	"financehub/internal/models"
	"financehub/internal/pagination"
	"financehub/internal/services"
)

// BankAccountHandler handles bank account and credit card requests.
type BankAccountHandler struct {
	accountService services.BankAccountServicer
	auditService   services.AuditServicer
}

// NewBankAccountHandler creates a new BankAccountHandler.
func NewBankAccountHandler(accountService services.BankAccountServicer, auditService services.AuditServicer) *BankAccountHandler {
	return &BankAccountHandler{accountService: accountService, auditService: auditService}
}

// CreateBankAccountRequest represents the request payload for creating an
// account. Credit card balances are negative while money is owed.
type CreateBankAccountRequest struct {
	ID      string             `json:"id" binding:"max=64"`
	Name    string             `json:"name" binding:"required,max=100"`
	Balance decimal.Decimal    `json:"balance" swaggertype:"number"`
	Type    models.AccountType `json:"type" binding:"required,account_type"`
}

// UpdateBalanceRequest represents the request payload for updating a balance.
type UpdateBalanceRequest struct {
	Balance *decimal.Decimal `json:"balance" swaggertype:"number"`
}

// CreateBankAccount handles account creation
// @Summary     Create a bank account
// @Description Add a savings, current or credit card account
// @Tags        bank-accounts
// @Accept      json
// @Produce     json
// @Param       request body CreateBankAccountRequest true "Account details"
// @Success     201 {object} models.BankAccount "Account created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Duplicate id"
// @Router      /bank-accounts [post]
func (h *BankAccountHandler) CreateBankAccount(c *gin.Context) {
	var req CreateBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	account, err := h.accountService.CreateBankAccount(c.Request.Context(), models.BankAccount{
		ID:      req.ID,
		Name:    req.Name,
		Balance: req.Balance,
		Type:    req.Type,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("CREATE_BANK_ACCOUNT", "bank_account", account.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name, "type": req.Type, "balance": req.Balance})

	c.JSON(http.StatusCreated, gin.H{"account": account})
}

// GetBankAccounts handles listing accounts
// @Summary     List bank accounts
// @Tags        bank-accounts
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.BankAccount] "Paginated accounts"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /bank-accounts [get]
func (h *BankAccountHandler) GetBankAccounts(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.accountService.GetBankAccounts(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetBankAccountByID handles retrieving one account
// @Summary     Get bank account by ID
// @Tags        bank-accounts
// @Produce     json
// @Param       id path string true "Account ID"
// @Success     200 {object} models.BankAccount "Account"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Router      /bank-accounts/{id} [get]
func (h *BankAccountHandler) GetBankAccountByID(c *gin.Context) {
	account, err := h.accountService.GetBankAccountByID(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"account": account})
}

// UpdateBalance handles setting an account balance
// @Summary     Update account balance
// @Description Set the current balance and refresh last_updated
// @Tags        bank-accounts
// @Accept      json
// @Produce     json
// @Param       id      path string               true "Account ID"
// @Param       request body UpdateBalanceRequest true "New balance"
// @Success     200 {object} models.BankAccount "Account updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Router      /bank-accounts/{id}/balance [put]
func (h *BankAccountHandler) UpdateBalance(c *gin.Context) {
	var req UpdateBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	if req.Balance == nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "balance is required"))
		return
	}

	id := c.Param("id")
	account, err := h.accountService.UpdateBalance(c.Request.Context(), id, *req.Balance)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("UPDATE_BALANCE", "bank_account", id, c.ClientIP(),
		map[string]interface{}{"balance": *req.Balance})

	c.JSON(http.StatusOK, gin.H{"account": account})
}

// DeleteBankAccount handles account deletion
// @Summary     Delete bank account
// @Description Remove an account. Transactions referencing it are kept.
// @Tags        bank-accounts
// @Produce     json
// @Param       id path string true "Account ID"
// @Success     200 {object} MessageResponse "Account deleted"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Router      /bank-accounts/{id} [delete]
func (h *BankAccountHandler) DeleteBankAccount(c *gin.Context) {
	id := c.Param("id")
	if err := h.accountService.DeleteBankAccount(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("DELETE_BANK_ACCOUNT", "bank_account", id, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Bank account deleted successfully"})
}

// GetAccountActivity handles the account activity summary
// @Summary     Account activity
// @Description Transactions referencing the account by name, their total and the five most recent
// @Tags        bank-accounts
// @Produce     json
// @Param       id path string true "Account ID"
// @Success     200 {object} finance.Activity "Activity"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Router      /bank-accounts/{id}/activity [get]
func (h *BankAccountHandler) GetAccountActivity(c *gin.Context) {
	activity, err := h.accountService.GetAccountActivity(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, activity)
}
