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

// FixedExpenseHandler handles recurring monthly obligations.
type FixedExpenseHandler struct {
	fixedExpenseService services.FixedExpenseServicer
	auditService        services.AuditServicer
}

// NewFixedExpenseHandler creates a new FixedExpenseHandler.
func NewFixedExpenseHandler(fixedExpenseService services.FixedExpenseServicer, auditService services.AuditServicer) *FixedExpenseHandler {
	return &FixedExpenseHandler{fixedExpenseService: fixedExpenseService, auditService: auditService}
}

// CreateFixedExpenseRequest represents the request payload for adding a
// fixed expense.
type CreateFixedExpenseRequest struct {
	ID       string          `json:"id" binding:"max=64"`
	Name     string          `json:"name" binding:"required,max=100"`
	Amount   decimal.Decimal `json:"amount" swaggertype:"number" binding:"required,gt=0"`
	DueDay   int             `json:"due_day" binding:"required,min=1,max=31"`
	Category string          `json:"category" binding:"required,max=100"`
}

// CreateFixedExpense handles adding a fixed expense
// @Summary     Add a fixed expense
// @Tags        fixed-expenses
// @Accept      json
// @Produce     json
// @Param       request body CreateFixedExpenseRequest true "Fixed expense details"
// @Success     201 {object} models.FixedExpense "Fixed expense created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Duplicate id"
// @Router      /fixed-expenses [post]
func (h *FixedExpenseHandler) CreateFixedExpense(c *gin.Context) {
	var req CreateFixedExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	expense, err := h.fixedExpenseService.CreateFixedExpense(c.Request.Context(), models.FixedExpense{
		ID:       req.ID,
		Name:     req.Name,
		Amount:   req.Amount,
		DueDay:   req.DueDay,
		Category: req.Category,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("CREATE_FIXED_EXPENSE", "fixed_expense", expense.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name, "amount": req.Amount, "due_day": req.DueDay})

	c.JSON(http.StatusCreated, gin.H{"fixed_expense": expense})
}

// GetFixedExpenses handles listing fixed expenses
// @Summary     List fixed expenses
// @Tags        fixed-expenses
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.FixedExpense] "Paginated fixed expenses"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /fixed-expenses [get]
func (h *FixedExpenseHandler) GetFixedExpenses(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.fixedExpenseService.GetFixedExpenses(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeleteFixedExpense handles removing a fixed expense
// @Summary     Delete fixed expense
// @Tags        fixed-expenses
// @Produce     json
// @Param       id path string true "Fixed expense ID"
// @Success     200 {object} MessageResponse "Fixed expense deleted"
// @Failure     404 {object} ErrorResponse "Fixed expense not found"
// @Router      /fixed-expenses/{id} [delete]
func (h *FixedExpenseHandler) DeleteFixedExpense(c *gin.Context) {
	id := c.Param("id")
	if err := h.fixedExpenseService.DeleteFixedExpense(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("DELETE_FIXED_EXPENSE", "fixed_expense", id, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Fixed expense deleted successfully"})
}
