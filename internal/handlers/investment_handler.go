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

// InvestmentHandler handles recurring contributions (SIPs) and insurance
// policies.
type InvestmentHandler struct {
	investmentService services.InvestmentServicer
	auditService      services.AuditServicer
}

// NewInvestmentHandler creates a new InvestmentHandler.
func NewInvestmentHandler(investmentService services.InvestmentServicer, auditService services.AuditServicer) *InvestmentHandler {
	return &InvestmentHandler{investmentService: investmentService, auditService: auditService}
}

// CreateContributionRequest represents the request payload for adding a SIP.
type CreateContributionRequest struct {
	ID             string                      `json:"id" binding:"max=64"`
	Name           string                      `json:"name" binding:"required,max=100"`
	Amount         decimal.Decimal             `json:"amount" swaggertype:"number" binding:"required,gt=0"`
	Frequency      models.Frequency            `json:"frequency" binding:"required,contribution_frequency"`
	Category       models.ContributionCategory `json:"category" binding:"required,contribution_category"`
	StartDate      models.Date                 `json:"start_date" swaggertype:"string" example:"2024-01-01" binding:"required"`
	ExpectedReturn float64                     `json:"expected_return" binding:"gte=0,lte=100"`
}

// CreatePolicyRequest represents the request payload for adding a policy.
type CreatePolicyRequest struct {
	ID          string            `json:"id" binding:"max=64"`
	Name        string            `json:"name" binding:"required,max=100"`
	Premium     decimal.Decimal   `json:"premium" swaggertype:"number" binding:"required,gt=0"`
	Frequency   models.Frequency  `json:"frequency" binding:"required,frequency"`
	Type        models.PolicyType `json:"type" binding:"required,policy_type"`
	CoverAmount decimal.Decimal   `json:"cover_amount" swaggertype:"number" binding:"required,gt=0"`
	DueDay      int               `json:"due_day" binding:"required,min=1,max=31"`
}

// CreateContribution handles adding a recurring contribution
// @Summary     Add a SIP
// @Description Add a recurring investment contribution. Half-yearly is not a valid SIP frequency.
// @Tags        investments
// @Accept      json
// @Produce     json
// @Param       request body CreateContributionRequest true "Contribution details"
// @Success     201 {object} models.Contribution "Contribution created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Duplicate id"
// @Router      /contributions [post]
func (h *InvestmentHandler) CreateContribution(c *gin.Context) {
	var req CreateContributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	sip, err := h.investmentService.CreateContribution(c.Request.Context(), models.Contribution{
		ID:             req.ID,
		Name:           req.Name,
		Amount:         req.Amount,
		Frequency:      req.Frequency,
		Category:       req.Category,
		StartDate:      req.StartDate,
		ExpectedReturn: req.ExpectedReturn,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("CREATE_CONTRIBUTION", "contribution", sip.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name, "amount": req.Amount, "frequency": req.Frequency})

	c.JSON(http.StatusCreated, gin.H{"contribution": sip})
}

// GetContributions handles listing contributions
// @Summary     List SIPs
// @Tags        investments
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Contribution] "Paginated contributions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /contributions [get]
func (h *InvestmentHandler) GetContributions(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.investmentService.GetContributions(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeleteContribution handles removing a contribution
// @Summary     Delete SIP
// @Tags        investments
// @Produce     json
// @Param       id path string true "Contribution ID"
// @Success     200 {object} MessageResponse "Contribution deleted"
// @Failure     404 {object} ErrorResponse "Contribution not found"
// @Router      /contributions/{id} [delete]
func (h *InvestmentHandler) DeleteContribution(c *gin.Context) {
	id := c.Param("id")
	if err := h.investmentService.DeleteContribution(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("DELETE_CONTRIBUTION", "contribution", id, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Contribution deleted successfully"})
}

// CreatePolicy handles adding an insurance policy
// @Summary     Add an insurance policy
// @Tags        insurance
// @Accept      json
// @Produce     json
// @Param       request body CreatePolicyRequest true "Policy details"
// @Success     201 {object} models.InsurancePolicy "Policy created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Duplicate id"
// @Router      /insurance-policies [post]
func (h *InvestmentHandler) CreatePolicy(c *gin.Context) {
	var req CreatePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	policy, err := h.investmentService.CreatePolicy(c.Request.Context(), models.InsurancePolicy{
		ID:          req.ID,
		Name:        req.Name,
		Premium:     req.Premium,
		Frequency:   req.Frequency,
		Type:        req.Type,
		CoverAmount: req.CoverAmount,
		DueDay:      req.DueDay,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("CREATE_POLICY", "insurance_policy", policy.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name, "type": req.Type, "premium": req.Premium})

	c.JSON(http.StatusCreated, gin.H{"policy": policy})
}

// GetPolicies handles listing insurance policies
// @Summary     List insurance policies
// @Tags        insurance
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.InsurancePolicy] "Paginated policies"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /insurance-policies [get]
func (h *InvestmentHandler) GetPolicies(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.investmentService.GetPolicies(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeletePolicy handles removing an insurance policy
// @Summary     Delete insurance policy
// @Tags        insurance
// @Produce     json
// @Param       id path string true "Policy ID"
// @Success     200 {object} MessageResponse "Policy deleted"
// @Failure     404 {object} ErrorResponse "Policy not found"
// @Router      /insurance-policies/{id} [delete]
func (h *InvestmentHandler) DeletePolicy(c *gin.Context) {
	id := c.Param("id")
	if err := h.investmentService.DeletePolicy(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("DELETE_POLICY", "insurance_policy", id, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Insurance policy deleted successfully"})
}
