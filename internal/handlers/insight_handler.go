package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"financehub/internal/services"
)

// InsightHandler serves the derived dashboard, income, budget and
// investment views.
type InsightHandler struct {
	insightService services.InsightServicer
}

// NewInsightHandler creates a new InsightHandler.
func NewInsightHandler(insightService services.InsightServicer) *InsightHandler {
	return &InsightHandler{insightService: insightService}
}

// GetDashboard handles the monthly overview
// @Summary     Dashboard
// @Description Income, expenses, savings rate, balances and breakdowns for one month
// @Tags        insights
// @Produce     json
// @Param       year  query int false "Year (default current)"
// @Param       month query int false "Month 1-12 (default current)"
// @Success     200 {object} finance.DashboardView "Dashboard"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /insights/dashboard [get]
func (h *InsightHandler) GetDashboard(c *gin.Context) {
	year, month, err := parsePeriod(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.insightService.GetDashboard(year, month))
}

// GetIncome handles the income view
// @Summary     Income summary
// @Tags        insights
// @Produce     json
// @Success     200 {object} finance.IncomeView "Income summary"
// @Router      /insights/income [get]
func (h *InsightHandler) GetIncome(c *gin.Context) {
	c.JSON(http.StatusOK, h.insightService.GetIncomeSummary())
}

// GetBudget handles the budget planner
// @Summary     Budget planner
// @Description Remaining budget, emergency fund target and the 50/30/20 comparison for one month
// @Tags        insights
// @Produce     json
// @Param       year  query int false "Year (default current)"
// @Param       month query int false "Month 1-12 (default current)"
// @Success     200 {object} finance.BudgetView "Budget planner"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /insights/budget [get]
func (h *InsightHandler) GetBudget(c *gin.Context) {
	year, month, err := parsePeriod(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.insightService.GetBudget(year, month))
}

// GetInvestments handles the investment and insurance planner
// @Summary     Investment planner
// @Description Monthly commitments, ten-year projections and insurance coverage
// @Tags        insights
// @Produce     json
// @Success     200 {object} finance.InvestmentView "Investment planner"
// @Router      /insights/investments [get]
func (h *InsightHandler) GetInvestments(c *gin.Context) {
	c.JSON(http.StatusOK, h.insightService.GetInvestments())
}
