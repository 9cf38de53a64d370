package finance

import (
	"math"

	"github.com/shopspring/decimal"
)

// Shares of income recommended by the 50/30/20 rule.
var (
	needsShare   = decimal.NewFromFloat(0.5)
	wantsShare   = decimal.NewFromFloat(0.3)
	savingsShare = decimal.NewFromFloat(0.2)
)

// RecommendedSavingsRate is the savings rate below which a warning is shown.
const RecommendedSavingsRate = 20.0

// EmergencyFundMonths is how many months of expenses an emergency fund covers.
const EmergencyFundMonths = 6

// SavingsRate returns the share of income left after variable and fixed
// expenses, in percent. It is negative when spending exceeds income and 0
// when there is no income.
func SavingsRate(totalIncome, variableExpenses, fixedExpenses decimal.Decimal) float64 {
	return PercentOf(RemainingBudget(totalIncome, variableExpenses, fixedExpenses), totalIncome)
}

// RemainingBudget is income minus variable and fixed expenses.
func RemainingBudget(totalIncome, variableExpenses, fixedExpenses decimal.Decimal) decimal.Decimal {
	return totalIncome.Sub(variableExpenses).Sub(fixedExpenses)
}

// SavingsAlert reports whether the savings rate is below the recommendation.
func SavingsAlert(savingsRate float64) bool {
	return savingsRate < RecommendedSavingsRate
}

// EmergencyFundTarget is six months of total expenses.
func EmergencyFundTarget(variableExpenses, fixedExpenses decimal.Decimal) decimal.Decimal {
	return variableExpenses.Add(fixedExpenses).Mul(decimal.NewFromInt(EmergencyFundMonths))
}

// BudgetRule holds the 50/30/20 thresholds for an income.
type BudgetRule struct {
	Needs   decimal.Decimal `json:"needs"`
	Wants   decimal.Decimal `json:"wants"`
	Savings decimal.Decimal `json:"savings"`
}

// BudgetRuleComparison returns the recommended needs, wants and savings
// amounts for a monthly income.
func BudgetRuleComparison(totalIncome decimal.Decimal) BudgetRule {
	return BudgetRule{
		Needs:   totalIncome.Mul(needsShare),
		Wants:   totalIncome.Mul(wantsShare),
		Savings: totalIncome.Mul(savingsShare),
	}
}

// RuleProgress compares an actual amount with its recommendation.
type RuleProgress struct {
	Recommended decimal.Decimal `json:"recommended"`
	Actual      decimal.Decimal `json:"actual"`
	// Ratio is actual/recommended in percent, unclamped.
	Ratio float64 `json:"ratio"`
	// Progress is Ratio clamped to [0, 100] for progress bars.
	Progress float64 `json:"progress"`
	// ShareOfIncome is actual/income in percent, unclamped.
	ShareOfIncome float64 `json:"share_of_income"`
}

// BudgetRuleReport compares fixed expenses with needs, variable expenses
// with wants and the remaining budget with savings.
type BudgetRuleReport struct {
	Needs   RuleProgress `json:"needs"`
	Wants   RuleProgress `json:"wants"`
	Savings RuleProgress `json:"savings"`
}

// CompareBudgetRule measures actual spending against the 50/30/20 rule.
func CompareBudgetRule(totalIncome, fixedExpenses, variableExpenses decimal.Decimal) BudgetRuleReport {
	rule := BudgetRuleComparison(totalIncome)
	remaining := RemainingBudget(totalIncome, variableExpenses, fixedExpenses)
	return BudgetRuleReport{
		Needs:   compare(rule.Needs, fixedExpenses, totalIncome),
		Wants:   compare(rule.Wants, variableExpenses, totalIncome),
		Savings: compare(rule.Savings, remaining, totalIncome),
	}
}

func compare(recommended, actual, totalIncome decimal.Decimal) RuleProgress {
	ratio := PercentOf(actual, recommended)
	return RuleProgress{
		Recommended:   recommended,
		Actual:        actual,
		Ratio:         ratio,
		Progress:      math.Max(0, math.Min(100, ratio)),
		ShareOfIncome: PercentOf(actual, totalIncome),
	}
}
