package finance

import (
	"math"

	"github.com/shopspring/decimal"

	"financehub/internal/models"
)

// ProjectionHorizonMonths is the horizon of every future-value projection.
const ProjectionHorizonMonths = 120

// Term cover is recommended at 10 to 15 years of income.
const (
	termCoverMinYears = 10
	termCoverMaxYears = 15
)

// MonthlyAmount converts a periodic amount to its monthly equivalent.
func MonthlyAmount(frequency models.Frequency, amount decimal.Decimal) decimal.Decimal {
	months := frequency.MonthsPerPeriod()
	if months == 1 {
		return amount
	}
	return amount.Div(decimal.NewFromInt(months))
}

// TotalMonthly sums the monthly equivalent of every item.
func TotalMonthly[T any](items []T, frequencyOf func(T) models.Frequency, amountOf func(T) decimal.Decimal) decimal.Decimal {
	return sum(items, func(item T) decimal.Decimal {
		return MonthlyAmount(frequencyOf(item), amountOf(item))
	})
}

func contributionFrequency(c models.Contribution) models.Frequency { return c.Frequency }
func contributionAmount(c models.Contribution) decimal.Decimal { return c.Amount }
func policyFrequency(p models.InsurancePolicy) models.Frequency { return p.Frequency }
func policyPremium(p models.InsurancePolicy) decimal.Decimal { return p.Premium }

func monthlyContribution(c models.Contribution) decimal.Decimal {
	return MonthlyAmount(c.Frequency, c.Amount)
}

func monthlyPremium(p models.InsurancePolicy) decimal.Decimal {
	return MonthlyAmount(p.Frequency, p.Premium)
}

// TotalMonthlyContribution is the monthly equivalent of all contributions.
func TotalMonthlyContribution(contributions []models.Contribution) decimal.Decimal {
	return TotalMonthly(contributions, contributionFrequency, contributionAmount)
}

// TotalMonthlyPremium is the monthly equivalent of all insurance premiums.
func TotalMonthlyPremium(policies []models.InsurancePolicy) decimal.Decimal {
	return TotalMonthly(policies, policyFrequency, policyPremium)
}

// ContributionsByCategory groups monthly contributions by asset class.
func ContributionsByCategory(contributions []models.Contribution) map[models.ContributionCategory]decimal.Decimal {
	return sumBy(contributions,
		func(c models.Contribution) models.ContributionCategory { return c.Category },
		monthlyContribution)
}

// PremiumsByType groups monthly premiums by policy type.
func PremiumsByType(policies []models.InsurancePolicy) map[models.PolicyType]decimal.Decimal {
	return sumBy(policies, func(p models.InsurancePolicy) models.PolicyType { return p.Type }, monthlyPremium)
}

// TotalInsuranceCoverage sums the cover amount of every policy.
func TotalInsuranceCoverage(policies []models.InsurancePolicy) decimal.Decimal {
	return sum(policies, func(p models.InsurancePolicy) decimal.Decimal { return p.CoverAmount })
}

// FutureValue projects a monthly contribution as an annuity due:
//
//	FV = P × ((1+r)^n − 1) / r × (1+r),  r = annualReturnPct / 12 / 100
//
// The growth factor is evaluated through Expm1 and Log1p so it converges to
// n as r approaches 0; a zero rate yields P × n. The result is rounded to
// whole currency units.
func FutureValue(monthlyAmount decimal.Decimal, annualReturnPct float64, horizonMonths int) decimal.Decimal {
	linear := monthlyAmount.Mul(decimal.NewFromInt(int64(horizonMonths)))
	r := annualReturnPct / 12 / 100
	if r == 0 {
		return linear.Round(0)
	}
	growth := math.Expm1(float64(horizonMonths)*math.Log1p(r)) / r * (1 + r)
	fv := monthlyAmount.InexactFloat64() * growth
	if math.IsNaN(fv) || math.IsInf(fv, 0) {
		return linear.Round(0)
	}
	return decimal.NewFromFloat(fv).Round(0)
}

// ContributionFutureValue projects one contribution over the standard horizon.
func ContributionFutureValue(c models.Contribution) decimal.Decimal {
	return FutureValue(monthlyContribution(c), c.ExpectedReturn, ProjectionHorizonMonths)
}

// TotalFutureValue sums the projection of every contribution.
func TotalFutureValue(contributions []models.Contribution) decimal.Decimal {
	return sum(contributions, ContributionFutureValue)
}

// InvestmentShare describes how much of income goes to contributions and
// premiums.
type InvestmentShare struct {
	ContributionPct  float64         `json:"contribution_pct"`
	PremiumPct       float64         `json:"premium_pct"`
	TotalPct         float64         `json:"total_pct"`
	Remaining        decimal.Decimal `json:"remaining"`
	BelowRecommended bool            `json:"below_recommended"`
}

// ShareOfIncome splits income between contributions, premiums and the rest.
// Remaining never drops below zero.
func ShareOfIncome(totalIncome, monthlyContribution, monthlyPremium decimal.Decimal) InvestmentShare {
	invested := monthlyContribution.Add(monthlyPremium)
	total := PercentOf(invested, totalIncome)
	return InvestmentShare{
		ContributionPct:  PercentOf(monthlyContribution, totalIncome),
		PremiumPct:       PercentOf(monthlyPremium, totalIncome),
		TotalPct:         total,
		Remaining:        decimal.Max(decimal.Zero, totalIncome.Sub(invested)),
		BelowRecommended: total < RecommendedSavingsRate,
	}
}

// CoverRange is a recommended range of life cover.
type CoverRange struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

// TermCoverRecommendation is 10 to 15 years of income.
func TermCoverRecommendation(totalIncome decimal.Decimal) CoverRange {
	yearly := totalIncome.Mul(decimal.NewFromInt(12))
	return CoverRange{
		Min: yearly.Mul(decimal.NewFromInt(termCoverMinYears)),
		Max: yearly.Mul(decimal.NewFromInt(termCoverMaxYears)),
	}
}
