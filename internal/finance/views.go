package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"financehub/internal/models"
)

// DashboardView is the overview of one calendar month.
type DashboardView struct {
	Year                   int              `json:"year"`
	Month                  int              `json:"month"`
	TotalIncome            decimal.Decimal  `json:"total_income"`
	VariableExpenses       decimal.Decimal  `json:"variable_expenses"`
	FixedExpenses          decimal.Decimal  `json:"fixed_expenses"`
	TotalExpenses          decimal.Decimal  `json:"total_expenses"`
	SavingsRate            float64          `json:"savings_rate"`
	SavingsAlert           bool             `json:"savings_alert"`
	NetBankBalance         decimal.Decimal  `json:"net_bank_balance"`
	CreditCardDebt         decimal.Decimal  `json:"credit_card_debt"`
	CreditCardAlert        bool             `json:"credit_card_alert"`
	NetWorth               decimal.Decimal  `json:"net_worth"`
	BankAccountCount       int              `json:"bank_account_count"`
	CreditCardCount        int              `json:"credit_card_count"`
	MonthlyContribution    decimal.Decimal  `json:"monthly_contribution"`
	MonthlyPremium         decimal.Decimal  `json:"monthly_premium"`
	TotalInsuranceCoverage decimal.Decimal  `json:"total_insurance_coverage"`
	ExpensesByCategory     []CategoryAmount `json:"expenses_by_category"`
	ExpensesByKind         []CategoryAmount `json:"expenses_by_kind"`
	ExpensesByPaymentMode  []CategoryAmount `json:"expenses_by_payment_mode"`
}

// Dashboard builds the overview for the given month.
func Dashboard(c models.Collections, year int, month time.Month) DashboardView {
	income := TotalIncome(c.Incomes)
	variable := MonthlyVariableExpenses(c.Transactions, year, month)
	fixed := TotalFixedExpenses(c.FixedExpenses)
	rate := SavingsRate(income, variable, fixed)
	banks, cards := AccountCounts(c.BankAccounts)

	return DashboardView{
		Year:                   year,
		Month:                  int(month),
		TotalIncome:            money(income),
		VariableExpenses:       money(variable),
		FixedExpenses:          money(fixed),
		TotalExpenses:          money(variable.Add(fixed)),
		SavingsRate:            percent(rate),
		SavingsAlert:           SavingsAlert(rate),
		NetBankBalance:         money(NetBankBalance(c.BankAccounts)),
		CreditCardDebt:         money(TotalCreditCardDebt(c.BankAccounts)),
		CreditCardAlert:        CreditCardAlert(c.BankAccounts),
		NetWorth:               money(NetWorth(c.BankAccounts)),
		BankAccountCount:       banks,
		CreditCardCount:        cards,
		MonthlyContribution:    money(TotalMonthlyContribution(c.Contributions)),
		MonthlyPremium:         money(TotalMonthlyPremium(c.InsurancePolicies)),
		TotalInsuranceCoverage: money(TotalInsuranceCoverage(c.InsurancePolicies)),
		ExpensesByCategory:     moneyList(Sorted(ExpensesByCategory(c.Transactions, year, month))),
		ExpensesByKind:         moneyList(Sorted(ExpensesByKind(c.Transactions, year, month))),
		ExpensesByPaymentMode:  moneyList(Sorted(ExpensesByPaymentMode(c.Transactions, year, month))),
	}
}

// IncomeView lists income sources and their split between people.
type IncomeView struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	YearlyIncome decimal.Decimal `json:"yearly_income"`
	ByPerson     []PersonAmount  `json:"by_person"`
	Incomes      []models.Income `json:"incomes"`
}

// IncomeSummary builds the income view.
func IncomeSummary(incomes []models.Income) IncomeView {
	total := TotalIncome(incomes)
	byPerson := IncomeByPerson(incomes)
	for i := range byPerson {
		byPerson[i].Amount = money(byPerson[i].Amount)
		byPerson[i].Share = percent(byPerson[i].Share)
	}
	if incomes == nil {
		incomes = []models.Income{}
	}
	return IncomeView{
		TotalIncome:  money(total),
		YearlyIncome: money(total.Mul(decimal.NewFromInt(12))),
		ByPerson:     byPerson,
		Incomes:      incomes,
	}
}

// BudgetView is the budget planner for one calendar month.
type BudgetView struct {
	Year                int              `json:"year"`
	Month               int              `json:"month"`
	TotalIncome         decimal.Decimal  `json:"total_income"`
	FixedExpenses       decimal.Decimal  `json:"fixed_expenses"`
	VariableExpenses    decimal.Decimal  `json:"variable_expenses"`
	TotalExpenses       decimal.Decimal  `json:"total_expenses"`
	Remaining           decimal.Decimal  `json:"remaining"`
	Savings             decimal.Decimal  `json:"savings"`
	SavingsRate         float64          `json:"savings_rate"`
	SavingsAlert        bool             `json:"savings_alert"`
	EmergencyFundTarget decimal.Decimal  `json:"emergency_fund_target"`
	FixedByCategory     []CategoryAmount `json:"fixed_by_category"`
	Rule                BudgetRuleReport `json:"rule"`
}

// BudgetPlan builds the budget planner for the given month.
func BudgetPlan(c models.Collections, year int, month time.Month) BudgetView {
	income := TotalIncome(c.Incomes)
	variable := MonthlyVariableExpenses(c.Transactions, year, month)
	fixed := TotalFixedExpenses(c.FixedExpenses)
	remaining := RemainingBudget(income, variable, fixed)
	rate := SavingsRate(income, variable, fixed)

	return BudgetView{
		Year:                year,
		Month:               int(month),
		TotalIncome:         money(income),
		FixedExpenses:       money(fixed),
		VariableExpenses:    money(variable),
		TotalExpenses:       money(fixed.Add(variable)),
		Remaining:           money(remaining),
		Savings:             money(decimal.Max(decimal.Zero, remaining)),
		SavingsRate:         percent(rate),
		SavingsAlert:        SavingsAlert(rate),
		EmergencyFundTarget: money(EmergencyFundTarget(variable, fixed)),
		FixedByCategory:     moneyList(Sorted(FixedExpensesByCategory(c.FixedExpenses))),
		Rule:                roundRule(CompareBudgetRule(income, fixed, variable)),
	}
}

func roundRule(r BudgetRuleReport) BudgetRuleReport {
	round := func(p RuleProgress) RuleProgress {
		return RuleProgress{
			Recommended:   money(p.Recommended),
			Actual:        money(p.Actual),
			Ratio:         percent(p.Ratio),
			Progress:      percent(p.Progress),
			ShareOfIncome: percent(p.ShareOfIncome),
		}
	}
	return BudgetRuleReport{Needs: round(r.Needs), Wants: round(r.Wants), Savings: round(r.Savings)}
}

// ContributionProjection is one contribution with its monthly figure and
// projected value.
type ContributionProjection struct {
	models.Contribution
	MonthlyAmount decimal.Decimal `json:"monthly_amount"`
	FutureValue   decimal.Decimal `json:"future_value"`
	ShareOfIncome float64         `json:"share_of_income"`
}

// PolicySummary is one policy with its monthly premium.
type PolicySummary struct {
	models.InsurancePolicy
	MonthlyPremium decimal.Decimal `json:"monthly_premium"`
}

// InvestmentView is the investment and insurance planner.
type InvestmentView struct {
	TotalIncome             decimal.Decimal          `json:"total_income"`
	MonthlyContribution     decimal.Decimal          `json:"monthly_contribution"`
	MonthlyPremium          decimal.Decimal          `json:"monthly_premium"`
	TotalMonthlyInvestment  decimal.Decimal          `json:"total_monthly_investment"`
	Share                   InvestmentShare          `json:"share"`
	ProjectionHorizonMonths int                      `json:"projection_horizon_months"`
	TotalFutureValue        decimal.Decimal          `json:"total_future_value"`
	TotalInsuranceCoverage  decimal.Decimal          `json:"total_insurance_coverage"`
	TermCover               CoverRange               `json:"term_cover"`
	ContributionsByCategory []CategoryAmount         `json:"contributions_by_category"`
	PremiumsByType          []CategoryAmount         `json:"premiums_by_type"`
	Contributions           []ContributionProjection `json:"contributions"`
	Policies                []PolicySummary          `json:"policies"`
}

// Investments builds the investment and insurance planner.
func Investments(c models.Collections) InvestmentView {
	income := TotalIncome(c.Incomes)
	contribution := TotalMonthlyContribution(c.Contributions)
	premium := TotalMonthlyPremium(c.InsurancePolicies)

	share := ShareOfIncome(income, contribution, premium)
	share.ContributionPct = percent(share.ContributionPct)
	share.PremiumPct = percent(share.PremiumPct)
	share.TotalPct = percent(share.TotalPct)
	share.Remaining = money(share.Remaining)

	projections := make([]ContributionProjection, 0, len(c.Contributions))
	for _, sip := range c.Contributions {
		monthly := monthlyContribution(sip)
		projections = append(projections, ContributionProjection{
			Contribution:  sip,
			MonthlyAmount: money(monthly),
			FutureValue:   ContributionFutureValue(sip),
			ShareOfIncome: percent(PercentOf(monthly, income)),
		})
	}
	policies := make([]PolicySummary, 0, len(c.InsurancePolicies))
	for _, p := range c.InsurancePolicies {
		policies = append(policies, PolicySummary{InsurancePolicy: p, MonthlyPremium: money(monthlyPremium(p))})
	}
	cover := TermCoverRecommendation(income)

	return InvestmentView{
		TotalIncome:             money(income),
		MonthlyContribution:     money(contribution),
		MonthlyPremium:          money(premium),
		TotalMonthlyInvestment:  money(contribution.Add(premium)),
		Share:                   share,
		ProjectionHorizonMonths: ProjectionHorizonMonths,
		TotalFutureValue:        TotalFutureValue(c.Contributions),
		TotalInsuranceCoverage:  money(TotalInsuranceCoverage(c.InsurancePolicies)),
		TermCover:               CoverRange{Min: money(cover.Min), Max: money(cover.Max)},
		ContributionsByCategory: moneyList(Sorted(ContributionsByCategory(c.Contributions))),
		PremiumsByType:          moneyList(Sorted(PremiumsByType(c.InsurancePolicies))),
		Contributions:           projections,
		Policies:                policies,
	}
}
