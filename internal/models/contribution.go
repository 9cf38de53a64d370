package models

import "github.com/shopspring/decimal"

// ContributionCategory is the asset class of a recurring contribution.
type ContributionCategory string

const (
	ContributionCategoryEquity    ContributionCategory = "equity"
	ContributionCategoryDebt      ContributionCategory = "debt"
	ContributionCategoryHybrid    ContributionCategory = "hybrid"
	ContributionCategoryIndexFund ContributionCategory = "index_fund"
	ContributionCategoryTaxSaving ContributionCategory = "tax_saving"
)

// Contribution is a systematic investment plan (SIP): a fixed amount put
// into an investment at a regular frequency.
type Contribution struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	Amount    decimal.Decimal      `json:"amount"`
	Frequency Frequency            `json:"frequency"`
	Category  ContributionCategory `json:"category"`
	StartDate Date                 `json:"start_date"`
	// ExpectedReturn is the expected annual return in percent.
	ExpectedReturn float64 `json:"expected_return"`
}
