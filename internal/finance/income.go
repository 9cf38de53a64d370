package finance

import (
	"github.com/shopspring/decimal"

	"financehub/internal/models"
)

// PersonAmount is one person's share of household income.
type PersonAmount struct {
	Person models.Person   `json:"person"`
	Amount decimal.Decimal `json:"amount"`
	Share  float64         `json:"share"`
}

// TotalIncome sums the monthly amount of every income source.
func TotalIncome(incomes []models.Income) decimal.Decimal {
	return sum(incomes, func(i models.Income) decimal.Decimal { return i.Amount })
}

// IncomeByPerson groups income by person in the fixed order of models.People.
// People whose income sums to exactly zero are omitted. Incomes tagged with
// an unknown person count as other, so the entries always add up to
// TotalIncome.
func IncomeByPerson(incomes []models.Income) []PersonAmount {
	groups := sumBy(incomes, func(i models.Income) models.Person {
		switch i.Person {
		case models.PersonA, models.PersonB:
			return i.Person
		default:
			return models.PersonOther
		}
	}, func(i models.Income) decimal.Decimal { return i.Amount })

	total := TotalIncome(incomes)
	out := make([]PersonAmount, 0, len(models.People))
	for _, p := range models.People {
		amount := groups[p]
		if amount.IsZero() {
			continue
		}
		out = append(out, PersonAmount{Person: p, Amount: amount, Share: PercentOf(amount, total)})
	}
	return out
}
