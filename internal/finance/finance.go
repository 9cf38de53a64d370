// Package finance computes every derived figure FinanceHub shows: totals,
// groupings, rates, budget-rule comparisons and investment projections.
//
// All functions are pure. They take full collections (and, where the result
// depends on the calendar, an explicit year/month or "now") and never fail:
// divisions by zero resolve to 0, never to NaN or Inf.
package finance

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CategoryAmount is one entry of a grouping, ready for display.
type CategoryAmount struct {
	Key    string          `json:"key"`
	Amount decimal.Decimal `json:"amount"`
}

// Sorted flattens a grouping into entries ordered by amount (largest first),
// then key.
func Sorted[K ~string](groups map[K]decimal.Decimal) []CategoryAmount {
	out := make([]CategoryAmount, 0, len(groups))
	for k, v := range groups {
		out = append(out, CategoryAmount{Key: string(k), Amount: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Amount.Cmp(out[j].Amount); c != 0 {
			return c > 0
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// PercentOf returns part as a percentage of whole, or 0 when whole is zero.
func PercentOf(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	return part.Div(whole).Mul(hundred).InexactFloat64()
}

func sum[T any](items []T, amountOf func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(amountOf(item))
	}
	return total
}

func sumBy[T any, K comparable](items []T, keyOf func(T) K, amountOf func(T) decimal.Decimal) map[K]decimal.Decimal {
	groups := make(map[K]decimal.Decimal)
	for _, item := range items {
		k := keyOf(item)
		groups[k] = groups[k].Add(amountOf(item))
	}
	return groups
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// money rounds an amount for display.
func money(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// percent rounds a percentage for display.
func percent(p float64) float64 {
	return math.Round(p*100) / 100
}

func moneyList(list []CategoryAmount) []CategoryAmount {
	for i := range list {
		list[i].Amount = money(list[i].Amount)
	}
	return list
}
