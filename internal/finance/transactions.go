package finance

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"financehub/internal/models"
)

// TransactionFilter narrows a transaction list. Empty fields match anything.
type TransactionFilter struct {
	Kind        models.TransactionKind
	PaymentMode models.PaymentMode
	BankAccount string
}

// Matches reports whether t passes the filter.
func (f TransactionFilter) Matches(t models.Transaction) bool {
	if f.Kind != "" && t.Kind != f.Kind {
		return false
	}
	if f.PaymentMode != "" && t.PaymentMode != f.PaymentMode {
		return false
	}
	if f.BankAccount != "" && t.BankAccount != f.BankAccount {
		return false
	}
	return true
}

// FilterTransactions keeps the transactions matching f, in order.
func FilterTransactions(transactions []models.Transaction, f TransactionFilter) []models.Transaction {
	return filter(transactions, f.Matches)
}

// TransactionTotals are the headline figures of the expense tracker. Unlike
// the expense aggregations they cover every kind, income included.
type TransactionTotals struct {
	Today     decimal.Decimal `json:"today"`
	ThisMonth decimal.Decimal `json:"this_month"`
	Count     int             `json:"count"`
}

// Totals sums the transactions dated today and in the current month.
func Totals(transactions []models.Transaction, now time.Time) TransactionTotals {
	today := models.DateOf(now)
	totals := TransactionTotals{Today: decimal.Zero, ThisMonth: decimal.Zero, Count: len(transactions)}
	for _, t := range transactions {
		if t.Date.SameDay(today) {
			totals.Today = totals.Today.Add(t.Amount)
		}
		if t.Date.InMonth(now.Year(), now.Month()) {
			totals.ThisMonth = totals.ThisMonth.Add(t.Amount)
		}
	}
	return totals
}

// DayGroup is the transactions of one calendar day.
type DayGroup struct {
	Date         models.Date          `json:"date"`
	Total        decimal.Decimal      `json:"total"`
	Transactions []models.Transaction `json:"transactions"`
}

// GroupByDate buckets transactions by day, newest day first. Transactions
// keep their relative order inside a day.
func GroupByDate(transactions []models.Transaction) []DayGroup {
	index := make(map[string]int)
	var groups []DayGroup
	for _, t := range transactions {
		key := t.Date.String()
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, DayGroup{Date: t.Date, Total: decimal.Zero})
		}
		groups[i].Total = groups[i].Total.Add(t.Amount)
		groups[i].Transactions = append(groups[i].Transactions, t)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Date.After(groups[j].Date.Time)
	})
	return groups
}

// TrackerView is the expense tracker screen: totals plus day groups of the
// filtered transactions.
type TrackerView struct {
	TransactionTotals
	Days []DayGroup `json:"days"`
}

// Tracker builds the expense tracker view. Totals cover the filtered list.
func Tracker(transactions []models.Transaction, f TransactionFilter, now time.Time) TrackerView {
	filtered := FilterTransactions(transactions, f)
	totals := Totals(filtered, now)
	totals.Today = money(totals.Today)
	totals.ThisMonth = money(totals.ThisMonth)
	days := GroupByDate(filtered)
	for i := range days {
		days[i].Total = money(days[i].Total)
	}
	if days == nil {
		days = []DayGroup{}
	}
	return TrackerView{TransactionTotals: totals, Days: days}
}
