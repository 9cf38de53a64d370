// Package models defines the FinanceHub record types, their closed enums, and
// the database rows used by the persistence layer.
package models

import "github.com/shopspring/decimal"

func init() {
	// Money is exchanged with clients as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}
