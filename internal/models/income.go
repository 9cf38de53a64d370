package models

import "github.com/shopspring/decimal"

// Person identifies the household member an income belongs to.
type Person string

const (
	PersonA     Person = "person_a"
	PersonB     Person = "person_b"
	PersonOther Person = "other"
)

// People lists every Person in display order.
var People = []Person{PersonA, PersonB, PersonOther}

// Income is a recurring monthly income source.
type Income struct {
	ID     string          `json:"id"`
	Source string          `json:"source"`
	Amount decimal.Decimal `json:"amount"`
	Person Person          `json:"person"`
}
