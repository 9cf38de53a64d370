package models

import "github.com/shopspring/decimal"

// PolicyType is the kind of insurance cover.
type PolicyType string

const (
	PolicyTypeLife    PolicyType = "life"
	PolicyTypeHealth  PolicyType = "health"
	PolicyTypeTerm    PolicyType = "term"
	PolicyTypeVehicle PolicyType = "vehicle"
	PolicyTypeHome    PolicyType = "home"
)

// InsurancePolicy is an insurance policy with a periodic premium.
type InsurancePolicy struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Premium     decimal.Decimal `json:"premium"`
	Frequency   Frequency       `json:"frequency"`
	Type        PolicyType      `json:"type"`
	CoverAmount decimal.Decimal `json:"cover_amount"`
	DueDay      int             `json:"due_day"`
}
