package models

import (
	"time"

	"financehub/internal/uuid"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SummarySnapshot records the headline figures of one calendar month.
// There is one row per (year, month); recording again overwrites it.
type SummarySnapshot struct {
	ID                  string          `gorm:"type:uuid;primaryKey" json:"id"`
	Year                int             `gorm:"not null;uniqueIndex:idx_snapshot_period" json:"year"`
	Month               int             `gorm:"not null;uniqueIndex:idx_snapshot_period" json:"month"`
	RecordedAt          time.Time       `gorm:"not null" json:"recorded_at"`
	TotalIncome         decimal.Decimal `gorm:"type:numeric(15,2);not null" json:"total_income"`
	VariableExpenses    decimal.Decimal `gorm:"type:numeric(15,2);not null" json:"variable_expenses"`
	FixedExpenses       decimal.Decimal `gorm:"type:numeric(15,2);not null" json:"fixed_expenses"`
	SavingsRate         float64         `gorm:"not null" json:"savings_rate"`
	NetBankBalance      decimal.Decimal `gorm:"type:numeric(15,2);not null" json:"net_bank_balance"`
	CreditCardDebt      decimal.Decimal `gorm:"type:numeric(15,2);not null" json:"credit_card_debt"`
	NetWorth            decimal.Decimal `gorm:"type:numeric(15,2);not null" json:"net_worth"`
	MonthlyContribution decimal.Decimal `gorm:"type:numeric(15,2);not null" json:"monthly_contribution"`
	MonthlyPremium      decimal.Decimal `gorm:"type:numeric(15,2);not null" json:"monthly_premium"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (s *SummarySnapshot) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New()
	}
	return nil
}
