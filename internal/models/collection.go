package models

import "time"

// CollectionName is the key a collection is stored under.
type CollectionName string

const (
	CollectionTransactions      CollectionName = "transactions"
	CollectionBankAccounts      CollectionName = "bankAccounts"
	CollectionIncomes           CollectionName = "incomes"
	CollectionFixedExpenses     CollectionName = "fixedExpenses"
	CollectionContributions     CollectionName = "recurringContributions"
	CollectionInsurancePolicies CollectionName = "insurancePolicies"
)

// CollectionNames lists all six collections.
var CollectionNames = []CollectionName{
	CollectionTransactions,
	CollectionBankAccounts,
	CollectionIncomes,
	CollectionFixedExpenses,
	CollectionContributions,
	CollectionInsurancePolicies,
}

// CollectionRecord is the stored form of one collection: the whole list of
// records serialized as a JSON array.
type CollectionRecord struct {
	Name      CollectionName `gorm:"primaryKey;type:varchar(64)" json:"name"`
	Payload   string         `gorm:"type:text;not null" json:"payload"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// TableName pins the table name.
func (CollectionRecord) TableName() string {
	return "collections"
}

// Collections is a snapshot of every record the application holds.
// Slices are never modified in place; a mutation builds a new slice, so a
// snapshot stays valid after later mutations.
type Collections struct {
	Transactions      []Transaction     `json:"transactions"`
	BankAccounts      []BankAccount     `json:"bank_accounts"`
	Incomes           []Income          `json:"incomes"`
	FixedExpenses     []FixedExpense    `json:"fixed_expenses"`
	Contributions     []Contribution    `json:"contributions"`
	InsurancePolicies []InsurancePolicy `json:"insurance_policies"`
}
