// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"reflect"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"financehub/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		// Let numeric and required tags apply to money and calendar dates.
		v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
		v.RegisterCustomTypeFunc(dateValue, models.Date{})

		_ = v.RegisterValidation("transaction_kind", validateTransactionKind)
		_ = v.RegisterValidation("payment_mode", validatePaymentMode)
		_ = v.RegisterValidation("account_type", validateAccountType)
		_ = v.RegisterValidation("person", validatePerson)
		_ = v.RegisterValidation("frequency", validateFrequency)
		_ = v.RegisterValidation("contribution_frequency", validateContributionFrequency)
		_ = v.RegisterValidation("contribution_category", validateContributionCategory)
		_ = v.RegisterValidation("policy_type", validatePolicyType)
	}
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

func dateValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(models.Date); ok {
		return d.Time
	}
	return nil
}

func validateTransactionKind(fl validator.FieldLevel) bool {
	switch models.TransactionKind(fl.Field().String()) {
	case models.TransactionKindEssential, models.TransactionKindOther, models.TransactionKindIncome:
		return true
	}
	return false
}

func validatePaymentMode(fl validator.FieldLevel) bool {
	switch models.PaymentMode(fl.Field().String()) {
	case models.PaymentModeUPI, models.PaymentModeCreditCard, models.PaymentModeCash, models.PaymentModeDebit:
		return true
	}
	return false
}

func validateAccountType(fl validator.FieldLevel) bool {
	switch models.AccountType(fl.Field().String()) {
	case models.AccountTypeSavings, models.AccountTypeCurrent, models.AccountTypeCreditCard:
		return true
	}
	return false
}

func validatePerson(fl validator.FieldLevel) bool {
	switch models.Person(fl.Field().String()) {
	case models.PersonA, models.PersonB, models.PersonOther:
		return true
	}
	return false
}

func validateFrequency(fl validator.FieldLevel) bool {
	switch models.Frequency(fl.Field().String()) {
	case models.FrequencyMonthly, models.FrequencyQuarterly, models.FrequencyHalfYearly, models.FrequencyYearly:
		return true
	}
	return false
}

// SIPs are never half-yearly.
func validateContributionFrequency(fl validator.FieldLevel) bool {
	switch models.Frequency(fl.Field().String()) {
	case models.FrequencyMonthly, models.FrequencyQuarterly, models.FrequencyYearly:
		return true
	}
	return false
}

func validateContributionCategory(fl validator.FieldLevel) bool {
	switch models.ContributionCategory(fl.Field().String()) {
	case models.ContributionCategoryEquity, models.ContributionCategoryDebt, models.ContributionCategoryHybrid,
		models.ContributionCategoryIndexFund, models.ContributionCategoryTaxSaving:
		return true
	}
	return false
}

func validatePolicyType(fl validator.FieldLevel) bool {
	switch models.PolicyType(fl.Field().String()) {
	case models.PolicyTypeLife, models.PolicyTypeHealth, models.PolicyTypeTerm,
		models.PolicyTypeVehicle, models.PolicyTypeHome:
		return true
	}
	return false
}
