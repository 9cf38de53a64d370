package models

// Frequency is how often a contribution or premium is paid.
type Frequency string

const (
	FrequencyMonthly    Frequency = "monthly"
	FrequencyQuarterly  Frequency = "quarterly"
	FrequencyHalfYearly Frequency = "half_yearly"
	FrequencyYearly     Frequency = "yearly"
)

// MonthsPerPeriod returns the number of months covered by one payment.
// Unknown frequencies are treated as monthly.
func (f Frequency) MonthsPerPeriod() int64 {
	switch f {
	case FrequencyQuarterly:
		return 3
	case FrequencyHalfYearly:
		return 6
	case FrequencyYearly:
		return 12
	default:
		return 1
	}
}
