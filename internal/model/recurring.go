package model

import "time"

// Frequency describes how often a recurring transaction repeats.
type Frequency string

const (
	// FrequencyWeekly repeats every 7 days.
	FrequencyWeekly Frequency = "weekly"
	// FrequencyBiweekly repeats every 14 days.
	FrequencyBiweekly Frequency = "biweekly"
	// FrequencyMonthly repeats on the same day of each month.
	FrequencyMonthly Frequency = "monthly"
	// FrequencyQuarterly repeats on the same day every third month.
	FrequencyQuarterly Frequency = "quarterly"
)

// IsValid reports whether the frequency is one of the supported values.
func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly, FrequencyQuarterly:
		return true
	}
	return false
}

// OccurrencesPerMonth returns the average number of occurrences per month,
// used to normalize recurring amounts to a monthly figure.
func (f Frequency) OccurrencesPerMonth() float64 {
	switch f {
	case FrequencyWeekly:
		return 52.0 / 12.0
	case FrequencyBiweekly:
		return 26.0 / 12.0
	case FrequencyMonthly:
		return 1
	case FrequencyQuarterly:
		return 1.0 / 3.0
	default:
		return 0
	}
}

// RecurringTransaction is an expected repeating cash flow: a paycheck,
// rent, a subscription. AverageAmount is signed: positive for income,
// negative for an expense.
type RecurringTransaction struct {
	NextExpectedDate time.Time
	CreatedAt        time.Time
	MerchantPattern  string
	Frequency        Frequency
	AverageAmount    float64
	ID               int64
	Active           bool
}

// MonthlyAmount normalizes the signed average amount to a per-month figure.
func (r RecurringTransaction) MonthlyAmount() float64 {
	return r.AverageAmount * r.Frequency.OccurrencesPerMonth()
}

// IsIncome reports whether this entry adds money to the balance.
func (r RecurringTransaction) IsIncome() bool {
	return r.AverageAmount > 0
}
