package model

import "time"

// Default forecast settings applied when a user has none stored.
const (
	DefaultLowBalanceThreshold = 100.0
	DefaultAlertDaysAhead      = 14
)

// ForecastSettings controls how the balance forecaster projects and alerts.
// A single row exists per database; it is created with defaults on first read.
type ForecastSettings struct {
	UpdatedAt               time.Time
	LowBalanceThreshold     float64
	AlertDaysAhead          int
	IncludeVariableSpending bool
}

// DefaultForecastSettings returns the settings used before the user has
// customized anything.
func DefaultForecastSettings() ForecastSettings {
	return ForecastSettings{
		LowBalanceThreshold:     DefaultLowBalanceThreshold,
		AlertDaysAhead:          DefaultAlertDaysAhead,
		IncludeVariableSpending: true,
	}
}
