package forecast

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/kestrelworks/glidepath/internal/model"
)

// Validation errors.
var (
	ErrInvalidDays   = errors.New("invalid forecast horizon")
	ErrInvalidAmount = errors.New("invalid amount")
)

// Summary condenses a projection into the numbers shown at the top of a
// forecast view.
type Summary struct {
	StartBalance        float64 `json:"start_balance"`
	EndBalance          float64 `json:"end_balance"`
	TotalIncome         float64 `json:"total_income"`
	TotalExpenses       float64 `json:"total_expenses"`
	DaysUntilLowBalance int     `json:"days_until_low_balance"`
}

// Result is a complete forecast: the projected series with its bands, any
// alerts, and a summary.
type Result struct {
	Projections []Point     `json:"projections"`
	Optimistic  []BandPoint `json:"optimistic"`
	Pessimistic []BandPoint `json:"pessimistic"`
	Alerts      []Alert     `json:"alerts"`
	Summary     Summary     `json:"summary"`
}

// Compute validates inputs, projects the balance for days+1 points starting
// at start, and derives alerts and a summary.
func Compute(start time.Time, currentBalance float64, recurring []model.RecurringTransaction, variableDailyExpense float64, days int, settings model.ForecastSettings) (*Result, error) {
	if days < 0 {
		return nil, fmt.Errorf("%w: days must not be negative, got %d", ErrInvalidDays, days)
	}
	if err := validateAmount(currentBalance, "current balance"); err != nil {
		return nil, err
	}
	if err := validateAmount(variableDailyExpense, "variable daily expense"); err != nil {
		return nil, err
	}
	for _, rec := range recurring {
		if err := validateAmount(rec.AverageAmount, fmt.Sprintf("recurring amount for %q", rec.MerchantPattern)); err != nil {
			return nil, err
		}
	}

	proj := Project(start, currentBalance, recurring, variableDailyExpense, days, settings.IncludeVariableSpending)
	alerts := GenerateAlerts(proj.Points, settings)

	return &Result{
		Projections: proj.Points,
		Optimistic:  proj.Optimistic,
		Pessimistic: proj.Pessimistic,
		Alerts:      alerts,
		Summary:     summarize(currentBalance, proj.Points, settings),
	}, nil
}

func summarize(startBalance float64, points []Point, settings model.ForecastSettings) Summary {
	summary := Summary{
		StartBalance:        startBalance,
		EndBalance:          startBalance,
		DaysUntilLowBalance: -1,
	}

	for i, p := range points {
		summary.TotalIncome += p.Income
		summary.TotalExpenses += p.Expenses
		if summary.DaysUntilLowBalance < 0 && p.Balance < settings.LowBalanceThreshold {
			summary.DaysUntilLowBalance = i
		}
	}
	if len(points) > 0 {
		summary.EndBalance = points[len(points)-1].Balance
	}
	return summary
}

func validateAmount(x float64, what string) error {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return fmt.Errorf("%w: %s must be a finite number", ErrInvalidAmount, what)
	}
	return nil
}
