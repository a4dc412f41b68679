package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kestrelworks/glidepath/internal/forecast"
)

// variableSpendingWindowDays is the trailing window used to estimate the
// daily variable (non-recurring) expense from imported transactions.
const variableSpendingWindowDays = 30

// Forecaster loads recurring transactions, settings, and historical spending,
// and runs the forecast engine over them.
type Forecaster struct {
	now     func() time.Time
	storage Storage
}

// NewForecaster creates a forecaster backed by the given storage.
func NewForecaster(storage Storage) *Forecaster {
	return &Forecaster{storage: storage, now: time.Now}
}

// ComputeForecast projects the balance for the given number of days ahead,
// returning the series with confidence bands, alerts, and a summary.
func (f *Forecaster) ComputeForecast(ctx context.Context, days int) (*forecast.Result, error) {
	settings, err := f.storage.GetForecastSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load forecast settings: %w", err)
	}

	balance, err := f.storage.GetCurrentBalance(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute current balance: %w", err)
	}

	recurring, err := f.storage.GetActiveRecurringTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load recurring transactions: %w", err)
	}

	start := f.now()
	since := start.AddDate(0, 0, -variableSpendingWindowDays)
	avgExpense, err := f.storage.GetAverageExpenseAmount(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to compute variable spending average: %w", err)
	}
	variableDaily := avgExpense / variableSpendingWindowDays

	result, err := forecast.Compute(start, balance, recurring, variableDaily, days, *settings)
	if err != nil {
		return nil, err
	}

	slog.Debug("Computed balance forecast",
		"days", days,
		"recurring", len(recurring),
		"variable_daily_expense", variableDaily,
		"alerts", len(result.Alerts))

	return result, nil
}
