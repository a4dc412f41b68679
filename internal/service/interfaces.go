// Package service defines the storage contract and the orchestration
// services that connect persistence to the payoff and forecast engines.
package service

import (
	"context"
	"time"

	"github.com/kestrelworks/glidepath/internal/model"
)

// Storage defines the contract for the persistence layer.
type Storage interface {
	// Debt operations
	SaveDebt(ctx context.Context, debt *model.Debt) error
	GetDebts(ctx context.Context) ([]model.Debt, error)
	GetDebtByID(ctx context.Context, id int64) (*model.Debt, error)
	UpdateDebt(ctx context.Context, debt *model.Debt) error
	DeleteDebt(ctx context.Context, id int64) error

	// Recurring transaction operations
	SaveRecurringTransaction(ctx context.Context, rec *model.RecurringTransaction) error
	GetRecurringTransactions(ctx context.Context) ([]model.RecurringTransaction, error)
	GetActiveRecurringTransactions(ctx context.Context) ([]model.RecurringTransaction, error)
	DeleteRecurringTransaction(ctx context.Context, id int64) error

	// Imported transaction operations
	SaveTransactions(ctx context.Context, transactions []model.Transaction) error
	GetTransactionCount(ctx context.Context) (int, error)
	GetCurrentBalance(ctx context.Context) (float64, error)
	GetAverageExpenseAmount(ctx context.Context, since time.Time) (float64, error)

	// Forecast settings (auto-created with defaults on first read)
	GetForecastSettings(ctx context.Context) (*model.ForecastSettings, error)
	SaveForecastSettings(ctx context.Context, settings *model.ForecastSettings) error

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}
