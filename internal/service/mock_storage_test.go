package service

import (
	"context"
	"time"

	"github.com/kestrelworks/glidepath/internal/model"
)

// mockStorage implements Storage for testing. Fields are set directly;
// per-method errors short-circuit the call.
type mockStorage struct {
	debts      []model.Debt
	recurring  []model.RecurringTransaction
	settings   model.ForecastSettings
	balance    float64
	avgExpense float64
	txnCount   int

	debtsErr      error
	recurringErr  error
	settingsErr   error
	balanceErr    error
	avgExpenseErr error

	avgExpenseSince time.Time
	savedSettings   *model.ForecastSettings
	savedTxns       []model.Transaction
}

func newMockStorage() *mockStorage {
	return &mockStorage{settings: model.DefaultForecastSettings()}
}

func (m *mockStorage) SaveDebt(_ context.Context, debt *model.Debt) error {
	debt.ID = int64(len(m.debts) + 1)
	m.debts = append(m.debts, *debt)
	return nil
}

func (m *mockStorage) GetDebts(_ context.Context) ([]model.Debt, error) {
	if m.debtsErr != nil {
		return nil, m.debtsErr
	}
	return m.debts, nil
}

func (m *mockStorage) GetDebtByID(_ context.Context, id int64) (*model.Debt, error) {
	for _, d := range m.debts {
		if d.ID == id {
			return &d, nil
		}
	}
	return nil, nil
}

func (m *mockStorage) UpdateDebt(_ context.Context, _ *model.Debt) error { return nil }

func (m *mockStorage) DeleteDebt(_ context.Context, _ int64) error { return nil }

func (m *mockStorage) SaveRecurringTransaction(_ context.Context, rec *model.RecurringTransaction) error {
	rec.ID = int64(len(m.recurring) + 1)
	m.recurring = append(m.recurring, *rec)
	return nil
}

func (m *mockStorage) GetRecurringTransactions(_ context.Context) ([]model.RecurringTransaction, error) {
	if m.recurringErr != nil {
		return nil, m.recurringErr
	}
	return m.recurring, nil
}

func (m *mockStorage) GetActiveRecurringTransactions(_ context.Context) ([]model.RecurringTransaction, error) {
	if m.recurringErr != nil {
		return nil, m.recurringErr
	}
	var active []model.RecurringTransaction
	for _, rec := range m.recurring {
		if rec.Active {
			active = append(active, rec)
		}
	}
	return active, nil
}

func (m *mockStorage) DeleteRecurringTransaction(_ context.Context, _ int64) error { return nil }

func (m *mockStorage) SaveTransactions(_ context.Context, transactions []model.Transaction) error {
	m.savedTxns = append(m.savedTxns, transactions...)
	return nil
}

func (m *mockStorage) GetTransactionCount(_ context.Context) (int, error) {
	return m.txnCount, nil
}

func (m *mockStorage) GetCurrentBalance(_ context.Context) (float64, error) {
	if m.balanceErr != nil {
		return 0, m.balanceErr
	}
	return m.balance, nil
}

func (m *mockStorage) GetAverageExpenseAmount(_ context.Context, since time.Time) (float64, error) {
	if m.avgExpenseErr != nil {
		return 0, m.avgExpenseErr
	}
	m.avgExpenseSince = since
	return m.avgExpense, nil
}

func (m *mockStorage) GetForecastSettings(_ context.Context) (*model.ForecastSettings, error) {
	if m.settingsErr != nil {
		return nil, m.settingsErr
	}
	settings := m.settings
	return &settings, nil
}

func (m *mockStorage) SaveForecastSettings(_ context.Context, settings *model.ForecastSettings) error {
	m.savedSettings = settings
	return nil
}

func (m *mockStorage) Migrate(_ context.Context) error { return nil }

func (m *mockStorage) Close() error { return nil }
