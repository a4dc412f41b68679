package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kestrelworks/glidepath/internal/payoff"
)

// Planner loads debt records and runs the payoff engine over them.
type Planner struct {
	storage Storage
}

// NewPlanner creates a planner backed by the given storage.
func NewPlanner(storage Storage) *Planner {
	return &Planner{storage: storage}
}

// ComputeStrategy loads the user's debts and compares the avalanche and
// snowball payoff strategies under the given extra monthly payment.
func (p *Planner) ComputeStrategy(ctx context.Context, extraPayment float64) (*payoff.StrategyResult, error) {
	if err := payoff.ValidateExtraPayment(extraPayment); err != nil {
		return nil, err
	}

	debts, err := p.storage.GetDebts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load debts: %w", err)
	}
	if err := payoff.ValidateDebts(debts); err != nil {
		return nil, err
	}

	result := payoff.Compare(debts, extraPayment)

	slog.Debug("Computed payoff strategies",
		"debts", len(debts),
		"extra_payment", extraPayment,
		"recommendation", result.Comparison.Recommendation)

	return &result, nil
}

// SuggestExtraPayment derives safe extra-payment tiers from the imported
// balance and the monthly total of active recurring expenses.
func (p *Planner) SuggestExtraPayment(ctx context.Context, safetyBuffer float64) (*payoff.Suggestion, error) {
	balance, err := p.storage.GetCurrentBalance(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute current balance: %w", err)
	}

	recurring, err := p.storage.GetActiveRecurringTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load recurring transactions: %w", err)
	}

	var monthlyExpenses float64
	for _, rec := range recurring {
		if !rec.IsIncome() {
			monthlyExpenses += -rec.MonthlyAmount()
		}
	}

	suggestion := payoff.SuggestExtraPayment(balance, monthlyExpenses, safetyBuffer)
	return &suggestion, nil
}
