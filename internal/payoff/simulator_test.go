package payoff

import (
	"testing"

	"github.com/kestrelworks/glidepath/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulate_SingleDebtScenario(t *testing.T) {
	// 1200 at 12% APR over 12 installments: minimum payment 100, 1%/month.
	// Interest stretches the payoff to 13 months.
	debts := []model.Debt{
		{ID: 1, Title: "Card", RemainingAmount: 1200, InterestRate: 12, InstallmentsTotal: 12},
	}

	plan := Avalanche.Simulate(debts, 0)

	assert.Equal(t, "avalanche", plan.Method)
	assert.Equal(t, 13, plan.Months)
	assert.InDelta(t, 1.1, plan.Years, 0.001)
	assert.InDelta(t, 84.78, plan.TotalInterestPaid, 0.01)
	assert.InDelta(t, 1284.78, plan.TotalPaid, 0.01)
	require.Equal(t, []DebtRef{{ID: 1, Title: "Card"}}, plan.PayoffOrder)

	// Snapshots are sampled every 6th month: months 6 and 12.
	require.Len(t, plan.MonthlySnapshots, 2)
	assert.Equal(t, 6, plan.MonthlySnapshots[0].Month)
	assert.Equal(t, 12, plan.MonthlySnapshots[1].Month)

	// Month 6 amortization arithmetic, from the closed form of the series.
	require.Len(t, plan.MonthlySnapshots[0].Debts, 1)
	month6 := plan.MonthlySnapshots[0].Debts[0]
	assert.InDelta(t, 100.0, month6.Payment, 0.001)
	assert.InDelta(t, 7.5111, month6.Interest, 0.001)
	assert.InDelta(t, 92.4889, month6.Principal, 0.001)
	assert.InDelta(t, 658.6227, month6.Remaining, 0.001)
}

func TestSimulate_EmptyDebts(t *testing.T) {
	plan := Snowball.Simulate(nil, 100)

	assert.Equal(t, 0, plan.Months)
	assert.Zero(t, plan.Years)
	assert.Zero(t, plan.TotalInterestPaid)
	assert.Zero(t, plan.TotalPaid)
	assert.Empty(t, plan.MonthlySnapshots)
	assert.Empty(t, plan.PayoffOrder)
}

func TestSimulate_ZeroInterest(t *testing.T) {
	debts := []model.Debt{
		{ID: 1, Title: "A", RemainingAmount: 1200, InstallmentsTotal: 12},
		{ID: 2, Title: "B", RemainingAmount: 500, InstallmentsTotal: 5},
	}

	plan := Snowball.Simulate(debts, 0)

	assert.Equal(t, 12, plan.Months)
	assert.Zero(t, plan.TotalInterestPaid)
	assert.InDelta(t, 1700.0, plan.TotalPaid, 0.001)
}

func TestSimulate_NonAmortizingDebtHitsCap(t *testing.T) {
	// Minimum payment (16.67) is far below monthly interest (833): the
	// balance can never shrink and the simulation must stop at the cap.
	debts := []model.Debt{
		{ID: 1, Title: "Runaway", RemainingAmount: 10000, InterestRate: 100, InstallmentsTotal: 600},
	}

	plan := Avalanche.Simulate(debts, 0)

	assert.Equal(t, MaxSimulationMonths, plan.Months)
	assert.InDelta(t, 50.0, plan.Years, 0.001)
}

func TestSimulate_BalancesMonotonicAndNonNegative(t *testing.T) {
	debts := []model.Debt{
		{ID: 1, Title: "A", RemainingAmount: 4000, InterestRate: 20, InstallmentsTotal: 36},
		{ID: 2, Title: "B", RemainingAmount: 1500, InterestRate: 8, InstallmentsTotal: 12},
	}

	plan := Avalanche.Simulate(debts, 50)

	last := map[int64]float64{1: 4000, 2: 1500}
	for _, snapshot := range plan.MonthlySnapshots {
		for _, entry := range snapshot.Debts {
			assert.GreaterOrEqual(t, entry.Remaining, 0.0)
			assert.LessOrEqual(t, entry.Remaining, last[entry.DebtID],
				"remaining must not grow month over month")
			last[entry.DebtID] = entry.Remaining
		}
	}
}

func TestSimulate_ExtraPaymentNotCarriedOver(t *testing.T) {
	// In month one the first debt can only absorb 10 of the 500 extra; the
	// remainder is not passed along to the second debt that month, so the
	// second debt still needs until month three.
	debts := []model.Debt{
		{ID: 1, Title: "Small", RemainingAmount: 20, InstallmentsTotal: 2},
		{ID: 2, Title: "Large", RemainingAmount: 1000, InstallmentsTotal: 10},
	}

	plan := Avalanche.Simulate(debts, 500)

	assert.Equal(t, 3, plan.Months)
}

func TestSimulate_ExtraPaymentShortensPayoff(t *testing.T) {
	debts := []model.Debt{
		{ID: 1, Title: "Card", RemainingAmount: 6000, InterestRate: 18, InstallmentsTotal: 48},
	}

	baseline := Avalanche.Simulate(debts, 0)
	accelerated := Avalanche.Simulate(debts, 200)

	assert.Less(t, accelerated.Months, baseline.Months)
	assert.Less(t, accelerated.TotalInterestPaid, baseline.TotalInterestPaid)
}

func TestSimulate_DoesNotMutateCallerDebts(t *testing.T) {
	debts := []model.Debt{
		{ID: 1, Title: "A", RemainingAmount: 2000, InterestRate: 25, InstallmentsTotal: 12},
		{ID: 2, Title: "B", RemainingAmount: 100, InterestRate: 5, InstallmentsTotal: 4},
	}

	_ = Snowball.Simulate(debts, 100)

	assert.Equal(t, int64(1), debts[0].ID, "input order must be preserved")
	assert.InDelta(t, 2000.0, debts[0].RemainingAmount, 0.001)
	assert.InDelta(t, 100.0, debts[1].RemainingAmount, 0.001)
}

func TestStrategy_Ordering(t *testing.T) {
	debts := []model.Debt{
		{ID: 1, Title: "BigExpensive", RemainingAmount: 2000, InterestRate: 25, InstallmentsTotal: 12},
		{ID: 2, Title: "SmallCheap", RemainingAmount: 100, InterestRate: 5, InstallmentsTotal: 4},
	}

	avalanche := Avalanche.Simulate(debts, 0)
	require.Len(t, avalanche.PayoffOrder, 2)
	assert.Equal(t, int64(1), avalanche.PayoffOrder[0].ID, "highest rate first")

	snowball := Snowball.Simulate(debts, 0)
	require.Len(t, snowball.PayoffOrder, 2)
	assert.Equal(t, int64(2), snowball.PayoffOrder[0].ID, "smallest balance first")
}

func TestSimulate_TermClampedToOne(t *testing.T) {
	// All installments already paid: the remaining term is clamped to 1, so
	// the whole balance becomes the minimum payment.
	debts := []model.Debt{
		{ID: 1, Title: "Done", RemainingAmount: 300, InstallmentsTotal: 10, InstallmentsPaid: 10},
	}

	plan := Avalanche.Simulate(debts, 0)

	assert.Equal(t, 1, plan.Months)
	assert.InDelta(t, 300.0, plan.TotalPaid, 0.001)
}
