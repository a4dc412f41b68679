// Package payoff implements the debt payoff simulation engine: a
// month-by-month amortization simulator, strategy comparison between the
// avalanche and snowball orderings, and extra-payment suggestions.
package payoff

import (
	"sort"

	"github.com/kestrelworks/glidepath/internal/model"
	"github.com/shopspring/decimal"
)

// MaxSimulationMonths caps the simulation at 50 years. A debt whose minimum
// payment does not cover its accruing interest never amortizes; the cap turns
// that into a defined result instead of an infinite loop. Callers should
// treat a plan with Months == MaxSimulationMonths as "never pays off".
const MaxSimulationMonths = 600

// snapshotInterval controls which monthly snapshots are kept on the plan.
const snapshotInterval = 6

// Strategy is a payoff ordering: a name plus a sort key. The simulator is
// shared; only the order in which debts receive the extra payment differs.
type Strategy struct {
	Less func(a, b model.Debt) bool
	Name string
}

// The two supported payoff strategies.
var (
	// Avalanche targets the highest interest rate first.
	Avalanche = Strategy{
		Name: "avalanche",
		Less: func(a, b model.Debt) bool { return a.InterestRate > b.InterestRate },
	}
	// Snowball targets the smallest balance first.
	Snowball = Strategy{
		Name: "snowball",
		Less: func(a, b model.Debt) bool { return a.RemainingAmount < b.RemainingAmount },
	}
)

// DebtMonth records one debt's slice of a simulated month.
type DebtMonth struct {
	Title     string  `json:"title"`
	DebtID    int64   `json:"debt_id"`
	Payment   float64 `json:"payment"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Remaining float64 `json:"remaining"`
}

// MonthSnapshot is the state of every open debt after one simulated month.
type MonthSnapshot struct {
	Debts []DebtMonth `json:"debts"`
	Month int         `json:"month"`
}

// DebtRef identifies a debt in the plan's payoff order.
type DebtRef struct {
	Title string `json:"title"`
	ID    int64  `json:"id"`
}

// Plan is the result of simulating one strategy to completion.
type Plan struct {
	Method            string          `json:"method"`
	MonthlySnapshots  []MonthSnapshot `json:"monthly_snapshots"`
	PayoffOrder       []DebtRef       `json:"payoff_order"`
	Months            int             `json:"months"`
	Years             float64         `json:"years"`
	TotalInterestPaid float64         `json:"total_interest_paid"`
	TotalPaid         float64         `json:"total_paid"`
}

// debtState is the mutable per-debt working state of one simulation run.
// It is copied from the input debts at the start and discarded afterwards;
// caller-owned records are never mutated.
type debtState struct {
	remaining   float64
	monthlyRate float64
	minPayment  float64
}

// Simulate sorts a copy of debts by the strategy's key and runs the shared
// amortization simulation with the given extra monthly payment.
func (s Strategy) Simulate(debts []model.Debt, extraPayment float64) Plan {
	ordered := make([]model.Debt, len(debts))
	copy(ordered, debts)
	sort.SliceStable(ordered, func(i, j int) bool { return s.Less(ordered[i], ordered[j]) })

	plan := simulate(ordered, extraPayment)
	plan.Method = s.Name
	return plan
}

// simulate runs the month-by-month amortization over debts already in
// strategy order. Each month, every open debt accrues interest and pays its
// fixed minimum; the extra payment then goes entirely to the first open debt
// in order. Any extra beyond that debt's balance is not redistributed within
// the month.
func simulate(ordered []model.Debt, extraPayment float64) Plan {
	states := make([]debtState, len(ordered))
	payoffOrder := make([]DebtRef, len(ordered))
	var originalTotal float64
	for i, d := range ordered {
		states[i] = debtState{
			remaining:   d.RemainingAmount,
			monthlyRate: d.MonthlyRate(),
			minPayment:  d.MinimumPayment(),
		}
		payoffOrder[i] = DebtRef{ID: d.ID, Title: d.Title}
		originalTotal += d.RemainingAmount
	}

	plan := Plan{PayoffOrder: payoffOrder}
	var totalInterest float64

	for plan.Months < MaxSimulationMonths && anyOpen(states) {
		plan.Months++
		snapshot := MonthSnapshot{Month: plan.Months}

		// Maps each state to its entry in this month's snapshot, so the
		// extra-payment pass can amend the entry it tops up.
		entryIndex := make([]int, len(states))

		for i := range states {
			st := &states[i]
			entryIndex[i] = -1
			if st.remaining <= 0 {
				continue
			}

			interest := st.remaining * st.monthlyRate
			totalInterest += interest

			// The final payment never overshoots the balance plus interest.
			payment := st.minPayment
			if payment > st.remaining+interest {
				payment = st.remaining + interest
			}

			principal := payment - interest
			st.remaining -= principal
			if st.remaining < 0 {
				st.remaining = 0
			}

			snapshot.Debts = append(snapshot.Debts, DebtMonth{
				DebtID:    ordered[i].ID,
				Title:     ordered[i].Title,
				Payment:   payment,
				Principal: principal,
				Interest:  interest,
				Remaining: st.remaining,
			})
			entryIndex[i] = len(snapshot.Debts) - 1
		}

		if extraPayment > 0 {
			for i := range states {
				st := &states[i]
				if st.remaining <= 0 {
					continue
				}

				applied := extraPayment
				if applied > st.remaining {
					applied = st.remaining
				}
				st.remaining -= applied

				if j := entryIndex[i]; j >= 0 {
					entry := &snapshot.Debts[j]
					entry.Payment += applied
					entry.Principal += applied
					entry.Remaining = st.remaining
				}
				break
			}
		}

		if plan.Months%snapshotInterval == 0 {
			plan.MonthlySnapshots = append(plan.MonthlySnapshots, snapshot)
		}
	}

	plan.Years = roundTo(float64(plan.Months)/12, 1)
	plan.TotalInterestPaid = roundCents(totalInterest)
	plan.TotalPaid = roundCents(originalTotal + totalInterest)
	return plan
}

func anyOpen(states []debtState) bool {
	for i := range states {
		if states[i].remaining > 0 {
			return true
		}
	}
	return false
}

// roundCents rounds a monetary value to two decimal places. Simulation math
// runs in float64; decimal rounding is applied only at the output edge.
func roundCents(x float64) float64 {
	return roundTo(x, 2)
}

func roundTo(x float64, places int32) float64 {
	return decimal.NewFromFloat(x).Round(places).InexactFloat64()
}
