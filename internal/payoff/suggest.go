package payoff

import "math"

// DefaultSafetyBuffer is the cash cushion kept untouched when suggesting
// extra payments.
const DefaultSafetyBuffer = 500.0

// Suggestion offers three extra-payment tiers based on what is safely
// available after recurring expenses and a buffer.
type Suggestion struct {
	Message      string  `json:"message"`
	Conservative float64 `json:"conservative"`
	Moderate     float64 `json:"moderate"`
	Aggressive   float64 `json:"aggressive"`
}

// SuggestExtraPayment computes safe extra-payment tiers from the current
// balance, the monthly recurring expense total, and a safety buffer. Tiers
// are 25%, 50%, and 75% of the available amount, rounded to whole currency
// units. When nothing is available, all tiers are zero.
func SuggestExtraPayment(currentBalance, monthlyRecurringExpenses, safetyBuffer float64) Suggestion {
	available := currentBalance - monthlyRecurringExpenses - safetyBuffer
	if available <= 0 {
		return Suggestion{
			Message: "No safe extra payment available right now. " +
				"Build an emergency fund before putting extra money toward debt.",
		}
	}

	return Suggestion{
		Conservative: math.Round(available * 0.25),
		Moderate:     math.Round(available * 0.50),
		Aggressive:   math.Round(available * 0.75),
		Message: "Extra payment tiers based on your available balance " +
			"after recurring expenses and a safety buffer.",
	}
}
