package payoff

import (
	"fmt"

	"github.com/kestrelworks/glidepath/internal/model"
)

// RecommendAvalancheThreshold is the interest difference (in currency units)
// above which avalanche is recommended over snowball. Below it, snowball's
// quick psychological wins outweigh a negligible interest saving.
const RecommendAvalancheThreshold = 100.0

// Comparison is the head-to-head verdict between the two strategies.
type Comparison struct {
	Recommendation string  `json:"recommendation"`
	Reasoning      string  `json:"reasoning"`
	InterestSaved  float64 `json:"interest_saved"`
	MonthsSaved    int     `json:"months_saved"`
}

// StrategyResult bundles both full plans with their comparison.
type StrategyResult struct {
	Comparison Comparison `json:"comparison"`
	Avalanche  Plan       `json:"avalanche"`
	Snowball   Plan       `json:"snowball"`
}

// Compare simulates both payoff strategies against the same debts and extra
// payment, and recommends one.
func Compare(debts []model.Debt, extraPayment float64) StrategyResult {
	avalanche := Avalanche.Simulate(debts, extraPayment)
	snowball := Snowball.Simulate(debts, extraPayment)

	return StrategyResult{
		Avalanche:  avalanche,
		Snowball:   snowball,
		Comparison: buildComparison(avalanche, snowball),
	}
}

func buildComparison(avalanche, snowball Plan) Comparison {
	interestSaved := roundCents(snowball.TotalInterestPaid - avalanche.TotalInterestPaid)
	monthsSaved := snowball.Months - avalanche.Months

	comparison := Comparison{
		InterestSaved: interestSaved,
		MonthsSaved:   monthsSaved,
	}
	if interestSaved > RecommendAvalancheThreshold {
		comparison.Recommendation = Avalanche.Name
		comparison.Reasoning = fmt.Sprintf(
			"The avalanche method saves %.2f in interest and pays everything off %d month(s) sooner.",
			interestSaved, monthsSaved)
	} else {
		comparison.Recommendation = Snowball.Name
		comparison.Reasoning = "The interest difference is small, so the snowball method's " +
			"early payoffs are worth more for staying motivated."
	}
	return comparison
}
