package payoff

import (
	"errors"
	"fmt"
	"math"

	"github.com/kestrelworks/glidepath/internal/model"
)

// Validation errors.
var (
	ErrInvalidDebt         = errors.New("invalid debt")
	ErrInvalidExtraPayment = errors.New("invalid extra payment")
)

// ValidateDebts rejects debts that would corrupt the simulation: NaN or
// infinite amounts, negative balances, negative rates. A non-positive
// remaining term is not an error; it is clamped to 1 when deriving the
// minimum payment.
func ValidateDebts(debts []model.Debt) error {
	for _, d := range debts {
		if err := validateDebt(d); err != nil {
			return err
		}
	}
	return nil
}

func validateDebt(d model.Debt) error {
	if !isFinite(d.RemainingAmount) {
		return fmt.Errorf("%w: debt %q has a non-finite balance", ErrInvalidDebt, d.Title)
	}
	if d.RemainingAmount < 0 {
		return fmt.Errorf("%w: debt %q has a negative balance", ErrInvalidDebt, d.Title)
	}
	if !isFinite(d.InterestRate) {
		return fmt.Errorf("%w: debt %q has a non-finite interest rate", ErrInvalidDebt, d.Title)
	}
	if d.InterestRate < 0 {
		return fmt.Errorf("%w: debt %q has a negative interest rate", ErrInvalidDebt, d.Title)
	}
	return nil
}

// ValidateExtraPayment rejects NaN, infinite, or negative extra payments.
func ValidateExtraPayment(extra float64) error {
	if !isFinite(extra) {
		return fmt.Errorf("%w: must be a finite number", ErrInvalidExtraPayment)
	}
	if extra < 0 {
		return fmt.Errorf("%w: must not be negative", ErrInvalidExtraPayment)
	}
	return nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
