// Package model defines the core domain types shared across the application.
package model

import "time"

// Debt represents a single outstanding debt as stored by the user:
// a balance, an annual interest rate, and an installment-based term.
type Debt struct {
	CreatedAt         time.Time
	Title             string
	RemainingAmount   float64
	InterestRate      float64 // annual percentage rate, e.g. 18.0 means 18%/year
	ID                int64
	InstallmentsTotal int
	InstallmentsPaid  int
}

// RemainingTerm returns the number of installments left on the debt,
// clamped to at least 1 so it can safely be used as a divisor.
func (d Debt) RemainingTerm() int {
	term := d.InstallmentsTotal - d.InstallmentsPaid
	if term < 1 {
		return 1
	}
	return term
}

// MinimumPayment derives a minimum monthly payment by spreading the
// current balance evenly over the remaining term.
func (d Debt) MinimumPayment() float64 {
	return d.RemainingAmount / float64(d.RemainingTerm())
}

// MonthlyRate converts the annual percentage rate to a monthly fraction.
func (d Debt) MonthlyRate() float64 {
	return d.InterestRate / 100 / 12
}
