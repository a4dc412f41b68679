package forecast

import (
	"time"

	"github.com/kestrelworks/glidepath/internal/model"
)

// bandSpread is the fraction of the daily variable expense added to or
// removed from the base series to form the pessimistic and optimistic bands.
const bandSpread = 0.3

// Point is one projected day: the running balance after that day's recurring
// and variable activity has been applied.
type Point struct {
	Date         time.Time `json:"date"`
	Balance      float64   `json:"balance"`
	Income       float64   `json:"income"`
	Expenses     float64   `json:"expenses"`
	HasRecurring bool      `json:"has_recurring"`
}

// BandPoint is one day of an optimistic or pessimistic band.
type BandPoint struct {
	Date    time.Time `json:"date"`
	Balance float64   `json:"balance"`
}

// Projection holds the base series plus its confidence bands. All three
// series have days+1 points, inclusive of day zero.
type Projection struct {
	Points      []Point     `json:"projections"`
	Optimistic  []BandPoint `json:"optimistic"`
	Pessimistic []BandPoint `json:"pessimistic"`
}

// Project simulates the balance day by day from start. Each day, every due
// recurring entry contributes its average amount, and the historical variable
// daily expense is added when enabled. The bands are not re-simulations: they
// shift each day's balance by a fixed fraction of the variable expense, so
// they track the base series at a growing offset.
func Project(start time.Time, currentBalance float64, recurring []model.RecurringTransaction, variableDailyExpense float64, days int, includeVariable bool) Projection {
	proj := Projection{
		Points:      make([]Point, 0, days+1),
		Optimistic:  make([]BandPoint, 0, days+1),
		Pessimistic: make([]BandPoint, 0, days+1),
	}

	variable := 0.0
	if includeVariable {
		variable = variableDailyExpense
	}

	balance := currentBalance
	optimistic := currentBalance
	pessimistic := currentBalance

	for i := 0; i <= days; i++ {
		date := dateOnly(start).AddDate(0, 0, i)

		var income, expenses float64
		hasRecurring := false
		for _, rec := range recurring {
			if !rec.Active || !IsDue(rec, date) {
				continue
			}
			hasRecurring = true
			if rec.IsIncome() {
				income += rec.AverageAmount
			} else {
				expenses += -rec.AverageAmount
			}
		}
		expenses += variable

		balance += income - expenses
		optimistic += income - (expenses - variable*bandSpread)
		pessimistic += income - (expenses + variable*bandSpread)

		proj.Points = append(proj.Points, Point{
			Date:         date,
			Balance:      balance,
			Income:       income,
			Expenses:     expenses,
			HasRecurring: hasRecurring,
		})
		proj.Optimistic = append(proj.Optimistic, BandPoint{Date: date, Balance: optimistic})
		proj.Pessimistic = append(proj.Pessimistic, BandPoint{Date: date, Balance: pessimistic})
	}

	return proj
}
