// Package forecast implements the balance forecasting engine: calendar-based
// recurrence matching, day-by-day balance projection with confidence bands,
// and threshold alerting.
package forecast

import (
	"time"

	"github.com/kestrelworks/glidepath/internal/model"
)

// IsDue reports whether a recurring transaction fires on the given date.
// Dates before the next expected date never match. From the next expected
// date onward, matching is purely calendar-based per frequency: weekly and
// biweekly by day count, monthly and quarterly by day of month.
func IsDue(rec model.RecurringTransaction, date time.Time) bool {
	next := dateOnly(rec.NextExpectedDate)
	day := dateOnly(date)
	if day.Before(next) {
		return false
	}

	daysDiff := int(day.Sub(next).Hours() / 24)

	switch rec.Frequency {
	case model.FrequencyWeekly:
		return daysDiff%7 == 0
	case model.FrequencyBiweekly:
		return daysDiff%14 == 0
	case model.FrequencyMonthly:
		return day.Day() == next.Day()
	case model.FrequencyQuarterly:
		if day.Day() != next.Day() {
			return false
		}
		monthsDiff := (day.Year()-next.Year())*12 + int(day.Month()) - int(next.Month())
		return monthsDiff%3 == 0
	default:
		return false
	}
}

// dateOnly strips the time-of-day component so day arithmetic is exact.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
