package forecast

import (
	"fmt"
	"time"

	"github.com/kestrelworks/glidepath/internal/model"
)

// Alert kinds and severities.
const (
	AlertLowBalance = "low_balance"
	AlertSurplus    = "surplus"

	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// Surplus detection parameters: a balance is a surplus when it exceeds the
// average of the first surplusAvgWindow points by surplusFactor, within the
// first surplusScanWindow days.
const (
	surplusFactor     = 1.2
	surplusAvgWindow  = 30
	surplusScanWindow = 7
)

// Alert flags a notable condition in the projected balance series.
type Alert struct {
	Date     time.Time `json:"date"`
	Type     string    `json:"type"`
	Severity string    `json:"severity"`
	Message  string    `json:"message"`
	Amount   float64   `json:"amount"`
}

// GenerateAlerts scans the projection for a low-balance breach and a
// near-term surplus. Each check emits at most one alert, for the earliest
// point that trips it.
func GenerateAlerts(points []Point, settings model.ForecastSettings) []Alert {
	var alerts []Alert

	if alert, ok := lowBalanceAlert(points, settings); ok {
		alerts = append(alerts, alert)
	}
	if alert, ok := surplusAlert(points); ok {
		alerts = append(alerts, alert)
	}

	return alerts
}

func lowBalanceAlert(points []Point, settings model.ForecastSettings) (Alert, bool) {
	window := settings.AlertDaysAhead
	if window > len(points) {
		window = len(points)
	}

	for _, p := range points[:window] {
		if p.Balance < settings.LowBalanceThreshold {
			return Alert{
				Type:     AlertLowBalance,
				Severity: SeverityWarning,
				Date:     p.Date,
				Amount:   p.Balance,
				Message: fmt.Sprintf("Balance is projected to drop to %.2f on %s, below your %.2f threshold.",
					p.Balance, p.Date.Format("2006-01-02"), settings.LowBalanceThreshold),
			}, true
		}
	}
	return Alert{}, false
}

func surplusAlert(points []Point) (Alert, bool) {
	avgWindow := surplusAvgWindow
	if avgWindow > len(points) {
		avgWindow = len(points)
	}
	if avgWindow == 0 {
		return Alert{}, false
	}

	var sum float64
	for _, p := range points[:avgWindow] {
		sum += p.Balance
	}
	avgBalance := sum / float64(avgWindow)
	threshold := avgBalance * surplusFactor

	scanWindow := surplusScanWindow
	if scanWindow > len(points) {
		scanWindow = len(points)
	}

	for _, p := range points[:scanWindow] {
		if p.Balance > threshold {
			surplus := p.Balance - avgBalance
			return Alert{
				Type:     AlertSurplus,
				Severity: SeverityInfo,
				Date:     p.Date,
				Amount:   surplus,
				Message: fmt.Sprintf("You are projected to have a surplus of %.2f on %s. Consider an extra debt payment.",
					surplus, p.Date.Format("2006-01-02")),
			}, true
		}
	}
	return Alert{}, false
}
