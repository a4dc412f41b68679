package forecast

import (
	"testing"
	"time"

	"github.com/kestrelworks/glidepath/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flatPoints(start time.Time, balances ...float64) []Point {
	points := make([]Point, len(balances))
	for i, b := range balances {
		points[i] = Point{Date: start.AddDate(0, 0, i), Balance: b}
	}
	return points
}

func TestGenerateAlerts_LowBalance(t *testing.T) {
	start := date(2026, time.March, 2)
	settings := model.ForecastSettings{LowBalanceThreshold: 100, AlertDaysAhead: 14}

	points := flatPoints(start, 300, 250, 180, 90, 40, 20)

	alerts := GenerateAlerts(points, settings)
	require.Len(t, alerts, 1)

	alert := alerts[0]
	assert.Equal(t, AlertLowBalance, alert.Type)
	assert.Equal(t, SeverityWarning, alert.Severity)
	assert.Equal(t, start.AddDate(0, 0, 3), alert.Date, "only the earliest breach is reported")
	assert.InDelta(t, 90.0, alert.Amount, 0.001)
	assert.NotEmpty(t, alert.Message)
}

func TestGenerateAlerts_NoBreachNoAlert(t *testing.T) {
	start := date(2026, time.March, 2)
	settings := model.ForecastSettings{LowBalanceThreshold: 50, AlertDaysAhead: 14}

	alerts := GenerateAlerts(flatPoints(start, 300, 250, 180, 120), settings)

	assert.Empty(t, alerts)
}

func TestGenerateAlerts_BreachOutsideWindowIgnored(t *testing.T) {
	start := date(2026, time.March, 2)
	settings := model.ForecastSettings{LowBalanceThreshold: 100, AlertDaysAhead: 3}

	// The breach happens on day 5, past the 3-day alert window.
	points := flatPoints(start, 300, 300, 300, 300, 300, 50)

	alerts := GenerateAlerts(points, settings)

	assert.Empty(t, alerts)
}

func TestGenerateAlerts_Surplus(t *testing.T) {
	start := date(2026, time.March, 2)
	settings := model.ForecastSettings{LowBalanceThreshold: 0, AlertDaysAhead: 14}

	// 30 points averaging just over 100, with a spike on day 2 that clears
	// the 1.2x surplus threshold.
	balances := make([]float64, 31)
	for i := range balances {
		balances[i] = 100
	}
	balances[2] = 200
	points := flatPoints(start, balances...)

	alerts := GenerateAlerts(points, settings)
	require.Len(t, alerts, 1)

	alert := alerts[0]
	assert.Equal(t, AlertSurplus, alert.Type)
	assert.Equal(t, SeverityInfo, alert.Severity)
	assert.Equal(t, start.AddDate(0, 0, 2), alert.Date)
	// Average over the first 30 points is (29*100 + 200) / 30.
	assert.InDelta(t, 200.0-3100.0/30.0, alert.Amount, 0.001)
}

func TestGenerateAlerts_FlatSeriesNoSurplus(t *testing.T) {
	start := date(2026, time.March, 2)
	settings := model.ForecastSettings{LowBalanceThreshold: 0, AlertDaysAhead: 14}

	balances := make([]float64, 31)
	for i := range balances {
		balances[i] = 100
	}

	alerts := GenerateAlerts(flatPoints(start, balances...), settings)

	assert.Empty(t, alerts)
}

func TestGenerateAlerts_BothKinds(t *testing.T) {
	start := date(2026, time.March, 2)
	settings := model.ForecastSettings{LowBalanceThreshold: 60, AlertDaysAhead: 14}

	// Day 0 spikes well above the average; day 1 dips below the threshold.
	points := flatPoints(start, 500, 50, 50, 50, 50, 50, 50, 50, 50, 50)

	alerts := GenerateAlerts(points, settings)
	require.Len(t, alerts, 2)

	types := []string{alerts[0].Type, alerts[1].Type}
	assert.Contains(t, types, AlertLowBalance)
	assert.Contains(t, types, AlertSurplus)
}

func TestGenerateAlerts_EmptyProjection(t *testing.T) {
	settings := model.ForecastSettings{LowBalanceThreshold: 100, AlertDaysAhead: 14}

	assert.Empty(t, GenerateAlerts(nil, settings))
}
