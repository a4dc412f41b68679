package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTransactionGenerateHash(t *testing.T) {
	base := Transaction{
		ID:           "TX001",
		Date:         time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
		Name:         "GROCERY OUTLET #42",
		MerchantName: "Grocery Outlet",
		AccountID:    "checking",
		Amount:       -62.40,
	}

	// The hash identifies the underlying purchase, so a re-import with a
	// fresh bank-assigned ID must collide.
	reimported := base
	reimported.ID = "TX999"
	assert.Equal(t, base.GenerateHash(), reimported.GenerateHash())

	// Changing any hashed field produces a different hash.
	differentAmount := base
	differentAmount.Amount = -62.41
	assert.NotEqual(t, base.GenerateHash(), differentAmount.GenerateHash())

	differentDay := base
	differentDay.Date = base.Date.AddDate(0, 0, 1)
	assert.NotEqual(t, base.GenerateHash(), differentDay.GenerateHash())

	differentAccount := base
	differentAccount.AccountID = "savings"
	assert.NotEqual(t, base.GenerateHash(), differentAccount.GenerateHash())
}

func TestTransactionHashIgnoresTimeOfDay(t *testing.T) {
	morning := Transaction{
		Date:         time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC),
		MerchantName: "Coffee House",
		AccountID:    "checking",
		Amount:       -4.50,
	}
	evening := morning
	evening.Date = time.Date(2026, 2, 10, 19, 30, 0, 0, time.UTC)

	assert.Equal(t, morning.GenerateHash(), evening.GenerateHash())
}

func TestTransactionIsExpense(t *testing.T) {
	assert.True(t, (&Transaction{Amount: -10}).IsExpense())
	assert.False(t, (&Transaction{Amount: 10}).IsExpense())
	assert.False(t, (&Transaction{}).IsExpense())
}

func TestDefaultForecastSettings(t *testing.T) {
	settings := DefaultForecastSettings()
	assert.InDelta(t, DefaultLowBalanceThreshold, settings.LowBalanceThreshold, 0.001)
	assert.Equal(t, DefaultAlertDaysAhead, settings.AlertDaysAhead)
	assert.True(t, settings.IncludeVariableSpending)
}
