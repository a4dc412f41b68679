package model

import (
	"crypto/sha256"
	"fmt"
	"time"
)

// Transaction is a single historical transaction imported from a bank
// statement. Amount is signed: positive for income, negative for expenses.
// Imported transactions feed the variable-spending average used by the
// balance forecaster.
type Transaction struct {
	Date         time.Time
	ID           string
	Name         string // raw statement description
	MerchantName string // cleaned merchant name
	AccountID    string
	Hash         string
	Amount       float64
}

// GenerateHash creates a stable hash used for duplicate detection across
// repeated statement imports.
func (t *Transaction) GenerateHash() string {
	data := fmt.Sprintf("%s:%.2f:%s:%s",
		t.Date.Format("2006-01-02"),
		t.Amount,
		t.MerchantName,
		t.AccountID)
	sum := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", sum)
}

// IsExpense reports whether the transaction removes money from the balance.
func (t *Transaction) IsExpense() bool {
	return t.Amount < 0
}
