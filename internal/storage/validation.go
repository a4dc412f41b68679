package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kestrelworks/glidepath/internal/model"
)

// Validation errors.
var (
	ErrNilContext       = errors.New("context cannot be nil")
	ErrEmptyString      = errors.New("string parameter cannot be empty")
	ErrNilParameter     = errors.New("parameter cannot be nil")
	ErrEmptySlice       = errors.New("slice cannot be empty")
	ErrInvalidDebt      = errors.New("invalid debt")
	ErrInvalidRecurring = errors.New("invalid recurring transaction")
	ErrInvalidTxn       = errors.New("invalid transaction")
	ErrInvalidSettings  = errors.New("invalid forecast settings")
	ErrNotFound         = errors.New("not found")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

func validateDebt(debt *model.Debt) error {
	if debt == nil {
		return fmt.Errorf("%w: debt", ErrNilParameter)
	}
	if strings.TrimSpace(debt.Title) == "" {
		return fmt.Errorf("%w: missing title", ErrInvalidDebt)
	}
	if debt.RemainingAmount < 0 {
		return fmt.Errorf("%w: negative remaining amount", ErrInvalidDebt)
	}
	if debt.InterestRate < 0 {
		return fmt.Errorf("%w: negative interest rate", ErrInvalidDebt)
	}
	return nil
}

func validateRecurring(rec *model.RecurringTransaction) error {
	if rec == nil {
		return fmt.Errorf("%w: recurring transaction", ErrNilParameter)
	}
	if strings.TrimSpace(rec.MerchantPattern) == "" {
		return fmt.Errorf("%w: missing merchant pattern", ErrInvalidRecurring)
	}
	if !rec.Frequency.IsValid() {
		return fmt.Errorf("%w: unknown frequency %q", ErrInvalidRecurring, rec.Frequency)
	}
	if rec.NextExpectedDate.IsZero() {
		return fmt.Errorf("%w: missing next expected date", ErrInvalidRecurring)
	}
	return nil
}

func validateTransactions(transactions []model.Transaction) error {
	if transactions == nil {
		return fmt.Errorf("%w: transactions", ErrNilParameter)
	}
	if len(transactions) == 0 {
		return fmt.Errorf("%w: transactions", ErrEmptySlice)
	}
	for i, txn := range transactions {
		if err := validateTransaction(&txn); err != nil {
			return fmt.Errorf("transaction at index %d: %w", i, err)
		}
	}
	return nil
}

func validateTransaction(txn *model.Transaction) error {
	if txn == nil {
		return fmt.Errorf("%w: transaction", ErrNilParameter)
	}
	if txn.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidTxn)
	}
	if txn.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidTxn)
	}
	if txn.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidTxn)
	}
	return nil
}
