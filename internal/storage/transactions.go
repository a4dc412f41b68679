package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/kestrelworks/glidepath/internal/model"
)

// SaveTransactions saves imported transactions, silently skipping duplicates
// by hash so re-importing the same statement is harmless.
func (s *SQLiteStorage) SaveTransactions(ctx context.Context, transactions []model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTransactions(transactions); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO transactions (id, hash, date, name, merchant_name, amount, account_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, txn := range transactions {
		if txn.Hash == "" {
			txn.Hash = txn.GenerateHash()
		}
		if _, err := stmt.ExecContext(ctx,
			txn.ID, txn.Hash, txn.Date, txn.Name, txn.MerchantName, txn.Amount, txn.AccountID); err != nil {
			return fmt.Errorf("failed to save transaction %s: %w", txn.ID, err)
		}
	}

	return tx.Commit()
}

// GetTransactionCount returns the number of stored transactions.
func (s *SQLiteStorage) GetTransactionCount(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

// GetCurrentBalance sums all transaction amounts: income positive, expenses
// negative.
func (s *SQLiteStorage) GetCurrentBalance(ctx context.Context) (float64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var balance float64
	err := s.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(amount), 0) FROM transactions`).Scan(&balance)
	if err != nil {
		return 0, fmt.Errorf("failed to compute balance: %w", err)
	}
	return balance, nil
}

// GetAverageExpenseAmount returns the average absolute amount of expense
// transactions on or after since, or zero when there are none.
func (s *SQLiteStorage) GetAverageExpenseAmount(ctx context.Context, since time.Time) (float64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var avg float64
	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(AVG(ABS(amount)), 0)
		FROM transactions
		WHERE amount < 0 AND date >= ?
	`, since).Scan(&avg)
	if err != nil {
		return 0, fmt.Errorf("failed to compute average expense: %w", err)
	}
	return avg, nil
}
