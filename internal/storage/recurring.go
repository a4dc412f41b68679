package storage

import (
	"context"
	"fmt"

	"github.com/kestrelworks/glidepath/internal/model"
)

// SaveRecurringTransaction inserts a new recurring transaction and fills in
// its assigned ID.
func (s *SQLiteStorage) SaveRecurringTransaction(ctx context.Context, rec *model.RecurringTransaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateRecurring(rec); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO recurring_transactions (merchant_pattern, average_amount, frequency, next_expected_date, active)
		VALUES (?, ?, ?, ?, ?)
	`, rec.MerchantPattern, rec.AverageAmount, string(rec.Frequency), rec.NextExpectedDate, rec.Active)
	if err != nil {
		return fmt.Errorf("failed to save recurring transaction: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get recurring transaction ID: %w", err)
	}
	rec.ID = id
	return nil
}

// GetRecurringTransactions returns every recurring transaction, active or not.
func (s *SQLiteStorage) GetRecurringTransactions(ctx context.Context) ([]model.RecurringTransaction, error) {
	return s.queryRecurring(ctx, `
		SELECT id, merchant_pattern, average_amount, frequency, next_expected_date, active, created_at
		FROM recurring_transactions
		ORDER BY next_expected_date, id
	`)
}

// GetActiveRecurringTransactions returns only active recurring transactions.
func (s *SQLiteStorage) GetActiveRecurringTransactions(ctx context.Context) ([]model.RecurringTransaction, error) {
	return s.queryRecurring(ctx, `
		SELECT id, merchant_pattern, average_amount, frequency, next_expected_date, active, created_at
		FROM recurring_transactions
		WHERE active = 1
		ORDER BY next_expected_date, id
	`)
}

func (s *SQLiteStorage) queryRecurring(ctx context.Context, query string) ([]model.RecurringTransaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query recurring transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var recs []model.RecurringTransaction
	for rows.Next() {
		var rec model.RecurringTransaction
		var frequency string
		if err := rows.Scan(&rec.ID, &rec.MerchantPattern, &rec.AverageAmount,
			&frequency, &rec.NextExpectedDate, &rec.Active, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan recurring transaction: %w", err)
		}
		rec.Frequency = model.Frequency(frequency)
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// DeleteRecurringTransaction removes a recurring transaction by ID.
func (s *SQLiteStorage) DeleteRecurringTransaction(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM recurring_transactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete recurring transaction: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: recurring transaction %d", ErrNotFound, id)
	}
	return nil
}
