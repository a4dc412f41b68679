package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kestrelworks/glidepath/internal/model"
)

// SaveDebt inserts a new debt and fills in its assigned ID.
func (s *SQLiteStorage) SaveDebt(ctx context.Context, debt *model.Debt) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateDebt(debt); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO debts (title, remaining_amount, interest_rate, installments_total, installments_paid)
		VALUES (?, ?, ?, ?, ?)
	`, debt.Title, debt.RemainingAmount, debt.InterestRate, debt.InstallmentsTotal, debt.InstallmentsPaid)
	if err != nil {
		return fmt.Errorf("failed to save debt: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get debt ID: %w", err)
	}
	debt.ID = id
	return nil
}

// GetDebts returns all debts, newest first.
func (s *SQLiteStorage) GetDebts(ctx context.Context) ([]model.Debt, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, remaining_amount, interest_rate, installments_total, installments_paid, created_at
		FROM debts
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query debts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var debts []model.Debt
	for rows.Next() {
		var d model.Debt
		if err := rows.Scan(&d.ID, &d.Title, &d.RemainingAmount, &d.InterestRate,
			&d.InstallmentsTotal, &d.InstallmentsPaid, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan debt: %w", err)
		}
		debts = append(debts, d)
	}
	return debts, rows.Err()
}

// GetDebtByID returns a single debt or ErrNotFound.
func (s *SQLiteStorage) GetDebtByID(ctx context.Context, id int64) (*model.Debt, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var d model.Debt
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, remaining_amount, interest_rate, installments_total, installments_paid, created_at
		FROM debts WHERE id = ?
	`, id).Scan(&d.ID, &d.Title, &d.RemainingAmount, &d.InterestRate,
		&d.InstallmentsTotal, &d.InstallmentsPaid, &d.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: debt %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get debt: %w", err)
	}
	return &d, nil
}

// UpdateDebt rewrites an existing debt record.
func (s *SQLiteStorage) UpdateDebt(ctx context.Context, debt *model.Debt) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateDebt(debt); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE debts
		SET title = ?, remaining_amount = ?, interest_rate = ?, installments_total = ?, installments_paid = ?
		WHERE id = ?
	`, debt.Title, debt.RemainingAmount, debt.InterestRate,
		debt.InstallmentsTotal, debt.InstallmentsPaid, debt.ID)
	if err != nil {
		return fmt.Errorf("failed to update debt: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: debt %d", ErrNotFound, debt.ID)
	}
	return nil
}

// DeleteDebt removes a debt by ID.
func (s *SQLiteStorage) DeleteDebt(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM debts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete debt: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: debt %d", ErrNotFound, id)
	}
	return nil
}
