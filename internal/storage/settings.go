package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kestrelworks/glidepath/internal/model"
)

// GetForecastSettings returns the stored forecast settings, creating the row
// with defaults on first access.
func (s *SQLiteStorage) GetForecastSettings(ctx context.Context) (*model.ForecastSettings, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	settings, err := s.readForecastSettings(ctx)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to read forecast settings: %w", err)
	}

	defaults := model.DefaultForecastSettings()
	if err := s.SaveForecastSettings(ctx, &defaults); err != nil {
		return nil, err
	}
	return &defaults, nil
}

func (s *SQLiteStorage) readForecastSettings(ctx context.Context) (*model.ForecastSettings, error) {
	var settings model.ForecastSettings
	err := s.db.QueryRowContext(ctx, `
		SELECT low_balance_threshold, alert_days_ahead, include_variable_spending, updated_at
		FROM forecast_settings WHERE id = 1
	`).Scan(&settings.LowBalanceThreshold, &settings.AlertDaysAhead,
		&settings.IncludeVariableSpending, &settings.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// SaveForecastSettings upserts the single forecast settings row.
func (s *SQLiteStorage) SaveForecastSettings(ctx context.Context, settings *model.ForecastSettings) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if settings == nil {
		return fmt.Errorf("%w: settings", ErrNilParameter)
	}
	if settings.AlertDaysAhead < 0 {
		return fmt.Errorf("%w: alert days ahead must not be negative", ErrInvalidSettings)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO forecast_settings (id, low_balance_threshold, alert_days_ahead, include_variable_spending, updated_at)
		VALUES (1, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			low_balance_threshold = excluded.low_balance_threshold,
			alert_days_ahead = excluded.alert_days_ahead,
			include_variable_spending = excluded.include_variable_spending,
			updated_at = CURRENT_TIMESTAMP
	`, settings.LowBalanceThreshold, settings.AlertDaysAhead, settings.IncludeVariableSpending)
	if err != nil {
		return fmt.Errorf("failed to save forecast settings: %w", err)
	}
	return nil
}
