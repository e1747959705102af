package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/soomin/lingocare/internal/core/domain"
	"github.com/soomin/lingocare/internal/core/repository"
)

type settingsRepository struct {
	db *DB
}

func NewSettingsRepository(db *DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(ctx context.Context) (*domain.PublishSettings, error) {
	query := `
		SELECT id, cron_expression, enabled, locale, updated_at
		FROM publish_settings
		WHERE id = 1
	`
	var settings domain.PublishSettings
	err := r.db.GetContext(ctx, &settings, query)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DefaultPublishSettings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get publish settings: %w", err)
	}
	return &settings, nil
}

func (r *settingsRepository) Save(ctx context.Context, settings *domain.PublishSettings) error {
	query := `
		INSERT INTO publish_settings (id, cron_expression, enabled, locale, updated_at)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			cron_expression = excluded.cron_expression,
			enabled = excluded.enabled,
			locale = excluded.locale,
			updated_at = excluded.updated_at
	`
	_, err := r.db.ExecContext(ctx, query,
		settings.CronExpression,
		settings.Enabled,
		settings.Locale,
		settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save publish settings: %w", err)
	}
	return nil
}
