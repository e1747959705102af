package repository

import (
	"context"

	"github.com/soomin/lingocare/internal/core/domain"
)

// SettingsRepository persists the single publish-settings row. Get returns
// defaults when nothing has been saved yet.
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.PublishSettings, error)
	Save(ctx context.Context, settings *domain.PublishSettings) error
}
