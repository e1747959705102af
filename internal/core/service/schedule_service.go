package service

import (
	"context"
	"fmt"
	"time"

	"github.com/soomin/lingocare/internal/core/cron"
	"github.com/soomin/lingocare/internal/core/domain"
	"github.com/soomin/lingocare/internal/core/repository"
)

// ScheduleService owns the auto-publish schedule. The structured config is
// never stored directly: edits are rendered to a cron expression on save
// and reconstructed from it on read, so the expression is the single
// source of truth.
type ScheduleService struct {
	settingsRepo repository.SettingsRepository
}

func NewScheduleService(settingsRepo repository.SettingsRepository) *ScheduleService {
	return &ScheduleService{settingsRepo: settingsRepo}
}

// Schedule is the full view of the publish schedule handed to the API and
// CLI: the stored expression, its structured reconstruction, and a
// localized summary.
type Schedule struct {
	Config      cron.ScheduleConfig
	Expression  string
	Description string
	Enabled     bool
	Locale      string
	UpdatedAt   time.Time
}

// GetSchedule returns the current publish schedule. A malformed stored
// expression degrades to the default config rather than failing.
func (s *ScheduleService) GetSchedule(ctx context.Context) (*Schedule, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load publish settings: %w", err)
	}
	return s.toSchedule(settings), nil
}

// UpdateSchedule applies a partial edit to the current schedule config and
// persists the regenerated expression.
func (s *ScheduleService) UpdateSchedule(ctx context.Context, upd cron.ScheduleUpdate, enabled *bool, locale *string) (*Schedule, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load publish settings: %w", err)
	}

	cfg := cron.ApplyUpdate(cron.ParseExpression(settings.CronExpression), upd)
	settings.CronExpression = cron.GenerateExpression(cfg)
	if enabled != nil {
		settings.Enabled = *enabled
	}
	if locale != nil {
		settings.Locale = *locale
	}
	settings.UpdatedAt = time.Now()

	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save publish settings: %w", err)
	}

	return s.toSchedule(settings), nil
}

// Preview returns the next count run times for the stored schedule. A
// malformed stored expression yields an empty list, never an error.
func (s *ScheduleService) Preview(ctx context.Context, count int) ([]time.Time, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load publish settings: %w", err)
	}
	if count <= 0 {
		count = cron.DefaultRunCount
	}
	return cron.NextRuns(settings.CronExpression, count, time.Now()), nil
}

func (s *ScheduleService) toSchedule(settings *domain.PublishSettings) *Schedule {
	cfg := cron.ParseExpression(settings.CronExpression)
	return &Schedule{
		Config:      cfg,
		Expression:  settings.CronExpression,
		Description: cron.Describe(cfg, settings.Locale),
		Enabled:     settings.Enabled,
		Locale:      settings.Locale,
		UpdatedAt:   settings.UpdatedAt,
	}
}
