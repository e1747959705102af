package domain

import "time"

// PublishSettings is the single-row configuration for the auto-publish
// pipeline. The schedule itself is stored as a 5-field cron expression;
// the structured form is reconstructed on read.
type PublishSettings struct {
	ID             int64     `db:"id"` // always 1
	CronExpression string    `db:"cron_expression"`
	Enabled        bool      `db:"enabled"`
	Locale         string    `db:"locale"` // default locale for generated posts
	UpdatedAt      time.Time `db:"updated_at"`
}

func DefaultPublishSettings() *PublishSettings {
	return &PublishSettings{
		ID:             1,
		CronExpression: "0 9 * * *",
		Enabled:        false,
		Locale:         "en",
		UpdatedAt:      time.Now(),
	}
}
