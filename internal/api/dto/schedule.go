package dto

import (
	"time"

	"github.com/soomin/lingocare/internal/core/cron"
)

// UpdateScheduleRequest represents a partial edit of the publish schedule.
// Omitted fields keep their current values.
type UpdateScheduleRequest struct {
	IntervalValue  *int     `json:"interval_value,omitempty" binding:"omitempty,min=1"`
	IntervalUnit   *string  `json:"interval_unit,omitempty" binding:"omitempty,oneof=minutes hours days months"`
	Hour           *int     `json:"hour,omitempty" binding:"omitempty,min=0,max=23"`
	Minute         *int     `json:"minute,omitempty" binding:"omitempty,min=0,max=59"`
	DayRestriction *string  `json:"day_restriction,omitempty" binding:"omitempty,oneof=all weekdays weekends custom"`
	SelectedDays   []int    `json:"selected_days,omitempty" binding:"omitempty,dive,min=0,max=6"`
	DaysOfMonth    []int    `json:"days_of_month,omitempty" binding:"omitempty,dive,min=1,max=31"`
	SelectedMonths []int    `json:"selected_months,omitempty" binding:"omitempty,dive,min=1,max=12"`
	Enabled        *bool    `json:"enabled,omitempty"`
	Locale         *string  `json:"locale,omitempty"`
}

// ToUpdate converts the request to the engine's update value
func (r *UpdateScheduleRequest) ToUpdate() cron.ScheduleUpdate {
	upd := cron.ScheduleUpdate{
		IntervalValue:  r.IntervalValue,
		Hour:           r.Hour,
		Minute:         r.Minute,
		SelectedDays:   r.SelectedDays,
		DaysOfMonth:    r.DaysOfMonth,
		SelectedMonths: r.SelectedMonths,
	}
	if r.IntervalUnit != nil {
		unit := cron.IntervalUnit(*r.IntervalUnit)
		upd.IntervalUnit = &unit
	}
	if r.DayRestriction != nil {
		restriction := cron.DayRestriction(*r.DayRestriction)
		upd.DayRestriction = &restriction
	}
	return upd
}

// ScheduleResponse represents the publish schedule
type ScheduleResponse struct {
	IntervalValue  int       `json:"interval_value"`
	IntervalUnit   string    `json:"interval_unit"`
	Hour           int       `json:"hour"`
	Minute         int       `json:"minute"`
	DayRestriction string    `json:"day_restriction"`
	SelectedDays   []int     `json:"selected_days"`
	DaysOfMonth    []int     `json:"days_of_month"`
	SelectedMonths []int     `json:"selected_months"`
	CronExpression string    `json:"cron_expression"`
	Description    string    `json:"description"`
	Enabled        bool      `json:"enabled"`
	Locale         string    `json:"locale"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ScheduledRun represents one projected run time
type ScheduledRun struct {
	RunAt time.Time `json:"run_at"`
}

// SchedulePreviewResponse represents the next projected run times
type SchedulePreviewResponse struct {
	CronExpression string         `json:"cron_expression"`
	Runs           []ScheduledRun `json:"runs"`
}
