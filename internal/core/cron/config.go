// Package cron converts between the structured publish-schedule
// configuration edited in the admin console and the 5-field cron
// expression stored in settings, and projects upcoming run times
// from a stored expression.
package cron

import "sort"

type IntervalUnit string

const (
	UnitMinutes IntervalUnit = "minutes"
	UnitHours   IntervalUnit = "hours"
	UnitDays    IntervalUnit = "days"
	UnitMonths  IntervalUnit = "months"
)

type DayRestriction string

const (
	RestrictAll      DayRestriction = "all"
	RestrictWeekdays DayRestriction = "weekdays"
	RestrictWeekends DayRestriction = "weekends"
	RestrictCustom   DayRestriction = "custom"
)

// ScheduleConfig is the structured recurrence description. Integer fields
// are expected pre-validated into range by the caller; the engine does not
// re-check bounds. Empty DaysOfMonth/SelectedMonths mean "unrestricted",
// not "never".
type ScheduleConfig struct {
	IntervalValue  int            `json:"interval_value"`
	IntervalUnit   IntervalUnit   `json:"interval_unit"`
	Hour           int            `json:"hour"`
	Minute         int            `json:"minute"`
	DayRestriction DayRestriction `json:"day_restriction"`
	SelectedDays   []int          `json:"selected_days"`   // 0=Sunday .. 6=Saturday, custom only
	DaysOfMonth    []int          `json:"days_of_month"`   // 1-31
	SelectedMonths []int          `json:"selected_months"` // 1-12
}

// DefaultConfig is the fallback returned when a stored expression cannot
// be reconstructed: daily at 09:00, no day or month restriction.
func DefaultConfig() ScheduleConfig {
	return ScheduleConfig{
		IntervalValue:  1,
		IntervalUnit:   UnitDays,
		Hour:           9,
		Minute:         0,
		DayRestriction: RestrictAll,
	}
}

// ScheduleUpdate carries a partial edit of a ScheduleConfig. Nil fields
// leave the current value unchanged.
type ScheduleUpdate struct {
	IntervalValue  *int            `json:"interval_value,omitempty"`
	IntervalUnit   *IntervalUnit   `json:"interval_unit,omitempty"`
	Hour           *int            `json:"hour,omitempty"`
	Minute         *int            `json:"minute,omitempty"`
	DayRestriction *DayRestriction `json:"day_restriction,omitempty"`
	SelectedDays   []int           `json:"selected_days,omitempty"`
	DaysOfMonth    []int           `json:"days_of_month,omitempty"`
	SelectedMonths []int           `json:"selected_months,omitempty"`
}

// ApplyUpdate returns a new config with the update applied. The input
// config is never mutated; SelectedDays is re-derived whenever the day
// restriction changes so it stays consistent with it.
func ApplyUpdate(cfg ScheduleConfig, upd ScheduleUpdate) ScheduleConfig {
	out := cfg
	out.SelectedDays = append([]int(nil), cfg.SelectedDays...)
	out.DaysOfMonth = append([]int(nil), cfg.DaysOfMonth...)
	out.SelectedMonths = append([]int(nil), cfg.SelectedMonths...)

	if upd.IntervalValue != nil {
		out.IntervalValue = *upd.IntervalValue
	}
	if upd.IntervalUnit != nil {
		out.IntervalUnit = *upd.IntervalUnit
	}
	if upd.Hour != nil {
		out.Hour = *upd.Hour
	}
	if upd.Minute != nil {
		out.Minute = *upd.Minute
	}
	if upd.SelectedDays != nil {
		out.SelectedDays = append([]int(nil), upd.SelectedDays...)
	}
	if upd.DaysOfMonth != nil {
		out.DaysOfMonth = append([]int(nil), upd.DaysOfMonth...)
	}
	if upd.SelectedMonths != nil {
		out.SelectedMonths = append([]int(nil), upd.SelectedMonths...)
	}
	if upd.DayRestriction != nil {
		out.DayRestriction = *upd.DayRestriction
	}

	// SelectedDays is only free-form under the custom restriction.
	switch out.DayRestriction {
	case RestrictWeekdays:
		out.SelectedDays = []int{1, 2, 3, 4, 5}
	case RestrictWeekends:
		out.SelectedDays = []int{0, 6}
	case RestrictCustom:
		sort.Ints(out.SelectedDays)
	default:
		out.SelectedDays = nil
	}

	return out
}
