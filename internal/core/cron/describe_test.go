package cron_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/soomin/lingocare/internal/core/cron"
)

func TestDescribe_Daily(t *testing.T) {
	cfg := cron.DefaultConfig()
	assert.Equal(t, "Every day at 09:00", cron.Describe(cfg, "en"))
	assert.Equal(t, "매일 09:00", cron.Describe(cfg, "ko"))
}

func TestDescribe_UnknownLocaleFallsBackToEnglish(t *testing.T) {
	cfg := cron.DefaultConfig()
	assert.Equal(t, cron.Describe(cfg, "en"), cron.Describe(cfg, "fr"))
}

func TestDescribe_Minutes(t *testing.T) {
	cfg := cron.ScheduleConfig{IntervalValue: 15, IntervalUnit: cron.UnitMinutes, DayRestriction: cron.RestrictAll}
	assert.Equal(t, "Every 15 minutes", cron.Describe(cfg, "en"))

	cfg.IntervalValue = 1
	assert.Equal(t, "Every minute", cron.Describe(cfg, "en"))
}

func TestDescribe_WeekdayQualifier(t *testing.T) {
	cfg := cron.ScheduleConfig{
		IntervalValue:  1,
		IntervalUnit:   cron.UnitDays,
		Hour:           14,
		Minute:         30,
		DayRestriction: cron.RestrictWeekdays,
		SelectedDays:   []int{1, 2, 3, 4, 5},
	}
	assert.Equal(t, "Every day at 14:30, weekdays only", cron.Describe(cfg, "en"))
}

func TestDescribe_CustomDaysAndMonths(t *testing.T) {
	cfg := cron.ScheduleConfig{
		IntervalValue:  1,
		IntervalUnit:   cron.UnitDays,
		Hour:           9,
		DayRestriction: cron.RestrictCustom,
		SelectedDays:   []int{5, 1},
		SelectedMonths: []int{3, 1},
	}
	assert.Equal(t, "Every day at 09:00, on Mon, Fri, in Jan, Mar", cron.Describe(cfg, "en"))
}

func TestDescribe_Monthly(t *testing.T) {
	cfg := cron.ScheduleConfig{
		IntervalValue:  2,
		IntervalUnit:   cron.UnitMonths,
		Hour:           9,
		DayRestriction: cron.RestrictAll,
		DaysOfMonth:    []int{5, 20},
	}
	assert.Equal(t, "Every 2 months on day 5,20 at 09:00", cron.Describe(cfg, "en"))
}

func TestDescribe_Deterministic(t *testing.T) {
	cfg := cron.ScheduleConfig{
		IntervalValue:  1,
		IntervalUnit:   cron.UnitHours,
		Minute:         45,
		DayRestriction: cron.RestrictWeekends,
		SelectedDays:   []int{0, 6},
	}
	first := cron.Describe(cfg, "ko")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, cron.Describe(cfg, "ko"))
	}
}

func TestApplyUpdate_DoesNotMutateInput(t *testing.T) {
	orig := cron.ScheduleConfig{
		IntervalValue:  1,
		IntervalUnit:   cron.UnitDays,
		Hour:           9,
		DayRestriction: cron.RestrictCustom,
		SelectedDays:   []int{1, 3},
	}
	restriction := cron.RestrictWeekends
	updated := cron.ApplyUpdate(orig, cron.ScheduleUpdate{DayRestriction: &restriction})

	assert.Equal(t, []int{0, 6}, updated.SelectedDays)
	assert.Equal(t, []int{1, 3}, orig.SelectedDays)
	assert.Equal(t, cron.RestrictCustom, orig.DayRestriction)
}

func TestApplyUpdate_WeekdaysDeriveSelectedDays(t *testing.T) {
	restriction := cron.RestrictWeekdays
	updated := cron.ApplyUpdate(cron.DefaultConfig(), cron.ScheduleUpdate{
		DayRestriction: &restriction,
		SelectedDays:   []int{0, 6}, // ignored: derived from the restriction
	})
	assert.Equal(t, []int{1, 2, 3, 4, 5}, updated.SelectedDays)
}

func TestApplyUpdate_AllClearsSelectedDays(t *testing.T) {
	cfg := cron.ScheduleConfig{
		IntervalValue:  1,
		IntervalUnit:   cron.UnitDays,
		DayRestriction: cron.RestrictWeekends,
		SelectedDays:   []int{0, 6},
	}
	restriction := cron.RestrictAll
	updated := cron.ApplyUpdate(cfg, cron.ScheduleUpdate{DayRestriction: &restriction})
	assert.Empty(t, updated.SelectedDays)
}

func TestApplyUpdate_PartialFieldEdit(t *testing.T) {
	hour := 18
	unit := cron.UnitHours
	value := 4
	updated := cron.ApplyUpdate(cron.DefaultConfig(), cron.ScheduleUpdate{
		Hour:          &hour,
		IntervalUnit:  &unit,
		IntervalValue: &value,
	})
	assert.Equal(t, 18, updated.Hour)
	assert.Equal(t, cron.UnitHours, updated.IntervalUnit)
	assert.Equal(t, 4, updated.IntervalValue)
	assert.Equal(t, 0, updated.Minute)
	assert.Equal(t, cron.RestrictAll, updated.DayRestriction)
}
