package cron_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/soomin/lingocare/internal/core/cron"
)

func TestGenerateExpression_DailyDefault(t *testing.T) {
	cfg := cron.DefaultConfig()
	assert.Equal(t, "0 9 * * *", cron.GenerateExpression(cfg))
}

func TestGenerateExpression_MinuteStep(t *testing.T) {
	cfg := cron.ScheduleConfig{IntervalValue: 15, IntervalUnit: cron.UnitMinutes}
	assert.Equal(t, "*/15 * * * *", cron.GenerateExpression(cfg))
}

func TestGenerateExpression_EveryMinute(t *testing.T) {
	cfg := cron.ScheduleConfig{IntervalValue: 1, IntervalUnit: cron.UnitMinutes}
	assert.Equal(t, "* * * * *", cron.GenerateExpression(cfg))
}

func TestGenerateExpression_HourStep(t *testing.T) {
	cfg := cron.ScheduleConfig{IntervalValue: 2, IntervalUnit: cron.UnitHours, Minute: 30}
	assert.Equal(t, "30 */2 * * *", cron.GenerateExpression(cfg))
}

func TestGenerateExpression_WeekdaysCanonical(t *testing.T) {
	// The restriction wins over whatever SelectedDays holds.
	cfg := cron.ScheduleConfig{
		IntervalValue:  1,
		IntervalUnit:   cron.UnitDays,
		Hour:           14,
		Minute:         30,
		DayRestriction: cron.RestrictWeekdays,
		SelectedDays:   []int{0, 6},
	}
	assert.Equal(t, "30 14 * * 1-5", cron.GenerateExpression(cfg))
}

func TestGenerateExpression_WeekendsCanonical(t *testing.T) {
	cfg := cron.ScheduleConfig{
		IntervalValue:  1,
		IntervalUnit:   cron.UnitDays,
		Hour:           9,
		DayRestriction: cron.RestrictWeekends,
	}
	assert.Equal(t, "0 9 * * 0,6", cron.GenerateExpression(cfg))
}

func TestGenerateExpression_CustomDaysSorted(t *testing.T) {
	cfg := cron.ScheduleConfig{
		IntervalValue:  1,
		IntervalUnit:   cron.UnitDays,
		Hour:           9,
		DayRestriction: cron.RestrictCustom,
		SelectedDays:   []int{5, 1, 3},
	}
	assert.Equal(t, "0 9 * * 1,3,5", cron.GenerateExpression(cfg))
}

func TestGenerateExpression_CustomAllDaysIsWildcard(t *testing.T) {
	cfg := cron.ScheduleConfig{
		IntervalValue:  1,
		IntervalUnit:   cron.UnitDays,
		Hour:           9,
		DayRestriction: cron.RestrictCustom,
		SelectedDays:   []int{0, 1, 2, 3, 4, 5, 6},
	}
	assert.Equal(t, "0 9 * * *", cron.GenerateExpression(cfg))
}

func TestGenerateExpression_DayStepDiscardsDaysOfMonth(t *testing.T) {
	cfg := cron.ScheduleConfig{
		IntervalValue:  3,
		IntervalUnit:   cron.UnitDays,
		Hour:           9,
		Minute:         30,
		DayRestriction: cron.RestrictAll,
		DaysOfMonth:    []int{5, 20},
	}
	assert.Equal(t, "30 9 */3 * *", cron.GenerateExpression(cfg))
}

func TestGenerateExpression_MonthlyDefaultsToFirst(t *testing.T) {
	cfg := cron.ScheduleConfig{
		IntervalValue:  1,
		IntervalUnit:   cron.UnitMonths,
		Hour:           9,
		DayRestriction: cron.RestrictAll,
	}
	assert.Equal(t, "0 9 1 * *", cron.GenerateExpression(cfg))
}

func TestGenerateExpression_MonthStep(t *testing.T) {
	cfg := cron.ScheduleConfig{
		IntervalValue:  2,
		IntervalUnit:   cron.UnitMonths,
		Hour:           9,
		DayRestriction: cron.RestrictAll,
		DaysOfMonth:    []int{5},
	}
	assert.Equal(t, "0 9 5 */2 *", cron.GenerateExpression(cfg))
}

func TestGenerateExpression_SelectedMonths(t *testing.T) {
	cfg := cron.ScheduleConfig{
		IntervalValue:  1,
		IntervalUnit:   cron.UnitDays,
		Hour:           9,
		DayRestriction: cron.RestrictAll,
		SelectedMonths: []int{6, 1, 12},
	}
	assert.Equal(t, "0 9 * 1,6,12 *", cron.GenerateExpression(cfg))
}

func TestGenerateExpression_UnknownUnitFallsBack(t *testing.T) {
	cfg := cron.ScheduleConfig{IntervalValue: 1, IntervalUnit: "weeks"}
	assert.Equal(t, "0 9 * * *", cron.GenerateExpression(cfg))
}

func TestParseExpression_WrongFieldCount(t *testing.T) {
	want := cron.DefaultConfig()
	assert.Equal(t, want, cron.ParseExpression("not a cron"))
	assert.Equal(t, want, cron.ParseExpression(""))
	assert.Equal(t, want, cron.ParseExpression("* * * *"))
	assert.Equal(t, want, cron.ParseExpression("* * * * * *"))
}

func TestParseExpression_Weekdays(t *testing.T) {
	cfg := cron.ParseExpression("30 14 * * 1-5")
	assert.Equal(t, cron.RestrictWeekdays, cfg.DayRestriction)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, cfg.SelectedDays)
	assert.Equal(t, cron.UnitDays, cfg.IntervalUnit)
	assert.Equal(t, 1, cfg.IntervalValue)
	assert.Equal(t, 14, cfg.Hour)
	assert.Equal(t, 30, cfg.Minute)
}

func TestParseExpression_WeekendsBothSpellings(t *testing.T) {
	for _, expr := range []string{"0 9 * * 0,6", "0 9 * * 6,0"} {
		cfg := cron.ParseExpression(expr)
		assert.Equal(t, cron.RestrictWeekends, cfg.DayRestriction, expr)
	}
}

func TestParseExpression_CustomDays(t *testing.T) {
	cfg := cron.ParseExpression("0 9 * * 1,3,5")
	assert.Equal(t, cron.RestrictCustom, cfg.DayRestriction)
	assert.Equal(t, []int{1, 3, 5}, cfg.SelectedDays)
}

func TestParseExpression_MinuteStep(t *testing.T) {
	cfg := cron.ParseExpression("*/15 * * * *")
	assert.Equal(t, cron.UnitMinutes, cfg.IntervalUnit)
	assert.Equal(t, 15, cfg.IntervalValue)
}

func TestParseExpression_EveryMinute(t *testing.T) {
	cfg := cron.ParseExpression("* * * * *")
	assert.Equal(t, cron.UnitMinutes, cfg.IntervalUnit)
	assert.Equal(t, 1, cfg.IntervalValue)
}

func TestParseExpression_HourStepOverridesMinuteLiteral(t *testing.T) {
	cfg := cron.ParseExpression("30 */2 * * *")
	assert.Equal(t, cron.UnitHours, cfg.IntervalUnit)
	assert.Equal(t, 2, cfg.IntervalValue)
	assert.Equal(t, 30, cfg.Minute)
}

func TestParseExpression_HourlyLiteralMinute(t *testing.T) {
	cfg := cron.ParseExpression("30 * * * *")
	assert.Equal(t, cron.UnitHours, cfg.IntervalUnit)
	assert.Equal(t, 1, cfg.IntervalValue)
	assert.Equal(t, 30, cfg.Minute)
}

func TestParseExpression_DayStep(t *testing.T) {
	cfg := cron.ParseExpression("30 9 */3 * *")
	assert.Equal(t, cron.UnitDays, cfg.IntervalUnit)
	assert.Equal(t, 3, cfg.IntervalValue)
	assert.Equal(t, 9, cfg.Hour)
	assert.Equal(t, 30, cfg.Minute)
}

func TestParseExpression_MonthStep(t *testing.T) {
	cfg := cron.ParseExpression("0 9 5 */2 *")
	assert.Equal(t, cron.UnitMonths, cfg.IntervalUnit)
	assert.Equal(t, 2, cfg.IntervalValue)
	assert.Equal(t, []int{5}, cfg.DaysOfMonth)
}

func TestParseExpression_MonthlyInference(t *testing.T) {
	// A daily schedule restricted to specific calendar days reads back as
	// monthly; the stored format cannot distinguish the two.
	cfg := cron.ParseExpression("0 9 5,20 * *")
	assert.Equal(t, cron.UnitMonths, cfg.IntervalUnit)
	assert.Equal(t, 1, cfg.IntervalValue)
	assert.Equal(t, []int{5, 20}, cfg.DaysOfMonth)
}

func TestParseExpression_SelectedMonths(t *testing.T) {
	cfg := cron.ParseExpression("0 9 * 1,6,12 *")
	assert.Equal(t, []int{1, 6, 12}, cfg.SelectedMonths)
}

func TestRoundTrip_CanonicalPresets(t *testing.T) {
	presets := []cron.ScheduleConfig{
		// Hour stays at the UI default of 9 where the generated hour
		// field is a wildcard; the parser restores that same default.
		{IntervalValue: 1, IntervalUnit: cron.UnitMinutes, Hour: 9, DayRestriction: cron.RestrictAll},
		{IntervalValue: 15, IntervalUnit: cron.UnitMinutes, Hour: 9, DayRestriction: cron.RestrictAll},
		{IntervalValue: 1, IntervalUnit: cron.UnitHours, Hour: 9, Minute: 30, DayRestriction: cron.RestrictAll},
		{IntervalValue: 2, IntervalUnit: cron.UnitHours, Hour: 9, Minute: 30, DayRestriction: cron.RestrictAll},
		{IntervalValue: 1, IntervalUnit: cron.UnitDays, Hour: 9, DayRestriction: cron.RestrictAll},
		{IntervalValue: 1, IntervalUnit: cron.UnitDays, Hour: 14, Minute: 30, DayRestriction: cron.RestrictWeekdays, SelectedDays: []int{1, 2, 3, 4, 5}},
		{IntervalValue: 1, IntervalUnit: cron.UnitDays, Hour: 9, DayRestriction: cron.RestrictWeekends, SelectedDays: []int{0, 6}},
		{IntervalValue: 3, IntervalUnit: cron.UnitDays, Hour: 9, DayRestriction: cron.RestrictAll},
		{IntervalValue: 1, IntervalUnit: cron.UnitMonths, Hour: 9, DayRestriction: cron.RestrictAll},
		{IntervalValue: 2, IntervalUnit: cron.UnitMonths, Hour: 9, DayRestriction: cron.RestrictAll, DaysOfMonth: []int{5}},
	}

	for _, preset := range presets {
		expr := cron.GenerateExpression(preset)
		got := cron.ParseExpression(expr)
		assert.Equal(t, preset.IntervalUnit, got.IntervalUnit, expr)
		assert.Equal(t, preset.IntervalValue, got.IntervalValue, expr)
		assert.Equal(t, preset.Hour, got.Hour, expr)
		assert.Equal(t, preset.Minute, got.Minute, expr)
		assert.Equal(t, preset.DayRestriction, got.DayRestriction, expr)
	}
}
