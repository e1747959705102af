package cron

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// defaultExpression is emitted when the interval unit is unrecognized:
// daily at 09:00.
const defaultExpression = "0 9 * * *"

// GenerateExpression renders a ScheduleConfig as a 5-field cron expression
// (minute hour day-of-month month day-of-week). It never fails: inputs are
// pre-clamped by the caller and an unknown interval unit falls back to the
// default daily expression.
func GenerateExpression(cfg ScheduleConfig) string {
	dayOfWeek := "*"
	switch cfg.DayRestriction {
	case RestrictWeekdays:
		dayOfWeek = "1-5"
	case RestrictWeekends:
		dayOfWeek = "0,6"
	case RestrictCustom:
		// 0 or all 7 days selected is equivalent to no restriction.
		if n := len(cfg.SelectedDays); n >= 1 && n <= 6 {
			dayOfWeek = joinSorted(cfg.SelectedDays)
		}
	}

	month := "*"
	if n := len(cfg.SelectedMonths); n >= 1 && n < 12 {
		month = joinSorted(cfg.SelectedMonths)
	}

	dayOfMonth := "*"
	if n := len(cfg.DaysOfMonth); n >= 1 && n <= 30 {
		dayOfMonth = joinSorted(cfg.DaysOfMonth)
	}

	minute := "*"
	hour := "*"
	switch cfg.IntervalUnit {
	case UnitMinutes:
		if cfg.IntervalValue != 1 {
			minute = fmt.Sprintf("*/%d", cfg.IntervalValue)
		}
	case UnitHours:
		minute = strconv.Itoa(cfg.Minute)
		if cfg.IntervalValue != 1 {
			hour = fmt.Sprintf("*/%d", cfg.IntervalValue)
		}
	case UnitDays:
		minute = strconv.Itoa(cfg.Minute)
		hour = strconv.Itoa(cfg.Hour)
		// A multi-day step takes over the day-of-month field, discarding
		// any explicit day-of-month selection.
		if cfg.IntervalValue != 1 {
			dayOfMonth = fmt.Sprintf("*/%d", cfg.IntervalValue)
		}
	case UnitMonths:
		minute = strconv.Itoa(cfg.Minute)
		hour = strconv.Itoa(cfg.Hour)
		if len(cfg.DaysOfMonth) == 0 {
			dayOfMonth = "1"
		} else {
			dayOfMonth = joinSorted(cfg.DaysOfMonth)
		}
		if cfg.IntervalValue != 1 {
			month = fmt.Sprintf("*/%d", cfg.IntervalValue)
		} else {
			month = "*"
		}
	default:
		return defaultExpression
	}

	return minute + " " + hour + " " + dayOfMonth + " " + month + " " + dayOfWeek
}

// ParseExpression reconstructs a ScheduleConfig from a stored cron
// expression. Any string that does not split into exactly 5 fields yields
// DefaultConfig; this is a silent fallback, not an error. The
// reconstruction is best-effort and intentionally not a strict inverse of
// GenerateExpression (several expressions are ambiguous).
func ParseExpression(expr string) ScheduleConfig {
	fields := strings.Fields(expr)
	if len(fields) != 5 {
		return DefaultConfig()
	}
	minuteF, hourF, domF, monthF, dowF := fields[0], fields[1], fields[2], fields[3], fields[4]

	cfg := DefaultConfig()

	switch dowF {
	case "*":
		cfg.DayRestriction = RestrictAll
	case "1-5":
		cfg.DayRestriction = RestrictWeekdays
		cfg.SelectedDays = []int{1, 2, 3, 4, 5}
	case "0,6", "6,0":
		cfg.DayRestriction = RestrictWeekends
		cfg.SelectedDays = []int{0, 6}
	default:
		cfg.DayRestriction = RestrictCustom
		cfg.SelectedDays = parseIntList(dowF)
	}

	if monthF != "*" && !strings.Contains(monthF, "/") {
		cfg.SelectedMonths = parseIntList(monthF)
	}
	if domF != "*" && !strings.Contains(domF, "/") {
		cfg.DaysOfMonth = parseIntList(domF)
	}

	if strings.Contains(minuteF, "/") {
		cfg.IntervalUnit = UnitMinutes
		cfg.IntervalValue = stepValue(minuteF)
	} else if minuteF == "*" && hourF == "*" {
		cfg.IntervalUnit = UnitMinutes
		cfg.IntervalValue = 1
	} else if v, err := strconv.Atoi(minuteF); err == nil {
		cfg.Minute = v
	} else {
		cfg.Minute = 0
	}

	if strings.Contains(hourF, "/") {
		cfg.IntervalUnit = UnitHours
		cfg.IntervalValue = stepValue(hourF)
	} else if hourF != "*" {
		if v, err := strconv.Atoi(hourF); err == nil {
			cfg.Hour = v
		}
	} else if cfg.IntervalUnit != UnitMinutes {
		cfg.IntervalUnit = UnitHours
	}

	if strings.Contains(domF, "/") {
		cfg.IntervalUnit = UnitDays
		cfg.IntervalValue = stepValue(domF)
	}
	if strings.Contains(monthF, "/") {
		cfg.IntervalUnit = UnitMonths
		cfg.IntervalValue = stepValue(monthF)
	}

	// A plain day-of-month list on a daily schedule is how monthly
	// schedules serialize, so reclassify. This can misread a genuinely
	// day-restricted daily schedule; the stored format cannot tell the
	// two apart.
	if cfg.IntervalUnit == UnitDays && len(cfg.DaysOfMonth) > 0 && !strings.Contains(domF, "/") {
		cfg.IntervalUnit = UnitMonths
		cfg.IntervalValue = 1
	}

	return cfg
}

func joinSorted(values []int) string {
	sorted := append([]int(nil), values...)
	sort.Ints(sorted)
	parts := make([]string, len(sorted))
	for i, v := range sorted {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func parseIntList(field string) []int {
	var values []int
	for _, part := range strings.Split(field, ",") {
		if v, err := strconv.Atoi(part); err == nil {
			values = append(values, v)
		}
	}
	return values
}

// stepValue extracts N from a step field like "*/15" or "5/10".
func stepValue(field string) int {
	parts := strings.SplitN(field, "/", 2)
	if len(parts) != 2 {
		return 1
	}
	v, err := strconv.Atoi(parts[1])
	if err != nil || v < 1 {
		return 1
	}
	return v
}
