package cron

import (
	"strconv"
	"strings"
	"time"
)

// maxIterations caps the minute walk at one non-leap year so an
// unsatisfiable expression still terminates in bounded time.
const maxIterations = 525600

// DefaultRunCount is the number of upcoming runs shown in previews.
const DefaultRunCount = 5

// NextRuns returns the next n wall-clock times after now that satisfy the
// expression, in ascending order and truncated to the minute. Day-of-month
// and day-of-week are both applied when both are restricted (an AND, unlike
// classic cron's OR). A malformed expression yields an empty result; an
// unsatisfiable one yields whatever matched before the iteration cap,
// possibly nothing.
func NextRuns(expr string, n int, now time.Time) []time.Time {
	fields := strings.Fields(expr)
	if len(fields) != 5 {
		return nil
	}

	minutes := expandField(fields[0], 0, 59)
	hours := expandField(fields[1], 0, 23)
	daysOfMonth := expandField(fields[2], 1, 31)
	months := expandField(fields[3], 1, 12)
	daysOfWeek := expandField(fields[4], 0, 6)

	// A step day-of-month field matches (day-1) % N == 0 rather than the
	// expanded set, so "*/3" fires on the 1st, 4th, 7th... of every month
	// regardless of month length.
	domStep := 0
	if strings.HasPrefix(fields[2], "*/") {
		domStep = stepValue(fields[2])
	}

	t := now.Truncate(time.Minute)
	var runs []time.Time
	for i := 0; i < maxIterations && len(runs) < n; i++ {
		t = t.Add(time.Minute)
		if !contains(minutes, t.Minute()) || !contains(hours, t.Hour()) {
			continue
		}
		if domStep > 0 {
			if (t.Day()-1)%domStep != 0 {
				continue
			}
		} else if !contains(daysOfMonth, t.Day()) {
			continue
		}
		if !contains(months, int(t.Month())) || !contains(daysOfWeek, int(t.Weekday())) {
			continue
		}
		runs = append(runs, t)
	}
	return runs
}

// expandField expands one cron field into the explicit set of allowed
// values. Unparseable parts are skipped rather than reported, leaving an
// empty set that simply never matches.
func expandField(field string, min, max int) []int {
	var values []int
	if field == "*" {
		for i := min; i <= max; i++ {
			values = append(values, i)
		}
		return values
	}

	for _, part := range strings.Split(field, ",") {
		switch {
		case strings.Contains(part, "/"):
			halves := strings.SplitN(part, "/", 2)
			step, err := strconv.Atoi(halves[1])
			if err != nil || step < 1 {
				continue
			}
			start := min
			if halves[0] != "*" {
				if v, err := strconv.Atoi(halves[0]); err == nil {
					start = v
				}
			}
			for i := start; i <= max; i += step {
				values = append(values, i)
			}
		case strings.Contains(part, "-"):
			halves := strings.SplitN(part, "-", 2)
			start, err1 := strconv.Atoi(halves[0])
			end, err2 := strconv.Atoi(halves[1])
			if err1 != nil || err2 != nil || start > end {
				continue
			}
			for i := start; i <= end; i++ {
				values = append(values, i)
			}
		default:
			if v, err := strconv.Atoi(part); err == nil {
				values = append(values, v)
			}
		}
	}
	return values
}

func contains(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
