package cron

import (
	"fmt"
	"sort"
	"strings"
)

var dayNames = map[string][]string{
	"en": {"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	"ko": {"일", "월", "화", "수", "목", "금", "토"},
}

var monthNames = map[string][]string{
	"en": {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	"ko": {"1월", "2월", "3월", "4월", "5월", "6월", "7월", "8월", "9월", "10월", "11월", "12월"},
}

// Describe renders a schedule config as a short human-readable sentence
// for the admin console. Unknown locales fall back to English. The output
// is a pure function of the config.
func Describe(cfg ScheduleConfig, locale string) string {
	if _, ok := dayNames[locale]; !ok {
		locale = "en"
	}

	at := fmt.Sprintf("%02d:%02d", cfg.Hour, cfg.Minute)
	var base string
	switch cfg.IntervalUnit {
	case UnitMinutes:
		if cfg.IntervalValue == 1 {
			base = pick(locale, "Every minute", "매분")
		} else {
			base = pick(locale,
				fmt.Sprintf("Every %d minutes", cfg.IntervalValue),
				fmt.Sprintf("%d분마다", cfg.IntervalValue))
		}
	case UnitHours:
		if cfg.IntervalValue == 1 {
			base = pick(locale,
				fmt.Sprintf("Every hour at minute %d", cfg.Minute),
				fmt.Sprintf("매시 %d분", cfg.Minute))
		} else {
			base = pick(locale,
				fmt.Sprintf("Every %d hours at minute %d", cfg.IntervalValue, cfg.Minute),
				fmt.Sprintf("%d시간마다 %d분", cfg.IntervalValue, cfg.Minute))
		}
	case UnitDays:
		if cfg.IntervalValue == 1 {
			base = pick(locale,
				fmt.Sprintf("Every day at %s", at),
				fmt.Sprintf("매일 %s", at))
		} else {
			base = pick(locale,
				fmt.Sprintf("Every %d days at %s", cfg.IntervalValue, at),
				fmt.Sprintf("%d일마다 %s", cfg.IntervalValue, at))
		}
	case UnitMonths:
		days := cfg.DaysOfMonth
		if len(days) == 0 {
			days = []int{1}
		}
		dayList := joinSorted(days)
		if cfg.IntervalValue == 1 {
			base = pick(locale,
				fmt.Sprintf("Every month on day %s at %s", dayList, at),
				fmt.Sprintf("매월 %s일 %s", dayList, at))
		} else {
			base = pick(locale,
				fmt.Sprintf("Every %d months on day %s at %s", cfg.IntervalValue, dayList, at),
				fmt.Sprintf("%d개월마다 %s일 %s", cfg.IntervalValue, dayList, at))
		}
	default:
		base = pick(locale, fmt.Sprintf("Every day at %s", at), fmt.Sprintf("매일 %s", at))
	}

	var qualifiers []string
	switch cfg.DayRestriction {
	case RestrictWeekdays:
		qualifiers = append(qualifiers, pick(locale, "weekdays only", "평일만"))
	case RestrictWeekends:
		qualifiers = append(qualifiers, pick(locale, "weekends only", "주말만"))
	case RestrictCustom:
		if n := len(cfg.SelectedDays); n >= 1 && n <= 6 {
			names := dayNames[locale]
			sorted := append([]int(nil), cfg.SelectedDays...)
			sort.Ints(sorted)
			var parts []string
			for _, d := range sorted {
				if d >= 0 && d < len(names) {
					parts = append(parts, names[d])
				}
			}
			qualifiers = append(qualifiers, pick(locale, "on ", "")+strings.Join(parts, ", "))
		}
	}

	if n := len(cfg.SelectedMonths); n >= 1 && n < 12 {
		names := monthNames[locale]
		sorted := append([]int(nil), cfg.SelectedMonths...)
		sort.Ints(sorted)
		var parts []string
		for _, m := range sorted {
			if m >= 1 && m <= len(names) {
				parts = append(parts, names[m-1])
			}
		}
		qualifiers = append(qualifiers, pick(locale, "in ", "")+strings.Join(parts, ", "))
	}

	if len(qualifiers) == 0 {
		return base
	}
	return base + ", " + strings.Join(qualifiers, ", ")
}

func pick(locale, en, ko string) string {
	if locale == "ko" {
		return ko
	}
	return en
}
