package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/soomin/lingocare/internal/api/dto"
)

func TestGetScheduleDefaults(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()

	w := env.makeRequest(t, http.MethodGet, "/settings/schedule", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d\nBody: %s", w.Code, w.Body.String())
	}

	resp := parseResponse[dto.ScheduleResponse](t, w)

	if resp.CronExpression != "0 9 * * *" {
		t.Errorf("expected default expression '0 9 * * *', got %q", resp.CronExpression)
	}
	if resp.IntervalUnit != "days" || resp.IntervalValue != 1 {
		t.Errorf("expected daily interval, got %d %s", resp.IntervalValue, resp.IntervalUnit)
	}
	if resp.Hour != 9 || resp.Minute != 0 {
		t.Errorf("expected 09:00, got %02d:%02d", resp.Hour, resp.Minute)
	}
	if resp.Enabled {
		t.Error("expected schedule to be disabled by default")
	}
}

func TestUpdateScheduleWeekdays(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()

	body := map[string]interface{}{
		"hour":            14,
		"minute":          30,
		"day_restriction": "weekdays",
		"enabled":         true,
	}

	w := env.makeRequest(t, http.MethodPut, "/settings/schedule", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d\nBody: %s", w.Code, w.Body.String())
	}

	resp := parseResponse[dto.ScheduleResponse](t, w)

	if resp.CronExpression != "30 14 * * 1-5" {
		t.Errorf("expected expression '30 14 * * 1-5', got %q", resp.CronExpression)
	}
	if !resp.Enabled {
		t.Error("expected schedule to be enabled")
	}
	expectedDays := []int{1, 2, 3, 4, 5}
	if len(resp.SelectedDays) != len(expectedDays) {
		t.Fatalf("expected selected days %v, got %v", expectedDays, resp.SelectedDays)
	}
	for i, d := range expectedDays {
		if resp.SelectedDays[i] != d {
			t.Errorf("selected_days[%d]: expected %d, got %d", i, d, resp.SelectedDays[i])
		}
	}
	if resp.Description == "" {
		t.Error("expected a non-empty description")
	}
}

func TestUpdateSchedulePersists(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()

	body := map[string]interface{}{
		"interval_value": 15,
		"interval_unit":  "minutes",
	}

	w := env.makeRequest(t, http.MethodPut, "/settings/schedule", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d\nBody: %s", w.Code, w.Body.String())
	}

	// A subsequent GET must return the stored schedule
	w = env.makeRequest(t, http.MethodGet, "/settings/schedule", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	resp := parseResponse[dto.ScheduleResponse](t, w)
	if resp.CronExpression != "*/15 * * * *" {
		t.Errorf("expected expression '*/15 * * * *', got %q", resp.CronExpression)
	}
	if resp.IntervalUnit != "minutes" || resp.IntervalValue != 15 {
		t.Errorf("expected every 15 minutes, got %d %s", resp.IntervalValue, resp.IntervalUnit)
	}
}

func TestUpdateScheduleRejectsInvalidUnit(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()

	body := map[string]interface{}{
		"interval_unit": "fortnights",
	}

	w := env.makeRequest(t, http.MethodPut, "/settings/schedule", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d\nBody: %s", w.Code, w.Body.String())
	}
}

func TestPreviewSchedule(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()

	w := env.makeRequest(t, http.MethodGet, "/settings/schedule/preview", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d\nBody: %s", w.Code, w.Body.String())
	}

	resp := parseResponse[dto.SchedulePreviewResponse](t, w)

	if resp.CronExpression != "0 9 * * *" {
		t.Errorf("expected expression '0 9 * * *', got %q", resp.CronExpression)
	}
	if len(resp.Runs) != 5 {
		t.Fatalf("expected 5 runs, got %d", len(resp.Runs))
	}

	now := time.Now()
	for i, run := range resp.Runs {
		if !run.RunAt.After(now.Add(-time.Minute)) {
			t.Errorf("run[%d] %v is not in the future", i, run.RunAt)
		}
		if i > 0 && !run.RunAt.After(resp.Runs[i-1].RunAt) {
			t.Errorf("run[%d] %v is not after run[%d] %v", i, run.RunAt, i-1, resp.Runs[i-1].RunAt)
		}
	}
}

func TestPreviewScheduleCustomCount(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()

	w := env.makeRequest(t, http.MethodGet, "/settings/schedule/preview?count=3", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	resp := parseResponse[dto.SchedulePreviewResponse](t, w)
	if len(resp.Runs) != 3 {
		t.Errorf("expected 3 runs, got %d", len(resp.Runs))
	}
}
