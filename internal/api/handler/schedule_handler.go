package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/soomin/lingocare/internal/api/dto"
	"github.com/soomin/lingocare/internal/core/service"
)

type ScheduleHandler struct {
	scheduleService *service.ScheduleService
}

func NewScheduleHandler(scheduleService *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: scheduleService,
	}
}

// GetSchedule handles GET /settings/schedule
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	schedule, err := h.scheduleService.GetSchedule(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "Internal Server Error",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, toScheduleResponse(schedule))
}

// UpdateSchedule handles PUT /settings/schedule
func (h *ScheduleHandler) UpdateSchedule(c *gin.Context) {
	var req dto.UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad Request",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	schedule, err := h.scheduleService.UpdateSchedule(c.Request.Context(), req.ToUpdate(), req.Enabled, req.Locale)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "Internal Server Error",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, toScheduleResponse(schedule))
}

// PreviewSchedule handles GET /settings/schedule/preview
func (h *ScheduleHandler) PreviewSchedule(c *gin.Context) {
	count, _ := strconv.Atoi(c.DefaultQuery("count", "5"))

	schedule, err := h.scheduleService.GetSchedule(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "Internal Server Error",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	runs, err := h.scheduleService.Preview(c.Request.Context(), count)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "Internal Server Error",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	response := dto.SchedulePreviewResponse{
		CronExpression: schedule.Expression,
		Runs:           make([]dto.ScheduledRun, len(runs)),
	}
	for i, run := range runs {
		response.Runs[i] = dto.ScheduledRun{RunAt: run}
	}

	c.JSON(http.StatusOK, response)
}

func toScheduleResponse(schedule *service.Schedule) dto.ScheduleResponse {
	cfg := schedule.Config
	return dto.ScheduleResponse{
		IntervalValue:  cfg.IntervalValue,
		IntervalUnit:   string(cfg.IntervalUnit),
		Hour:           cfg.Hour,
		Minute:         cfg.Minute,
		DayRestriction: string(cfg.DayRestriction),
		SelectedDays:   cfg.SelectedDays,
		DaysOfMonth:    cfg.DaysOfMonth,
		SelectedMonths: cfg.SelectedMonths,
		CronExpression: schedule.Expression,
		Description:    schedule.Description,
		Enabled:        schedule.Enabled,
		Locale:         schedule.Locale,
		UpdatedAt:      schedule.UpdatedAt,
	}
}
