package schedules

import (
	"net/http"

	"buslink/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// CreateSchedule handles POST /api/v1/schedules
func (c *Controller) CreateSchedule(ctx *gin.Context) {
	var req CreateScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	schedule, err := c.service.CreateSchedule(ctx.Request.Context(), &req)
	if err != nil {
		response.Error(ctx, "Failed to create schedule", err)
		return
	}

	response.Success(ctx, http.StatusCreated, "Schedule created successfully", schedule)
}

// GetSchedule handles GET /api/v1/schedules/:id
func (c *Controller) GetSchedule(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid schedule ID", nil, nil)
		return
	}

	schedule, err := c.service.GetSchedule(ctx.Request.Context(), id)
	if err != nil {
		response.Error(ctx, "Failed to get schedule", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Schedule retrieved successfully", schedule)
}

// ListSchedules handles GET /api/v1/schedules
func (c *Controller) ListSchedules(ctx *gin.Context) {
	var query ListSchedulesQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	schedules, total, err := c.service.ListSchedules(ctx.Request.Context(), &query)
	if err != nil {
		response.Error(ctx, "Failed to list schedules", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Schedules retrieved successfully", gin.H{
		"schedules": schedules,
		"total":     total,
		"page":      query.Page,
		"limit":     query.Limit,
	})
}

// GetAvailability handles GET /api/v1/schedules/:id/availability
func (c *Controller) GetAvailability(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid schedule ID", nil, nil)
		return
	}

	availability, err := c.service.GetAvailability(ctx.Request.Context(), id)
	if err != nil {
		response.Error(ctx, "Failed to get availability", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Availability retrieved successfully", availability)
}

// TransitionStatus handles PATCH /api/v1/schedules/:id/status
func (c *Controller) TransitionStatus(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid schedule ID", nil, nil)
		return
	}

	var req TransitionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	schedule, err := c.service.TransitionStatus(ctx.Request.Context(), id, &req)
	if err != nil {
		response.Error(ctx, "Failed to update schedule status", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Schedule status updated successfully", schedule)
}

// GetTripLogs handles GET /api/v1/schedules/:id/trip-logs
func (c *Controller) GetTripLogs(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid schedule ID", nil, nil)
		return
	}

	logs, err := c.service.GetTripLogs(ctx.Request.Context(), id)
	if err != nil {
		response.Error(ctx, "Failed to get trip logs", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Trip logs retrieved successfully", gin.H{
		"trip_logs": logs,
		"count":     len(logs),
	})
}
