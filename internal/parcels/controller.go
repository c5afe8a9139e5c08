package parcels

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

func actorID(ctx *gin.Context) *uuid.UUID {
	value, exists := ctx.Get("user_id")
	if !exists {
		return nil
	}
	raw, ok := value.(string)
	if !ok {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}

// CreateParcel handles POST /api/v1/schedules/:id/parcels
func (c *Controller) CreateParcel(ctx *gin.Context) {
	scheduleID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid schedule ID", nil, nil)
		return
	}

	var req CreateParcelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	parcel, err := c.service.CreateParcel(ctx.Request.Context(), scheduleID, &req, actorID(ctx))
	if err != nil {
		response.Error(ctx, "Failed to create parcel", err)
		return
	}

	response.Success(ctx, http.StatusCreated, "Parcel created successfully", parcel)
}

// GetParcel handles GET /api/v1/parcels/:id
func (c *Controller) GetParcel(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid parcel ID", nil, nil)
		return
	}

	parcel, err := c.service.GetParcel(ctx.Request.Context(), id)
	if err != nil {
		response.Error(ctx, "Failed to get parcel", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Parcel retrieved successfully", parcel)
}

// TrackParcel handles GET /api/v1/tracking/:code (public)
func (c *Controller) TrackParcel(ctx *gin.Context) {
	parcel, err := c.service.TrackParcel(ctx.Request.Context(), ctx.Param("code"))
	if err != nil {
		response.Error(ctx, "Failed to track parcel", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Parcel retrieved successfully", parcel)
}

// UpdateStatus handles POST /api/v1/parcels/:id/status
func (c *Controller) UpdateStatus(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid parcel ID", nil, nil)
		return
	}

	var req UpdateParcelStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	parcel, err := c.service.UpdateStatus(ctx.Request.Context(), id, &req, actorID(ctx))
	if err != nil {
		response.Error(ctx, "Failed to update parcel status", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Parcel status updated successfully", parcel)
}

// ListBySchedule handles GET /api/v1/schedules/:id/parcels
func (c *Controller) ListBySchedule(ctx *gin.Context) {
	scheduleID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid schedule ID", nil, nil)
		return
	}

	parcels, err := c.service.ListBySchedule(ctx.Request.Context(), scheduleID)
	if err != nil {
		response.Error(ctx, "Failed to list parcels", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Parcels retrieved successfully", gin.H{
		"parcels": parcels,
		"count":   len(parcels),
	})
}
