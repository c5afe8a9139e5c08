package locations

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

// CreateLocation handles POST /api/v1/locations
func (c *Controller) CreateLocation(ctx *gin.Context) {
	var req CreateLocationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	location, err := c.service.CreateLocation(ctx.Request.Context(), &req)
	if err != nil {
		response.Error(ctx, "Failed to create location", err)
		return
	}

	response.Success(ctx, http.StatusCreated, "Location created successfully", location)
}

// GetLocation handles GET /api/v1/locations/:id
func (c *Controller) GetLocation(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid location ID", nil, nil)
		return
	}

	location, err := c.service.GetLocation(ctx.Request.Context(), id)
	if err != nil {
		response.Error(ctx, "Failed to get location", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Location retrieved successfully", location)
}

// ListLocations handles GET /api/v1/locations
func (c *Controller) ListLocations(ctx *gin.Context) {
	activeOnly := ctx.DefaultQuery("active", "true") == "true"

	locations, err := c.service.ListLocations(ctx.Request.Context(), activeOnly)
	if err != nil {
		response.Error(ctx, "Failed to list locations", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Locations retrieved successfully", gin.H{
		"locations": locations,
		"count":     len(locations),
	})
}

// UpdateLocation handles PUT /api/v1/locations/:id
func (c *Controller) UpdateLocation(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid location ID", nil, nil)
		return
	}

	var req UpdateLocationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	location, err := c.service.UpdateLocation(ctx.Request.Context(), id, &req)
	if err != nil {
		response.Error(ctx, "Failed to update location", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Location updated successfully", location)
}

// DeactivateLocation handles DELETE /api/v1/locations/:id
func (c *Controller) DeactivateLocation(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid location ID", nil, nil)
		return
	}

	if err := c.service.DeactivateLocation(ctx.Request.Context(), id); err != nil {
		response.Error(ctx, "Failed to deactivate location", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Location deactivated successfully", nil)
}
