package routes

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

// CreateRoute handles POST /api/v1/routes
func (c *Controller) CreateRoute(ctx *gin.Context) {
	var req CreateRouteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	route, err := c.service.CreateRoute(ctx.Request.Context(), &req)
	if err != nil {
		response.Error(ctx, "Failed to create route", err)
		return
	}

	response.Success(ctx, http.StatusCreated, "Route created successfully", route)
}

// GetRoute handles GET /api/v1/routes/:id
func (c *Controller) GetRoute(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid route ID", nil, nil)
		return
	}

	route, err := c.service.GetRoute(ctx.Request.Context(), id)
	if err != nil {
		response.Error(ctx, "Failed to get route", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Route retrieved successfully", route)
}

// ListRoutes handles GET /api/v1/routes?company_id=... or ?origin=...&destination=...
func (c *Controller) ListRoutes(ctx *gin.Context) {
	if origin := ctx.Query("origin"); origin != "" {
		originID, err := uuid.Parse(origin)
		if err != nil {
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid origin ID", nil, nil)
			return
		}
		destinationID, err := uuid.Parse(ctx.Query("destination"))
		if err != nil {
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid destination ID", nil, nil)
			return
		}

		routes, err := c.service.SearchRoutes(ctx.Request.Context(), originID, destinationID)
		if err != nil {
			response.Error(ctx, "Failed to search routes", err)
			return
		}
		response.Success(ctx, http.StatusOK, "Routes retrieved successfully", gin.H{
			"routes": routes,
			"count":  len(routes),
		})
		return
	}

	companyID, err := uuid.Parse(ctx.Query("company_id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "company_id or origin/destination query required", nil, nil)
		return
	}
	activeOnly := ctx.DefaultQuery("active", "true") == "true"

	routes, err := c.service.ListRoutes(ctx.Request.Context(), companyID, activeOnly)
	if err != nil {
		response.Error(ctx, "Failed to list routes", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Routes retrieved successfully", gin.H{
		"routes": routes,
		"count":  len(routes),
	})
}

// UpdateRoute handles PUT /api/v1/routes/:id
func (c *Controller) UpdateRoute(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid route ID", nil, nil)
		return
	}

	var req UpdateRouteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	route, err := c.service.UpdateRoute(ctx.Request.Context(), id, &req)
	if err != nil {
		response.Error(ctx, "Failed to update route", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Route updated successfully", route)
}

// CreateTimetableEntry handles POST /api/v1/routes/:id/timetable
func (c *Controller) CreateTimetableEntry(ctx *gin.Context) {
	routeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid route ID", nil, nil)
		return
	}

	var req CreateRouteScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	entry, err := c.service.CreateTimetableEntry(ctx.Request.Context(), routeID, &req)
	if err != nil {
		response.Error(ctx, "Failed to create timetable entry", err)
		return
	}

	response.Success(ctx, http.StatusCreated, "Timetable entry created successfully", entry)
}

// ListTimetable handles GET /api/v1/routes/:id/timetable
func (c *Controller) ListTimetable(ctx *gin.Context) {
	routeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid route ID", nil, nil)
		return
	}

	entries, err := c.service.ListTimetable(ctx.Request.Context(), routeID)
	if err != nil {
		response.Error(ctx, "Failed to list timetable", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Timetable retrieved successfully", gin.H{
		"entries": entries,
		"count":   len(entries),
	})
}

// UpdateTimetableEntry handles PUT /api/v1/routes/:id/timetable/:entryId
func (c *Controller) UpdateTimetableEntry(ctx *gin.Context) {
	routeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid route ID", nil, nil)
		return
	}
	entryID, err := uuid.Parse(ctx.Param("entryId"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid timetable entry ID", nil, nil)
		return
	}

	var req UpdateRouteScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	entry, err := c.service.UpdateTimetableEntry(ctx.Request.Context(), routeID, entryID, &req)
	if err != nil {
		response.Error(ctx, "Failed to update timetable entry", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Timetable entry updated successfully", entry)
}
