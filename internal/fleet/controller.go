package fleet

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

// CreateSeatTier handles POST /api/v1/companies/:id/seat-tiers
func (c *Controller) CreateSeatTier(ctx *gin.Context) {
	companyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid company ID", nil, nil)
		return
	}

	var req CreateSeatTierRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	tier, err := c.service.CreateSeatTier(ctx.Request.Context(), companyID, &req)
	if err != nil {
		response.Error(ctx, "Failed to create seat tier", err)
		return
	}

	response.Success(ctx, http.StatusCreated, "Seat tier created successfully", tier)
}

// ListSeatTiers handles GET /api/v1/companies/:id/seat-tiers
func (c *Controller) ListSeatTiers(ctx *gin.Context) {
	companyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid company ID", nil, nil)
		return
	}

	tiers, err := c.service.ListSeatTiers(ctx.Request.Context(), companyID)
	if err != nil {
		response.Error(ctx, "Failed to list seat tiers", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Seat tiers retrieved successfully", gin.H{
		"seat_tiers": tiers,
		"count":      len(tiers),
	})
}

// CreateBus handles POST /api/v1/companies/:id/buses
func (c *Controller) CreateBus(ctx *gin.Context) {
	companyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid company ID", nil, nil)
		return
	}

	var req CreateBusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	bus, err := c.service.CreateBus(ctx.Request.Context(), companyID, &req)
	if err != nil {
		response.Error(ctx, "Failed to create bus", err)
		return
	}

	response.Success(ctx, http.StatusCreated, "Bus created successfully", bus)
}

// ListBuses handles GET /api/v1/companies/:id/buses
func (c *Controller) ListBuses(ctx *gin.Context) {
	companyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid company ID", nil, nil)
		return
	}

	buses, err := c.service.ListBuses(ctx.Request.Context(), companyID)
	if err != nil {
		response.Error(ctx, "Failed to list buses", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Buses retrieved successfully", gin.H{
		"buses": buses,
		"count": len(buses),
	})
}

// GetBus handles GET /api/v1/buses/:id
func (c *Controller) GetBus(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid bus ID", nil, nil)
		return
	}

	bus, err := c.service.GetBus(ctx.Request.Context(), id)
	if err != nil {
		response.Error(ctx, "Failed to get bus", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Bus retrieved successfully", bus)
}

// UpdateBus handles PUT /api/v1/buses/:id
func (c *Controller) UpdateBus(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid bus ID", nil, nil)
		return
	}

	var req UpdateBusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	bus, err := c.service.UpdateBus(ctx.Request.Context(), id, &req)
	if err != nil {
		response.Error(ctx, "Failed to update bus", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Bus updated successfully", bus)
}

// AddBusSeat handles POST /api/v1/buses/:id/seats
func (c *Controller) AddBusSeat(ctx *gin.Context) {
	busID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid bus ID", nil, nil)
		return
	}

	var req AddBusSeatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	seat, err := c.service.AddBusSeat(ctx.Request.Context(), busID, &req)
	if err != nil {
		response.Error(ctx, "Failed to add seat", err)
		return
	}

	response.Success(ctx, http.StatusCreated, "Seat added successfully", seat)
}

// ListBusSeats handles GET /api/v1/buses/:id/seats
func (c *Controller) ListBusSeats(ctx *gin.Context) {
	busID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid bus ID", nil, nil)
		return
	}

	seats, err := c.service.ListBusSeats(ctx.Request.Context(), busID)
	if err != nil {
		response.Error(ctx, "Failed to list seats", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Seats retrieved successfully", gin.H{
		"seats": seats,
		"count": len(seats),
	})
}

// UpdateBusSeat handles PUT /api/v1/buses/:id/seats/:seatId
func (c *Controller) UpdateBusSeat(ctx *gin.Context) {
	busID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid bus ID", nil, nil)
		return
	}
	seatID, err := uuid.Parse(ctx.Param("seatId"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid seat ID", nil, nil)
		return
	}

	var req UpdateBusSeatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	seat, err := c.service.UpdateBusSeat(ctx.Request.Context(), busID, seatID, &req)
	if err != nil {
		response.Error(ctx, "Failed to update seat", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Seat updated successfully", seat)
}

// RemoveBusSeat handles DELETE /api/v1/buses/:id/seats/:seatId
func (c *Controller) RemoveBusSeat(ctx *gin.Context) {
	busID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid bus ID", nil, nil)
		return
	}
	seatID, err := uuid.Parse(ctx.Param("seatId"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid seat ID", nil, nil)
		return
	}

	if err := c.service.RemoveBusSeat(ctx.Request.Context(), busID, seatID); err != nil {
		response.Error(ctx, "Failed to remove seat", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Seat removed successfully", nil)
}

// CreateTemplate handles POST /api/v1/companies/:id/bus-templates
func (c *Controller) CreateTemplate(ctx *gin.Context) {
	companyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid company ID", nil, nil)
		return
	}

	var req CreateBusTemplateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	template, err := c.service.CreateTemplate(ctx.Request.Context(), companyID, &req)
	if err != nil {
		response.Error(ctx, "Failed to create template", err)
		return
	}

	response.Success(ctx, http.StatusCreated, "Template created successfully", template)
}

// ListTemplates handles GET /api/v1/companies/:id/bus-templates
func (c *Controller) ListTemplates(ctx *gin.Context) {
	companyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid company ID", nil, nil)
		return
	}

	templates, err := c.service.ListTemplates(ctx.Request.Context(), companyID)
	if err != nil {
		response.Error(ctx, "Failed to list templates", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Templates retrieved successfully", gin.H{
		"templates": templates,
		"count":     len(templates),
	})
}

// ApplyTemplate handles POST /api/v1/buses/:id/apply-template
func (c *Controller) ApplyTemplate(ctx *gin.Context) {
	busID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid bus ID", nil, nil)
		return
	}

	var req ApplyTemplateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	seats, err := c.service.ApplyTemplate(ctx.Request.Context(), busID, &req)
	if err != nil {
		response.Error(ctx, "Failed to apply template", err)
		return
	}

	response.Success(ctx, http.StatusCreated, "Template applied successfully", gin.H{
		"seats": seats,
		"count": len(seats),
	})
}
