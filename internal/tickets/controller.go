package tickets

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

// BookTicket handles POST /api/v1/schedules/:id/tickets
func (c *Controller) BookTicket(ctx *gin.Context) {
	scheduleID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid schedule ID", nil, nil)
		return
	}

	var req BookTicketRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	ticket, err := c.service.BookTicket(ctx.Request.Context(), scheduleID, &req, actorID(ctx))
	if err != nil {
		response.Error(ctx, "Failed to book ticket", err)
		return
	}

	response.Success(ctx, http.StatusCreated, "Ticket booked successfully", ticket)
}

// BulkBook handles POST /api/v1/tickets/bulk
func (c *Controller) BulkBook(ctx *gin.Context) {
	var req BulkBookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	tickets, err := c.service.BulkBook(ctx.Request.Context(), &req, actorID(ctx))
	if err != nil {
		response.Error(ctx, "Failed to book tickets", err)
		return
	}

	response.Success(ctx, http.StatusCreated, "Tickets booked successfully", gin.H{
		"tickets": tickets,
		"count":   len(tickets),
	})
}

// GetTicket handles GET /api/v1/tickets/:id
func (c *Controller) GetTicket(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid ticket ID", nil, nil)
		return
	}

	ticket, err := c.service.GetTicket(ctx.Request.Context(), id)
	if err != nil {
		response.Error(ctx, "Failed to get ticket", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Ticket retrieved successfully", ticket)
}

// CancelTicket handles POST /api/v1/tickets/:id/cancel
func (c *Controller) CancelTicket(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid ticket ID", nil, nil)
		return
	}

	var req CancelTicketRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "A cancellation reason is required", nil, err.Error())
		return
	}

	ticket, err := c.service.CancelTicket(ctx.Request.Context(), id, &req, actorID(ctx))
	if err != nil {
		response.Error(ctx, "Failed to cancel ticket", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Ticket cancelled successfully", ticket)
}

// ReassignTicket handles POST /api/v1/tickets/:id/reassign
func (c *Controller) ReassignTicket(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid ticket ID", nil, nil)
		return
	}

	var req ReassignTicketRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	ticket, err := c.service.ReassignTicket(ctx.Request.Context(), id, &req, actorID(ctx))
	if err != nil {
		response.Error(ctx, "Failed to reassign ticket", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Ticket reassigned successfully", ticket)
}

// MarkUsed handles POST /api/v1/tickets/:id/use
func (c *Controller) MarkUsed(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid ticket ID", nil, nil)
		return
	}

	ticket, err := c.service.MarkUsed(ctx.Request.Context(), id)
	if err != nil {
		response.Error(ctx, "Failed to mark ticket as used", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Ticket marked as used", ticket)
}

// ListBySchedule handles GET /api/v1/schedules/:id/tickets
func (c *Controller) ListBySchedule(ctx *gin.Context) {
	scheduleID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid schedule ID", nil, nil)
		return
	}
	status := ctx.Query("status")

	tickets, err := c.service.ListBySchedule(ctx.Request.Context(), scheduleID, status)
	if err != nil {
		response.Error(ctx, "Failed to list tickets", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Tickets retrieved successfully", gin.H{
		"tickets": tickets,
		"count":   len(tickets),
	})
}

// ListByCustomer handles GET /api/v1/customers/:id/tickets
func (c *Controller) ListByCustomer(ctx *gin.Context) {
	customerID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid customer ID", nil, nil)
		return
	}

	tickets, err := c.service.ListByCustomer(ctx.Request.Context(), customerID)
	if err != nil {
		response.Error(ctx, "Failed to list tickets", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Tickets retrieved successfully", gin.H{
		"tickets": tickets,
		"count":   len(tickets),
	})
}
