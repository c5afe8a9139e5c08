package finances

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

// OpenLiquidation handles POST /api/v1/schedules/:id/liquidation
func (c *Controller) OpenLiquidation(ctx *gin.Context) {
	scheduleID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid schedule ID", nil, nil)
		return
	}

	liquidation, err := c.service.OpenLiquidation(ctx.Request.Context(), scheduleID)
	if err != nil {
		response.Error(ctx, "Failed to open liquidation", err)
		return
	}

	response.Success(ctx, http.StatusCreated, "Liquidation opened successfully", liquidation)
}

// GetByScheduleID handles GET /api/v1/schedules/:id/liquidation
func (c *Controller) GetByScheduleID(ctx *gin.Context) {
	scheduleID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid schedule ID", nil, nil)
		return
	}

	liquidation, err := c.service.GetBySchedule(ctx.Request.Context(), scheduleID)
	if err != nil {
		response.Error(ctx, "Failed to get liquidation", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Liquidation retrieved successfully", liquidation)
}

// GetSummary handles GET /api/v1/liquidations/:id
func (c *Controller) GetSummary(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid liquidation ID", nil, nil)
		return
	}

	liquidation, err := c.service.GetSummary(ctx.Request.Context(), id)
	if err != nil {
		response.Error(ctx, "Failed to get liquidation summary", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Liquidation summary retrieved successfully", liquidation)
}

// AddExpense handles POST /api/v1/liquidations/:id/expenses
func (c *Controller) AddExpense(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid liquidation ID", nil, nil)
		return
	}

	var req AddExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	expense, err := c.service.AddExpense(ctx.Request.Context(), id, &req, actorID(ctx))
	if err != nil {
		response.Error(ctx, "Failed to add expense", err)
		return
	}

	response.Success(ctx, http.StatusCreated, "Expense added successfully", expense)
}

// CloseLiquidation handles POST /api/v1/liquidations/:id/close
func (c *Controller) CloseLiquidation(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid liquidation ID", nil, nil)
		return
	}

	liquidation, err := c.service.CloseLiquidation(ctx.Request.Context(), id, actorID(ctx))
	if err != nil {
		response.Error(ctx, "Failed to close liquidation", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Liquidation closed successfully", liquidation)
}

// ApproveLiquidation handles POST /api/v1/liquidations/:id/approve
func (c *Controller) ApproveLiquidation(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid liquidation ID", nil, nil)
		return
	}

	liquidation, err := c.service.ApproveLiquidation(ctx.Request.Context(), id, actorID(ctx))
	if err != nil {
		response.Error(ctx, "Failed to approve liquidation", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Liquidation approved successfully", liquidation)
}
