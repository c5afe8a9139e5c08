package drivers

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

// CreateDriver handles POST /api/v1/companies/:id/drivers
func (c *Controller) CreateDriver(ctx *gin.Context) {
	companyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid company ID", nil, nil)
		return
	}

	var req CreateDriverRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	driver, err := c.service.CreateDriver(ctx.Request.Context(), companyID, &req)
	if err != nil {
		response.Error(ctx, "Failed to create driver", err)
		return
	}

	response.Success(ctx, http.StatusCreated, "Driver created successfully", driver)
}

// GetDriver handles GET /api/v1/drivers/:id
func (c *Controller) GetDriver(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid driver ID", nil, nil)
		return
	}

	driver, err := c.service.GetDriver(ctx.Request.Context(), id)
	if err != nil {
		response.Error(ctx, "Failed to get driver", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Driver retrieved successfully", driver)
}

// GetMyProfile handles GET /api/v1/drivers/me for driver accounts
func (c *Controller) GetMyProfile(ctx *gin.Context) {
	userIDValue, exists := ctx.Get("user_id")
	if !exists {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}
	raw, ok := userIDValue.(string)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "Invalid user context", nil, nil)
		return
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "Invalid user context", nil, nil)
		return
	}

	driver, err := c.service.GetDriverByUser(ctx.Request.Context(), userID)
	if err != nil {
		response.Error(ctx, "Failed to get driver profile", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Driver profile retrieved successfully", driver)
}

// ListDrivers handles GET /api/v1/companies/:id/drivers
func (c *Controller) ListDrivers(ctx *gin.Context) {
	companyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid company ID", nil, nil)
		return
	}
	activeOnly := ctx.DefaultQuery("active", "true") == "true"

	drivers, err := c.service.ListDrivers(ctx.Request.Context(), companyID, activeOnly)
	if err != nil {
		response.Error(ctx, "Failed to list drivers", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Drivers retrieved successfully", gin.H{
		"drivers": drivers,
		"count":   len(drivers),
	})
}

// UpdateDriver handles PUT /api/v1/drivers/:id
func (c *Controller) UpdateDriver(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid driver ID", nil, nil)
		return
	}

	var req UpdateDriverRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	driver, err := c.service.UpdateDriver(ctx.Request.Context(), id, &req)
	if err != nil {
		response.Error(ctx, "Failed to update driver", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Driver updated successfully", driver)
}
