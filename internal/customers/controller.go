package customers

import (
	"net/http"
	"strconv"

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

// UpsertCustomer handles POST /api/v1/customers
func (c *Controller) UpsertCustomer(ctx *gin.Context) {
	var req UpsertCustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	customer, err := c.service.UpsertByDocument(ctx.Request.Context(), &req)
	if err != nil {
		response.Error(ctx, "Failed to save customer", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Customer saved successfully", customer)
}

// GetCustomer handles GET /api/v1/customers/:id
func (c *Controller) GetCustomer(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid customer ID", nil, nil)
		return
	}

	customer, err := c.service.GetCustomer(ctx.Request.Context(), id)
	if err != nil {
		response.Error(ctx, "Failed to get customer", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Customer retrieved successfully", customer)
}

// SearchCustomers handles GET /api/v1/customers?q=...
func (c *Controller) SearchCustomers(ctx *gin.Context) {
	query := ctx.Query("q")
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	customers, err := c.service.SearchCustomers(ctx.Request.Context(), query, limit)
	if err != nil {
		response.Error(ctx, "Failed to search customers", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Customers retrieved successfully", gin.H{
		"customers": customers,
		"count":     len(customers),
	})
}
