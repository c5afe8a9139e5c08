package companies

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

// CreateCompany handles POST /api/v1/companies
func (c *Controller) CreateCompany(ctx *gin.Context) {
	var req CreateCompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	company, err := c.service.CreateCompany(ctx.Request.Context(), &req)
	if err != nil {
		response.Error(ctx, "Failed to create company", err)
		return
	}

	response.Success(ctx, http.StatusCreated, "Company created successfully", company)
}

// GetCompany handles GET /api/v1/companies/:id
func (c *Controller) GetCompany(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid company ID", nil, nil)
		return
	}

	company, err := c.service.GetCompany(ctx.Request.Context(), id)
	if err != nil {
		response.Error(ctx, "Failed to get company", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Company retrieved successfully", company)
}

// ListCompanies handles GET /api/v1/companies
func (c *Controller) ListCompanies(ctx *gin.Context) {
	activeOnly := ctx.DefaultQuery("active", "true") == "true"

	companies, err := c.service.ListCompanies(ctx.Request.Context(), activeOnly)
	if err != nil {
		response.Error(ctx, "Failed to list companies", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Companies retrieved successfully", gin.H{
		"companies": companies,
		"count":     len(companies),
	})
}

// UpdateCompany handles PUT /api/v1/companies/:id
func (c *Controller) UpdateCompany(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid company ID", nil, nil)
		return
	}

	var req UpdateCompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	company, err := c.service.UpdateCompany(ctx.Request.Context(), id, &req)
	if err != nil {
		response.Error(ctx, "Failed to update company", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Company updated successfully", company)
}

// CreateBranch handles POST /api/v1/companies/:id/branches
func (c *Controller) CreateBranch(ctx *gin.Context) {
	companyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid company ID", nil, nil)
		return
	}

	var req CreateBranchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	branch, err := c.service.CreateBranch(ctx.Request.Context(), companyID, &req)
	if err != nil {
		response.Error(ctx, "Failed to create branch", err)
		return
	}

	response.Success(ctx, http.StatusCreated, "Branch created successfully", branch)
}

// ListBranches handles GET /api/v1/companies/:id/branches
func (c *Controller) ListBranches(ctx *gin.Context) {
	companyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid company ID", nil, nil)
		return
	}

	branches, err := c.service.ListBranches(ctx.Request.Context(), companyID)
	if err != nil {
		response.Error(ctx, "Failed to list branches", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Branches retrieved successfully", gin.H{
		"branches": branches,
		"count":    len(branches),
	})
}

// UpdateBranch handles PUT /api/v1/companies/:id/branches/:branchId
func (c *Controller) UpdateBranch(ctx *gin.Context) {
	companyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid company ID", nil, nil)
		return
	}
	branchID, err := uuid.Parse(ctx.Param("branchId"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid branch ID", nil, nil)
		return
	}

	var req UpdateBranchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	branch, err := c.service.UpdateBranch(ctx.Request.Context(), companyID, branchID, &req)
	if err != nil {
		response.Error(ctx, "Failed to update branch", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Branch updated successfully", branch)
}
