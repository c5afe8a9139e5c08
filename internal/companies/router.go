package companies

import (
	"buslink/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupCompanyRoutes configures all company and branch routes
func SetupCompanyRoutes(rg *gin.RouterGroup, controller *Controller) {
	companies := rg.Group("/companies")
	companies.Use(middleware.JWTAuth())
	{
		// Platform administration
		admin := companies.Group("")
		admin.Use(middleware.RequireAdmin())
		{
			admin.POST("", controller.CreateCompany)
			admin.GET("", controller.ListCompanies)
			admin.PUT("/:id", controller.UpdateCompany)
		}

		// Company-level management
		managed := companies.Group("")
		managed.Use(middleware.RequireRoles("ADMIN", "MANAGER"))
		{
			managed.GET("/:id", controller.GetCompany)
			managed.POST("/:id/branches", controller.CreateBranch)
			managed.GET("/:id/branches", controller.ListBranches)
			managed.PUT("/:id/branches/:branchId", controller.UpdateBranch)
		}
	}
}
