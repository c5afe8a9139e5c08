package drivers

import (
	"buslink/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupDriverRoutes configures driver management routes
func SetupDriverRoutes(rg *gin.RouterGroup, controller *Controller) {
	drivers := rg.Group("/drivers")
	drivers.Use(middleware.JWTAuth())
	{
		drivers.GET("/me", middleware.RequireRoles("DRIVER"), controller.GetMyProfile)

		managed := drivers.Group("")
		managed.Use(middleware.RequireRoles("ADMIN", "MANAGER"))
		{
			managed.GET("/:id", controller.GetDriver)
			managed.PUT("/:id", controller.UpdateDriver)
		}
	}

	// Nested under companies for creation and listing
	companyScoped := rg.Group("/companies/:id/drivers")
	companyScoped.Use(middleware.JWTAuth(), middleware.RequireRoles("ADMIN", "MANAGER"))
	{
		companyScoped.POST("", controller.CreateDriver)
		companyScoped.GET("", controller.ListDrivers)
	}
}
