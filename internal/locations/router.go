package locations

import (
	"buslink/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupLocationRoutes configures all location-related routes
func SetupLocationRoutes(rg *gin.RouterGroup, controller *Controller) {
	locations := rg.Group("/locations")
	{
		// Public browsing
		locations.GET("", controller.ListLocations)
		locations.GET("/:id", controller.GetLocation)

		// Management
		protected := locations.Group("")
		protected.Use(middleware.JWTAuth(), middleware.RequireRoles("ADMIN", "MANAGER"))
		{
			protected.POST("", controller.CreateLocation)
			protected.PUT("/:id", controller.UpdateLocation)
			protected.DELETE("/:id", controller.DeactivateLocation)
		}
	}
}
