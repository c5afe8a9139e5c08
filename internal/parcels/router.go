package parcels

import (
	"buslink/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupParcelRoutes configures parcel routes. Tracking is public so
// recipients can follow a shipment without an account.
func SetupParcelRoutes(rg *gin.RouterGroup, controller *Controller) {
	rg.GET("/tracking/:code", controller.TrackParcel)

	staffRoles := middleware.RequireRoles("ADMIN", "MANAGER", "CLERK")

	scheduleScoped := rg.Group("/schedules/:id/parcels")
	scheduleScoped.Use(middleware.JWTAuth(), staffRoles)
	{
		scheduleScoped.POST("", controller.CreateParcel)
		scheduleScoped.GET("", controller.ListBySchedule)
	}

	parcels := rg.Group("/parcels")
	parcels.Use(middleware.JWTAuth())
	{
		parcels.GET("/:id", staffRoles, controller.GetParcel)
		parcels.POST("/:id/status", middleware.RequireRoles("ADMIN", "MANAGER", "CLERK", "DRIVER"), controller.UpdateStatus)
	}
}
