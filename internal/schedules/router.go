package schedules

import (
	"buslink/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupScheduleRoutes configures schedule routes. Ticket and parcel
// sub-routes under /schedules are registered by their own packages.
func SetupScheduleRoutes(rg *gin.RouterGroup, controller *Controller) {
	schedules := rg.Group("/schedules")
	{
		// Public browsing
		schedules.GET("", controller.ListSchedules)
		schedules.GET("/:id", controller.GetSchedule)
		schedules.GET("/:id/availability", controller.GetAvailability)

		protected := schedules.Group("")
		protected.Use(middleware.JWTAuth())
		{
			protected.GET("/:id/trip-logs", middleware.RequireRoles("ADMIN", "MANAGER", "DRIVER"), controller.GetTripLogs)
			protected.POST("", middleware.RequireRoles("ADMIN", "MANAGER"), controller.CreateSchedule)
			protected.PATCH("/:id/status", middleware.RequireRoles("ADMIN", "MANAGER", "DRIVER"), controller.TransitionStatus)
		}
	}
}
