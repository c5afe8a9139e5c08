package routes

import (
	"buslink/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRouteRoutes configures route and timetable routes
func SetupRouteRoutes(rg *gin.RouterGroup, controller *Controller) {
	routes := rg.Group("/routes")
	{
		// Public browsing and search
		routes.GET("", controller.ListRoutes)
		routes.GET("/:id", controller.GetRoute)
		routes.GET("/:id/timetable", controller.ListTimetable)

		// Management
		protected := routes.Group("")
		protected.Use(middleware.JWTAuth(), middleware.RequireRoles("ADMIN", "MANAGER"))
		{
			protected.POST("", controller.CreateRoute)
			protected.PUT("/:id", controller.UpdateRoute)
			protected.POST("/:id/timetable", controller.CreateTimetableEntry)
			protected.PUT("/:id/timetable/:entryId", controller.UpdateTimetableEntry)
		}
	}
}
