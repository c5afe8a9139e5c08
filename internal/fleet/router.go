package fleet

import (
	"buslink/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupFleetRoutes configures bus, seat, tier and template routes
func SetupFleetRoutes(rg *gin.RouterGroup, controller *Controller) {
	companyScoped := rg.Group("/companies/:id")
	companyScoped.Use(middleware.JWTAuth(), middleware.RequireRoles("ADMIN", "MANAGER"))
	{
		companyScoped.POST("/seat-tiers", controller.CreateSeatTier)
		companyScoped.GET("/seat-tiers", controller.ListSeatTiers)
		companyScoped.POST("/buses", controller.CreateBus)
		companyScoped.GET("/buses", controller.ListBuses)
		companyScoped.POST("/bus-templates", controller.CreateTemplate)
		companyScoped.GET("/bus-templates", controller.ListTemplates)
	}

	buses := rg.Group("/buses")
	buses.Use(middleware.JWTAuth())
	{
		// Seat listings are needed by clerks at sale time
		buses.GET("/:id/seats", controller.ListBusSeats)

		managed := buses.Group("")
		managed.Use(middleware.RequireRoles("ADMIN", "MANAGER"))
		{
			managed.GET("/:id", controller.GetBus)
			managed.PUT("/:id", controller.UpdateBus)
			managed.POST("/:id/seats", controller.AddBusSeat)
			managed.PUT("/:id/seats/:seatId", controller.UpdateBusSeat)
			managed.DELETE("/:id/seats/:seatId", controller.RemoveBusSeat)
			managed.POST("/:id/apply-template", controller.ApplyTemplate)
		}
	}
}
