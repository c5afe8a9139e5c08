package finances

import (
	"buslink/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupFinanceRoutes configures liquidation routes. Approval is held
// back to ADMIN; day-to-day liquidation work is MANAGER territory.
func SetupFinanceRoutes(rg *gin.RouterGroup, controller *Controller) {
	scheduleScoped := rg.Group("/schedules/:id/liquidation")
	scheduleScoped.Use(middleware.JWTAuth(), middleware.RequireRoles("ADMIN", "MANAGER"))
	{
		scheduleScoped.POST("", controller.OpenLiquidation)
		scheduleScoped.GET("", controller.GetByScheduleID)
	}

	liquidations := rg.Group("/liquidations")
	liquidations.Use(middleware.JWTAuth())
	{
		managed := liquidations.Group("")
		managed.Use(middleware.RequireRoles("ADMIN", "MANAGER"))
		{
			managed.GET("/:id", controller.GetSummary)
			managed.POST("/:id/expenses", controller.AddExpense)
			managed.POST("/:id/close", controller.CloseLiquidation)
		}

		liquidations.POST("/:id/approve", middleware.RequireAdmin(), controller.ApproveLiquidation)
	}
}
