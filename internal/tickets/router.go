package tickets

import (
	"buslink/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupTicketRoutes configures booking and ticket lifecycle routes.
// Sales roles are ADMIN, MANAGER and CLERK; boarding (mark-used) also
// allows DRIVER.
func SetupTicketRoutes(rg *gin.RouterGroup, controller *Controller) {
	salesRoles := middleware.RequireRoles("ADMIN", "MANAGER", "CLERK")

	scheduleScoped := rg.Group("/schedules/:id/tickets")
	scheduleScoped.Use(middleware.JWTAuth(), salesRoles)
	{
		scheduleScoped.POST("", controller.BookTicket)
		scheduleScoped.GET("", controller.ListBySchedule)
	}

	tickets := rg.Group("/tickets")
	tickets.Use(middleware.JWTAuth())
	{
		tickets.POST("/bulk", salesRoles, controller.BulkBook)
		tickets.GET("/:id", salesRoles, controller.GetTicket)
		tickets.POST("/:id/cancel", salesRoles, controller.CancelTicket)
		tickets.POST("/:id/reassign", salesRoles, controller.ReassignTicket)
		tickets.POST("/:id/use", middleware.RequireRoles("ADMIN", "MANAGER", "CLERK", "DRIVER"), controller.MarkUsed)
	}

	customerScoped := rg.Group("/customers/:id/tickets")
	customerScoped.Use(middleware.JWTAuth(), salesRoles)
	{
		customerScoped.GET("", controller.ListByCustomer)
	}
}
