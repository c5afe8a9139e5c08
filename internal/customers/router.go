package customers

import (
	"buslink/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupCustomerRoutes configures customer lookup and registration routes
func SetupCustomerRoutes(rg *gin.RouterGroup, controller *Controller) {
	customers := rg.Group("/customers")
	customers.Use(middleware.JWTAuth(), middleware.RequireRoles("ADMIN", "MANAGER", "CLERK"))
	{
		customers.POST("", controller.UpsertCustomer)
		customers.GET("", controller.SearchCustomers)
		customers.GET("/:id", controller.GetCustomer)
	}
}
