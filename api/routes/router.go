// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"buslink/internal/auth"
	"buslink/internal/companies"
	"buslink/internal/customers"
	"buslink/internal/drivers"
	"buslink/internal/finances"
	"buslink/internal/fleet"
	"buslink/internal/locations"
	"buslink/internal/notifications"
	"buslink/internal/parcels"
	busroutes "buslink/internal/routes"
	"buslink/internal/schedules"
	"buslink/internal/shared/config"
	"buslink/internal/shared/database"
	"buslink/internal/tickets"
	"buslink/pkg/cache"
	"buslink/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config    *config.Config
	db        *database.DB
	cache     cache.Service
	publisher notifications.Publisher
	log       *logger.Logger
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, cacheService cache.Service, publisher notifications.Publisher, log *logger.Logger) *Router {
	return &Router{
		config:    cfg,
		db:        db,
		cache:     cacheService,
		publisher: publisher,
		log:       log,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	gormDB := r.db.GetPostgreSQL()

	// Repositories shared across services
	routeRepo := busroutes.NewRepository(gormDB)
	fleetRepo := fleet.NewRepository(gormDB)
	driverRepo := drivers.NewRepository(gormDB)
	scheduleRepo := schedules.NewRepository(gormDB)
	customerRepo := customers.NewRepository(gormDB)

	customerService := customers.NewService(customerRepo)
	scheduleService := schedules.NewService(
		scheduleRepo, routeRepo, fleetRepo, driverRepo, r.cache, r.publisher, r.log)

	api := engine.Group(r.config.GetAPIBasePath())
	{
		// Auth
		authRepo := auth.NewRepository(gormDB)
		authService := auth.NewService(authRepo, r.config)
		authController := auth.NewController(authService)
		auth.NewRouter(authController, r.config).SetupRoutes(api)

		// Companies and branches
		companyController := companies.NewController(
			companies.NewService(companies.NewRepository(gormDB)))
		companies.SetupCompanyRoutes(api, companyController)

		// Locations
		locationController := locations.NewController(
			locations.NewService(locations.NewRepository(gormDB), r.cache))
		locations.SetupLocationRoutes(api, locationController)

		// Routes and timetables
		routeController := busroutes.NewController(
			busroutes.NewService(routeRepo, r.cache))
		busroutes.SetupRouteRoutes(api, routeController)

		// Fleet: buses, seats, tiers, templates
		fleetController := fleet.NewController(
			fleet.NewService(fleetRepo, r.cache))
		fleet.SetupFleetRoutes(api, fleetController)

		// Drivers
		driverController := drivers.NewController(
			drivers.NewService(driverRepo))
		drivers.SetupDriverRoutes(api, driverController)

		// Customers
		customerController := customers.NewController(customerService)
		customers.SetupCustomerRoutes(api, customerController)

		// Schedules
		scheduleController := schedules.NewController(scheduleService)
		schedules.SetupScheduleRoutes(api, scheduleController)

		// Tickets
		ticketController := tickets.NewController(tickets.NewService(
			tickets.NewRepository(gormDB), scheduleRepo, fleetRepo,
			customerService, r.cache, r.publisher, r.log))
		tickets.SetupTicketRoutes(api, ticketController)

		// Parcels
		parcelController := parcels.NewController(parcels.NewService(
			parcels.NewRepository(gormDB), scheduleRepo, r.cache, r.publisher, r.log))
		parcels.SetupParcelRoutes(api, parcelController)

		// Finances
		financeController := finances.NewController(finances.NewService(
			finances.NewRepository(gormDB), scheduleRepo, r.cache))
		finances.SetupFinanceRoutes(api, financeController)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "buslink-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "buslink-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})
}
