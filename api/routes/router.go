// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"aerobook/internal/airlines"
	"aerobook/internal/airports"
	"aerobook/internal/auth"
	"aerobook/internal/bookings"
	"aerobook/internal/flights"
	"aerobook/internal/notifications"
	"aerobook/internal/passengers"
	"aerobook/internal/payments"
	"aerobook/internal/shared/config"
	"aerobook/internal/shared/database"
	"aerobook/internal/users"
	"aerobook/pkg/cache"

	_ "aerobook/docs"

	"github.com/gin-gonic/gin"
	swaggoFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Router holds all route dependencies
type Router struct {
	config *config.Config
	db     *database.DB
	events notifications.Publisher

	// Shared services, populated during setup so downstream domains can
	// inject them.
	cacheService     cache.Service
	userRepo         users.Repository
	flightRepo       flights.Repository
	bookingRepo      bookings.Repository
	bookingService   bookings.Service
	passengerService passengers.Service
}

// NewRouter creates a new router instance. events may be nil when the
// notification pipeline is disabled.
func NewRouter(cfg *config.Config, db *database.DB, events notifications.Publisher) *Router {
	return &Router{
		config: cfg,
		db:     db,
		events: events,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// Swagger UI
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggoFiles.Handler))

	// Shared services
	r.cacheService = cache.NewService(r.db.GetRedis())
	r.userRepo = users.NewRepository(r.db.GetPostgreSQL())

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api)
		r.setupAirlineRoutes(api)
		r.setupAirportRoutes(api)

		// Flights must come before bookings, bookings before passengers
		// and payments: each setup step stores repos and services the
		// later ones inject.
		r.setupFlightRoutes(api)
		r.setupBookingAndPassengerRoutes(api)
		r.setupPaymentRoutes(api)
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
				"service":   "aerobook-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "aerobook-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

// setupAuthRoutes configures authentication routes
func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authService := auth.NewService(r.userRepo, r.config)
	authController := auth.NewController(authService)
	authRouter := auth.NewRouter(authController, r.config)

	authRouter.SetupRoutes(rg)
}

// setupAirlineRoutes configures airline catalog routes
func (r *Router) setupAirlineRoutes(rg *gin.RouterGroup) {
	airlineRepo := airlines.NewRepository(r.db.GetPostgreSQL())
	airlineService := airlines.NewService(airlineRepo)
	airlineController := airlines.NewController(airlineService)

	airlines.SetupAirlineRoutes(rg, airlineController)
}

// setupAirportRoutes configures airport catalog routes
func (r *Router) setupAirportRoutes(rg *gin.RouterGroup) {
	airportRepo := airports.NewRepository(r.db.GetPostgreSQL())
	airportService := airports.NewService(airportRepo)
	airportController := airports.NewController(airportService)

	airports.SetupAirportRoutes(rg, airportController)
}

// setupFlightRoutes configures flight search and schedule routes
func (r *Router) setupFlightRoutes(rg *gin.RouterGroup) {
	airlineRepo := airlines.NewRepository(r.db.GetPostgreSQL())
	airportRepo := airports.NewRepository(r.db.GetPostgreSQL())

	// Seat mutations invalidate the flight cache, so the repository gets
	// the same cache service the flight service reads through.
	r.flightRepo = flights.NewRepository(r.db.GetPostgreSQL(), r.cacheService)
	flightService := flights.NewService(r.flightRepo, airlineRepo, airportRepo, r.cacheService, r.config)
	flightController := flights.NewController(flightService)

	flights.SetupFlightRoutes(rg, flightController)
}

// setupBookingAndPassengerRoutes configures the booking lifecycle routes.
// Bookings and passengers depend on each other, so both are wired here.
func (r *Router) setupBookingAndPassengerRoutes(rg *gin.RouterGroup) {
	r.bookingRepo = bookings.NewRepository(r.db.GetPostgreSQL())
	passengerRepo := passengers.NewRepository(r.db.GetPostgreSQL())

	r.passengerService = passengers.NewService(passengerRepo, r.bookingRepo)
	passengerAdapter := passengers.NewBookingAdapter(r.passengerService)

	r.bookingService = bookings.NewService(r.bookingRepo, r.flightRepo, r.userRepo, passengerAdapter, r.events)
	bookingController := bookings.NewController(r.bookingService)
	bookings.SetupBookingRoutes(rg, bookingController)

	passengerController := passengers.NewController(r.passengerService)
	passengers.SetupPassengerRoutes(rg, passengerController)
}

// setupPaymentRoutes configures payment and refund routes
func (r *Router) setupPaymentRoutes(rg *gin.RouterGroup) {
	paymentRepo := payments.NewRepository(r.db.GetPostgreSQL())
	gateway := payments.NewMockGateway(r.config.Gateway)
	bookingAdapter := payments.NewBookingServiceAdapter(r.bookingService, r.bookingRepo)

	paymentService := payments.NewService(paymentRepo, bookingAdapter, gateway, r.events)
	paymentController := payments.NewController(paymentService)

	payments.SetupPaymentRoutes(rg, paymentController)
}
