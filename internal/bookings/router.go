package bookings

import (
	"aerobook/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupBookingRoutes(rg *gin.RouterGroup, controller *Controller) {
	bookings := rg.Group("/bookings")
	bookings.Use(middleware.JWTAuth())
	{
		bookings.POST("", controller.Create)                                 // POST /api/v1/bookings
		bookings.GET("", controller.GetMine)                                 // GET /api/v1/bookings
		bookings.GET("/:reference", controller.GetByReference)               // GET /api/v1/bookings/:reference
		bookings.GET("/:reference/passengers", controller.GetPassengers)     // GET /api/v1/bookings/:reference/passengers
		bookings.PUT("/:reference", controller.Update)                       // PUT /api/v1/bookings/:reference
		bookings.PUT("/:reference/cancel", controller.Cancel)                // PUT /api/v1/bookings/:reference/cancel
	}

	admin := rg.Group("/admin/bookings")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.GET("/user/:userId", controller.GetByUser)     // GET /api/v1/admin/bookings/user/:userId
		admin.GET("/status/:status", controller.GetByStatus) // GET /api/v1/admin/bookings/status/:status
	}
}
