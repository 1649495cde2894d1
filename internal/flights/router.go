package flights

import (
	"aerobook/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupFlightRoutes(rg *gin.RouterGroup, controller *Controller) {
	// Public browsing and availability search
	flights := rg.Group("/flights")
	{
		flights.GET("", controller.GetAll)                        // GET /api/v1/flights
		flights.GET("/search", controller.Search)                 // GET /api/v1/flights/search?from=&to=&departure_date=
		flights.GET("/upcoming", controller.GetUpcoming)          // GET /api/v1/flights/upcoming
		flights.GET("/number/:number", controller.GetByNumber)    // GET /api/v1/flights/number/:number
		flights.GET("/airline/:code", controller.GetByAirlineCode) // GET /api/v1/flights/airline/:code
		flights.GET("/:id", controller.GetByID)                   // GET /api/v1/flights/:id
	}

	// Schedule mutation is admin only
	admin := rg.Group("/admin/flights")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.POST("", controller.Create)                 // POST /api/v1/admin/flights
		admin.PUT("/:id", controller.Update)              // PUT /api/v1/admin/flights/:id
		admin.PUT("/:id/status", controller.UpdateStatus) // PUT /api/v1/admin/flights/:id/status
		admin.DELETE("/:id", controller.Delete)           // DELETE /api/v1/admin/flights/:id
	}
}
