package airports

import (
	"aerobook/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupAirportRoutes(rg *gin.RouterGroup, controller *Controller) {
	// Public browsing
	airports := rg.Group("/airports")
	{
		airports.GET("", controller.GetAll)               // GET /api/v1/airports?search=&country=
		airports.GET("/:id", controller.GetByID)          // GET /api/v1/airports/:id
		airports.GET("/code/:code", controller.GetByCode) // GET /api/v1/airports/code/:code
	}

	// Master-data mutation is admin only
	admin := rg.Group("/admin/airports")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.POST("", controller.Create)       // POST /api/v1/admin/airports
		admin.PUT("/:id", controller.Update)    // PUT /api/v1/admin/airports/:id
		admin.DELETE("/:id", controller.Delete) // DELETE /api/v1/admin/airports/:id
	}
}
