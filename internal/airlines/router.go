package airlines

import (
	"aerobook/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupAirlineRoutes(rg *gin.RouterGroup, controller *Controller) {
	// Public browsing
	airlines := rg.Group("/airlines")
	{
		airlines.GET("", controller.GetAll)                // GET /api/v1/airlines?country=&active=
		airlines.GET("/:id", controller.GetByID)           // GET /api/v1/airlines/:id
		airlines.GET("/code/:code", controller.GetByCode)  // GET /api/v1/airlines/code/:code
	}

	// Master-data mutation is admin only
	admin := rg.Group("/admin/airlines")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.POST("", controller.Create)                   // POST /api/v1/admin/airlines
		admin.PUT("/:id", controller.Update)                // PUT /api/v1/admin/airlines/:id
		admin.PUT("/:id/deactivate", controller.Deactivate) // PUT /api/v1/admin/airlines/:id/deactivate
		admin.PUT("/:id/reactivate", controller.Reactivate) // PUT /api/v1/admin/airlines/:id/reactivate
		admin.DELETE("/:id", controller.Delete)             // DELETE /api/v1/admin/airlines/:id
	}
}
