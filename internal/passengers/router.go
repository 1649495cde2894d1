package passengers

import (
	"aerobook/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupPassengerRoutes(rg *gin.RouterGroup, controller *Controller) {
	passengers := rg.Group("/passengers")
	passengers.Use(middleware.JWTAuth())
	{
		passengers.GET("/:id", controller.GetByID)           // GET /api/v1/passengers/:id
		passengers.PUT("/:id", controller.Update)            // PUT /api/v1/passengers/:id
		passengers.PUT("/:id/seat", controller.AssignSeat)   // PUT /api/v1/passengers/:id/seat
		passengers.DELETE("/:id", controller.Delete)         // DELETE /api/v1/passengers/:id
	}
}
