package payments

import (
	"aerobook/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupPaymentRoutes(rg *gin.RouterGroup, controller *Controller) {
	payments := rg.Group("/payments")
	payments.Use(middleware.JWTAuth())
	{
		payments.POST("", controller.Process)                             // POST /api/v1/payments
		payments.POST("/:transactionId/refund", controller.Refund)        // POST /api/v1/payments/:transactionId/refund
		payments.GET("/:transactionId", controller.GetByTransactionID)    // GET /api/v1/payments/:transactionId
		payments.GET("/booking/:reference", controller.GetByBooking)      // GET /api/v1/payments/booking/:reference
	}

	admin := rg.Group("/admin/payments")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.GET("/status/:status", controller.GetByStatus)  // GET /api/v1/admin/payments/status/:status
		admin.GET("/range", controller.GetByDateRange)        // GET /api/v1/admin/payments/range?from=&to=
		admin.DELETE("/:transactionId", controller.Delete)    // DELETE /api/v1/admin/payments/:transactionId
	}
}
