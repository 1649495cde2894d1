package payments

import (
	"net/http"

	"aerobook/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) Process(ctx *gin.Context) {
	var req ProcessPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	payment, err := c.service.ProcessPayment(ctx.Request.Context(), req)
	if err != nil {
		response.RespondError(ctx, "Failed to process payment", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Payment processed successfully", payment, nil)
}

func (c *Controller) Refund(ctx *gin.Context) {
	var req RefundPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	payment, err := c.service.RefundPayment(ctx.Request.Context(), ctx.Param("transactionId"), req)
	if err != nil {
		response.RespondError(ctx, "Failed to refund payment", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Payment refunded successfully", payment, nil)
}

func (c *Controller) GetByTransactionID(ctx *gin.Context) {
	payment, err := c.service.GetByTransactionID(ctx.Request.Context(), ctx.Param("transactionId"))
	if err != nil {
		response.RespondError(ctx, "Failed to get payment", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Payment retrieved successfully", payment, nil)
}

func (c *Controller) GetByBooking(ctx *gin.Context) {
	payments, err := c.service.GetByBookingReference(ctx.Request.Context(), ctx.Param("reference"))
	if err != nil {
		response.RespondError(ctx, "Failed to list payments", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Payments retrieved successfully", payments, nil)
}

func (c *Controller) GetByStatus(ctx *gin.Context) {
	payments, err := c.service.GetByStatus(ctx.Request.Context(), ctx.Param("status"))
	if err != nil {
		response.RespondError(ctx, "Failed to list payments", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Payments retrieved successfully", payments, nil)
}

func (c *Controller) GetByDateRange(ctx *gin.Context) {
	from := ctx.Query("from")
	to := ctx.Query("to")
	if from == "" || to == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "from and to query parameters are required", nil, nil)
		return
	}

	payments, err := c.service.GetByDateRange(ctx.Request.Context(), from, to)
	if err != nil {
		response.RespondError(ctx, "Failed to list payments", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Payments retrieved successfully", payments, nil)
}

func (c *Controller) Delete(ctx *gin.Context) {
	if err := c.service.Delete(ctx.Request.Context(), ctx.Param("transactionId")); err != nil {
		response.RespondError(ctx, "Failed to delete payment", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Payment deleted successfully", nil, nil)
}
