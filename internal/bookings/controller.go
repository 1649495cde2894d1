package bookings

import (
	"net/http"
	"strconv"

	"aerobook/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) Create(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req CreateBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	booking, err := c.service.Create(ctx.Request.Context(), userID, req)
	if err != nil {
		response.RespondError(ctx, "Failed to create booking", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Booking created successfully", booking, nil)
}

func (c *Controller) GetByReference(ctx *gin.Context) {
	booking, err := c.service.GetByReference(ctx.Request.Context(), ctx.Param("reference"))
	if err != nil {
		response.RespondError(ctx, "Failed to get booking", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking retrieved successfully", booking, nil)
}

func (c *Controller) GetMine(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	bookings, err := c.service.GetByUser(ctx.Request.Context(), userID)
	if err != nil {
		response.RespondError(ctx, "Failed to list bookings", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Bookings retrieved successfully", bookings, nil)
}

func (c *Controller) GetByUser(ctx *gin.Context) {
	userID, err := strconv.ParseUint(ctx.Param("userId"), 10, 64)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid user ID", nil, err.Error())
		return
	}

	bookings, err := c.service.GetByUser(ctx.Request.Context(), uint(userID))
	if err != nil {
		response.RespondError(ctx, "Failed to list bookings", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Bookings retrieved successfully", bookings, nil)
}

func (c *Controller) GetByStatus(ctx *gin.Context) {
	bookings, err := c.service.GetByStatus(ctx.Request.Context(), ctx.Param("status"))
	if err != nil {
		response.RespondError(ctx, "Failed to list bookings", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Bookings retrieved successfully", bookings, nil)
}

func (c *Controller) GetPassengers(ctx *gin.Context) {
	passengers, err := c.service.GetPassengers(ctx.Request.Context(), ctx.Param("reference"))
	if err != nil {
		response.RespondError(ctx, "Failed to list passengers", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Passengers retrieved successfully", passengers, nil)
}

func (c *Controller) Update(ctx *gin.Context) {
	var req UpdateBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	booking, err := c.service.Update(ctx.Request.Context(), ctx.Param("reference"), req)
	if err != nil {
		response.RespondError(ctx, "Failed to update booking", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking updated successfully", booking, nil)
}

func (c *Controller) Cancel(ctx *gin.Context) {
	booking, err := c.service.Cancel(ctx.Request.Context(), ctx.Param("reference"))
	if err != nil {
		response.RespondError(ctx, "Failed to cancel booking", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking cancelled successfully", booking, nil)
}

// currentUserID pulls the authenticated user's id out of the JWT claims
// set by the auth middleware.
func currentUserID(ctx *gin.Context) (uint, bool) {
	raw, exists := ctx.Get("user_id")
	if !exists {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return 0, false
	}

	idStr, ok := raw.(string)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "Invalid user identity", nil, nil)
		return 0, false
	}
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "Invalid user identity", nil, nil)
		return 0, false
	}
	return uint(id), true
}
