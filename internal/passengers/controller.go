package passengers

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

func (c *Controller) GetByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	passenger, err := c.service.GetByID(ctx.Request.Context(), id)
	if err != nil {
		response.RespondError(ctx, "Failed to get passenger", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Passenger retrieved successfully", passenger, nil)
}

func (c *Controller) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req UpdatePassengerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	passenger, err := c.service.Update(ctx.Request.Context(), id, req)
	if err != nil {
		response.RespondError(ctx, "Failed to update passenger", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Passenger updated successfully", passenger, nil)
}

func (c *Controller) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), id); err != nil {
		response.RespondError(ctx, "Failed to delete passenger", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Passenger deleted successfully", nil, nil)
}

func (c *Controller) AssignSeat(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req AssignSeatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	passenger, err := c.service.AssignSeat(ctx.Request.Context(), id, req.SeatNumber)
	if err != nil {
		response.RespondError(ctx, "Failed to assign seat", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Seat assigned successfully", passenger, nil)
}

func parseID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid passenger ID", nil, err.Error())
		return 0, false
	}
	return uint(id), true
}
