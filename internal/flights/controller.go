package flights

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
	var req CreateFlightRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	flight, err := c.service.Create(ctx.Request.Context(), req)
	if err != nil {
		response.RespondError(ctx, "Failed to create flight", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Flight created successfully", flight, nil)
}

func (c *Controller) GetByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	flight, err := c.service.GetByID(ctx.Request.Context(), id)
	if err != nil {
		response.RespondError(ctx, "Failed to get flight", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Flight retrieved successfully", flight, nil)
}

func (c *Controller) GetByNumber(ctx *gin.Context) {
	flight, err := c.service.GetByNumber(ctx.Request.Context(), ctx.Param("number"))
	if err != nil {
		response.RespondError(ctx, "Failed to get flight", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Flight retrieved successfully", flight, nil)
}

func (c *Controller) GetAll(ctx *gin.Context) {
	flights, err := c.service.GetAll(ctx.Request.Context())
	if err != nil {
		response.RespondError(ctx, "Failed to list flights", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Flights retrieved successfully", flights, nil)
}

func (c *Controller) Search(ctx *gin.Context) {
	var req SearchFlightsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	flights, err := c.service.Search(ctx.Request.Context(), req)
	if err != nil {
		response.RespondError(ctx, "Failed to search flights", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Flights retrieved successfully", flights, nil)
}

func (c *Controller) GetUpcoming(ctx *gin.Context) {
	flights, err := c.service.GetUpcoming(ctx.Request.Context())
	if err != nil {
		response.RespondError(ctx, "Failed to list upcoming flights", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Upcoming flights retrieved successfully", flights, nil)
}

func (c *Controller) GetByAirlineCode(ctx *gin.Context) {
	flights, err := c.service.GetByAirlineCode(ctx.Request.Context(), ctx.Param("code"))
	if err != nil {
		response.RespondError(ctx, "Failed to list flights by airline", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Flights retrieved successfully", flights, nil)
}

func (c *Controller) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req UpdateFlightRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	flight, err := c.service.Update(ctx.Request.Context(), id, req)
	if err != nil {
		response.RespondError(ctx, "Failed to update flight", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Flight updated successfully", flight, nil)
}

func (c *Controller) UpdateStatus(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req UpdateFlightStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	flight, err := c.service.UpdateStatus(ctx.Request.Context(), id, req)
	if err != nil {
		response.RespondError(ctx, "Failed to update flight status", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Flight status updated successfully", flight, nil)
}

func (c *Controller) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), id); err != nil {
		response.RespondError(ctx, "Failed to delete flight", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Flight deleted successfully", nil, nil)
}

func parseID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid flight ID", nil, err.Error())
		return 0, false
	}
	return uint(id), true
}
