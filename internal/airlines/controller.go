package airlines

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
	var req CreateAirlineRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	airline, err := c.service.Create(ctx.Request.Context(), req)
	if err != nil {
		response.RespondError(ctx, "Failed to create airline", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Airline created successfully", airline, nil)
}

func (c *Controller) GetByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	airline, err := c.service.GetByID(ctx.Request.Context(), id)
	if err != nil {
		response.RespondError(ctx, "Failed to get airline", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Airline retrieved successfully", airline, nil)
}

func (c *Controller) GetByCode(ctx *gin.Context) {
	airline, err := c.service.GetByCode(ctx.Request.Context(), ctx.Param("code"))
	if err != nil {
		response.RespondError(ctx, "Failed to get airline", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Airline retrieved successfully", airline, nil)
}

func (c *Controller) GetAll(ctx *gin.Context) {
	var (
		airlines []AirlineResponse
		err      error
	)

	switch {
	case ctx.Query("country") != "":
		airlines, err = c.service.GetByCountry(ctx.Request.Context(), ctx.Query("country"))
	case ctx.Query("active") == "true":
		airlines, err = c.service.GetActive(ctx.Request.Context())
	default:
		airlines, err = c.service.GetAll(ctx.Request.Context())
	}

	if err != nil {
		response.RespondError(ctx, "Failed to list airlines", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Airlines retrieved successfully", airlines, nil)
}

func (c *Controller) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req UpdateAirlineRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	airline, err := c.service.Update(ctx.Request.Context(), id, req)
	if err != nil {
		response.RespondError(ctx, "Failed to update airline", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Airline updated successfully", airline, nil)
}

func (c *Controller) Deactivate(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	airline, err := c.service.Deactivate(ctx.Request.Context(), id)
	if err != nil {
		response.RespondError(ctx, "Failed to deactivate airline", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Airline deactivated successfully", airline, nil)
}

func (c *Controller) Reactivate(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	airline, err := c.service.Reactivate(ctx.Request.Context(), id)
	if err != nil {
		response.RespondError(ctx, "Failed to reactivate airline", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Airline reactivated successfully", airline, nil)
}

func (c *Controller) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), id); err != nil {
		response.RespondError(ctx, "Failed to delete airline", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Airline deleted successfully", nil, nil)
}

func parseID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid airline ID", nil, err.Error())
		return 0, false
	}
	return uint(id), true
}
