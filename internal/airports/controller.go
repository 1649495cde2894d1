package airports

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
	var req CreateAirportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	airport, err := c.service.Create(ctx.Request.Context(), req)
	if err != nil {
		response.RespondError(ctx, "Failed to create airport", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Airport created successfully", airport, nil)
}

func (c *Controller) GetByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	airport, err := c.service.GetByID(ctx.Request.Context(), id)
	if err != nil {
		response.RespondError(ctx, "Failed to get airport", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Airport retrieved successfully", airport, nil)
}

func (c *Controller) GetByCode(ctx *gin.Context) {
	airport, err := c.service.GetByCode(ctx.Request.Context(), ctx.Param("code"))
	if err != nil {
		response.RespondError(ctx, "Failed to get airport", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Airport retrieved successfully", airport, nil)
}

func (c *Controller) GetAll(ctx *gin.Context) {
	var (
		airports []AirportResponse
		err      error
	)

	switch {
	case ctx.Query("search") != "":
		airports, err = c.service.Search(ctx.Request.Context(), ctx.Query("search"))
	case ctx.Query("country") != "":
		airports, err = c.service.GetByCountry(ctx.Request.Context(), ctx.Query("country"))
	default:
		airports, err = c.service.GetAll(ctx.Request.Context())
	}

	if err != nil {
		response.RespondError(ctx, "Failed to list airports", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Airports retrieved successfully", airports, nil)
}

func (c *Controller) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req UpdateAirportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	airport, err := c.service.Update(ctx.Request.Context(), id, req)
	if err != nil {
		response.RespondError(ctx, "Failed to update airport", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Airport updated successfully", airport, nil)
}

func (c *Controller) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), id); err != nil {
		response.RespondError(ctx, "Failed to delete airport", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Airport deleted successfully", nil, nil)
}

func parseID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid airport ID", nil, err.Error())
		return 0, false
	}
	return uint(id), true
}
