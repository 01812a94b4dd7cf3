package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/jobsearch/internal/app/models/dto"
	"github.com/yigit/jobsearch/internal/app/services"
	"github.com/yigit/jobsearch/internal/middleware"
	"github.com/yigit/jobsearch/internal/pkg/helpers"
)

// LocationController serves read-only location endpoints.
type LocationController struct {
	locationService services.LocationService
}

// NewLocationController creates a new LocationController
func NewLocationController(locationService services.LocationService) *LocationController {
	return &LocationController{locationService: locationService}
}

// ListLocations lists locations
// @Summary List locations
// @Tags locations
// @Produce json
// @Param page query int false "Page number" minimum(1)
// @Param page_size query int false "Page size (max 500)"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse{items=[]dto.LocationResponse}} "Locations"
// @Failure 404 {object} dto.ErrorResponse "Invalid page"
// @Router /locations [get]
func (c *LocationController) ListLocations(ctx *gin.Context) {
	pageReq, err := helpers.ParsePaginationParams(ctx, helpers.LocationPageLimits)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	locations, total, err := c.locationService.ListLocations(ctx.Request.Context(), pageReq.Window())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]dto.LocationResponse, 0, len(locations))
	for _, l := range locations {
		items = append(items, dto.LocationResponse{ID: l.ID, Name: l.Name})
	}
	respondPage(ctx, items, total, pageReq)
}

// GetLocation retrieves one location
// @Summary Get a location
// @Tags locations
// @Produce json
// @Param id path int true "Location ID"
// @Success 200 {object} dto.APIResponse{data=dto.LocationResponse} "Location"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /locations/{id} [get]
func (c *LocationController) GetLocation(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	location, err := c.locationService.GetLocationByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, dto.LocationResponse{ID: location.ID, Name: location.Name})
}
