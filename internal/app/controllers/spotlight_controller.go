package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/jobsearch/internal/app/models/dto"
	"github.com/yigit/jobsearch/internal/app/services"
	"github.com/yigit/jobsearch/internal/middleware"
	"github.com/yigit/jobsearch/internal/pkg/helpers"
)

// SpotlightController handles spotlight endpoints.
type SpotlightController struct {
	spotlightService services.SpotlightService
}

// NewSpotlightController creates a new SpotlightController
func NewSpotlightController(spotlightService services.SpotlightService) *SpotlightController {
	return &SpotlightController{spotlightService: spotlightService}
}

// ListSpotlights lists spotlights
// @Summary List spotlights
// @Tags spotlights
// @Produce json
// @Param page query int false "Page number" minimum(1)
// @Param page_size query int false "Page size (max 100)"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse{items=[]models.Spotlight}} "Spotlights"
// @Failure 404 {object} dto.ErrorResponse "Invalid page"
// @Router /spotlights [get]
func (c *SpotlightController) ListSpotlights(ctx *gin.Context) {
	pageReq, err := helpers.ParsePaginationParams(ctx, helpers.CatalogPageLimits)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	spotlights, total, err := c.spotlightService.ListSpotlights(ctx.Request.Context(), pageReq.Window())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondPage(ctx, spotlights, total, pageReq)
}

// GetSpotlight retrieves one spotlight
// @Summary Get a spotlight
// @Tags spotlights
// @Produce json
// @Param id path int true "Spotlight ID"
// @Success 200 {object} dto.APIResponse{data=models.Spotlight} "Spotlight"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /spotlights/{id} [get]
func (c *SpotlightController) GetSpotlight(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	spotlight, err := c.spotlightService.GetSpotlightByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, spotlight)
}

// CreateSpotlight creates a spotlight; staff only
// @Summary Create a spotlight
// @Tags spotlights
// @Accept json
// @Produce json
// @Security BearerAuth
// @Security TokenAuth
// @Param request body dto.SpotlightRequest true "Spotlight"
// @Success 201 {object} dto.APIResponse{data=models.Spotlight} "Created"
// @Failure 400 {object} dto.ErrorResponse "Invalid data"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Staff only"
// @Router /spotlights [post]
func (c *SpotlightController) CreateSpotlight(ctx *gin.Context) {
	var req dto.SpotlightRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	spotlight, err := c.spotlightService.CreateSpotlight(ctx.Request.Context(), middleware.CurrentUser(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusCreated, spotlight)
}

// ReplaceSpotlight replaces a spotlight; staff only
// @Summary Update a spotlight
// @Tags spotlights
// @Accept json
// @Produce json
// @Security BearerAuth
// @Security TokenAuth
// @Param id path int true "Spotlight ID"
// @Param request body dto.SpotlightRequest true "Spotlight"
// @Success 200 {object} dto.APIResponse{data=models.Spotlight} "Updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid data"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Staff only"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /spotlights/{id} [put]
func (c *SpotlightController) ReplaceSpotlight(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req dto.SpotlightRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	spotlight, err := c.spotlightService.UpdateSpotlight(ctx.Request.Context(), middleware.CurrentUser(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, spotlight)
}

// PatchSpotlight partially updates a spotlight; staff only
// @Summary Partially update a spotlight
// @Tags spotlights
// @Accept json
// @Produce json
// @Security BearerAuth
// @Security TokenAuth
// @Param id path int true "Spotlight ID"
// @Param request body dto.SpotlightPatchRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Spotlight} "Updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid data"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Staff only"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /spotlights/{id} [patch]
func (c *SpotlightController) PatchSpotlight(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req dto.SpotlightPatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	spotlight, err := c.spotlightService.PatchSpotlight(ctx.Request.Context(), middleware.CurrentUser(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, spotlight)
}

// DeleteSpotlight deletes a spotlight; staff only
// @Summary Delete a spotlight
// @Tags spotlights
// @Security BearerAuth
// @Security TokenAuth
// @Param id path int true "Spotlight ID"
// @Success 204 "Deleted"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Staff only"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /spotlights/{id} [delete]
func (c *SpotlightController) DeleteSpotlight(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.spotlightService.DeleteSpotlight(ctx.Request.Context(), middleware.CurrentUser(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
