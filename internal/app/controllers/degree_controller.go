package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/jobsearch/internal/app/models/dto"
	"github.com/yigit/jobsearch/internal/app/services"
	"github.com/yigit/jobsearch/internal/middleware"
	"github.com/yigit/jobsearch/internal/pkg/helpers"
)

// DegreeController handles degree endpoints.
type DegreeController struct {
	degreeService services.DegreeService
}

// NewDegreeController creates a new DegreeController
func NewDegreeController(degreeService services.DegreeService) *DegreeController {
	return &DegreeController{degreeService: degreeService}
}

// ListDegrees lists degrees
// @Summary List degrees
// @Tags degrees
// @Produce json
// @Param page query int false "Page number" minimum(1)
// @Param page_size query int false "Page size (max 100)"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse{items=[]models.Degree}} "Degrees"
// @Failure 404 {object} dto.ErrorResponse "Invalid page"
// @Router /degrees [get]
func (c *DegreeController) ListDegrees(ctx *gin.Context) {
	pageReq, err := helpers.ParsePaginationParams(ctx, helpers.CatalogPageLimits)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	degrees, total, err := c.degreeService.ListDegrees(ctx.Request.Context(), pageReq.Window())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondPage(ctx, degrees, total, pageReq)
}

// GetDegree retrieves one degree
// @Summary Get a degree
// @Tags degrees
// @Produce json
// @Param id path int true "Degree ID"
// @Success 200 {object} dto.APIResponse{data=models.Degree} "Degree"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /degrees/{id} [get]
func (c *DegreeController) GetDegree(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	degree, err := c.degreeService.GetDegreeByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, degree)
}

// CreateDegree creates a degree; staff only
// @Summary Create a degree
// @Tags degrees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Security TokenAuth
// @Param request body dto.DegreeRequest true "Degree"
// @Success 201 {object} dto.APIResponse{data=models.Degree} "Created"
// @Failure 400 {object} dto.ErrorResponse "Invalid data or duplicate name"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Staff only"
// @Router /degrees [post]
func (c *DegreeController) CreateDegree(ctx *gin.Context) {
	var req dto.DegreeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	degree, err := c.degreeService.CreateDegree(ctx.Request.Context(), middleware.CurrentUser(ctx), req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusCreated, degree)
}

// UpdateDegree renames a degree; staff only. PUT and PATCH both require name.
// @Summary Update a degree
// @Tags degrees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Security TokenAuth
// @Param id path int true "Degree ID"
// @Param request body dto.DegreeRequest true "Degree"
// @Success 200 {object} dto.APIResponse{data=models.Degree} "Updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid data or duplicate name"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Staff only"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /degrees/{id} [put]
// @Router /degrees/{id} [patch]
func (c *DegreeController) UpdateDegree(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req dto.DegreeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	degree, err := c.degreeService.UpdateDegree(ctx.Request.Context(), middleware.CurrentUser(ctx), id, req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, degree)
}

// DeleteDegree deletes a degree; staff only
// @Summary Delete a degree
// @Tags degrees
// @Security BearerAuth
// @Security TokenAuth
// @Param id path int true "Degree ID"
// @Success 204 "Deleted"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Staff only"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /degrees/{id} [delete]
func (c *DegreeController) DeleteDegree(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.degreeService.DeleteDegree(ctx.Request.Context(), middleware.CurrentUser(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
