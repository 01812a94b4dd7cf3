package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/jobsearch/internal/app/models/dto"
	"github.com/yigit/jobsearch/internal/app/services"
	"github.com/yigit/jobsearch/internal/middleware"
	"github.com/yigit/jobsearch/internal/pkg/helpers"
)

// OrganizationController handles organization endpoints.
type OrganizationController struct {
	orgService services.OrganizationService
}

// NewOrganizationController creates a new OrganizationController
func NewOrganizationController(orgService services.OrganizationService) *OrganizationController {
	return &OrganizationController{orgService: orgService}
}

// ListOrganizations lists organizations by id
// @Summary List organizations
// @Tags organizations
// @Produce json
// @Param page query int false "Page number" minimum(1)
// @Param page_size query int false "Page size (max 100)"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse{items=[]dto.OrganizationResponse}} "Organizations"
// @Failure 404 {object} dto.ErrorResponse "Invalid page"
// @Router /organizations [get]
func (c *OrganizationController) ListOrganizations(ctx *gin.Context) {
	pageReq, err := helpers.ParsePaginationParams(ctx, helpers.CatalogPageLimits)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	orgs, total, err := c.orgService.ListOrganizations(ctx.Request.Context(), pageReq.Window())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]*dto.OrganizationResponse, 0, len(orgs))
	for _, o := range orgs {
		items = append(items, dto.NewOrganizationResponse(o))
	}
	respondPage(ctx, items, total, pageReq)
}

// GetOrganization retrieves one organization
// @Summary Get an organization
// @Tags organizations
// @Produce json
// @Param id path int true "Organization ID"
// @Success 200 {object} dto.APIResponse{data=dto.OrganizationResponse} "Organization"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /organizations/{id} [get]
func (c *OrganizationController) GetOrganization(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	org, err := c.orgService.GetOrganizationByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, dto.NewOrganizationResponse(org))
}

// CreateOrganization creates an organization owned by the caller
// @Summary Create an organization
// @Tags organizations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Security TokenAuth
// @Param request body dto.OrganizationRequest true "Organization"
// @Success 201 {object} dto.APIResponse{data=dto.OrganizationResponse} "Created"
// @Failure 400 {object} dto.ErrorResponse "Invalid data or duplicate name"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /organizations [post]
func (c *OrganizationController) CreateOrganization(ctx *gin.Context) {
	var req dto.OrganizationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	org, err := c.orgService.CreateOrganization(ctx.Request.Context(), middleware.CurrentUser(ctx), req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusCreated, dto.NewOrganizationResponse(org))
}

// ReplaceOrganization renames an organization; creator only
// @Summary Update an organization
// @Tags organizations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Security TokenAuth
// @Param id path int true "Organization ID"
// @Param request body dto.OrganizationRequest true "Organization"
// @Success 200 {object} dto.APIResponse{data=dto.OrganizationResponse} "Updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid data or duplicate name"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Not the creator"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /organizations/{id} [put]
func (c *OrganizationController) ReplaceOrganization(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req dto.OrganizationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	c.update(ctx, id, &req.Name)
}

// PatchOrganization partially updates an organization; creator only
// @Summary Partially update an organization
// @Tags organizations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Security TokenAuth
// @Param id path int true "Organization ID"
// @Param request body dto.OrganizationPatchRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=dto.OrganizationResponse} "Updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid data or duplicate name"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Not the creator"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /organizations/{id} [patch]
func (c *OrganizationController) PatchOrganization(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req dto.OrganizationPatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	c.update(ctx, id, req.Name)
}

func (c *OrganizationController) update(ctx *gin.Context, id int64, name *string) {
	org, err := c.orgService.UpdateOrganization(ctx.Request.Context(), middleware.CurrentUser(ctx), id, name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, dto.NewOrganizationResponse(org))
}

// DeleteOrganization deletes an organization and its jobs; creator only
// @Summary Delete an organization
// @Tags organizations
// @Security BearerAuth
// @Security TokenAuth
// @Param id path int true "Organization ID"
// @Success 204 "Deleted"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Not the creator"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /organizations/{id} [delete]
func (c *OrganizationController) DeleteOrganization(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.orgService.DeleteOrganization(ctx.Request.Context(), middleware.CurrentUser(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
