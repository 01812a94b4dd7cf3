package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/jobsearch/internal/app/models"
	"github.com/yigit/jobsearch/internal/app/models/dto"
	"github.com/yigit/jobsearch/internal/app/services"
	"github.com/yigit/jobsearch/internal/middleware"
	"github.com/yigit/jobsearch/internal/pkg/apperrors"
	"github.com/yigit/jobsearch/internal/pkg/helpers"
)

// JobController handles job endpoints.
type JobController struct {
	jobService services.JobService
}

// NewJobController creates a new JobController
func NewJobController(jobService services.JobService) *JobController {
	return &JobController{jobService: jobService}
}

// parseJobFilter reads the listing filters from the query string.
func parseJobFilter(ctx *gin.Context) (models.JobFilter, error) {
	filter := models.JobFilter{
		Title:        strings.TrimSpace(ctx.Query("title")),
		Organization: strings.TrimSpace(ctx.Query("organization")),
		Degree:       strings.TrimSpace(ctx.Query("degree")),
	}

	for _, raw := range ctx.QueryArray("locations") {
		if raw == "" {
			continue
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return filter, apperrors.NewValidationError("locations",
				"Select a valid choice. "+raw+" is not one of the available choices.")
		}
		filter.LocationIDs = append(filter.LocationIDs, id)
	}

	if raw := ctx.Query("job_type"); raw != "" {
		jobType := models.JobType(raw)
		if !jobType.Valid() {
			return filter, apperrors.NewValidationError("job_type",
				"Select a valid choice. "+raw+" is not one of the available choices.")
		}
		filter.JobType = jobType
	}

	return filter, nil
}

// ListJobs lists jobs matching the filters
// @Summary List jobs
// @Tags jobs
// @Produce json
// @Param title query string false "Title contains (case-insensitive)"
// @Param organization query string false "Organization name (case-insensitive exact)"
// @Param degree query string false "Degree name (case-insensitive exact)"
// @Param locations query []int false "Location id, repeatable" collectionFormat(multi)
// @Param job_type query string false "Job type" Enums(Full-time, Part-time, Intern, Temporary)
// @Param page query int false "Page number" minimum(1)
// @Param page_size query int false "Page size (max 20)"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse{items=[]dto.JobListItem}} "Jobs"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Failure 404 {object} dto.ErrorResponse "Invalid page"
// @Router /jobs [get]
func (c *JobController) ListJobs(ctx *gin.Context) {
	pageReq, err := helpers.ParsePaginationParams(ctx, helpers.JobPageLimits)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	filter, err := parseJobFilter(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	jobs, total, err := c.jobService.ListJobs(ctx.Request.Context(), filter, pageReq.Window())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]dto.JobListItem, 0, len(jobs))
	for _, j := range jobs {
		items = append(items, dto.NewJobListItem(j))
	}
	respondPage(ctx, items, total, pageReq)
}

// GetJob retrieves one job with every field
// @Summary Get a job
// @Tags jobs
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} dto.APIResponse{data=dto.JobDetail} "Job"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /jobs/{id} [get]
func (c *JobController) GetJob(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	job, err := c.jobService.GetJobByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, dto.NewJobDetail(job))
}

// CreateJob creates a job under an organization the caller created
// @Summary Create a job
// @Description Organization and degree are referenced by name and must exist; locations are created on demand.
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Security TokenAuth
// @Param request body dto.CreateJobRequest true "Job"
// @Success 201 {object} dto.APIResponse{data=dto.JobDetail} "Created"
// @Failure 400 {object} dto.ErrorResponse "Invalid data or unknown organization/degree"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Not the organization's creator"
// @Router /jobs [post]
func (c *JobController) CreateJob(ctx *gin.Context) {
	var req dto.CreateJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	job, err := c.jobService.CreateJob(ctx.Request.Context(), middleware.CurrentUser(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusCreated, dto.NewJobDetail(job))
}

// ReplaceJob fully updates a job; every field is required
// @Summary Update a job
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Security TokenAuth
// @Param id path int true "Job ID"
// @Param request body dto.UpdateJobRequest true "Job"
// @Success 200 {object} dto.APIResponse{data=dto.JobDetail} "Updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid data or unknown organization/degree"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Not the organization's creator"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /jobs/{id} [put]
func (c *JobController) ReplaceJob(ctx *gin.Context) {
	c.update(ctx, false)
}

// PatchJob partially updates a job
// @Summary Partially update a job
// @Description Omitted fields are kept. Sending locations replaces the whole set.
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Security TokenAuth
// @Param id path int true "Job ID"
// @Param request body dto.UpdateJobRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=dto.JobDetail} "Updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid data or unknown organization/degree"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Not the organization's creator"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /jobs/{id} [patch]
func (c *JobController) PatchJob(ctx *gin.Context) {
	c.update(ctx, true)
}

func (c *JobController) update(ctx *gin.Context, partial bool) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	job, err := c.jobService.UpdateJob(ctx.Request.Context(), middleware.CurrentUser(ctx), id, &req, partial)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, dto.NewJobDetail(job))
}

// DeleteJob deletes a job
// @Summary Delete a job
// @Tags jobs
// @Security BearerAuth
// @Security TokenAuth
// @Param id path int true "Job ID"
// @Success 204 "Deleted"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Not the organization's creator"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /jobs/{id} [delete]
func (c *JobController) DeleteJob(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.jobService.DeleteJob(ctx.Request.Context(), middleware.CurrentUser(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
