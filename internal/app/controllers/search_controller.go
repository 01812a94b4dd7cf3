package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/jobsearch/internal/app/models"
	"github.com/yigit/jobsearch/internal/app/models/dto"
	"github.com/yigit/jobsearch/internal/app/services"
	"github.com/yigit/jobsearch/internal/middleware"
	"github.com/yigit/jobsearch/internal/pkg/helpers"
)

// SearchController serves the full-text job index.
type SearchController struct {
	searchService services.SearchService
}

// NewSearchController creates a new SearchController
func NewSearchController(searchService services.SearchService) *SearchController {
	return &SearchController{searchService: searchService}
}

// SearchJobs runs a fuzzy full-text query with optional filters
// @Summary Search jobs
// @Tags search
// @Produce json
// @Param search query string false "Free text, matched fuzzily"
// @Param job_title query string false "Title filter"
// @Param degree query string false "Degree name filter"
// @Param organization query string false "Organization name filter"
// @Param locations query []string false "Location name, repeatable; any may match" collectionFormat(multi)
// @Param job_type query string false "Job type filter"
// @Param page query int false "Page number; page*page_size may not exceed 10000" minimum(1)
// @Param page_size query int false "Page size (max 20)"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse{items=[]dto.JobSearchItem}} "Matches"
// @Failure 404 {object} dto.ErrorResponse "Invalid page"
// @Failure 503 {object} dto.ErrorResponse "Search disabled or unreachable"
// @Router /search/jobs [get]
func (c *SearchController) SearchJobs(ctx *gin.Context) {
	pageReq, err := helpers.ParsePaginationParams(ctx, helpers.SearchPageLimits)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	query := models.JobSearchQuery{
		Text:         ctx.Query("search"),
		Title:        ctx.Query("job_title"),
		Degree:       ctx.Query("degree"),
		Organization: ctx.Query("organization"),
		Locations:    ctx.QueryArray("locations"),
		JobType:      ctx.Query("job_type"),
		Page:         pageReq.Window(),
	}

	items, total, err := c.searchService.SearchJobs(ctx.Request.Context(), query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondPage(ctx, items, total, pageReq)
}

// SuggestTitles completes job titles
// @Summary Suggest job titles
// @Description Pass job_title_suggest for prefix completion, or job_title_suggest_fuzzy to tolerate typos.
// @Tags search
// @Produce json
// @Param job_title_suggest query string false "Title prefix"
// @Param job_title_suggest_fuzzy query string false "Title prefix, fuzzy"
// @Success 200 {object} dto.APIResponse{data=dto.SuggestResponse} "Suggestions"
// @Failure 503 {object} dto.ErrorResponse "Search disabled or unreachable"
// @Router /search/jobs/suggest [get]
func (c *SearchController) SuggestTitles(ctx *gin.Context) {
	prefix, fuzzy := ctx.Query("job_title_suggest"), false
	if prefix == "" {
		prefix, fuzzy = ctx.Query("job_title_suggest_fuzzy"), true
	}

	suggestions, err := c.searchService.SuggestTitles(ctx.Request.Context(), prefix, fuzzy)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, dto.SuggestResponse{Suggestions: suggestions})
}

// GetJobDocument returns one indexed job
// @Summary Get an indexed job
// @Tags search
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} dto.APIResponse{data=dto.JobSearchItem} "Indexed job"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Failure 503 {object} dto.ErrorResponse "Search disabled or unreachable"
// @Router /search/jobs/{id} [get]
func (c *SearchController) GetJobDocument(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	item, err := c.searchService.GetJobDocument(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, item)
}
