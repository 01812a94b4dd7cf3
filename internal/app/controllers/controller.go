// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/jobsearch/internal/app/models/dto"
	"github.com/yigit/jobsearch/internal/middleware"
	"github.com/yigit/jobsearch/internal/pkg/apperrors"
	"github.com/yigit/jobsearch/internal/pkg/helpers"
)

// parseID reads the :id path parameter. Anything but a positive integer
// answers 404, like an unmatched route.
func parseID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		middleware.HandleAPIError(ctx, apperrors.NewResourceNotFoundError("Not found."))
		return 0, false
	}
	return id, true
}

func respond(ctx *gin.Context, status int, data interface{}) {
	ctx.JSON(status, dto.NewAPIResponse(data))
}

// respondPage writes one page of a listing with its pagination block.
func respondPage(ctx *gin.Context, items interface{}, total int64, req helpers.PageRequest) {
	info, err := helpers.NewPaginationInfo(total, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, dto.PaginatedResponse{Items: items, Pagination: info})
}
