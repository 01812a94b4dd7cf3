package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/jobsearch/internal/app/models"
	"github.com/yigit/jobsearch/internal/app/models/dto"
	"github.com/yigit/jobsearch/internal/pkg/apperrors"
)

const DefaultPage = 1

// PageLimits is the page size policy of one listing endpoint. MaxWindow,
// when set, bounds page*page_size.
type PageLimits struct {
	DefaultSize int
	MaxSize     int
	MaxWindow   int
}

// searchResultWindow matches Elasticsearch's index.max_result_window default.
const searchResultWindow = 10000

// Per-resource page size policies.
var (
	JobPageLimits      = PageLimits{DefaultSize: 10, MaxSize: 20}
	SearchPageLimits   = PageLimits{DefaultSize: 10, MaxSize: 20, MaxWindow: searchResultWindow}
	LocationPageLimits = PageLimits{DefaultSize: 500, MaxSize: 500}
	CatalogPageLimits  = PageLimits{DefaultSize: 100, MaxSize: 100}
)

// PageRequest is a validated 1-based page number and page size.
type PageRequest struct {
	Page int
	Size int
}

// Window converts the request into an offset/limit pair for queries.
func (p PageRequest) Window() models.Page {
	return models.Page{Offset: uint64((p.Page - 1) * p.Size), Limit: p.Size}
}

// ParsePaginationParams reads "page" and "page_size". A page that is not a
// positive integer, or that ends past the window, is a not-found error;
// page_size falls back to the default when invalid and is clamped to the
// maximum.
func ParsePaginationParams(c *gin.Context, limits PageLimits) (PageRequest, error) {
	req := PageRequest{Page: DefaultPage, Size: limits.DefaultSize}

	// Size first, the page bound depends on it
	if sizeStr, ok := c.GetQuery("page_size"); ok {
		if size, err := strconv.Atoi(sizeStr); err == nil && size > 0 {
			req.Size = size
		}
	}
	if req.Size > limits.MaxSize {
		req.Size = limits.MaxSize
	}

	if pageStr, ok := c.GetQuery("page"); ok {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 || page > maxPage(limits, req.Size) {
			return req, apperrors.NewResourceNotFoundError("Invalid page.")
		}
		req.Page = page
	}

	return req, nil
}

// maxPage is the last page whose window fits, keeping Window's offset
// arithmetic well inside int range.
func maxPage(limits PageLimits, size int) int {
	window := math.MaxInt32
	if limits.MaxWindow > 0 {
		window = limits.MaxWindow
	}
	return window / size
}

// NewPaginationInfo creates the pagination block for a page of results.
// Requesting a page past the last one is a not-found error, except page 1
// of an empty listing.
func NewPaginationInfo(totalItems int64, req PageRequest) (dto.PaginationInfo, error) {
	totalPages := 1
	if totalItems > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(req.Size)))
	}

	if req.Page > totalPages {
		return dto.PaginationInfo{}, apperrors.NewResourceNotFoundError("Invalid page.")
	}

	return dto.PaginationInfo{
		CurrentPage: req.Page,
		TotalPages:  totalPages,
		PageSize:    req.Size,
		TotalItems:  totalItems,
		HasNext:     req.Page < totalPages,
		HasPrevious: req.Page > 1,
	}, nil
}
