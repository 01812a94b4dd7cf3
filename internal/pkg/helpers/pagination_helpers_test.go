package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/jobsearch/internal/app/models"
	"github.com/yigit/jobsearch/internal/pkg/apperrors"
)

func contextWithQuery(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/jobs?"+query, nil)
	return c
}

func TestParsePaginationParams(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		limits  PageLimits
		want    PageRequest
		wantErr bool
	}{
		{name: "defaults", query: "", limits: JobPageLimits, want: PageRequest{Page: 1, Size: 10}},
		{name: "explicit", query: "page=3&page_size=15", limits: JobPageLimits, want: PageRequest{Page: 3, Size: 15}},
		{name: "clamped to max", query: "page_size=50", limits: JobPageLimits, want: PageRequest{Page: 1, Size: 20}},
		{name: "bad size uses default", query: "page_size=abc", limits: LocationPageLimits, want: PageRequest{Page: 1, Size: 500}},
		{name: "bad page", query: "page=zero", limits: JobPageLimits, wantErr: true},
		{name: "page zero", query: "page=0", limits: JobPageLimits, wantErr: true},
		{name: "offset overflow", query: "page=9223372036854775807&page_size=20", limits: JobPageLimits, wantErr: true},
		{name: "last search page", query: "page=500&page_size=20", limits: SearchPageLimits, want: PageRequest{Page: 500, Size: 20}},
		{name: "past search window", query: "page=501&page_size=20", limits: SearchPageLimits, wantErr: true},
		{name: "search window uses clamped size", query: "page=1000&page_size=50", limits: SearchPageLimits, wantErr: true},
		{name: "deep database page", query: "page=1000&page_size=20", limits: JobPageLimits, want: PageRequest{Page: 1000, Size: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePaginationParams(contextWithQuery(tt.query), tt.limits)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPageRequestWindow(t *testing.T) {
	assert.Equal(t, models.Page{Offset: 20, Limit: 10}, PageRequest{Page: 3, Size: 10}.Window())
}

func TestNewPaginationInfo(t *testing.T) {
	info, err := NewPaginationInfo(25, PageRequest{Page: 2, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, 3, info.TotalPages)
	assert.True(t, info.HasNext)
	assert.True(t, info.HasPrevious)

	info, err = NewPaginationInfo(0, PageRequest{Page: 1, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, info.TotalPages)
	assert.False(t, info.HasNext)

	_, err = NewPaginationInfo(25, PageRequest{Page: 4, Size: 10})
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}
