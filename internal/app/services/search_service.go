package services

import (
	"context"
	"strings"

	"github.com/yigit/jobsearch/internal/app/models"
	"github.com/yigit/jobsearch/internal/app/models/dto"
	"github.com/yigit/jobsearch/internal/pkg/apperrors"
)

// SearchService answers full-text job queries. Every method fails with
// apperrors.ErrSearchUnavailable when search is disabled.
type SearchService interface {
	SearchJobs(ctx context.Context, query models.JobSearchQuery) ([]dto.JobSearchItem, int64, error)
	SuggestTitles(ctx context.Context, prefix string, fuzzy bool) ([]string, error)
	GetJobDocument(ctx context.Context, id int64) (*dto.JobSearchItem, error)
}

type searchServiceImpl struct {
	searcher JobSearcher
}

// NewSearchService creates a new SearchService. A nil searcher means
// search is disabled.
func NewSearchService(searcher JobSearcher) SearchService {
	return &searchServiceImpl{searcher: searcher}
}

// SearchJobs runs a full-text query with the listing filters
func (s *searchServiceImpl) SearchJobs(ctx context.Context, query models.JobSearchQuery) ([]dto.JobSearchItem, int64, error) {
	if s.searcher == nil {
		return nil, 0, apperrors.ErrSearchUnavailable
	}
	query.Text = strings.TrimSpace(query.Text)
	return s.searcher.Search(ctx, query)
}

// SuggestTitles returns distinct title completions; a blank prefix yields none.
func (s *searchServiceImpl) SuggestTitles(ctx context.Context, prefix string, fuzzy bool) ([]string, error) {
	if s.searcher == nil {
		return nil, apperrors.ErrSearchUnavailable
	}
	if strings.TrimSpace(prefix) == "" {
		return []string{}, nil
	}
	return s.searcher.Suggest(ctx, prefix, fuzzy)
}

// GetJobDocument returns the indexed copy of a job
func (s *searchServiceImpl) GetJobDocument(ctx context.Context, id int64) (*dto.JobSearchItem, error) {
	if s.searcher == nil {
		return nil, apperrors.ErrSearchUnavailable
	}
	return s.searcher.Get(ctx, id)
}
