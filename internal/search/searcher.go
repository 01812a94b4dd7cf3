package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/yigit/jobsearch/internal/app/models"
	"github.com/yigit/jobsearch/internal/app/models/dto"
	"github.com/yigit/jobsearch/internal/pkg/apperrors"
)

type searchHit struct {
	ID     string      `json:"_id"`
	Source JobDocument `json:"_source"`
}

type searchResponse struct {
	Hits struct {
		Total struct {
			Value int64 `json:"value"`
		} `json:"total"`
		Hits []searchHit `json:"hits"`
	} `json:"hits"`
}

type suggestResponse struct {
	Suggest map[string][]struct {
		Options []struct {
			Text string `json:"text"`
		} `json:"options"`
	} `json:"suggest"`
}

type getResponse struct {
	Found  bool        `json:"found"`
	Source JobDocument `json:"_source"`
}

// unavailable marks cluster failures so the API answers 503.
func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", apperrors.ErrSearchUnavailable, op, err)
}

func (c *Client) checkResponse(op string, res *esapi.Response) error {
	if !res.IsError() {
		return nil
	}
	err := responseError(res)
	if res.StatusCode >= http.StatusInternalServerError {
		return unavailable(op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// Search runs a full-text query and returns the page of hits with the
// total hit count.
func (c *Client) Search(ctx context.Context, q models.JobSearchQuery) ([]dto.JobSearchItem, int64, error) {
	res, err := c.es.Search(
		c.es.Search.WithContext(ctx),
		c.es.Search.WithIndex(c.index),
		c.es.Search.WithBody(esutil.NewJSONReader(BuildSearchQuery(q))),
	)
	if err != nil {
		return nil, 0, unavailable("search", err)
	}
	defer res.Body.Close()
	if err := c.checkResponse("search", res); err != nil {
		return nil, 0, err
	}

	var body searchResponse
	if err := decode(res, &body); err != nil {
		return nil, 0, err
	}

	items := make([]dto.JobSearchItem, 0, len(body.Hits.Hits))
	for _, hit := range body.Hits.Hits {
		items = append(items, hit.Source.Item())
	}
	return items, body.Hits.Total.Value, nil
}

// Suggest returns distinct job titles completing prefix, in score order.
func (c *Client) Suggest(ctx context.Context, prefix string, fuzzy bool) ([]string, error) {
	res, err := c.es.Search(
		c.es.Search.WithContext(ctx),
		c.es.Search.WithIndex(c.index),
		c.es.Search.WithBody(esutil.NewJSONReader(BuildSuggestQuery(prefix, fuzzy))),
	)
	if err != nil {
		return nil, unavailable("suggest", err)
	}
	defer res.Body.Close()
	if err := c.checkResponse("suggest", res); err != nil {
		return nil, err
	}

	var body suggestResponse
	if err := decode(res, &body); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	titles := []string{}
	for _, entry := range body.Suggest[suggestName] {
		for _, opt := range entry.Options {
			if _, ok := seen[opt.Text]; ok {
				continue
			}
			seen[opt.Text] = struct{}{}
			titles = append(titles, opt.Text)
		}
	}
	return titles, nil
}

// Get returns the indexed document of a job.
func (c *Client) Get(ctx context.Context, id int64) (*dto.JobSearchItem, error) {
	res, err := c.es.Get(c.index, DocumentID(id), c.es.Get.WithContext(ctx))
	if err != nil {
		return nil, unavailable("get", err)
	}
	defer res.Body.Close()
	if res.StatusCode == http.StatusNotFound {
		return nil, apperrors.NewResourceNotFoundError("Job not found.")
	}
	if err := c.checkResponse("get", res); err != nil {
		return nil, err
	}

	var body getResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode elasticsearch response: %w", err)
	}
	if !body.Found {
		return nil, apperrors.NewResourceNotFoundError("Job not found.")
	}

	item := body.Source.Item()
	return &item, nil
}
