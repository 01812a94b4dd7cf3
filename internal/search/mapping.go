package search

import (
	"context"
	"fmt"
	"net/http"

	"github.com/elastic/go-elasticsearch/v8/esutil"
)

func namedRefMapping(kind string) map[string]interface{} {
	return map[string]interface{}{
		"type": kind,
		"properties": map[string]interface{}{
			"id": map[string]interface{}{"type": "integer"},
			"name": map[string]interface{}{
				"type":   "text",
				"fields": map[string]interface{}{"raw": map[string]interface{}{"type": "keyword"}},
			},
		},
	}
}

// IndexMapping is the body used to create the job index.
func IndexMapping() map[string]interface{} {
	text := map[string]interface{}{"type": "text"}
	date := map[string]interface{}{"type": "date", "format": "yyyy-MM-dd"}

	return map[string]interface{}{
		"mappings": map[string]interface{}{
			"properties": map[string]interface{}{
				"id": map[string]interface{}{"type": "integer"},
				"job_title": map[string]interface{}{
					"type": "text",
					"fields": map[string]interface{}{
						"raw":     map[string]interface{}{"type": "keyword"},
						"suggest": map[string]interface{}{"type": "completion"},
					},
				},
				"degree":                   namedRefMapping("object"),
				"organization":             namedRefMapping("object"),
				"locations":                namedRefMapping("nested"),
				"preferred_qualifications": text,
				"minimum_qualifications":   text,
				"description":              text,
				"job_type": map[string]interface{}{
					"type":   "text",
					"fields": map[string]interface{}{"raw": map[string]interface{}{"type": "keyword"}},
				},
				"date_added":   date,
				"date_updated": date,
			},
		},
	}
}

// EnsureIndex creates the job index when it does not exist.
func (c *Client) EnsureIndex(ctx context.Context) error {
	res, err := c.es.Indices.Exists([]string{c.index}, c.es.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to check index: %w", err)
	}
	res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return c.createIndex(ctx)
	default:
		return fmt.Errorf("failed to check index: status %d", res.StatusCode)
	}
}

// RecreateIndex drops the job index, if present, and creates it empty.
func (c *Client) RecreateIndex(ctx context.Context) error {
	res, err := c.es.Indices.Delete([]string{c.index},
		c.es.Indices.Delete.WithContext(ctx),
		c.es.Indices.Delete.WithIgnoreUnavailable(true))
	if err != nil {
		return fmt.Errorf("failed to delete index: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return responseError(res)
	}

	return c.createIndex(ctx)
}

func (c *Client) createIndex(ctx context.Context) error {
	res, err := c.es.Indices.Create(c.index,
		c.es.Indices.Create.WithContext(ctx),
		c.es.Indices.Create.WithBody(esutil.NewJSONReader(IndexMapping())))
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return responseError(res)
	}

	c.logger.Info().Str("index", c.index).Msg("Search index created")
	return nil
}
