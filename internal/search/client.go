// Package search projects jobs into an Elasticsearch index and queries it.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/rs/zerolog"
)

// Config selects the cluster and index.
type Config struct {
	Addresses []string
	Username  string
	Password  string
	Index     string
	// Transport overrides the HTTP transport, mainly for tests.
	Transport http.RoundTripper
}

// Client reads and writes the job index.
type Client struct {
	es     *elasticsearch.Client
	index  string
	logger zerolog.Logger
}

// NewClient creates a client. It does not contact the cluster.
func NewClient(cfg Config, logger zerolog.Logger) (*Client, error) {
	if cfg.Index == "" {
		return nil, fmt.Errorf("search index name is required")
	}

	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: cfg.Addresses,
		Username:  cfg.Username,
		Password:  cfg.Password,
		Transport: cfg.Transport,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create elasticsearch client: %w", err)
	}

	return &Client{es: es, index: cfg.Index, logger: logger}, nil
}

// Index returns the name of the job index.
func (c *Client) Index() string {
	return c.index
}

// esError describes a failed Elasticsearch response.
type esError struct {
	Status int
	Type   string
	Reason string
}

func (e *esError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("elasticsearch: status %d", e.Status)
	}
	return fmt.Sprintf("elasticsearch: status %d: %s: %s", e.Status, e.Type, e.Reason)
}

// responseError drains res and converts an error response into *esError.
func responseError(res *esapi.Response) error {
	var body struct {
		Error json.RawMessage `json:"error"`
	}
	raw, _ := io.ReadAll(res.Body)
	_ = json.Unmarshal(raw, &body)

	out := &esError{Status: res.StatusCode}
	var detail struct {
		Type   string `json:"type"`
		Reason string `json:"reason"`
	}
	if err := json.Unmarshal(body.Error, &detail); err == nil {
		out.Type, out.Reason = detail.Type, detail.Reason
	} else if len(body.Error) > 0 {
		out.Reason = strings.Trim(string(body.Error), `"`)
	}
	return out
}

func decode(res *esapi.Response, v interface{}) error {
	if err := json.NewDecoder(res.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode elasticsearch response: %w", err)
	}
	return nil
}

// Ping reports whether the cluster answers.
func (c *Client) Ping(ctx context.Context) error {
	res, err := c.es.Ping(c.es.Ping.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to ping elasticsearch: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return responseError(res)
	}
	return nil
}
