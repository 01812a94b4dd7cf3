package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"

	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/yigit/jobsearch/internal/app/models"
)

// IndexJob writes the current state of job into the index.
func (c *Client) IndexJob(ctx context.Context, job *models.Job) error {
	res, err := c.es.Index(c.index,
		esutil.NewJSONReader(NewJobDocument(job)),
		c.es.Index.WithContext(ctx),
		c.es.Index.WithDocumentID(DocumentID(job.ID)))
	if err != nil {
		return fmt.Errorf("failed to index job %d: %w", job.ID, err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("failed to index job %d: %w", job.ID, responseError(res))
	}
	return nil
}

// DeleteJob removes a job from the index. A missing document is not an error.
func (c *Client) DeleteJob(ctx context.Context, id int64) error {
	res, err := c.es.Delete(c.index, DocumentID(id), c.es.Delete.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to delete job %d from index: %w", id, err)
	}
	defer res.Body.Close()
	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("failed to delete job %d from index: %w", id, responseError(res))
	}
	return nil
}

// ErrInvalidBatchSize is returned by Reindex for a batch size below one.
var ErrInvalidBatchSize = errors.New("batch size must be positive")

// JobSource walks every stored job in batches.
type JobSource interface {
	ForEachBatch(ctx context.Context, batchSize int, fn func([]*models.Job) error) error
}

// Reindex recreates the index and bulk loads every job from src. It
// returns the number of documents indexed.
func (c *Client) Reindex(ctx context.Context, src JobSource, batchSize int) (int64, error) {
	// Checked before the index is dropped
	if batchSize <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidBatchSize, batchSize)
	}
	if err := c.RecreateIndex(ctx); err != nil {
		return 0, err
	}

	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Client:     c.es,
		Index:      c.index,
		NumWorkers: 2,
		OnError: func(ctx context.Context, err error) {
			c.logger.Error().Err(err).Msg("Bulk indexer error")
		},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create bulk indexer: %w", err)
	}

	var failed atomic.Int64
	walkErr := src.ForEachBatch(ctx, batchSize, func(jobs []*models.Job) error {
		for _, job := range jobs {
			body, err := json.Marshal(NewJobDocument(job))
			if err != nil {
				return fmt.Errorf("failed to encode job %d: %w", job.ID, err)
			}
			err = bi.Add(ctx, esutil.BulkIndexerItem{
				Action:     "index",
				DocumentID: DocumentID(job.ID),
				Body:       bytes.NewReader(body),
				OnFailure: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
					failed.Add(1)
					ev := c.logger.Error().Str("id", item.DocumentID)
					if err != nil {
						ev = ev.Err(err)
					} else {
						ev = ev.Str("type", res.Error.Type).Str("reason", res.Error.Reason)
					}
					ev.Msg("Failed to index job")
				},
			})
			if err != nil {
				return fmt.Errorf("failed to queue job %d: %w", job.ID, err)
			}
		}
		return nil
	})

	if err := bi.Close(ctx); err != nil && walkErr == nil {
		walkErr = fmt.Errorf("failed to flush bulk indexer: %w", err)
	}

	stats := bi.Stats()
	c.logger.Info().
		Str("index", c.index).
		Uint64("indexed", stats.NumIndexed).
		Uint64("failed", stats.NumFailed).
		Msg("Reindex finished")

	if walkErr != nil {
		return int64(stats.NumIndexed), walkErr
	}
	if n := failed.Load(); n > 0 {
		return int64(stats.NumIndexed), fmt.Errorf("%d jobs failed to index", n)
	}
	return int64(stats.NumIndexed), nil
}

// NopIndexer discards index updates. It stands in when search is disabled.
type NopIndexer struct{}

func (NopIndexer) IndexJob(context.Context, *models.Job) error { return nil }

func (NopIndexer) DeleteJob(context.Context, int64) error { return nil }
