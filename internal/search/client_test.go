package search

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/jobsearch/internal/app/models"
	"github.com/yigit/jobsearch/internal/pkg/apperrors"
)

type recorded struct {
	Method string
	Path   string
	Body   string
}

// fakeCluster answers the handful of endpoints the client uses.
type fakeCluster struct {
	mu       sync.Mutex
	requests []recorded
	status   int
}

func (f *fakeCluster) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.requests = append(f.requests, recorded{r.Method, r.URL.Path, string(body)})
	status := f.status
	f.mu.Unlock()

	w.Header().Set("X-Elastic-Product", "Elasticsearch")
	w.Header().Set("Content-Type", "application/json")

	if status != 0 {
		w.WriteHeader(status)
		_, _ = io.WriteString(w, `{"error":{"type":"boom","reason":"broken"},"status":500}`)
		return
	}

	switch {
	case strings.HasSuffix(r.URL.Path, "/_search") && strings.Contains(string(body), "suggest"):
		_, _ = io.WriteString(w, `{"suggest":{"job_title_suggest":[{"text":"dev","options":[
			{"text":"Developer"},{"text":"DevOps Engineer"},{"text":"Developer"}]}]}}`)
	case strings.HasSuffix(r.URL.Path, "/_search"):
		_, _ = io.WriteString(w, `{"hits":{"total":{"value":42},"hits":[
			{"_id":"1","_source":{"id":1,"job_title":"Developer","organization":{"id":1,"name":"Microsoft"},"locations":[{"id":2,"name":"Seattle"}]}},
			{"_id":"2","_source":{"id":2,"job_title":"Designer"}}]}}`)
	case r.Method == http.MethodGet && r.URL.Path == "/jobs/_doc/7":
		_, _ = io.WriteString(w, `{"_id":"7","found":true,"_source":{"id":7,"job_title":"SRE","job_type":"Intern"}}`)
	case r.Method == http.MethodGet:
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"_id":"8","found":false}`)
	case r.Method == http.MethodDelete:
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"result":"not_found"}`)
	default:
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"result":"created"}`)
	}
}

func newTestClient(t *testing.T) (*Client, *fakeCluster) {
	t.Helper()
	fake := &fakeCluster{}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	c, err := NewClient(Config{Addresses: []string{srv.URL}, Index: "jobs"}, zerolog.Nop())
	require.NoError(t, err)
	return c, fake
}

func TestNewClient_RequiresIndex(t *testing.T) {
	_, err := NewClient(Config{Addresses: []string{"http://localhost:9200"}}, zerolog.Nop())
	assert.Error(t, err)
}

func TestClient_Search(t *testing.T) {
	c, _ := newTestClient(t)

	items, total, err := c.Search(context.Background(), models.JobSearchQuery{Text: "dev", Page: models.Page{Limit: 20}})
	require.NoError(t, err)
	assert.EqualValues(t, 42, total)
	require.Len(t, items, 2)
	assert.Equal(t, "Microsoft", items[0].Organization)
	assert.Equal(t, []string{"Seattle"}, items[0].Locations)
	assert.Empty(t, items[1].Organization)
}

func TestClient_SuggestDeduplicates(t *testing.T) {
	c, _ := newTestClient(t)

	got, err := c.Suggest(context.Background(), "dev", true)
	require.NoError(t, err)
	assert.Equal(t, []string{"Developer", "DevOps Engineer"}, got)
}

func TestClient_Get(t *testing.T) {
	c, _ := newTestClient(t)

	item, err := c.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "SRE", item.Title)

	_, err = c.Get(context.Background(), 8)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestClient_IndexAndDelete(t *testing.T) {
	c, fake := newTestClient(t)
	ctx := context.Background()

	job := &models.Job{ID: 5, Title: "SRE", Organization: models.Organization{ID: 1, Name: "Microsoft"}}
	require.NoError(t, c.IndexJob(ctx, job))
	require.NoError(t, c.DeleteJob(ctx, 5))

	require.Len(t, fake.requests, 2)
	assert.Equal(t, "/jobs/_doc/5", fake.requests[0].Path)
	assert.Contains(t, fake.requests[0].Body, `"job_title":"SRE"`)
	assert.Equal(t, http.MethodDelete, fake.requests[1].Method)
}

func TestClient_ClusterErrorIsUnavailable(t *testing.T) {
	c, fake := newTestClient(t)
	fake.status = http.StatusInternalServerError

	_, _, err := c.Search(context.Background(), models.JobSearchQuery{})
	assert.ErrorIs(t, err, apperrors.ErrSearchUnavailable)
	assert.Contains(t, err.Error(), "broken")
}

type sliceSource [][]*models.Job

func (s sliceSource) ForEachBatch(ctx context.Context, _ int, fn func([]*models.Job) error) error {
	for _, batch := range s {
		if err := fn(batch); err != nil {
			return err
		}
	}
	return nil
}

func TestClient_Reindex(t *testing.T) {
	c, fake := newTestClient(t)

	src := sliceSource{
		{{ID: 1, Title: "A"}, {ID: 2, Title: "B"}},
		{{ID: 3, Title: "C"}},
	}
	// The fake answers _bulk with {"result":"created"}, which carries no
	// items, so only the request shape is checked here.
	_, _ = c.Reindex(context.Background(), src, 2)

	var paths []string
	for _, r := range fake.requests {
		paths = append(paths, r.Method+" "+r.Path)
	}
	assert.Contains(t, paths, "DELETE /jobs")
	assert.Contains(t, paths, "PUT /jobs")

	var bulk string
	for _, r := range fake.requests {
		if strings.HasSuffix(r.Path, "/_bulk") {
			bulk += r.Body
		}
	}
	assert.Contains(t, bulk, `"_id":"1"`)
	assert.Contains(t, bulk, `"_id":"3"`)
}

func TestClient_ReindexRejectsBatchSize(t *testing.T) {
	c, fake := newTestClient(t)
	before := len(fake.requests)

	for _, size := range []int{0, -1} {
		indexed, err := c.Reindex(context.Background(), sliceSource{{{ID: 1, Title: "A"}}}, size)
		assert.ErrorIs(t, err, ErrInvalidBatchSize)
		assert.Zero(t, indexed)
	}
	// The existing index must not have been dropped
	assert.Len(t, fake.requests, before)
}

func TestNopIndexer(t *testing.T) {
	var n NopIndexer
	assert.NoError(t, n.IndexJob(context.Background(), &models.Job{}))
	assert.NoError(t, n.DeleteJob(context.Background(), 1))
}

func TestClient_Ping(t *testing.T) {
	client, cluster := newTestClient(t)
	require.NoError(t, client.Ping(context.Background()))

	cluster.status = http.StatusInternalServerError
	assert.Error(t, client.Ping(context.Background()))
}
