package search

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/jobsearch/internal/app/models"
)

// roundTrip renders v the way it is sent to the cluster.
func roundTrip(t *testing.T, v interface{}) map[string]interface{} {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestBuildSearchQuery_Empty(t *testing.T) {
	body := roundTrip(t, BuildSearchQuery(models.JobSearchQuery{Page: models.Page{Limit: 20}}))

	assert.Equal(t, map[string]interface{}{"match_all": map[string]interface{}{}}, body["query"])
	assert.EqualValues(t, 0, body["from"])
	assert.EqualValues(t, 20, body["size"])
}

func TestBuildSearchQuery_TextAndFilters(t *testing.T) {
	body := roundTrip(t, BuildSearchQuery(models.JobSearchQuery{
		Text:         " golang ",
		Organization: "Microsoft",
		Locations:    []string{"Seattle", " ", "Dublin"},
		JobType:      "Intern",
		Page:         models.Page{Offset: 40, Limit: 20},
	}))

	b := body["query"].(map[string]interface{})["bool"].(map[string]interface{})
	must := b["must"].([]interface{})
	require.Len(t, must, 1)
	should := must[0].(map[string]interface{})["bool"].(map[string]interface{})["should"].([]interface{})
	require.Len(t, should, 2)
	mm := should[0].(map[string]interface{})["multi_match"].(map[string]interface{})
	assert.Equal(t, "golang", mm["query"])
	assert.Equal(t, "AUTO", mm["fuzziness"])
	assert.Contains(t, mm["fields"], "job_title^2")
	assert.Equal(t, "locations", should[1].(map[string]interface{})["nested"].(map[string]interface{})["path"])

	filter := b["filter"].([]interface{})
	require.Len(t, filter, 3)
	org := filter[0].(map[string]interface{})["match"].(map[string]interface{})["organization.name"].(map[string]interface{})
	assert.Equal(t, "Microsoft", org["query"])
	jobType := filter[1].(map[string]interface{})["match"].(map[string]interface{})["job_type"].(map[string]interface{})
	assert.Equal(t, "Intern", jobType["query"])

	nested := filter[2].(map[string]interface{})["nested"].(map[string]interface{})
	locs := nested["query"].(map[string]interface{})["bool"].(map[string]interface{})["should"].([]interface{})
	assert.Len(t, locs, 2)
	assert.EqualValues(t, 40, body["from"])
}

func TestBuildSuggestQuery(t *testing.T) {
	plain := roundTrip(t, BuildSuggestQuery("dev", false))
	completion := plain["suggest"].(map[string]interface{})["job_title_suggest"].(map[string]interface{})["completion"].(map[string]interface{})
	assert.Equal(t, "job_title.suggest", completion["field"])
	assert.Equal(t, true, completion["skip_duplicates"])
	assert.NotContains(t, completion, "fuzzy")

	fuzzy := roundTrip(t, BuildSuggestQuery("dev", true))
	completion = fuzzy["suggest"].(map[string]interface{})["job_title_suggest"].(map[string]interface{})["completion"].(map[string]interface{})
	assert.Contains(t, completion, "fuzzy")
}

func TestJobDocument(t *testing.T) {
	job := &models.Job{
		ID:           3,
		Title:        "SRE",
		Organization: models.Organization{ID: 1, Name: "Microsoft"},
		Degree:       models.Degree{ID: 2, Name: "Bachelors"},
		Locations:    []models.Location{{ID: 4, Name: "Seattle"}},
		JobType:      models.JobTypeFullTime,
		DateAdded:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		DateUpdated:  time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
	}

	doc := NewJobDocument(job)
	assert.Equal(t, "2024-03-01", doc.DateAdded)
	assert.Equal(t, "3", DocumentID(job.ID))

	item := doc.Item()
	assert.Equal(t, "Microsoft", item.Organization)
	assert.Equal(t, "Bachelors", item.Degree)
	assert.Equal(t, []string{"Seattle"}, item.Locations)
	assert.Equal(t, "Full-time", item.JobType)

	partial := JobDocument{ID: 9, JobTitle: "Only title"}.Item()
	assert.Empty(t, partial.Organization)
	assert.Nil(t, partial.Locations)
}

func TestIndexMapping(t *testing.T) {
	m := roundTrip(t, IndexMapping())
	props := m["mappings"].(map[string]interface{})["properties"].(map[string]interface{})
	assert.Equal(t, "nested", props["locations"].(map[string]interface{})["type"])
	title := props["job_title"].(map[string]interface{})["fields"].(map[string]interface{})
	assert.Equal(t, "completion", title["suggest"].(map[string]interface{})["type"])
}
