package search

import (
	"strings"

	"github.com/yigit/jobsearch/internal/app/models"
)

// textFields are matched by free-text queries.
var textFields = []string{
	"job_title^2",
	"preferred_qualifications",
	"minimum_qualifications",
	"description",
	"job_type",
	"degree.name",
	"organization.name",
}

const (
	titleField        = "job_title"
	degreeField       = "degree.name"
	organizationField = "organization.name"
	locationPath      = "locations"
	locationField     = "locations.name"
	jobTypeField      = "job_type"
	suggestField      = "job_title.suggest"
	suggestName       = "job_title_suggest"
	suggestSize       = 10
)

type object = map[string]interface{}

func matchAll(field, value string) object {
	return object{"match": object{field: object{"query": value, "operator": "and"}}}
}

func nestedLocations(query object) object {
	return object{"nested": object{"path": locationPath, "query": query}}
}

// BuildSearchQuery renders q as an Elasticsearch request body.
func BuildSearchQuery(q models.JobSearchQuery) object {
	var must, filter []interface{}

	if text := strings.TrimSpace(q.Text); text != "" {
		must = append(must, object{"bool": object{
			"should": []interface{}{
				object{"multi_match": object{
					"query":     text,
					"fields":    textFields,
					"fuzziness": "AUTO",
				}},
				nestedLocations(object{"match": object{locationField: object{
					"query":     text,
					"fuzziness": "AUTO",
				}}}),
			},
			"minimum_should_match": 1,
		}})
	}

	for _, f := range []struct{ field, value string }{
		{titleField, q.Title},
		{degreeField, q.Degree},
		{organizationField, q.Organization},
		{jobTypeField, q.JobType},
	} {
		if v := strings.TrimSpace(f.value); v != "" {
			filter = append(filter, matchAll(f.field, v))
		}
	}

	var locations []interface{}
	for _, name := range q.Locations {
		if name = strings.TrimSpace(name); name != "" {
			locations = append(locations, matchAll(locationField, name))
		}
	}
	if len(locations) > 0 {
		filter = append(filter, nestedLocations(object{"bool": object{
			"should":               locations,
			"minimum_should_match": 1,
		}}))
	}

	query := object{"match_all": object{}}
	if len(must) > 0 || len(filter) > 0 {
		b := object{}
		if len(must) > 0 {
			b["must"] = must
		}
		if len(filter) > 0 {
			b["filter"] = filter
		}
		query = object{"bool": b}
	}

	return object{
		"query":            query,
		"from":             q.Page.Offset,
		"size":             q.Page.Limit,
		"track_total_hits": true,
		"sort":             []interface{}{"_score", object{"id": object{"order": "asc"}}},
	}
}

// BuildSuggestQuery renders a completion request for title prefixes.
func BuildSuggestQuery(prefix string, fuzzy bool) object {
	completion := object{
		"field":           suggestField,
		"skip_duplicates": true,
		"size":            suggestSize,
	}
	if fuzzy {
		completion["fuzzy"] = object{"fuzziness": "AUTO"}
	}

	return object{
		"_source": false,
		"suggest": object{
			suggestName: object{
				"prefix":     prefix,
				"completion": completion,
			},
		},
	}
}
