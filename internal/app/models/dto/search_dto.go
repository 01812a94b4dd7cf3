package dto

// JobSearchItem is a job as served from the search index. Fields absent
// from the indexed document are omitted.
type JobSearchItem struct {
	ID                      int64    `json:"id" example:"12"`
	Title                   string   `json:"title,omitempty" example:"Backend Engineer"`
	Degree                  string   `json:"degree,omitempty" example:"Bachelor's"`
	Organization            string   `json:"organization,omitempty" example:"Microsoft"`
	Locations               []string `json:"locations,omitempty"`
	PreferredQualifications []string `json:"preferredQualifications,omitempty"`
	MinimumQualifications   []string `json:"minimumQualifications,omitempty"`
	Description             []string `json:"description,omitempty"`
	JobType                 string   `json:"jobType,omitempty" example:"Full-time"`
	DateAdded               string   `json:"dateAdded,omitempty" example:"2024-03-01"`
	DateUpdated             string   `json:"dateUpdated,omitempty" example:"2024-03-02"`
}

// SuggestResponse lists distinct completions for a title prefix.
type SuggestResponse struct {
	Suggestions []string `json:"suggestions"`
}
