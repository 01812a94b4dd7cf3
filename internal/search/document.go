package search

import (
	"strconv"

	"github.com/yigit/jobsearch/internal/app/models"
	"github.com/yigit/jobsearch/internal/app/models/dto"
)

const dateLayout = "2006-01-02"

// NamedRef is an {id, name} pair embedded in a job document.
type NamedRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// JobDocument is the denormalized job stored in the index.
type JobDocument struct {
	ID                      int64      `json:"id"`
	JobTitle                string     `json:"job_title,omitempty"`
	Degree                  *NamedRef  `json:"degree,omitempty"`
	Organization            *NamedRef  `json:"organization,omitempty"`
	Locations               []NamedRef `json:"locations,omitempty"`
	PreferredQualifications []string   `json:"preferred_qualifications,omitempty"`
	MinimumQualifications   []string   `json:"minimum_qualifications,omitempty"`
	Description             []string   `json:"description,omitempty"`
	JobType                 string     `json:"job_type,omitempty"`
	DateAdded               string     `json:"date_added,omitempty"`
	DateUpdated             string     `json:"date_updated,omitempty"`
}

// NewJobDocument projects a job with its relations into a document.
func NewJobDocument(job *models.Job) JobDocument {
	locations := make([]NamedRef, 0, len(job.Locations))
	for _, l := range job.Locations {
		locations = append(locations, NamedRef{ID: l.ID, Name: l.Name})
	}

	return JobDocument{
		ID:                      job.ID,
		JobTitle:                job.Title,
		Degree:                  &NamedRef{ID: job.Degree.ID, Name: job.Degree.Name},
		Organization:            &NamedRef{ID: job.Organization.ID, Name: job.Organization.Name},
		Locations:               locations,
		PreferredQualifications: job.PreferredQualifications,
		MinimumQualifications:   job.MinimumQualifications,
		Description:             job.Description,
		JobType:                 string(job.JobType),
		DateAdded:               job.DateAdded.Format(dateLayout),
		DateUpdated:             job.DateUpdated.Format(dateLayout),
	}
}

// DocumentID is the index document id of a job.
func DocumentID(jobID int64) string {
	return strconv.FormatInt(jobID, 10)
}

// Item converts the document into the API shape. Absent relations leave
// their fields empty so they are omitted from JSON.
func (d JobDocument) Item() dto.JobSearchItem {
	item := dto.JobSearchItem{
		ID:                      d.ID,
		Title:                   d.JobTitle,
		PreferredQualifications: d.PreferredQualifications,
		MinimumQualifications:   d.MinimumQualifications,
		Description:             d.Description,
		JobType:                 d.JobType,
		DateAdded:               d.DateAdded,
		DateUpdated:             d.DateUpdated,
	}
	if d.Degree != nil {
		item.Degree = d.Degree.Name
	}
	if d.Organization != nil {
		item.Organization = d.Organization.Name
	}
	for _, l := range d.Locations {
		item.Locations = append(item.Locations, l.Name)
	}
	return item
}
