package dto

import "github.com/yigit/jobsearch/internal/app/models"

// dateLayout renders job dates; they carry no time of day.
const dateLayout = "2006-01-02"

// CreateJobRequest references organization, degree and locations by name.
type CreateJobRequest struct {
	Title                   string         `json:"title" binding:"required,max=100" example:"Backend Engineer"`
	Organization            string         `json:"organization" binding:"required,max=255" example:"Microsoft"`
	Degree                  string         `json:"degree" binding:"required,max=30" example:"Bachelor's"`
	Locations               []string       `json:"locations" binding:"required,dive,required,max=255"`
	PreferredQualifications []string       `json:"preferredQualifications" binding:"required,dive,max=255"`
	MinimumQualifications   []string       `json:"minimumQualifications" binding:"required,dive,max=255"`
	Description             []string       `json:"description" binding:"required,dive,max=255"`
	JobType                 models.JobType `json:"jobType" binding:"required,jobtype" example:"Full-time"`
}

// UpdateJobRequest is shared by PUT and PATCH; nil fields are untouched on PATCH
// and rejected as missing on PUT.
type UpdateJobRequest struct {
	Title                   *string         `json:"title" binding:"omitempty,min=1,max=100"`
	Organization            *string         `json:"organization" binding:"omitempty,min=1,max=255"`
	Degree                  *string         `json:"degree" binding:"omitempty,min=1,max=30"`
	Locations               *[]string       `json:"locations" binding:"omitempty,dive,required,max=255"`
	PreferredQualifications *[]string       `json:"preferredQualifications" binding:"omitempty,dive,max=255"`
	MinimumQualifications   *[]string       `json:"minimumQualifications" binding:"omitempty,dive,max=255"`
	Description             *[]string       `json:"description" binding:"omitempty,dive,max=255"`
	JobType                 *models.JobType `json:"jobType" binding:"omitempty,jobtype"`
}

// MissingForFullUpdate lists the JSON names of fields a PUT must carry.
func (r *UpdateJobRequest) MissingForFullUpdate() []string {
	var missing []string
	if r.Title == nil {
		missing = append(missing, "title")
	}
	if r.Organization == nil {
		missing = append(missing, "organization")
	}
	if r.Degree == nil {
		missing = append(missing, "degree")
	}
	if r.Locations == nil {
		missing = append(missing, "locations")
	}
	if r.PreferredQualifications == nil {
		missing = append(missing, "preferredQualifications")
	}
	if r.MinimumQualifications == nil {
		missing = append(missing, "minimumQualifications")
	}
	if r.Description == nil {
		missing = append(missing, "description")
	}
	if r.JobType == nil {
		missing = append(missing, "jobType")
	}
	return missing
}

// JobListItem is the compact shape used by the job listing.
type JobListItem struct {
	ID                    int64          `json:"id" example:"12"`
	Title                 string         `json:"title" example:"Backend Engineer"`
	Degree                string         `json:"degree" example:"Bachelor's"`
	Organization          string         `json:"organization" example:"Microsoft"`
	Locations             []string       `json:"locations"`
	MinimumQualifications []string       `json:"minimumQualifications"`
	JobType               models.JobType `json:"jobType" example:"Full-time"`
	DateAdded             string         `json:"dateAdded" example:"2024-03-01"`
}

// JobDetail is the full job representation.
type JobDetail struct {
	ID                      int64          `json:"id" example:"12"`
	Title                   string         `json:"title" example:"Backend Engineer"`
	Degree                  string         `json:"degree" example:"Bachelor's"`
	Organization            string         `json:"organization" example:"Microsoft"`
	Locations               []string       `json:"locations"`
	PreferredQualifications []string       `json:"preferredQualifications"`
	MinimumQualifications   []string       `json:"minimumQualifications"`
	Description             []string       `json:"description"`
	JobType                 models.JobType `json:"jobType" example:"Full-time"`
	DateAdded               string         `json:"dateAdded" example:"2024-03-01"`
	DateUpdated             string         `json:"dateUpdated" example:"2024-03-02"`
}

// NewJobListItem maps a job model to its list shape.
func NewJobListItem(j *models.Job) JobListItem {
	return JobListItem{
		ID:                    j.ID,
		Title:                 j.Title,
		Degree:                j.Degree.Name,
		Organization:          j.Organization.Name,
		Locations:             j.LocationNames(),
		MinimumQualifications: nonNil(j.MinimumQualifications),
		JobType:               j.JobType,
		DateAdded:             j.DateAdded.Format(dateLayout),
	}
}

// NewJobDetail maps a job model to its detail shape.
func NewJobDetail(j *models.Job) *JobDetail {
	return &JobDetail{
		ID:                      j.ID,
		Title:                   j.Title,
		Degree:                  j.Degree.Name,
		Organization:            j.Organization.Name,
		Locations:               j.LocationNames(),
		PreferredQualifications: nonNil(j.PreferredQualifications),
		MinimumQualifications:   nonNil(j.MinimumQualifications),
		Description:             nonNil(j.Description),
		JobType:                 j.JobType,
		DateAdded:               j.DateAdded.Format(dateLayout),
		DateUpdated:             j.DateUpdated.Format(dateLayout),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
