package models

import "time"

// Organization is an employer; only its creator may modify it or post jobs under it.
type Organization struct {
	ID        int64  `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	CreatorID int64  `json:"creator" db:"creator_id"`
}

// Degree is the education level a job requires.
type Degree struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// Location is created on demand by job writes.
type Location struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// Spotlight is a promotional card shown on the landing page.
type Spotlight struct {
	ID          int64  `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	Img         string `json:"img" db:"img"`
	Description string `json:"description" db:"description"`
}

// JobType enumerates the employment types a job may have.
type JobType string

const (
	JobTypeFullTime  JobType = "Full-time"
	JobTypePartTime  JobType = "Part-time"
	JobTypeIntern    JobType = "Intern"
	JobTypeTemporary JobType = "Temporary"
)

// JobTypes lists the accepted job types in display order.
var JobTypes = []JobType{JobTypeFullTime, JobTypePartTime, JobTypeIntern, JobTypeTemporary}

// Valid reports whether t is one of the accepted job types.
func (t JobType) Valid() bool {
	for _, known := range JobTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Job is a posting. Organization and Degree are loaded with the row;
// Locations is the full associated set.
type Job struct {
	ID                      int64        `db:"id"`
	Title                   string       `db:"title"`
	Organization            Organization `db:"-"`
	Degree                  Degree       `db:"-"`
	Locations               []Location   `db:"-"`
	PreferredQualifications []string     `db:"preferred_qualifications"`
	MinimumQualifications   []string     `db:"minimum_qualifications"`
	Description             []string     `db:"description"`
	JobType                 JobType      `db:"job_type"`
	DateAdded               time.Time    `db:"date_added"`
	DateUpdated             time.Time    `db:"date_updated"`
}

// LocationNames returns the names of the job's locations in stored order.
func (j *Job) LocationNames() []string {
	names := make([]string, 0, len(j.Locations))
	for _, l := range j.Locations {
		names = append(names, l.Name)
	}
	return names
}

// JobFilter narrows a job listing. Empty fields do not filter.
type JobFilter struct {
	// Title matches case-insensitively anywhere in the title.
	Title string
	// Organization and Degree match the related name case-insensitively and exactly.
	Organization string
	Degree       string
	// LocationIDs keeps jobs associated with any of the given locations.
	LocationIDs []int64
	JobType     JobType
}

// Page is an offset/limit window over a listing.
type Page struct {
	Offset uint64
	Limit  int
}

// JobSearchQuery is a full-text query over the job index. Empty fields do
// not filter.
type JobSearchQuery struct {
	// Text is matched fuzzily across every indexed field.
	Text         string
	Title        string
	Degree       string
	Organization string
	// Locations keeps jobs with any location matching one of the names.
	Locations []string
	JobType   string
	Page      Page
}
