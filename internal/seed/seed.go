// Package seed loads fixture data into the database.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/jobsearch/internal/app/models"
)

// Fixture is the db.json document.
type Fixture struct {
	Degrees []struct {
		Degree string `json:"degree"`
	} `json:"degrees"`
	Spotlights []struct {
		Title       string `json:"title"`
		Img         string `json:"img"`
		Description string `json:"description"`
	} `json:"spotlights"`
	Jobs []FixtureJob `json:"jobs"`
}

// FixtureJob references its organization, degree and locations by name.
type FixtureJob struct {
	Title                   string   `json:"title"`
	Organization            string   `json:"organization"`
	Degree                  string   `json:"degree"`
	JobType                 string   `json:"jobType"`
	MinimumQualifications   []string `json:"minimumQualifications"`
	PreferredQualifications []string `json:"preferredQualifications"`
	Description             []string `json:"description"`
	Locations               []string `json:"locations"`
}

// ReadFixture parses a fixture file.
func ReadFixture(path string) (*Fixture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}
	var f Fixture
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// DegreeStore get-or-creates degrees by name.
type DegreeStore interface {
	GetOrCreate(ctx context.Context, name string) (*models.Degree, bool, error)
}

// OrganizationStore get-or-creates organizations by name.
type OrganizationStore interface {
	GetOrCreate(ctx context.Context, name string, creatorID int64) (*models.Organization, bool, error)
}

// SpotlightStore get-or-creates spotlights by content.
type SpotlightStore interface {
	GetOrCreate(ctx context.Context, s *models.Spotlight) (bool, error)
}

// JobStore finds, creates and extends jobs.
type JobStore interface {
	FindID(ctx context.Context, title string, organizationID, degreeID int64, jobType models.JobType) (int64, bool, error)
	Create(ctx context.Context, job *models.Job, locationNames []string) error
	AddLocations(ctx context.Context, jobID int64, locationNames []string) error
	GetByID(ctx context.Context, id int64) (*models.Job, error)
}

// JobIndexer receives every loaded job.
type JobIndexer interface {
	IndexJob(ctx context.Context, job *models.Job) error
}

// Stats counts what a load created.
type Stats struct {
	Degrees       int
	Spotlights    int
	Organizations int
	Jobs          int
	JobsExisting  int
}

// Loader writes a fixture through the repositories.
type Loader struct {
	degrees       DegreeStore
	organizations OrganizationStore
	spotlights    SpotlightStore
	jobs          JobStore
	indexer       JobIndexer
	creatorID     int64
	logger        zerolog.Logger
}

// NewLoader creates a Loader. Organizations it creates are owned by creatorID.
func NewLoader(
	degrees DegreeStore,
	organizations OrganizationStore,
	spotlights SpotlightStore,
	jobs JobStore,
	indexer JobIndexer,
	creatorID int64,
	logger zerolog.Logger,
) *Loader {
	return &Loader{
		degrees:       degrees,
		organizations: organizations,
		spotlights:    spotlights,
		jobs:          jobs,
		indexer:       indexer,
		creatorID:     creatorID,
		logger:        logger,
	}
}

// Load get-or-creates every record in f, so running it twice changes nothing.
// Jobs that fail are logged and skipped; their errors are joined into the result.
func (l *Loader) Load(ctx context.Context, f *Fixture) (Stats, error) {
	var stats Stats

	for _, d := range f.Degrees {
		name := strings.TrimSpace(d.Degree)
		if name == "" {
			continue
		}
		_, created, err := l.degrees.GetOrCreate(ctx, name)
		if err != nil {
			return stats, fmt.Errorf("degree %q: %w", name, err)
		}
		if created {
			stats.Degrees++
		}
	}

	for _, s := range f.Spotlights {
		created, err := l.spotlights.GetOrCreate(ctx, &models.Spotlight{
			Title:       s.Title,
			Img:         s.Img,
			Description: s.Description,
		})
		if err != nil {
			return stats, fmt.Errorf("spotlight %q: %w", s.Title, err)
		}
		if created {
			stats.Spotlights++
		}
	}

	var jobErrs error
	for i := range f.Jobs {
		if err := l.loadJob(ctx, &f.Jobs[i], &stats); err != nil {
			l.logger.Error().Err(err).Str("title", f.Jobs[i].Title).Msg("Failed to load job")
			jobErrs = errors.Join(jobErrs, fmt.Errorf("job %q: %w", f.Jobs[i].Title, err))
		}
	}

	l.logger.Info().
		Int("degrees", stats.Degrees).
		Int("spotlights", stats.Spotlights).
		Int("organizations", stats.Organizations).
		Int("jobs", stats.Jobs).
		Int("jobsExisting", stats.JobsExisting).
		Msg("Fixture loaded")
	return stats, jobErrs
}

func (l *Loader) loadJob(ctx context.Context, fj *FixtureJob, stats *Stats) error {
	jobType := models.JobType(fj.JobType)
	if !jobType.Valid() {
		return fmt.Errorf("unknown job type %q", fj.JobType)
	}

	degree, created, err := l.degrees.GetOrCreate(ctx, strings.TrimSpace(fj.Degree))
	if err != nil {
		return err
	}
	if created {
		stats.Degrees++
	}

	org, created, err := l.organizations.GetOrCreate(ctx, strings.TrimSpace(fj.Organization), l.creatorID)
	if err != nil {
		return err
	}
	if created {
		stats.Organizations++
	}

	id, found, err := l.jobs.FindID(ctx, fj.Title, org.ID, degree.ID, jobType)
	if err != nil {
		return err
	}

	if found {
		stats.JobsExisting++
		if err := l.jobs.AddLocations(ctx, id, fj.Locations); err != nil {
			return err
		}
	} else {
		job := &models.Job{
			Title:                   fj.Title,
			Organization:            *org,
			Degree:                  *degree,
			JobType:                 jobType,
			MinimumQualifications:   fj.MinimumQualifications,
			PreferredQualifications: fj.PreferredQualifications,
			Description:             fj.Description,
		}
		if err := l.jobs.Create(ctx, job, fj.Locations); err != nil {
			return err
		}
		id = job.ID
		stats.Jobs++
	}

	if l.indexer == nil {
		return nil
	}
	job, err := l.jobs.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := l.indexer.IndexJob(ctx, job); err != nil {
		l.logger.Warn().Err(err).Int64("jobID", id).Msg("Failed to index loaded job")
	}
	return nil
}
