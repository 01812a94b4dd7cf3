package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/jobsearch/internal/app/models"
)

// memStore is an in-memory stand-in for the four repositories.
type memStore struct {
	degrees    map[string]*models.Degree
	orgs       map[string]*models.Organization
	spotlights []models.Spotlight
	jobs       map[int64]*models.Job
	nextID     int64
	indexed    []int64
}

func newMemStore() *memStore {
	return &memStore{
		degrees: map[string]*models.Degree{},
		orgs:    map[string]*models.Organization{},
		jobs:    map[int64]*models.Job{},
	}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) GetOrCreateDegree(_ context.Context, name string) (*models.Degree, bool, error) {
	if d, ok := m.degrees[name]; ok {
		return d, false, nil
	}
	d := &models.Degree{ID: m.id(), Name: name}
	m.degrees[name] = d
	return d, true, nil
}

type degreeAdapter struct{ *memStore }

func (a degreeAdapter) GetOrCreate(ctx context.Context, name string) (*models.Degree, bool, error) {
	return a.GetOrCreateDegree(ctx, name)
}

type orgAdapter struct{ *memStore }

func (a orgAdapter) GetOrCreate(_ context.Context, name string, creatorID int64) (*models.Organization, bool, error) {
	if o, ok := a.orgs[name]; ok {
		return o, false, nil
	}
	o := &models.Organization{ID: a.id(), Name: name, CreatorID: creatorID}
	a.orgs[name] = o
	return o, true, nil
}

type spotlightAdapter struct{ *memStore }

func (a spotlightAdapter) GetOrCreate(_ context.Context, s *models.Spotlight) (bool, error) {
	for _, existing := range a.spotlights {
		if existing.Title == s.Title && existing.Img == s.Img && existing.Description == s.Description {
			return false, nil
		}
	}
	s.ID = a.id()
	a.spotlights = append(a.spotlights, *s)
	return true, nil
}

func (m *memStore) FindID(_ context.Context, title string, orgID, degreeID int64, jobType models.JobType) (int64, bool, error) {
	for id, j := range m.jobs {
		if j.Title == title && j.Organization.ID == orgID && j.Degree.ID == degreeID && j.JobType == jobType {
			return id, true, nil
		}
	}
	return 0, false, nil
}

func (m *memStore) link(job *models.Job, names []string) {
	for _, n := range names {
		seen := false
		for _, l := range job.Locations {
			if l.Name == n {
				seen = true
			}
		}
		if !seen {
			job.Locations = append(job.Locations, models.Location{ID: m.id(), Name: n})
		}
	}
}

func (m *memStore) Create(_ context.Context, job *models.Job, names []string) error {
	job.ID = m.id()
	m.link(job, names)
	m.jobs[job.ID] = job
	return nil
}

func (m *memStore) AddLocations(_ context.Context, id int64, names []string) error {
	m.link(m.jobs[id], names)
	return nil
}

func (m *memStore) GetByID(_ context.Context, id int64) (*models.Job, error) {
	return m.jobs[id], nil
}

func (m *memStore) IndexJob(_ context.Context, job *models.Job) error {
	m.indexed = append(m.indexed, job.ID)
	return nil
}

const fixtureJSON = `{
  "degrees": [{"degree": "Bachelors"}, {"degree": "Masters"}, {"degree": ""}],
  "spotlights": [{"title": "Hiring", "img": "https://example.com/a.png", "description": "Now"}],
  "jobs": [
    {"title": "SRE", "organization": "Microsoft", "degree": "Bachelors", "jobType": "Full-time",
     "minimumQualifications": ["Linux"], "preferredQualifications": [], "description": ["Keep it up"],
     "locations": ["Seattle", "Dublin"]},
    {"title": "Intern", "organization": "Microsoft", "degree": "PhD", "jobType": "Intern",
     "minimumQualifications": [], "preferredQualifications": [], "description": [], "locations": ["Seattle"]},
    {"title": "Broken", "organization": "Acme", "degree": "Bachelors", "jobType": "Seasonal", "locations": []}
  ]
}`

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte(fixtureJSON), 0o600))
	return path
}

func TestLoader_LoadIsIdempotent(t *testing.T) {
	f, err := ReadFixture(writeFixture(t))
	require.NoError(t, err)

	store := newMemStore()
	loader := NewLoader(degreeAdapter{store}, orgAdapter{store}, spotlightAdapter{store}, store, store, 1, zerolog.Nop())
	ctx := context.Background()

	stats, err := loader.Load(ctx, f)
	require.Error(t, err, "the job with an unknown type is reported")
	assert.Contains(t, err.Error(), "Seasonal")
	assert.Equal(t, 3, stats.Degrees, "Bachelors, Masters and PhD from a job")
	assert.Equal(t, 1, stats.Spotlights)
	assert.Equal(t, 1, stats.Organizations)
	assert.Equal(t, 2, stats.Jobs)
	assert.Len(t, store.indexed, 2)

	org := store.orgs["Microsoft"]
	assert.Equal(t, int64(1), org.CreatorID)

	sreID, found, _ := store.FindID(ctx, "SRE", org.ID, store.degrees["Bachelors"].ID, models.JobTypeFullTime)
	require.True(t, found)
	assert.Len(t, store.jobs[sreID].Locations, 2)

	again, _ := loader.Load(ctx, f)
	assert.Equal(t, Stats{JobsExisting: 2}, again)
	assert.Len(t, store.jobs, 2)
	assert.Len(t, store.jobs[sreID].Locations, 2)
}

func TestReadFixture_Errors(t *testing.T) {
	_, err := ReadFixture(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))
	_, err = ReadFixture(path)
	assert.Error(t, err)
}
