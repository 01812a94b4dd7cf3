package repositories

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/jobsearch/internal/app/models"
	"github.com/yigit/jobsearch/internal/pkg/apperrors"
	"github.com/yigit/jobsearch/internal/testutil"
)

func TestApplyJobFilter_BuildsClauses(t *testing.T) {
	q := applyJobFilter(psql.Select("COUNT(*)").From(jobJoins), models.JobFilter{
		Title:        "50%_off",
		Organization: "microsoft",
		Degree:       "bachelors",
		LocationIDs:  []int64{3, 7},
		JobType:      models.JobTypeIntern,
	})

	sql, args, err := q.ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "j.title ILIKE $1")
	assert.Contains(t, sql, "UPPER(o.name) = UPPER($2)")
	assert.Contains(t, sql, "UPPER(d.name) = UPPER($3)")
	assert.Contains(t, sql, "jl.location_id = ANY($4)")
	assert.Contains(t, sql, "j.job_type = $5")
	assert.Equal(t, []interface{}{`%50\%\_off%`, "microsoft", "bachelors", []int64{3, 7}, "Intern"}, args)
}

func TestApplyJobFilter_EmptyFilter(t *testing.T) {
	sql, args, err := applyJobFilter(psql.Select("COUNT(*)").From(jobJoins), models.JobFilter{}).ToSql()
	require.NoError(t, err)
	assert.NotContains(t, sql, "WHERE")
	assert.Empty(t, args)
}

func TestUniqueNames(t *testing.T) {
	assert.Equal(t, []string{"Zurich", "Austin, TX"}, uniqueNames([]string{"Zurich", "Austin, TX", "Zurich"}))
	assert.Empty(t, uniqueNames(nil))
}

func TestReferenceError(t *testing.T) {
	job := &models.Job{Organization: models.Organization{Name: "Microsoft"}, Degree: models.Degree{Name: "PhD"}}

	orgErr := referenceError(fmt.Errorf("insert: %w", &pgconn.PgError{
		Code: pgerrcode.ForeignKeyViolation, ConstraintName: "jobs_organization_id_fkey",
	}), job)
	require.ErrorIs(t, orgErr, apperrors.ErrValidationFailed)
	assert.Equal(t, "organization", apperrors.FieldOf(orgErr))
	assert.Equal(t, `Organization "Microsoft" does not exist.`, orgErr.Error())

	degErr := referenceError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "jobs_degree_id_fkey"}, job)
	assert.Equal(t, "degree", apperrors.FieldOf(degErr))

	assert.NoError(t, referenceError(errors.New("connection reset"), job))
	assert.NoError(t, referenceError(&pgconn.PgError{Code: pgerrcode.UniqueViolation}, job))
}

type jobFixture struct {
	repos *Repositories
	org   *models.Organization
	deg   *models.Degree
}

func setupJobFixture(t *testing.T) jobFixture {
	t.Helper()
	database := testutil.SetupTestDB(t)
	repos := NewRepositories(database)
	ctx := context.Background()

	user := &models.User{Email: "owner@example.com", Password: "x", IsActive: true}
	require.NoError(t, repos.UserRepository.Create(ctx, user))

	org := &models.Organization{Name: "Microsoft", CreatorID: user.ID}
	require.NoError(t, repos.OrganizationRepository.Create(ctx, org))

	deg := &models.Degree{Name: "Bachelors"}
	require.NoError(t, repos.DegreeRepository.Create(ctx, deg))

	return jobFixture{repos: repos, org: org, deg: deg}
}

func TestJobRepository_CreateGetUpdateDelete(t *testing.T) {
	f := setupJobFixture(t)
	ctx := context.Background()
	jobs := f.repos.JobRepository

	job := &models.Job{
		Title:        "Software Engineer",
		Organization: *f.org,
		Degree:       *f.deg,
		Description:  []string{"Write code"},
		JobType:      models.JobTypeFullTime,
	}
	require.NoError(t, jobs.Create(ctx, job, []string{"Redmond, WA", "Austin, TX", "Redmond, WA"}))
	require.NotZero(t, job.ID)
	assert.Equal(t, []string{"Redmond, WA", "Austin, TX"}, job.LocationNames())
	assert.False(t, job.DateAdded.IsZero())

	got, err := jobs.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, "Microsoft", got.Organization.Name)
	assert.Empty(t, got.PreferredQualifications)
	assert.Len(t, got.Locations, 2)

	got.Title = "Senior Software Engineer"
	require.NoError(t, jobs.Update(ctx, got, nil))
	assert.Len(t, got.Locations, 2)

	require.NoError(t, jobs.Update(ctx, got, []string{"Zurich"}))
	assert.Equal(t, []string{"Zurich"}, got.LocationNames())

	locs, total, err := f.repos.LocationRepository.List(ctx, models.Page{Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, locs, 3)

	require.NoError(t, jobs.Delete(ctx, got.ID))
	_, err = jobs.GetByID(ctx, got.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestJobRepository_ListFilters(t *testing.T) {
	f := setupJobFixture(t)
	ctx := context.Background()
	jobs := f.repos.JobRepository

	for _, title := range []string{"Data Scientist", "Software Engineer Intern", "Program Manager"} {
		jt := models.JobTypeFullTime
		if title == "Software Engineer Intern" {
			jt = models.JobTypeIntern
		}
		require.NoError(t, jobs.Create(ctx, &models.Job{
			Title: title, Organization: *f.org, Degree: *f.deg, JobType: jt,
		}, []string{"Seattle, WA"}))
	}

	list, total, err := jobs.List(ctx, models.JobFilter{Title: "engineer"}, models.Page{Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, list, 1)
	assert.Equal(t, "Software Engineer Intern", list[0].Title)

	_, total, err = jobs.List(ctx, models.JobFilter{Organization: "MICROSOFT", JobType: models.JobTypeFullTime}, models.Page{Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	page, total, err := jobs.List(ctx, models.JobFilter{}, models.Page{Offset: 2, Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, page, 1)

	var seen int
	require.NoError(t, jobs.ForEachBatch(ctx, 2, func(batch []*models.Job) error {
		seen += len(batch)
		return nil
	}))
	assert.Equal(t, 3, seen)
}

func TestOrganizationRepository_DuplicateName(t *testing.T) {
	f := setupJobFixture(t)
	err := f.repos.OrganizationRepository.Create(context.Background(), &models.Organization{Name: "Microsoft", CreatorID: f.org.CreatorID})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, "name", apperrors.FieldOf(err))

	org, created, err := f.repos.OrganizationRepository.GetOrCreate(context.Background(), "Microsoft", 999)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, f.org.ID, org.ID)
}

func TestTokenRepository_Rotate(t *testing.T) {
	f := setupJobFixture(t)
	ctx := context.Background()
	tokens := f.repos.TokenRepository
	expires := time.Now().Add(time.Hour)

	require.NoError(t, tokens.CreateToken(ctx, "old", f.org.CreatorID, expires))
	require.NoError(t, tokens.RotateToken(ctx, "old", "new", f.org.CreatorID, expires))

	_, err := tokens.GetUserIDByToken(ctx, "old")
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)

	userID, err := tokens.GetUserIDByToken(ctx, "new")
	require.NoError(t, err)
	assert.Equal(t, f.org.CreatorID, userID)

	err = tokens.RotateToken(ctx, "old", "newer", f.org.CreatorID, expires)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)
}

func TestOrganizationRepository_DeleteReturnsCascadedJobs(t *testing.T) {
	f := setupJobFixture(t)
	ctx := context.Background()
	jobs := f.repos.JobRepository

	var ids []int64
	for _, title := range []string{"Data Scientist", "Program Manager"} {
		job := &models.Job{Title: title, Organization: *f.org, Degree: *f.deg, JobType: models.JobTypeFullTime}
		require.NoError(t, jobs.Create(ctx, job, nil))
		ids = append(ids, job.ID)
	}

	removed, err := f.repos.OrganizationRepository.Delete(ctx, f.org.ID)
	require.NoError(t, err)
	assert.Equal(t, ids, removed)

	_, err = jobs.GetByID(ctx, ids[0])
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	_, err = f.repos.OrganizationRepository.Delete(ctx, f.org.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	// The degree survives with no jobs left to cascade
	removed, err = f.repos.DegreeRepository.Delete(ctx, f.deg.ID)
	require.NoError(t, err)
	assert.Empty(t, removed)
}

func TestJobRepository_CreateWithDeletedDegree(t *testing.T) {
	f := setupJobFixture(t)
	ctx := context.Background()

	_, err := f.repos.DegreeRepository.Delete(ctx, f.deg.ID)
	require.NoError(t, err)

	err = f.repos.JobRepository.Create(ctx, &models.Job{
		Title: "SRE", Organization: *f.org, Degree: *f.deg, JobType: models.JobTypeFullTime,
	}, nil)
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, "degree", apperrors.FieldOf(err))
}
