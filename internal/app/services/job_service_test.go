package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/jobsearch/internal/app/auth"
	"github.com/yigit/jobsearch/internal/app/models"
	"github.com/yigit/jobsearch/internal/app/models/dto"
	"github.com/yigit/jobsearch/internal/mocks"
	"github.com/yigit/jobsearch/internal/pkg/apperrors"
	"go.uber.org/mock/gomock"
)

type jobServiceDeps struct {
	jobs    *mocks.MockJobStore
	orgs    *mocks.MockOrganizationStore
	degrees *mocks.MockDegreeStore
	indexer *mocks.MockJobIndexer
	svc     JobService
}

func newJobServiceDeps(t *testing.T) jobServiceDeps {
	ctrl := gomock.NewController(t)
	d := jobServiceDeps{
		jobs:    mocks.NewMockJobStore(ctrl),
		orgs:    mocks.NewMockOrganizationStore(ctrl),
		degrees: mocks.NewMockDegreeStore(ctrl),
		indexer: mocks.NewMockJobIndexer(ctrl),
	}
	d.svc = NewJobService(d.jobs, d.orgs, d.degrees, d.indexer, auth.NewAuthorizationService(), zerolog.Nop())
	return d
}

var (
	alice     = &models.User{ID: 1, Email: "alice@example.com", IsActive: true}
	bob       = &models.User{ID: 2, Email: "bob@example.com", IsActive: true}
	microsoft = &models.Organization{ID: 10, Name: "Microsoft", CreatorID: alice.ID}
	bachelors = &models.Degree{ID: 20, Name: "Bachelors"}
)

func createJobRequest() *dto.CreateJobRequest {
	return &dto.CreateJobRequest{
		Title:                   "Software Engineer",
		Organization:            "Microsoft",
		Degree:                  "Bachelors",
		Locations:               []string{"Redmond, WA", " Austin, TX "},
		PreferredQualifications: []string{"Go"},
		MinimumQualifications:   []string{"BS in CS"},
		Description:             []string{"Build things"},
		JobType:                 models.JobTypeFullTime,
	}
}

func TestCreateJob_ByOrganizationCreator(t *testing.T) {
	d := newJobServiceDeps(t)
	ctx := context.Background()

	d.orgs.EXPECT().GetByName(ctx, "Microsoft").Return(microsoft, nil)
	d.degrees.EXPECT().GetByName(ctx, "Bachelors").Return(bachelors, nil)
	d.jobs.EXPECT().Create(ctx, gomock.Any(), []string{"Redmond, WA", "Austin, TX"}).
		DoAndReturn(func(_ context.Context, job *models.Job, _ []string) error {
			job.ID = 99
			return nil
		})
	d.indexer.EXPECT().IndexJob(ctx, gomock.Any()).Return(nil)

	job, err := d.svc.CreateJob(ctx, alice, createJobRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(99), job.ID)
	assert.Equal(t, microsoft.ID, job.Organization.ID)
	assert.Equal(t, bachelors.ID, job.Degree.ID)
}

func TestCreateJob_ForeignOrganizationIsForbidden(t *testing.T) {
	d := newJobServiceDeps(t)
	ctx := context.Background()

	d.orgs.EXPECT().GetByName(ctx, "Microsoft").Return(microsoft, nil)

	_, err := d.svc.CreateJob(ctx, bob, createJobRequest())
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestCreateJob_Anonymous(t *testing.T) {
	d := newJobServiceDeps(t)
	_, err := d.svc.CreateJob(context.Background(), nil, createJobRequest())
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestCreateJob_MissingOrganization(t *testing.T) {
	d := newJobServiceDeps(t)
	ctx := context.Background()

	d.orgs.EXPECT().GetByName(ctx, "Microsoft").Return(nil, apperrors.NewResourceNotFoundError("Organization not found."))

	_, err := d.svc.CreateJob(ctx, alice, createJobRequest())
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, "organization", apperrors.FieldOf(err))
	assert.Contains(t, err.Error(), "Microsoft")
}

func TestCreateJob_MissingDegree(t *testing.T) {
	d := newJobServiceDeps(t)
	ctx := context.Background()

	d.orgs.EXPECT().GetByName(ctx, "Microsoft").Return(microsoft, nil)
	d.degrees.EXPECT().GetByName(ctx, "Bachelors").Return(nil, apperrors.NewResourceNotFoundError("Degree not found."))

	_, err := d.svc.CreateJob(ctx, alice, createJobRequest())
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, "degree", apperrors.FieldOf(err))
	assert.Contains(t, err.Error(), "Bachelors")
}

func TestCreateJob_IndexFailureDoesNotFailRequest(t *testing.T) {
	d := newJobServiceDeps(t)
	ctx := context.Background()

	d.orgs.EXPECT().GetByName(ctx, gomock.Any()).Return(microsoft, nil)
	d.degrees.EXPECT().GetByName(ctx, gomock.Any()).Return(bachelors, nil)
	d.jobs.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(nil)
	d.indexer.EXPECT().IndexJob(ctx, gomock.Any()).Return(errors.New("connection refused"))

	_, err := d.svc.CreateJob(ctx, alice, createJobRequest())
	assert.NoError(t, err)
}

func storedJob() *models.Job {
	return &models.Job{
		ID:           5,
		Title:        "Software Engineer",
		Organization: *microsoft,
		Degree:       *bachelors,
		Locations:    []models.Location{{ID: 1, Name: "Redmond, WA"}},
		JobType:      models.JobTypeFullTime,
	}
}

func TestUpdateJob_PartialReplacesLocations(t *testing.T) {
	d := newJobServiceDeps(t)
	ctx := context.Background()
	locations := []string{"Zurich"}

	d.jobs.EXPECT().GetByID(ctx, int64(5)).Return(storedJob(), nil)
	d.jobs.EXPECT().Update(ctx, gomock.Any(), []string{"Zurich"}).Return(nil)
	d.indexer.EXPECT().IndexJob(ctx, gomock.Any()).Return(nil)

	_, err := d.svc.UpdateJob(ctx, alice, 5, &dto.UpdateJobRequest{Locations: &locations}, true)
	require.NoError(t, err)
}

func TestUpdateJob_PartialWithoutLocationsKeepsThem(t *testing.T) {
	d := newJobServiceDeps(t)
	ctx := context.Background()
	title := "Staff Engineer"

	d.jobs.EXPECT().GetByID(ctx, int64(5)).Return(storedJob(), nil)
	d.jobs.EXPECT().Update(ctx, gomock.Any(), nil).
		DoAndReturn(func(_ context.Context, job *models.Job, _ []string) error {
			assert.Equal(t, "Staff Engineer", job.Title)
			return nil
		})
	d.indexer.EXPECT().IndexJob(ctx, gomock.Any()).Return(nil)

	_, err := d.svc.UpdateJob(ctx, alice, 5, &dto.UpdateJobRequest{Title: &title}, true)
	require.NoError(t, err)
}

func TestUpdateJob_FullUpdateRequiresEveryField(t *testing.T) {
	d := newJobServiceDeps(t)
	ctx := context.Background()
	title := "Staff Engineer"

	d.jobs.EXPECT().GetByID(ctx, int64(5)).Return(storedJob(), nil)

	_, err := d.svc.UpdateJob(ctx, alice, 5, &dto.UpdateJobRequest{Title: &title}, false)
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, "organization", apperrors.FieldOf(err))
}

func TestUpdateJob_NonCreatorIsForbidden(t *testing.T) {
	d := newJobServiceDeps(t)
	ctx := context.Background()

	d.jobs.EXPECT().GetByID(ctx, int64(5)).Return(storedJob(), nil)

	_, err := d.svc.UpdateJob(ctx, bob, 5, &dto.UpdateJobRequest{}, true)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestUpdateJob_MoveToForeignOrganizationIsForbidden(t *testing.T) {
	d := newJobServiceDeps(t)
	ctx := context.Background()
	other := "Contoso"

	d.jobs.EXPECT().GetByID(ctx, int64(5)).Return(storedJob(), nil)
	d.orgs.EXPECT().GetByName(ctx, "Contoso").Return(&models.Organization{ID: 11, Name: "Contoso", CreatorID: bob.ID}, nil)

	_, err := d.svc.UpdateJob(ctx, alice, 5, &dto.UpdateJobRequest{Organization: &other}, true)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestUpdateJob_NotFound(t *testing.T) {
	d := newJobServiceDeps(t)
	ctx := context.Background()

	d.jobs.EXPECT().GetByID(ctx, int64(404)).Return(nil, apperrors.NewResourceNotFoundError("Job not found."))

	_, err := d.svc.UpdateJob(ctx, bob, 404, &dto.UpdateJobRequest{}, true)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestDeleteJob(t *testing.T) {
	d := newJobServiceDeps(t)
	ctx := context.Background()

	d.jobs.EXPECT().GetByID(ctx, int64(5)).Return(storedJob(), nil).Times(2)
	d.jobs.EXPECT().Delete(ctx, int64(5)).Return(nil)
	d.indexer.EXPECT().DeleteJob(ctx, int64(5)).Return(nil)

	assert.ErrorIs(t, d.svc.DeleteJob(ctx, bob, 5), apperrors.ErrPermissionDenied)
	assert.NoError(t, d.svc.DeleteJob(ctx, alice, 5))
}
