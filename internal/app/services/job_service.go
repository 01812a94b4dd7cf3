package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/jobsearch/internal/app/auth"
	"github.com/yigit/jobsearch/internal/app/models"
	"github.com/yigit/jobsearch/internal/app/models/dto"
	"github.com/yigit/jobsearch/internal/pkg/apperrors"
)

// JobService defines job operations. Organization and degree are referenced
// by name on writes; locations are created on demand.
type JobService interface {
	ListJobs(ctx context.Context, filter models.JobFilter, page models.Page) ([]*models.Job, int64, error)
	GetJobByID(ctx context.Context, id int64) (*models.Job, error)
	CreateJob(ctx context.Context, actor *models.User, req *dto.CreateJobRequest) (*models.Job, error)
	UpdateJob(ctx context.Context, actor *models.User, id int64, req *dto.UpdateJobRequest, partial bool) (*models.Job, error)
	DeleteJob(ctx context.Context, actor *models.User, id int64) error
}

// jobServiceImpl implements JobService
type jobServiceImpl struct {
	jobRepo    JobStore
	orgRepo    OrganizationStore
	degreeRepo DegreeStore
	indexer    JobIndexer
	authz      *auth.AuthorizationService
	logger     zerolog.Logger
}

// NewJobService creates a new JobService. indexer receives every committed
// write; use a no-op indexer when search is disabled.
func NewJobService(
	jobRepo JobStore,
	orgRepo OrganizationStore,
	degreeRepo DegreeStore,
	indexer JobIndexer,
	authz *auth.AuthorizationService,
	logger zerolog.Logger,
) JobService {
	return &jobServiceImpl{
		jobRepo:    jobRepo,
		orgRepo:    orgRepo,
		degreeRepo: degreeRepo,
		indexer:    indexer,
		authz:      authz,
		logger:     logger,
	}
}

// ListJobs returns one filtered page of jobs ordered by id
func (s *jobServiceImpl) ListJobs(ctx context.Context, filter models.JobFilter, page models.Page) ([]*models.Job, int64, error) {
	return s.jobRepo.List(ctx, filter, page)
}

// GetJobByID retrieves a job with its organization, degree and locations
func (s *jobServiceImpl) GetJobByID(ctx context.Context, id int64) (*models.Job, error) {
	return s.jobRepo.GetByID(ctx, id)
}

// resolveOrganization finds the named organization and checks that actor
// created it.
func (s *jobServiceImpl) resolveOrganization(ctx context.Context, actor *models.User, name string) (*models.Organization, error) {
	org, err := s.orgRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.NewValidationError("organization",
				fmt.Sprintf("Organization %q does not exist.", name))
		}
		return nil, err
	}
	if err := s.authz.ValidateOrganizationOwnership(actor, org); err != nil {
		return nil, err
	}
	return org, nil
}

// resolveDegree finds the named degree
func (s *jobServiceImpl) resolveDegree(ctx context.Context, name string) (*models.Degree, error) {
	degree, err := s.degreeRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.NewValidationError("degree",
				fmt.Sprintf("Degree %q does not exist.", name))
		}
		return nil, err
	}
	return degree, nil
}

// cleanLocations trims every location name and rejects blanks
func cleanLocations(names []string) ([]string, error) {
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			return nil, apperrors.NewValidationError("locations", "Location names may not be blank.")
		}
		out = append(out, n)
	}
	return out, nil
}

// CreateJob creates a job under an organization created by actor.
func (s *jobServiceImpl) CreateJob(ctx context.Context, actor *models.User, req *dto.CreateJobRequest) (*models.Job, error) {
	// Only authenticated users can post jobs
	if actor == nil {
		return nil, apperrors.ErrUnauthorized
	}
	// Validate job type
	if !req.JobType.Valid() {
		return nil, apperrors.NewValidationError("jobType", fmt.Sprintf("%q is not a valid choice.", req.JobType))
	}

	// Resolve references by name
	org, err := s.resolveOrganization(ctx, actor, req.Organization)
	if err != nil {
		return nil, err
	}
	degree, err := s.resolveDegree(ctx, req.Degree)
	if err != nil {
		return nil, err
	}
	locations, err := cleanLocations(req.Locations)
	if err != nil {
		return nil, err
	}

	// Create job model
	job := &models.Job{
		Title:                   strings.TrimSpace(req.Title),
		Organization:            *org,
		Degree:                  *degree,
		PreferredQualifications: req.PreferredQualifications,
		MinimumQualifications:   req.MinimumQualifications,
		Description:             req.Description,
		JobType:                 req.JobType,
	}
	// Save job with its locations
	if err := s.jobRepo.Create(ctx, job, locations); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("jobID", job.ID).Int64("organizationID", org.ID).Int64("userID", actor.ID).Msg("Job created")
	s.index(ctx, job)
	return job, nil
}

// UpdateJob applies req to an existing job. With partial false every field
// must be present. Locations, when given, replace the current set.
func (s *jobServiceImpl) UpdateJob(ctx context.Context, actor *models.User, id int64, req *dto.UpdateJobRequest, partial bool) (*models.Job, error) {
	// Check if job exists
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// Only the organization creator may change it
	if err := s.authz.ValidateJobOwnership(actor, job); err != nil {
		return nil, err
	}

	// PUT needs every field
	if !partial {
		if missing := req.MissingForFullUpdate(); len(missing) > 0 {
			return nil, apperrors.NewValidationError(missing[0], "This field is required.")
		}
	}

	// Apply sent fields
	if req.Title != nil {
		job.Title = strings.TrimSpace(*req.Title)
	}
	if req.Organization != nil {
		org, err := s.resolveOrganization(ctx, actor, *req.Organization)
		if err != nil {
			return nil, err
		}
		job.Organization = *org
	}
	if req.Degree != nil {
		degree, err := s.resolveDegree(ctx, *req.Degree)
		if err != nil {
			return nil, err
		}
		job.Degree = *degree
	}
	if req.PreferredQualifications != nil {
		job.PreferredQualifications = *req.PreferredQualifications
	}
	if req.MinimumQualifications != nil {
		job.MinimumQualifications = *req.MinimumQualifications
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.JobType != nil {
		if !req.JobType.Valid() {
			return nil, apperrors.NewValidationError("jobType", fmt.Sprintf("%q is not a valid choice.", *req.JobType))
		}
		job.JobType = *req.JobType
	}

	// nil keeps the stored locations; cleanLocations never returns nil.
	var locations []string
	if req.Locations != nil {
		if locations, err = cleanLocations(*req.Locations); err != nil {
			return nil, err
		}
	}

	// Save changes
	if err := s.jobRepo.Update(ctx, job, locations); err != nil {
		return nil, err
	}

	s.index(ctx, job)
	return job, nil
}

// DeleteJob removes the job and its index document.
func (s *jobServiceImpl) DeleteJob(ctx context.Context, actor *models.User, id int64) error {
	// Check if job exists
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	// Validate ownership
	if err := s.authz.ValidateJobOwnership(actor, job); err != nil {
		return err
	}

	if err := s.jobRepo.Delete(ctx, id); err != nil {
		return err
	}

	dropFromIndex(ctx, s.indexer, s.logger, []int64{id})
	return nil
}

// dropFromIndex removes deleted jobs from the search index. The rows are
// already gone, so failures are logged and left for the reindex command.
func dropFromIndex(ctx context.Context, indexer JobIndexer, logger zerolog.Logger, jobIDs []int64) {
	for _, id := range jobIDs {
		if err := indexer.DeleteJob(ctx, id); err != nil {
			logger.Error().Err(err).Int64("jobID", id).Msg("Failed to remove job from search index")
		}
	}
}

// index pushes a committed job to the search index. Failures are logged
// only; the reindex command repairs drift.
func (s *jobServiceImpl) index(ctx context.Context, job *models.Job) {
	if err := s.indexer.IndexJob(ctx, job); err != nil {
		s.logger.Error().Err(err).Int64("jobID", job.ID).Msg("Failed to index job")
	}
}
