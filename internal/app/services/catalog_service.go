package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/jobsearch/internal/app/auth"
	"github.com/yigit/jobsearch/internal/app/models"
	"github.com/yigit/jobsearch/internal/app/models/dto"
	"github.com/yigit/jobsearch/internal/pkg/apperrors"
)

// DegreeService defines degree operations; writes are staff only.
type DegreeService interface {
	ListDegrees(ctx context.Context, page models.Page) ([]*models.Degree, int64, error)
	GetDegreeByID(ctx context.Context, id int64) (*models.Degree, error)
	CreateDegree(ctx context.Context, actor *models.User, name string) (*models.Degree, error)
	UpdateDegree(ctx context.Context, actor *models.User, id int64, name string) (*models.Degree, error)
	DeleteDegree(ctx context.Context, actor *models.User, id int64) error
}

// degreeServiceImpl implements DegreeService
type degreeServiceImpl struct {
	degreeRepo DegreeStore
	indexer    JobIndexer
	authz      *auth.AuthorizationService
	logger     zerolog.Logger
}

// NewDegreeService creates a new DegreeService
func NewDegreeService(degreeRepo DegreeStore, indexer JobIndexer, authz *auth.AuthorizationService, logger zerolog.Logger) DegreeService {
	return &degreeServiceImpl{degreeRepo: degreeRepo, indexer: indexer, authz: authz, logger: logger}
}

// ListDegrees returns one page of degrees
func (s *degreeServiceImpl) ListDegrees(ctx context.Context, page models.Page) ([]*models.Degree, int64, error) {
	return s.degreeRepo.List(ctx, page)
}

// GetDegreeByID retrieves a degree
func (s *degreeServiceImpl) GetDegreeByID(ctx context.Context, id int64) (*models.Degree, error) {
	return s.degreeRepo.GetByID(ctx, id)
}

// CreateDegree adds a degree
func (s *degreeServiceImpl) CreateDegree(ctx context.Context, actor *models.User, name string) (*models.Degree, error) {
	// Only staff manage degrees
	if err := s.authz.ValidateStaff(actor, "degree"); err != nil {
		return nil, err
	}
	// Validate name
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("name", "This field may not be blank.")
	}

	degree := &models.Degree{Name: name}
	if err := s.degreeRepo.Create(ctx, degree); err != nil {
		return nil, err
	}
	return degree, nil
}

// UpdateDegree renames a degree
func (s *degreeServiceImpl) UpdateDegree(ctx context.Context, actor *models.User, id int64, name string) (*models.Degree, error) {
	// Check if degree exists
	degree, err := s.degreeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authz.ValidateStaff(actor, "degree"); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("name", "This field may not be blank.")
	}

	degree.Name = name
	if err := s.degreeRepo.Update(ctx, degree); err != nil {
		return nil, err
	}
	return degree, nil
}

// DeleteDegree removes a degree and every job requiring it
func (s *degreeServiceImpl) DeleteDegree(ctx context.Context, actor *models.User, id int64) error {
	if _, err := s.degreeRepo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.authz.ValidateStaff(actor, "degree"); err != nil {
		return err
	}

	// Delete degree; its jobs cascade
	jobIDs, err := s.degreeRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	s.logger.Info().Int64("degreeID", id).Int64("userID", actor.ID).Int("jobs", len(jobIDs)).Msg("Degree deleted")

	// Cascaded jobs must not linger in search results
	dropFromIndex(ctx, s.indexer, s.logger, jobIDs)
	return nil
}

// LocationService exposes read access to locations.
type LocationService interface {
	ListLocations(ctx context.Context, page models.Page) ([]*models.Location, int64, error)
	GetLocationByID(ctx context.Context, id int64) (*models.Location, error)
}

type locationServiceImpl struct {
	locationRepo LocationStore
}

// NewLocationService creates a new LocationService
func NewLocationService(locationRepo LocationStore) LocationService {
	return &locationServiceImpl{locationRepo: locationRepo}
}

func (s *locationServiceImpl) ListLocations(ctx context.Context, page models.Page) ([]*models.Location, int64, error) {
	return s.locationRepo.List(ctx, page)
}

func (s *locationServiceImpl) GetLocationByID(ctx context.Context, id int64) (*models.Location, error) {
	return s.locationRepo.GetByID(ctx, id)
}

// SpotlightService defines spotlight operations; writes are staff only.
type SpotlightService interface {
	ListSpotlights(ctx context.Context, page models.Page) ([]*models.Spotlight, int64, error)
	GetSpotlightByID(ctx context.Context, id int64) (*models.Spotlight, error)
	CreateSpotlight(ctx context.Context, actor *models.User, req *dto.SpotlightRequest) (*models.Spotlight, error)
	UpdateSpotlight(ctx context.Context, actor *models.User, id int64, req *dto.SpotlightRequest) (*models.Spotlight, error)
	PatchSpotlight(ctx context.Context, actor *models.User, id int64, req *dto.SpotlightPatchRequest) (*models.Spotlight, error)
	DeleteSpotlight(ctx context.Context, actor *models.User, id int64) error
}

type spotlightServiceImpl struct {
	spotlightRepo SpotlightStore
	authz         *auth.AuthorizationService
}

// NewSpotlightService creates a new SpotlightService
func NewSpotlightService(spotlightRepo SpotlightStore, authz *auth.AuthorizationService) SpotlightService {
	return &spotlightServiceImpl{spotlightRepo: spotlightRepo, authz: authz}
}

func (s *spotlightServiceImpl) ListSpotlights(ctx context.Context, page models.Page) ([]*models.Spotlight, int64, error) {
	return s.spotlightRepo.List(ctx, page)
}

func (s *spotlightServiceImpl) GetSpotlightByID(ctx context.Context, id int64) (*models.Spotlight, error) {
	return s.spotlightRepo.GetByID(ctx, id)
}

// CreateSpotlight adds a spotlight
func (s *spotlightServiceImpl) CreateSpotlight(ctx context.Context, actor *models.User, req *dto.SpotlightRequest) (*models.Spotlight, error) {
	if err := s.authz.ValidateStaff(actor, "spotlight"); err != nil {
		return nil, err
	}

	spotlight := &models.Spotlight{Title: req.Title, Img: req.Img, Description: req.Description}
	if err := s.spotlightRepo.Create(ctx, spotlight); err != nil {
		return nil, err
	}
	return spotlight, nil
}

// UpdateSpotlight replaces every field; it is a full patch
func (s *spotlightServiceImpl) UpdateSpotlight(ctx context.Context, actor *models.User, id int64, req *dto.SpotlightRequest) (*models.Spotlight, error) {
	return s.PatchSpotlight(ctx, actor, id, &dto.SpotlightPatchRequest{
		Title:       &req.Title,
		Img:         &req.Img,
		Description: &req.Description,
	})
}

// PatchSpotlight applies the non-nil fields of req
func (s *spotlightServiceImpl) PatchSpotlight(ctx context.Context, actor *models.User, id int64, req *dto.SpotlightPatchRequest) (*models.Spotlight, error) {
	// Check if spotlight exists
	spotlight, err := s.spotlightRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authz.ValidateStaff(actor, "spotlight"); err != nil {
		return nil, err
	}

	// Merge sent fields
	if req.Title != nil {
		spotlight.Title = *req.Title
	}
	if req.Img != nil {
		spotlight.Img = *req.Img
	}
	if req.Description != nil {
		spotlight.Description = *req.Description
	}

	// Save changes
	if err := s.spotlightRepo.Update(ctx, spotlight); err != nil {
		return nil, err
	}
	return spotlight, nil
}

func (s *spotlightServiceImpl) DeleteSpotlight(ctx context.Context, actor *models.User, id int64) error {
	if _, err := s.spotlightRepo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.authz.ValidateStaff(actor, "spotlight"); err != nil {
		return err
	}
	return s.spotlightRepo.Delete(ctx, id)
}
