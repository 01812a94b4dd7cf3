package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/jobsearch/internal/app/auth"
	"github.com/yigit/jobsearch/internal/app/models"
	"github.com/yigit/jobsearch/internal/pkg/apperrors"
)

// OrganizationService defines organization operations. Writes are limited
// to the organization's creator.
type OrganizationService interface {
	ListOrganizations(ctx context.Context, page models.Page) ([]*models.Organization, int64, error)
	GetOrganizationByID(ctx context.Context, id int64) (*models.Organization, error)
	CreateOrganization(ctx context.Context, actor *models.User, name string) (*models.Organization, error)
	UpdateOrganization(ctx context.Context, actor *models.User, id int64, name *string) (*models.Organization, error)
	DeleteOrganization(ctx context.Context, actor *models.User, id int64) error
}

// organizationServiceImpl implements OrganizationService
type organizationServiceImpl struct {
	orgRepo OrganizationStore
	indexer JobIndexer
	authz   *auth.AuthorizationService
	logger  zerolog.Logger
}

// NewOrganizationService creates a new OrganizationService
func NewOrganizationService(orgRepo OrganizationStore, indexer JobIndexer, authz *auth.AuthorizationService, logger zerolog.Logger) OrganizationService {
	return &organizationServiceImpl{orgRepo: orgRepo, indexer: indexer, authz: authz, logger: logger}
}

// ListOrganizations returns one page of organizations ordered by id
func (s *organizationServiceImpl) ListOrganizations(ctx context.Context, page models.Page) ([]*models.Organization, int64, error) {
	return s.orgRepo.List(ctx, page)
}

// GetOrganizationByID retrieves an organization
func (s *organizationServiceImpl) GetOrganizationByID(ctx context.Context, id int64) (*models.Organization, error) {
	return s.orgRepo.GetByID(ctx, id)
}

// CreateOrganization records actor as the permanent creator.
func (s *organizationServiceImpl) CreateOrganization(ctx context.Context, actor *models.User, name string) (*models.Organization, error) {
	// Only authenticated users can create organizations
	if actor == nil {
		return nil, apperrors.ErrUnauthorized
	}

	// Validate name
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("name", "This field may not be blank.")
	}

	// Create organization
	org := &models.Organization{Name: name, CreatorID: actor.ID}
	if err := s.orgRepo.Create(ctx, org); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("organizationID", org.ID).Int64("creatorID", actor.ID).Msg("Organization created")
	return org, nil
}

// UpdateOrganization renames the organization when name is non-nil.
func (s *organizationServiceImpl) UpdateOrganization(ctx context.Context, actor *models.User, id int64, name *string) (*models.Organization, error) {
	// Check if organization exists
	org, err := s.orgRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// Validate ownership
	if err := s.authz.ValidateOrganizationOwnership(actor, org); err != nil {
		return nil, err
	}

	// Nothing to change
	if name == nil {
		return org, nil
	}
	trimmed := strings.TrimSpace(*name)
	if trimmed == "" {
		return nil, apperrors.NewValidationError("name", "This field may not be blank.")
	}

	// Save new name
	org.Name = trimmed
	if err := s.orgRepo.Update(ctx, org); err != nil {
		return nil, err
	}
	return org, nil
}

// DeleteOrganization removes the organization and its jobs.
func (s *organizationServiceImpl) DeleteOrganization(ctx context.Context, actor *models.User, id int64) error {
	// Check if organization exists
	org, err := s.orgRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	// Validate ownership
	if err := s.authz.ValidateOrganizationOwnership(actor, org); err != nil {
		return err
	}

	// Delete organization; its jobs cascade
	jobIDs, err := s.orgRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	s.logger.Info().Int64("organizationID", id).Int64("userID", actor.ID).Int("jobs", len(jobIDs)).Msg("Organization deleted")

	// Jobs went with the organization; drop their search documents too
	dropFromIndex(ctx, s.indexer, s.logger, jobIDs)
	return nil
}
