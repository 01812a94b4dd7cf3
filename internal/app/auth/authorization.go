package auth

import (
	"github.com/yigit/jobsearch/internal/app/models"
	"github.com/yigit/jobsearch/internal/pkg/apperrors"
	"github.com/yigit/jobsearch/internal/pkg/logger"
)

// PermissionDeniedMessage is returned for authenticated but unauthorized writes.
const PermissionDeniedMessage = "You do not have permission to perform this action."

// AuthorizationService makes object-level write decisions. Objects are
// fetched by the caller first, so a missing row is a 404 before any 403.
type AuthorizationService struct{}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService() *AuthorizationService {
	return &AuthorizationService{}
}

// CanModifyOrganization reports whether actor created org.
func (s *AuthorizationService) CanModifyOrganization(actor *models.User, org *models.Organization) bool {
	return actor != nil && org != nil && org.CreatorID == actor.ID
}

// CanModifyJob reports whether actor created the job's organization.
func (s *AuthorizationService) CanModifyJob(actor *models.User, job *models.Job) bool {
	return actor != nil && job != nil && job.Organization.CreatorID == actor.ID
}

// IsStaff reports whether actor may manage admin-only resources.
func (s *AuthorizationService) IsStaff(actor *models.User) bool {
	return actor != nil && actor.IsStaff
}

func deny(actor *models.User, resource string, id int64) error {
	if actor == nil {
		return apperrors.ErrUnauthorized
	}
	logger.Warn().Int64("userID", actor.ID).Str("resource", resource).Int64("id", id).Msg("Permission denied")
	return apperrors.NewForbiddenError(PermissionDeniedMessage)
}

// ValidateOrganizationOwnership returns ErrUnauthorized for anonymous
// actors and a forbidden error for anyone but the creator.
func (s *AuthorizationService) ValidateOrganizationOwnership(actor *models.User, org *models.Organization) error {
	if s.CanModifyOrganization(actor, org) {
		return nil
	}
	return deny(actor, "organization", org.ID)
}

// ValidateJobOwnership checks the job's organization creator.
func (s *AuthorizationService) ValidateJobOwnership(actor *models.User, job *models.Job) error {
	if s.CanModifyJob(actor, job) {
		return nil
	}
	return deny(actor, "job", job.ID)
}

// ValidateStaff guards degree and spotlight writes.
func (s *AuthorizationService) ValidateStaff(actor *models.User, resource string) error {
	if s.IsStaff(actor) {
		return nil
	}
	return deny(actor, resource, 0)
}
