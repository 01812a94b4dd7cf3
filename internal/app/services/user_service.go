package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/jobsearch/internal/app/models"
	"github.com/yigit/jobsearch/internal/app/models/dto"
	"github.com/yigit/jobsearch/internal/pkg/auth"
	"github.com/yigit/jobsearch/internal/pkg/validation"
)

// UserService defines the interface for user operations
type UserService interface {
	GetUserProfile(ctx context.Context, userID int64) (*models.User, error)
	UpdateUserProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*models.User, error)
}

// userServiceImpl implements UserService
type userServiceImpl struct {
	userRepo  UserStore
	tokenRepo RefreshTokenStore
	logger    zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo UserStore, tokenRepo RefreshTokenStore, logger zerolog.Logger) UserService {
	return &userServiceImpl{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		logger:    logger,
	}
}

// GetUserProfile retrieves the user's own profile
func (s *userServiceImpl) GetUserProfile(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateUserProfile applies the non-nil fields of req. A password change
// revokes every refresh token of the user.
func (s *userServiceImpl) UpdateUserProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*models.User, error) {
	// Get current user
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Apply only the fields that were sent
	if req.Email != nil {
		user.Email = validation.NormalizeEmail(*req.Email)
	}
	if req.FirstName != nil {
		user.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		user.LastName = strings.TrimSpace(*req.LastName)
	}

	passwordChanged := false
	// Hash password
	if req.Password != nil {
		hashed, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
		user.Password = hashed
		passwordChanged = true
	}

	// Save changes
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	// Force other sessions to log in again
	if passwordChanged {
		if err := s.tokenRepo.RevokeAllUserTokens(ctx, userID); err != nil {
			s.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to revoke refresh tokens after password change")
		}
	}
	return user, nil
}
