package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/jobsearch/internal/app/models"
	"github.com/yigit/jobsearch/internal/app/models/dto"
	"github.com/yigit/jobsearch/internal/pkg/apperrors"
	"github.com/yigit/jobsearch/internal/pkg/auth"
	"github.com/yigit/jobsearch/internal/pkg/validation"
)

const invalidCredentialsMessage = "Unable to authenticate with provided credentials."

// AuthService handles registration and every way of obtaining or
// presenting credentials.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	CreateSuperuser(ctx context.Context, email, password string) (*models.User, error)
	ObtainAPIToken(ctx context.Context, req *dto.LoginRequest) (string, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	AuthenticateAccessToken(ctx context.Context, accessToken string) (*models.User, error)
	AuthenticateAPIToken(ctx context.Context, key string) (*models.User, error)
	CleanupExpiredTokens(ctx context.Context) (int64, error)
}

type authServiceImpl struct {
	userRepo     UserStore
	tokenRepo    RefreshTokenStore
	apiTokenRepo APITokenStore
	jwtService   *auth.JWTService
	logger       zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo UserStore,
	tokenRepo RefreshTokenStore,
	apiTokenRepo APITokenStore,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		userRepo:     userRepo,
		tokenRepo:    tokenRepo,
		apiTokenRepo: apiTokenRepo,
		jwtService:   jwtService,
		logger:       logger,
	}
}

// invalidCredentials hides which of the credential checks failed
func invalidCredentials() error {
	return &apperrors.CustomError{Err: apperrors.ErrInvalidCredentials, Message: invalidCredentialsMessage}
}

// createUser validates the password and persists a new active user
func (s *authServiceImpl) createUser(ctx context.Context, email, password, firstName, lastName string, staff bool) (*models.User, error) {
	// Validate password
	if len(password) < validation.PasswordMinLength {
		return nil, apperrors.NewValidationError("password",
			fmt.Sprintf("Ensure this field has at least %d characters.", validation.PasswordMinLength))
	}

	// Hash password
	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	// Create user model
	user := &models.User{
		Email:       validation.NormalizeEmail(email),
		Password:    hashed,
		FirstName:   strings.TrimSpace(firstName),
		LastName:    strings.TrimSpace(lastName),
		IsActive:    true,
		IsStaff:     staff,
		IsSuperuser: staff,
	}
	// Add user to database
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", user.ID).Bool("staff", staff).Msg("User created")
	return user, nil
}

// Register creates a regular, active user.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	return s.createUser(ctx, req.Email, req.Password, req.FirstName, req.LastName, false)
}

// CreateSuperuser creates a staff and superuser account.
func (s *authServiceImpl) CreateSuperuser(ctx context.Context, email, password string) (*models.User, error) {
	return s.createUser(ctx, email, password, "", "", true)
}

// checkCredentials returns the active user owning email and password.
// Unknown email, wrong password and inactive account look the same.
func (s *authServiceImpl) checkCredentials(ctx context.Context, email, password string) (*models.User, error) {
	// Look up the user by normalized email
	user, err := s.userRepo.GetByEmail(ctx, validation.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, invalidCredentials()
		}
		return nil, err
	}
	// Check password and account state
	if !auth.CheckPassword(user.Password, password) || !user.IsActive {
		return nil, invalidCredentials()
	}

	// Record the login; a failure here does not block it
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		s.logger.Warn().Err(err).Int64("userID", user.ID).Msg("Failed to update last login")
	}
	return user, nil
}

// ObtainAPIToken returns the user's persistent API key, creating it on
// first use.
func (s *authServiceImpl) ObtainAPIToken(ctx context.Context, req *dto.LoginRequest) (string, error) {
	user, err := s.checkCredentials(ctx, req.Email, req.Password)
	if err != nil {
		return "", err
	}

	// Generate a key; the stored one wins if the user already has one
	candidate, err := auth.GenerateAPIKey()
	if err != nil {
		return "", err
	}
	return s.apiTokenRepo.GetOrCreate(ctx, user.ID, candidate)
}

// Login issues a JWT access and refresh token pair.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.checkCredentials(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	// Generate token
	pair, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}
	// Save refresh token
	if err := s.tokenRepo.CreateToken(ctx, pair.RefreshToken, user.ID, pair.RefreshExpiresAt); err != nil {
		return nil, err
	}
	return tokenResponse(pair), nil
}

// RefreshToken exchanges a refresh token for a new pair. The presented
// token is revoked so it cannot be replayed.
func (s *authServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, apperrors.ErrTokenInvalid
	}

	// Validate refresh token
	userID, err := s.tokenRepo.GetUserIDByToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrTokenRevoked) {
			s.logger.Warn().Msg("Revoked refresh token presented")
		}
		return nil, err
	}

	// Get user information
	user, err := s.activeUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Generate token
	pair, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}
	// Revoke the old token and store the new one in one step
	if err := s.tokenRepo.RotateToken(ctx, refreshToken, pair.RefreshToken, user.ID, pair.RefreshExpiresAt); err != nil {
		return nil, err
	}
	return tokenResponse(pair), nil
}

// activeUser loads a user for an authenticated request
func (s *authServiceImpl) activeUser(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrTokenInvalid
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}
	return user, nil
}

// AuthenticateAccessToken resolves a Bearer JWT to its active user.
func (s *authServiceImpl) AuthenticateAccessToken(ctx context.Context, accessToken string) (*models.User, error) {
	// Validate token
	claims, err := s.jwtService.ValidateToken(accessToken)
	if err != nil {
		return nil, err
	}
	return s.activeUser(ctx, claims.UserID)
}

// AuthenticateAPIToken resolves an API key to its active user.
func (s *authServiceImpl) AuthenticateAPIToken(ctx context.Context, key string) (*models.User, error) {
	userID, err := s.apiTokenRepo.GetUserIDByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	return s.activeUser(ctx, userID)
}

// CleanupExpiredTokens purges expired and old revoked refresh tokens.
func (s *authServiceImpl) CleanupExpiredTokens(ctx context.Context) (int64, error) {
	return s.tokenRepo.CleanupExpiredTokens(ctx)
}

// tokenResponse converts a token pair to its response DTO
func tokenResponse(pair *auth.TokenPair) *dto.TokenResponse {
	return &dto.TokenResponse{
		AccessToken:           pair.AccessToken,
		TokenType:             "Bearer",
		ExpiresIn:             pair.ExpiresIn,
		RefreshToken:          pair.RefreshToken,
		RefreshTokenExpiresIn: pair.RefreshExpiresIn,
	}
}
