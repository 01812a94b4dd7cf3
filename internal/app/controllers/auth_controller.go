package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/jobsearch/internal/app/models/dto"
	"github.com/yigit/jobsearch/internal/app/services"
	"github.com/yigit/jobsearch/internal/middleware"
)

// AuthController handles account creation and credential exchange.
type AuthController struct {
	authService services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Register handles user registration
// @Summary Create an account
// @Description Creates a user account. The email domain is lowercased.
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Account information"
// @Success 201 {object} dto.APIResponse{data=dto.UserResponse} "Account created"
// @Failure 400 {object} dto.ErrorResponse "Invalid data or email already in use"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /accounts/create [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	user, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("userID", user.ID).Msg("Account created")
	respond(ctx, http.StatusCreated, dto.NewUserResponse(user))
}

// ObtainToken returns the caller's persistent API token
// @Summary Obtain an API token
// @Description Exchanges credentials for the user's persistent token, used as "Authorization: Token <key>".
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.APITokenResponse} "Token"
// @Failure 400 {object} dto.ErrorResponse "Unable to authenticate with provided credentials"
// @Router /accounts/token [post]
func (c *AuthController) ObtainToken(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	token, err := c.authService.ObtainAPIToken(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, dto.APITokenResponse{Token: token})
}

// Login handles JWT pair issuance
// @Summary Obtain a JWT pair
// @Description Exchanges credentials for an access and refresh token pair.
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse} "Token pair"
// @Failure 400 {object} dto.ErrorResponse "Unable to authenticate with provided credentials"
// @Router /accounts/jwt [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	tokens, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, tokens)
}

// RefreshToken rotates a refresh token
// @Summary Refresh a JWT pair
// @Description Revokes the given refresh token and issues a new pair.
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse} "Token pair"
// @Failure 400 {object} dto.ErrorResponse "Missing refresh token"
// @Failure 401 {object} dto.ErrorResponse "Invalid, expired or revoked refresh token"
// @Router /accounts/jwt/refresh [post]
func (c *AuthController) RefreshToken(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	tokens, err := c.authService.RefreshToken(ctx.Request.Context(), req.RefreshToken)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, tokens)
}
