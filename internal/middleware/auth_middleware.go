package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/jobsearch/internal/app/models"
	"github.com/yigit/jobsearch/internal/app/services"
	"github.com/yigit/jobsearch/internal/pkg/apperrors"
	"github.com/yigit/jobsearch/internal/pkg/auth"
)

const currentUserKey = "currentUser"

// AuthMiddleware resolves request credentials into a user.
type AuthMiddleware struct {
	authService services.AuthService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(authService services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// Authenticate reads "Authorization: Bearer <jwt>" or "Authorization: Token
// <key>". Requests without credentials, or with another scheme, continue
// anonymously; bad credentials for a known scheme are rejected with 401.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		word, _, _ := strings.Cut(strings.TrimSpace(header), " ")
		if !strings.EqualFold(word, "Bearer") && !strings.EqualFold(word, "Token") {
			c.Next()
			return
		}

		scheme, credentials, ok := auth.ParseAuthorizationHeader(header)
		if !ok || strings.ContainsAny(credentials, " \t") {
			HandleAPIError(c, &apperrors.CustomError{
				Err:     apperrors.ErrTokenInvalid,
				Message: "Invalid token header.",
			})
			return
		}

		var (
			user *models.User
			err  error
		)
		if strings.EqualFold(scheme, "Bearer") {
			user, err = m.authService.AuthenticateAccessToken(c.Request.Context(), credentials)
		} else {
			user, err = m.authService.AuthenticateAPIToken(c.Request.Context(), credentials)
		}
		if err != nil {
			HandleAPIError(c, err)
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// RequireAuth rejects anonymous requests with 401.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			HandleAPIError(c, apperrors.ErrUnauthorized)
			return
		}
		c.Next()
	}
}

// RequireStaff rejects anonymous requests with 401 and non-staff users with 403.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			HandleAPIError(c, apperrors.ErrUnauthorized)
			return
		}
		if !user.IsStaff {
			HandleAPIError(c, apperrors.ErrPermissionDenied)
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user, or nil for anonymous requests.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}
