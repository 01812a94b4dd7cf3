package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/jobsearch/internal/app/models"
	"github.com/yigit/jobsearch/internal/app/models/dto"
	"github.com/yigit/jobsearch/internal/app/services"
	"github.com/yigit/jobsearch/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubAuth resolves fixed credentials. Methods it does not override panic.
type stubAuth struct {
	services.AuthService
	jwts   map[string]*models.User
	tokens map[string]*models.User
}

func (s *stubAuth) AuthenticateAccessToken(_ context.Context, token string) (*models.User, error) {
	if u, ok := s.jwts[token]; ok {
		return u, nil
	}
	return nil, apperrors.ErrTokenInvalid
}

func (s *stubAuth) AuthenticateAPIToken(_ context.Context, key string) (*models.User, error) {
	if u, ok := s.tokens[key]; ok {
		return u, nil
	}
	return nil, apperrors.ErrTokenInvalid
}

var (
	member = &models.User{ID: 1, Email: "member@example.com", IsActive: true}
	staff  = &models.User{ID: 2, Email: "staff@example.com", IsActive: true, IsStaff: true}
)

func newStubAuth() *AuthMiddleware {
	return NewAuthMiddleware(&stubAuth{
		jwts:   map[string]*models.User{"good.jwt.token": member},
		tokens: map[string]*models.User{"staffkey": staff},
	})
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	return body
}

func whoAmI(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		c.String(http.StatusOK, "anonymous")
		return
	}
	c.String(http.StatusOK, user.Email)
}

func TestAuthenticate(t *testing.T) {
	r := gin.New()
	r.Use(newStubAuth().Authenticate())
	r.GET("/who", whoAmI)

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"no header", "", http.StatusOK, "anonymous"},
		{"bearer", "Bearer good.jwt.token", http.StatusOK, "member@example.com"},
		{"token", "Token staffkey", http.StatusOK, "staff@example.com"},
		{"lowercase scheme", "bearer good.jwt.token", http.StatusOK, "member@example.com"},
		{"other scheme", "Basic dXNlcjpwYXNz", http.StatusOK, "anonymous"},
		{"bad jwt", "Bearer nope", http.StatusUnauthorized, ""},
		{"bad key", "Token nope", http.StatusUnauthorized, ""},
		{"missing credentials", "Bearer", http.StatusUnauthorized, ""},
		{"spaces in credentials", "Token a b", http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/who", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, w.Body.String())
			}
			if tt.status == http.StatusUnauthorized {
				assert.NotEmpty(t, w.Header().Get("WWW-Authenticate"))
			}
		})
	}
}

func TestRequireAuthAndStaff(t *testing.T) {
	r := gin.New()
	r.Use(newStubAuth().Authenticate())
	r.GET("/member", RequireAuth(), whoAmI)
	r.GET("/staff", RequireStaff(), whoAmI)

	do := func(path, header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusUnauthorized, do("/member", "").Code)
	assert.Equal(t, http.StatusOK, do("/member", "Bearer good.jwt.token").Code)

	assert.Equal(t, http.StatusUnauthorized, do("/staff", "").Code)
	w := do("/staff", "Bearer good.jwt.token")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, dto.ErrorCodeForbidden, decodeError(t, w).Error.Code)
	assert.Equal(t, http.StatusOK, do("/staff", "Token staffkey").Code)
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		field   string
		message string
	}{
		{"not found", apperrors.NewResourceNotFoundError("Job not found."), http.StatusNotFound, "", "Job not found."},
		{"validation", apperrors.NewValidationError("organization", `Organization "Acme" does not exist.`), http.StatusBadRequest, "organization", `Organization "Acme" does not exist.`},
		{"credentials", apperrors.ErrInvalidCredentials, http.StatusBadRequest, "", "Unable to authenticate with provided credentials."},
		{"anonymous", apperrors.ErrUnauthorized, http.StatusUnauthorized, "", "Authentication credentials were not provided."},
		{"forbidden", apperrors.NewForbiddenError("nope"), http.StatusForbidden, "", "nope"},
		{"expired", apperrors.ErrTokenExpired, http.StatusUnauthorized, "", "Token has expired."},
		{"throttled", apperrors.ErrThrottled, http.StatusTooManyRequests, "", "Request was throttled."},
		{"search down", apperrors.ErrSearchUnavailable, http.StatusServiceUnavailable, "", "Search is temporarily unavailable."},
		{"internal", assert.AnError, http.StatusInternalServerError, "", "Internal server error."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			assert.True(t, c.IsAborted())
			body := decodeError(t, w)
			assert.False(t, body.Success)
			assert.Equal(t, tt.field, body.Error.Field)
			assert.Equal(t, tt.message, body.Error.Message)
		})
	}
}

type bindTarget struct {
	Title string `json:"title" binding:"required,max=5"`
	Count int    `json:"count"`
}

func TestHandleBindError(t *testing.T) {
	r := gin.New()
	r.POST("/", func(c *gin.Context) {
		var req bindTarget
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleBindError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := post(`{"title":"far too long"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, dto.ErrorCodeValidationFailed, body.Error.Code)
	assert.Equal(t, "Ensure this field has no more than 5 characters.", body.Error.Message)

	w = post(`{"title":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = post(`{"title":"ok","count":"three"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "count", decodeError(t, w).Error.Field)

	assert.Equal(t, http.StatusNoContent, post(`{"title":"ok"}`).Code)
}
