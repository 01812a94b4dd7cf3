package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/yigit/jobsearch/internal/app/auth"
	"github.com/yigit/jobsearch/internal/app/controllers"
	"github.com/yigit/jobsearch/internal/app/models"
	"github.com/yigit/jobsearch/internal/app/services"
	"github.com/yigit/jobsearch/internal/middleware"
	"github.com/yigit/jobsearch/internal/mocks"
	"github.com/yigit/jobsearch/internal/pkg/apperrors"
	pkgAuth "github.com/yigit/jobsearch/internal/pkg/auth"
	"github.com/yigit/jobsearch/internal/pkg/cache"
	"github.com/yigit/jobsearch/internal/pkg/validation"
	"github.com/yigit/jobsearch/internal/search"
)

func init() {
	gin.SetMode(gin.TestMode)
	validation.RegisterBindingRules()
}

var (
	alice = &models.User{ID: 1, Email: "a@example.com", IsActive: true}
	bob   = &models.User{ID: 2, Email: "b@example.com", IsActive: true}
	staff = &models.User{ID: 9, Email: "s@example.com", IsActive: true, IsStaff: true}
)

type stores struct {
	orgs      *mocks.MockOrganizationStore
	degrees   *mocks.MockDegreeStore
	locations *mocks.MockLocationStore
	jobs      *mocks.MockJobStore
}

// newTestRouter wires real services over mocked stores. API keys "alice-key",
// "bob-key" and "staff-key" authenticate the users above.
func newTestRouter(t *testing.T, store middleware.ResponseStore) (*gin.Engine, stores) {
	t.Helper()
	ctrl := gomock.NewController(t)

	users := mocks.NewMockUserStore(ctrl)
	users.EXPECT().GetByID(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id int64) (*models.User, error) {
		for _, u := range []*models.User{alice, bob, staff} {
			if u.ID == id {
				return u, nil
			}
		}
		return nil, apperrors.NewResourceNotFoundError("User not found.")
	}).AnyTimes()

	keys := map[string]int64{"alice-key": alice.ID, "bob-key": bob.ID, "staff-key": staff.ID}
	apiTokens := mocks.NewMockAPITokenStore(ctrl)
	apiTokens.EXPECT().GetUserIDByKey(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, key string) (int64, error) {
		if id, ok := keys[key]; ok {
			return id, nil
		}
		return 0, apperrors.ErrTokenInvalid
	}).AnyTimes()

	s := stores{
		orgs:      mocks.NewMockOrganizationStore(ctrl),
		degrees:   mocks.NewMockDegreeStore(ctrl),
		locations: mocks.NewMockLocationStore(ctrl),
		jobs:      mocks.NewMockJobStore(ctrl),
	}

	log := zerolog.Nop()
	authz := auth.NewAuthorizationService()
	jwt := pkgAuth.NewJWTService(pkgAuth.JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Minute, RefreshTokenExp: time.Hour, TokenIssuer: "test"})
	authService := services.NewAuthService(users, mocks.NewMockRefreshTokenStore(ctrl), apiTokens, jwt, log)

	router := gin.New()
	SetupRouter(router, RouterDeps{
		AuthController:         controllers.NewAuthController(authService, log),
		UserController:         controllers.NewUserController(services.NewUserService(users, mocks.NewMockRefreshTokenStore(ctrl), log)),
		OrganizationController: controllers.NewOrganizationController(services.NewOrganizationService(s.orgs, search.NopIndexer{}, authz, log)),
		DegreeController:       controllers.NewDegreeController(services.NewDegreeService(s.degrees, search.NopIndexer{}, authz, log)),
		LocationController:     controllers.NewLocationController(services.NewLocationService(s.locations)),
		SpotlightController:    controllers.NewSpotlightController(services.NewSpotlightService(mocks.NewMockSpotlightStore(ctrl), authz)),
		JobController:          controllers.NewJobController(services.NewJobService(s.jobs, s.orgs, s.degrees, search.NopIndexer{}, authz, log)),
		SearchController:       controllers.NewSearchController(services.NewSearchService(nil)),
		HealthController:       controllers.NewHealthController(map[string]controllers.HealthCheck{}),
		AuthMiddleware:         middleware.NewAuthMiddleware(authService),
		ResponseStore:          store,
		ShortTTL:               time.Minute,
		LongTTL:                time.Minute,
		Logger:                 log,
	})
	return router, s
}

func do(router http.Handler, method, path, key, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if key != "" {
		req.Header.Set("Authorization", "Token "+key)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

const jobBody = `{
	"title": "Backend Engineer",
	"organization": "Microsoft",
	"degree": "Bachelors",
	"locations": ["Seattle"],
	"preferredQualifications": ["Go"],
	"minimumQualifications": ["SQL"],
	"description": ["Build APIs"],
	"jobType": "Full-time"
}`

func TestJobCreate_OnlyOrganizationCreator(t *testing.T) {
	router, s := newTestRouter(t, nil)
	microsoft := &models.Organization{ID: 5, Name: "Microsoft", CreatorID: alice.ID}

	s.orgs.EXPECT().GetByName(gomock.Any(), "Microsoft").Return(microsoft, nil).Times(2)
	s.degrees.EXPECT().GetByName(gomock.Any(), "Bachelors").Return(&models.Degree{ID: 3, Name: "Bachelors"}, nil)
	s.jobs.EXPECT().Create(gomock.Any(), gomock.Any(), []string{"Seattle"}).
		DoAndReturn(func(_ context.Context, job *models.Job, names []string) error {
			job.ID = 77
			job.DateAdded = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
			job.DateUpdated = job.DateAdded
			job.Locations = []models.Location{{ID: 1, Name: names[0]}}
			return nil
		})

	w := do(router, http.MethodPost, "/api/v1/jobs", "", jobBody)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, `Bearer realm="api"`, w.Header().Get("WWW-Authenticate"))

	w = do(router, http.MethodPost, "/api/v1/jobs", "bob-key", jobBody)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(router, http.MethodPost, "/api/v1/jobs", "alice-key", jobBody)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			ID           int64    `json:"id"`
			Organization string   `json:"organization"`
			Locations    []string `json:"locations"`
			DateAdded    string   `json:"dateAdded"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, int64(77), body.Data.ID)
	assert.Equal(t, "Microsoft", body.Data.Organization)
	assert.Equal(t, []string{"Seattle"}, body.Data.Locations)
	assert.Equal(t, "2024-03-01", body.Data.DateAdded)
}

func TestJobCreate_UnknownOrganization(t *testing.T) {
	router, s := newTestRouter(t, nil)
	s.orgs.EXPECT().GetByName(gomock.Any(), "Microsoft").Return(nil, apperrors.NewResourceNotFoundError("Organization not found."))

	w := do(router, http.MethodPost, "/api/v1/jobs", "alice-key", jobBody)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"organization"`)
	assert.Contains(t, w.Body.String(), `"severity":"ERROR"`)
}

func TestDegreeWrites_StaffOnly(t *testing.T) {
	router, s := newTestRouter(t, nil)
	s.degrees.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, d *models.Degree) error {
		d.ID = 4
		return nil
	})

	assert.Equal(t, http.StatusUnauthorized, do(router, http.MethodPost, "/api/v1/degrees", "", `{"name":"PhD"}`).Code)
	assert.Equal(t, http.StatusForbidden, do(router, http.MethodPost, "/api/v1/degrees", "alice-key", `{"name":"PhD"}`).Code)
	assert.Equal(t, http.StatusCreated, do(router, http.MethodPost, "/api/v1/degrees", "staff-key", `{"name":"PhD"}`).Code)
}

func TestAnonymousReads(t *testing.T) {
	router, s := newTestRouter(t, nil)
	s.jobs.EXPECT().GetByID(gomock.Any(), int64(12)).Return(&models.Job{
		ID:           12,
		Title:        "SRE",
		Organization: models.Organization{ID: 5, Name: "Microsoft"},
		Degree:       models.Degree{ID: 3, Name: "Bachelors"},
		JobType:      models.JobTypeIntern,
	}, nil)

	w := do(router, http.MethodGet, "/api/v1/jobs/12", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"SRE"`)

	assert.Equal(t, http.StatusNotFound, do(router, http.MethodGet, "/api/v1/jobs/abc", "", "").Code)
}

func TestInvalidToken(t *testing.T) {
	router, _ := newTestRouter(t, nil)
	w := do(router, http.MethodGet, "/api/v1/health", "nope", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSearchDisabled(t *testing.T) {
	router, _ := newTestRouter(t, nil)
	w := do(router, http.MethodGet, "/api/v1/search/jobs?search=go", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestSearchPastResultWindow(t *testing.T) {
	router, _ := newTestRouter(t, nil)
	w := do(router, http.MethodGet, "/api/v1/search/jobs?search=go&page=1001", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid page.")
}

func TestLocationList_Cached(t *testing.T) {
	mr := miniredis.RunT(t)
	router, s := newTestRouter(t, cache.NewRedisCache(cache.NewRedisClient(cache.RedisConfig{Addr: mr.Addr()})))

	s.locations.EXPECT().List(gomock.Any(), gomock.Any()).
		Return([]*models.Location{{ID: 1, Name: "Seattle"}}, int64(1), nil).Times(1)

	first := do(router, http.MethodGet, "/api/v1/locations", "", "")
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))

	second := do(router, http.MethodGet, "/api/v1/locations", "", "")
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestPing(t *testing.T) {
	router, _ := newTestRouter(t, nil)
	w := do(router, http.MethodGet, "/ping", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}
