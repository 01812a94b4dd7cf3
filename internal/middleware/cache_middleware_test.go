package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/jobsearch/internal/config"
	"github.com/yigit/jobsearch/internal/pkg/cache"
)

func newMiniredisCache(t *testing.T) (*miniredis.Miniredis, *cache.RedisCache) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := cache.NewRedisClient(cache.RedisConfig{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, cache.NewRedisCache(client)
}

func TestResponseCache(t *testing.T) {
	mr, store := newMiniredisCache(t)

	hits := 0
	r := gin.New()
	r.Use(ResponseCache(store, 2*time.Minute, zerolog.Nop()))
	r.GET("/jobs", func(c *gin.Context) {
		hits++
		c.JSON(http.StatusOK, gin.H{"hits": hits})
	})
	r.GET("/missing", func(c *gin.Context) {
		hits++
		c.Status(http.StatusNotFound)
	})
	r.POST("/jobs", func(c *gin.Context) {
		hits++
		c.Status(http.StatusCreated)
	})

	do := func(method, path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
		return w
	}

	first := do(http.MethodGet, "/jobs?page=2")
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))
	second := do(http.MethodGet, "/jobs?page=2")
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Contains(t, second.Header().Get("Content-Type"), "application/json")
	assert.Equal(t, 1, hits)

	assert.True(t, mr.Exists("cache:/jobs?page=2"))
	assert.InDelta(t, 120, mr.TTL("cache:/jobs?page=2").Seconds(), 1)

	// A different query string is a different key.
	assert.Equal(t, "MISS", do(http.MethodGet, "/jobs?page=3").Header().Get("X-Cache"))
	assert.Equal(t, 2, hits)

	do(http.MethodGet, "/missing")
	do(http.MethodGet, "/missing")
	assert.Equal(t, 4, hits)

	do(http.MethodPost, "/jobs")
	do(http.MethodPost, "/jobs")
	assert.Equal(t, 6, hits)
}

func TestResponseCache_StoreDown(t *testing.T) {
	mr, store := newMiniredisCache(t)
	mr.Close()

	r := gin.New()
	r.Use(ResponseCache(store, time.Minute, zerolog.Nop()))
	r.GET("/jobs", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jobs", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestThrottle(t *testing.T) {
	_, store := newMiniredisCache(t)
	rules := ThrottleRules{
		Anon: []ThrottleRule{{Scope: "anon_burst", Rate: config.Rate{Requests: 2, Period: time.Minute}}},
		User: []ThrottleRule{{Scope: "user_burst", Rate: config.Rate{Requests: 3, Period: time.Minute}}},
	}

	r := gin.New()
	r.Use(newStubAuth().Authenticate(), Throttle(store, rules, zerolog.Nop()))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func(header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, do("").Code)
	assert.Equal(t, http.StatusOK, do("").Code)
	w := do("")
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
	assert.Contains(t, decodeError(t, w).Error.Message, "Expected available in 60 seconds.")

	// Authenticated callers have their own budget.
	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, do("Bearer good.jwt.token").Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, do("Bearer good.jwt.token").Code)
}

func TestThrottle_NilCounter(t *testing.T) {
	r := gin.New()
	r.Use(Throttle(nil, ThrottleRules{}, zerolog.Nop()))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNewThrottleRules(t *testing.T) {
	cfg := &config.Config{}
	cfg.Throttle.AnonSustained = "1000/day"
	cfg.Throttle.AnonBurst = "60/min"
	cfg.Throttle.UserSustained = "10000/day"
	cfg.Throttle.UserBurst = "120/min"

	rules, err := NewThrottleRules(cfg)
	require.NoError(t, err)
	require.Len(t, rules.Anon, 2)
	require.Len(t, rules.User, 2)
	assert.Equal(t, config.Rate{Requests: 60, Period: time.Minute}, rules.Anon[1].Rate)

	cfg.Throttle.UserBurst = "lots"
	_, err = NewThrottleRules(cfg)
	assert.Error(t, err)
}
