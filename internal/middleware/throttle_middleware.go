package middleware

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/jobsearch/internal/config"
	"github.com/yigit/jobsearch/internal/pkg/apperrors"
)

// WindowCounter counts hits in fixed time windows.
type WindowCounter interface {
	IncrWindow(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

// ThrottleRule limits one scope to Rate.
type ThrottleRule struct {
	Scope string
	Rate  config.Rate
}

// ThrottleRules holds the rules for anonymous and authenticated callers.
type ThrottleRules struct {
	Anon []ThrottleRule
	User []ThrottleRule
}

// NewThrottleRules builds the four scopes from configuration.
func NewThrottleRules(cfg *config.Config) (ThrottleRules, error) {
	scopes := []struct {
		name  string
		value string
		user  bool
	}{
		{"anon_sustained", cfg.Throttle.AnonSustained, false},
		{"anon_burst", cfg.Throttle.AnonBurst, false},
		{"user_sustained", cfg.Throttle.UserSustained, true},
		{"user_burst", cfg.Throttle.UserBurst, true},
	}

	var rules ThrottleRules
	for _, s := range scopes {
		rate, err := config.ParseRate(s.value)
		if err != nil {
			return ThrottleRules{}, fmt.Errorf("throttle scope %s: %w", s.name, err)
		}
		rule := ThrottleRule{Scope: s.name, Rate: rate}
		if s.user {
			rules.User = append(rules.User, rule)
		} else {
			rules.Anon = append(rules.Anon, rule)
		}
	}
	return rules, nil
}

// Throttle rejects callers over any of their scope rates with 429. It must
// run after Authenticate. Anonymous callers are keyed by client IP. A nil
// counter disables throttling, and counter errors let the request through.
func Throttle(counter WindowCounter, rules ThrottleRules, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if counter == nil {
			c.Next()
			return
		}

		scoped, ident := rules.Anon, c.ClientIP()
		if user := CurrentUser(c); user != nil {
			scoped, ident = rules.User, strconv.FormatInt(user.ID, 10)
		}

		var wait time.Duration
		for _, rule := range scoped {
			key := "throttle:" + rule.Scope + ":" + ident
			count, ttl, err := counter.IncrWindow(c.Request.Context(), key, rule.Rate.Period)
			if err != nil {
				log.Warn().Err(err).Str("scope", rule.Scope).Msg("Throttle counter unavailable")
				continue
			}
			if count > int64(rule.Rate.Requests) && ttl > wait {
				wait = ttl
			}
		}

		if wait > 0 {
			seconds := int(math.Ceil(wait.Seconds()))
			c.Header("Retry-After", strconv.Itoa(seconds))
			HandleAPIError(c, &apperrors.CustomError{
				Err:     apperrors.ErrThrottled,
				Message: fmt.Sprintf("Request was throttled. Expected available in %d seconds.", seconds),
			})
			return
		}

		c.Next()
	}
}
