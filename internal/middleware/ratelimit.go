package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"inventory-tracker/pkg/response"
)

// SignupRateLimit throttles signups per client IP. A non-positive
// rate_limit.signup_per_min disables it.
func (m Middleware) SignupRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.signupLimit != nil && !m.signupLimit.Allow(c.ClientIP()) {
			m.l.Warnf(c.Request.Context(), "signup rate limit exceeded for %s", c.ClientIP())
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}

// rateLimiter keeps one token bucket per key; idle keys expire.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	if requestsPerMin <= 0 {
		return nil
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			10000,         // Max tracked clients
			nil,           // No eviction callback
			time.Minute*5, // TTL: 5 minutes
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0), // Per second
		burst: max(1, requestsPerMin/10),
	}
}

func (rl *rateLimiter) Allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}
