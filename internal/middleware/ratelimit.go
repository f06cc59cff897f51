package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"quicktask/pkg/response"
)

const (
	defaultTrackedClients  = 10000
	defaultTrackedLifetime = 10 * time.Minute
)

// rateLimiter keeps one token bucket per client; idle buckets expire from the LRU.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin, size int, ttl time.Duration) *rateLimiter {
	if size <= 0 {
		size = defaultTrackedClients
	}
	if ttl <= 0 {
		ttl = defaultTrackedLifetime
	}
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](size, nil, ttl),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}

func (rl *rateLimiter) allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}

// RateLimit throttles per signed-in user, or per client IP for anonymous callers.
// It must run after Auth or OptionalAuth to see the user.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}

		key := "ip:" + c.ClientIP()
		if sc := GetScope(c); sc.IsAuthenticated() {
			key = "user:" + sc.UserID
		}

		if !m.limiter.allow(key) {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: limit exceeded for %s", key)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}
