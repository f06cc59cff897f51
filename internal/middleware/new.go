package middleware

import (
	"time"

	"quicktask/internal/session"
	"quicktask/pkg/log"
)

const DefaultCookieName = "auth_session"

// Config carries the middleware settings taken from the service config.
type Config struct {
	CookieName string

	RateLimitEnabled bool
	RequestsPerMin   int
	TrackedClients   int
	TrackedLifetime  time.Duration
}

type Middleware struct {
	l          log.Logger
	sessions   session.Validator
	cookieName string
	limiter    *rateLimiter
}

func New(l log.Logger, sessions session.Validator, cfg Config) Middleware {
	if cfg.CookieName == "" {
		cfg.CookieName = DefaultCookieName
	}

	mw := Middleware{
		l:          l,
		sessions:   sessions,
		cookieName: cfg.CookieName,
	}
	if cfg.RateLimitEnabled && cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin, cfg.TrackedClients, cfg.TrackedLifetime)
	}
	return mw
}
