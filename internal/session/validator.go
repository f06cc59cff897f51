package session

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"quicktask/internal/model"
	pkgLog "quicktask/pkg/log"
)

const (
	defaultCacheSize = 1024
	defaultCacheTTL  = time.Minute
)

type Config struct {
	CacheSize int
	CacheTTL  time.Duration
}

type implValidator struct {
	l     pkgLog.Logger
	store Store
	cache *expirable.LRU[string, model.Scope]
}

// NewValidator wraps store with a short-lived cache of valid sessions.
// Only successful lookups are cached, so a revoked session stays usable
// for at most CacheTTL.
func NewValidator(l pkgLog.Logger, store Store, cfg Config) Validator {
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = defaultCacheSize
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	return &implValidator{
		l:     l,
		store: store,
		cache: expirable.NewLRU[string, model.Scope](cfg.CacheSize, nil, cfg.CacheTTL),
	}
}

func (v *implValidator) Validate(ctx context.Context, sessionID string) (model.Scope, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return model.Scope{}, ErrMissingSession
	}

	if sc, ok := v.cache.Get(sessionID); ok {
		return sc, nil
	}

	sc, err := v.store.FindActive(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, ErrSessionInvalid) {
			v.l.Errorf(ctx, "session.Validate: %v", err)
		}
		return model.Scope{}, err
	}

	sc.SessionID = sessionID
	v.cache.Add(sessionID, sc)
	return sc, nil
}
