package session

import (
	"context"

	"quicktask/internal/model"
)

// Validator resolves a session cookie value to the caller's scope.
type Validator interface {
	Validate(ctx context.Context, sessionID string) (model.Scope, error)
}

// Store looks up sessions that have not expired yet.
type Store interface {
	FindActive(ctx context.Context, sessionID string) (model.Scope, error)
}
