package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"quicktask/internal/model"
	"quicktask/internal/session"
	pkgLog "quicktask/pkg/log"
)

const findActiveQuery = `
SELECT s.user_id, COALESCE(u.email, '')
FROM session s
LEFT JOIN users u ON u.id = s.user_id
WHERE s.id = $1 AND s.expires_at > NOW()`

type implStore struct {
	db *sql.DB
	l  pkgLog.Logger
}

// New creates a session Store reading the session table.
func New(db *sql.DB, l pkgLog.Logger) session.Store {
	return &implStore{db: db, l: l}
}

func (s *implStore) FindActive(ctx context.Context, sessionID string) (model.Scope, error) {
	var sc model.Scope
	err := s.db.QueryRowContext(ctx, findActiveQuery, sessionID).Scan(&sc.UserID, &sc.Username)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Scope{}, session.ErrSessionInvalid
	}
	if err != nil {
		return model.Scope{}, fmt.Errorf("session.postgre.FindActive: %w", err)
	}
	sc.SessionID = sessionID
	return sc, nil
}
