package postgre

import (
	"database/sql"
	"fmt"

	"quicktask/internal/planner/repository"
	pkgLog "quicktask/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  pkgLog.Logger
}

// New creates a Postgres-backed TaskRepository.
func New(db *sql.DB, l pkgLog.Logger) repository.TaskRepository {
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("repository.postgre.%s", method)
}
