package sqlite

import (
	"database/sql"

	"campus-task-assistant/internal/task/repository"
	pkgLog "campus-task-assistant/pkg/log"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100

	// Fixed width so lexical order matches chronological order.
	createdAtLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

type implRepository struct {
	db *sql.DB
	l  pkgLog.Logger
}

// New creates a SQLite-backed task repository. db must already be migrated.
func New(db *sql.DB, l pkgLog.Logger) repository.Repository {
	if db == nil {
		panic("sqlite repository: db is nil")
	}
	return &implRepository{
		db: db,
		l:  l,
	}
}
