package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"deal-tracker/internal/user/repository"
	"deal-tracker/pkg/log"
	pkgSqlite "deal-tracker/pkg/sqlite"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id         TEXT PRIMARY KEY,
		sub        TEXT NOT NULL UNIQUE,
		name       TEXT NOT NULL,
		nickname   TEXT NOT NULL,
		email      TEXT NOT NULL,
		picture    TEXT NOT NULL,
		is_admin   INTEGER NOT NULL DEFAULT 0,
		properties TEXT NOT NULL DEFAULT '[]',
		created_at TEXT NOT NULL
	)`,
}

type implRepository struct {
	db  *sql.DB
	l   log.Logger
	now func() time.Time
}

// New creates a new SQLite-backed Repository for the user domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("user/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l, now: time.Now}
}

// Migrate creates the users table.
func Migrate(ctx context.Context, db *sql.DB) error {
	return pkgSqlite.Migrate(ctx, db, schema)
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("user/repository/sqlite.%s", method)
}
