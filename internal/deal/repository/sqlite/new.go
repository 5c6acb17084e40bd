package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"deal-tracker/internal/deal/repository"
	"deal-tracker/pkg/log"
	pkgSqlite "deal-tracker/pkg/sqlite"
)

// schema is applied on every start; statements must stay idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS deals (
		id         TEXT PRIMARY KEY,
		address    TEXT NOT NULL,
		data       TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_deals_created_at ON deals(created_at)`,
}

type implRepository struct {
	db  *sql.DB
	l   log.Logger
	now func() time.Time
}

// New creates a new SQLite-backed Repository for the deal domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("deal/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l, now: time.Now}
}

// Migrate creates the deals table.
func Migrate(ctx context.Context, db *sql.DB) error {
	return pkgSqlite.Migrate(ctx, db, schema)
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("deal/repository/sqlite.%s", method)
}
