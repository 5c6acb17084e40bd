package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"deal-tracker/internal/user"
	repo "deal-tracker/internal/user/repository"
)

const selectColumns = `SELECT id, sub, name, nickname, email, picture, is_admin, properties, created_at FROM users`

// CreateUser inserts the user unless the sub is already known. Concurrent first logins for one
// sub resolve to a single row.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (user.User, bool, error) {
	u := opt.User
	if u.Properties == nil {
		u.Properties = []string{}
	}
	props, err := json.Marshal(u.Properties)
	if err != nil {
		r.l.Errorf(ctx, "%s encode properties: %v", r.dsn("CreateUser"), err)
		return user.User{}, false, repo.ErrFailedToInsert
	}

	const query = `
		INSERT INTO users (id, sub, name, nickname, email, picture, is_admin, properties, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(sub) DO NOTHING`
	res, err := r.db.ExecContext(ctx, query,
		u.ID, u.Sub, u.Name, u.Nickname, u.Email, u.Picture, u.IsAdmin, string(props),
		r.now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return user.User{}, false, repo.ErrFailedToInsert
	}
	n, _ := res.RowsAffected()

	stored, err := r.GetOneUser(ctx, repo.GetOneUserOptions{Sub: u.Sub})
	if err != nil {
		return user.User{}, false, err
	}
	if stored.ID == "" {
		r.l.Errorf(ctx, "%s: row for sub %s missing after insert", r.dsn("CreateUser"), u.Sub)
		return user.User{}, false, repo.ErrFailedToInsert
	}
	return stored, n > 0, nil
}

// GetOneUser retrieves a single User by the provided filters (AND condition).
// Returns zero-value User when not found.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (user.User, error) {
	var conditions []string
	var args []any
	if opt.ID != "" {
		conditions = append(conditions, "id = ?")
		args = append(args, opt.ID)
	}
	if opt.Sub != "" {
		conditions = append(conditions, "sub = ?")
		args = append(args, opt.Sub)
	}
	if len(conditions) == 0 {
		return user.User{}, nil
	}

	query := fmt.Sprintf("%s WHERE %s LIMIT 1", selectColumns, strings.Join(conditions, " AND "))

	var (
		u         user.User
		props     string
		createdAt string
	)
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&u.ID, &u.Sub, &u.Name, &u.Nickname, &u.Email, &u.Picture, &u.IsAdmin, &props, &createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return user.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return user.User{}, repo.ErrFailedToGet
	}

	if err := json.Unmarshal([]byte(props), &u.Properties); err != nil {
		r.l.Errorf(ctx, "%s decode properties: %v", r.dsn("GetOneUser"), err)
		return user.User{}, repo.ErrFailedToGet
	}
	if u.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		r.l.Errorf(ctx, "%s parse created_at: %v", r.dsn("GetOneUser"), err)
		return user.User{}, repo.ErrFailedToGet
	}
	return u, nil
}
