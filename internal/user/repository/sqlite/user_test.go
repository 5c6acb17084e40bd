package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"deal-tracker/internal/user"
	repo "deal-tracker/internal/user/repository"
	"deal-tracker/pkg/log"
	pkgSqlite "deal-tracker/pkg/sqlite"
)

func newTestRepo(t *testing.T) *implRepository {
	t.Helper()
	ctx := context.Background()

	db, err := pkgSqlite.Open(ctx, filepath.Join(t.TempDir(), "users.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := Migrate(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return New(db, log.NewNop()).(*implRepository)
}

func TestCreateUser_Idempotent(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	u := user.User{ID: "auth0|1", Sub: "auth0|1", Name: "Ada", Nickname: "ada", Email: "ada@example.com", Picture: "p.png", IsAdmin: true}

	first, created, err := r.CreateUser(ctx, repo.CreateUserOptions{User: u})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if !created || first.ID != "auth0|1" || !first.IsAdmin || first.CreatedAt.IsZero() {
		t.Errorf("unexpected first insert: %+v (created %v)", first, created)
	}
	if first.Properties == nil || len(first.Properties) != 0 {
		t.Errorf("expected empty properties, got %#v", first.Properties)
	}

	u.Name = "Changed"
	second, created, err := r.CreateUser(ctx, repo.CreateUserOptions{User: u})
	if err != nil {
		t.Fatalf("CreateUser again: %v", err)
	}
	if created {
		t.Error("second insert must not create")
	}
	if second.Name != "Ada" {
		t.Errorf("existing row must be returned untouched, got name %q", second.Name)
	}
}

func TestGetOneUser(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	if _, _, err := r.CreateUser(ctx, repo.CreateUserOptions{User: user.User{
		ID: "u-1", Sub: "sub-1", Name: "A", Nickname: "a", Email: "a@b.com", Picture: "x", Properties: []string{"d-1"},
	}}); err != nil {
		t.Fatal(err)
	}

	byID, err := r.GetOneUser(ctx, repo.GetOneUserOptions{ID: "u-1"})
	if err != nil || byID.Sub != "sub-1" {
		t.Fatalf("by id: %+v (err %v)", byID, err)
	}
	if len(byID.Properties) != 1 || byID.Properties[0] != "d-1" {
		t.Errorf("properties not round-tripped: %v", byID.Properties)
	}

	bySub, err := r.GetOneUser(ctx, repo.GetOneUserOptions{Sub: "sub-1"})
	if err != nil || bySub.ID != "u-1" {
		t.Errorf("by sub: %+v (err %v)", bySub, err)
	}

	none, err := r.GetOneUser(ctx, repo.GetOneUserOptions{ID: "u-1", Sub: "other"})
	if err != nil || none.ID != "" {
		t.Errorf("AND filter should miss, got %+v (err %v)", none, err)
	}

	empty, err := r.GetOneUser(ctx, repo.GetOneUserOptions{})
	if err != nil || empty.ID != "" {
		t.Errorf("no filter should return zero value, got %+v", empty)
	}
}
