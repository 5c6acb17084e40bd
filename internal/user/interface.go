package user

import (
	"context"

	"deal-tracker/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Login creates the user on first sight (keyed by Sub) and issues a session token.
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailUserOutput, error)
	// IsAdmin is false for unknown users.
	IsAdmin(ctx context.Context, id string) (bool, error)
	// GrantAccess checks the shared access password and issues a guest session.
	GrantAccess(ctx context.Context, input AccessInput) (AccessOutput, error)
}
