package model

import (
	"context"

	"deal-tracker/pkg/scope"
)

// Scope identifies the caller of a use case.
type Scope struct {
	UserID  string
	Email   string
	IsAdmin bool
}

// NewScope builds a Scope from a verified session token.
func NewScope(p scope.Payload) Scope {
	return Scope{UserID: p.UserID, Email: p.Email, IsAdmin: p.IsAdmin}
}

// Anonymous reports whether no user is attached.
func (s Scope) Anonymous() bool {
	return s.UserID == ""
}

type scopeKey struct{}

// SetScopeToContext returns a copy of ctx carrying sc.
func SetScopeToContext(ctx context.Context, sc Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, sc)
}

// GetScopeFromContext returns the Scope stored by the auth middleware.
func GetScopeFromContext(ctx context.Context) (Scope, bool) {
	sc, ok := ctx.Value(scopeKey{}).(Scope)
	return sc, ok
}
