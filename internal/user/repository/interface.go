package repository

import (
	"context"

	"deal-tracker/internal/user"
)

// Repository is the composed interface for the user data store.
type Repository interface {
	UserRepository
}

// UserRepository defines all data access methods for the User entity.
type UserRepository interface {
	// CreateUser inserts the user unless one with the same Sub exists, and returns the stored
	// row either way. created reports whether this call inserted it.
	CreateUser(ctx context.Context, opt CreateUserOptions) (u user.User, created bool, err error)
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (user.User, error)
}
