package repository

import "deal-tracker/internal/user"

// CreateUserOptions holds the user to insert.
type CreateUserOptions struct {
	User user.User
}

// GetOneUserOptions holds filter parameters for fetching a single User.
// All non-empty fields are applied as AND conditions.
type GetOneUserOptions struct {
	ID  string
	Sub string
}
