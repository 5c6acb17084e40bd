package repository

import (
	"regexp"

	"deal-tracker/internal/deal"
)

// CreateDealOptions holds the deal to insert. ID must already be set.
type CreateDealOptions struct {
	Deal deal.Deal
}

// GetOneDealOptions holds filter parameters for fetching a single Deal.
// All non-empty fields are applied as AND conditions.
type GetOneDealOptions struct {
	ID string
	// AddressMatch selects the first deal (oldest first) whose address it matches.
	AddressMatch *regexp.Regexp
}

// ListDealsOptions holds pagination parameters for listing Deals. Limit 0 means no limit.
type ListDealsOptions struct {
	Limit   int
	Offset  int
	OrderBy string
}

// UpdateDealOptions replaces the stored deal with ID by Deal.
type UpdateDealOptions struct {
	ID   string
	Deal deal.Deal
}
