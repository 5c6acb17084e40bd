package sqlite

import (
	"fmt"
	"strings"

	repo "deal-tracker/internal/deal/repository"
)

const defaultOrderBy = "created_at DESC"

// allowedOrderBy whitelists ORDER BY clauses; anything else falls back to newest first.
var allowedOrderBy = map[string]bool{
	"created_at DESC": true,
	"created_at ASC":  true,
	"address ASC":     true,
	"address DESC":    true,
}

// buildGetOneQuery builds WHERE clause + args for GetOneDeal.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneDealOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.ID != "" {
		conditions = append(conditions, "id = ?")
		args = append(args, opt.ID)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the ORDER + LIMIT + OFFSET clause for ListDeals.
func (r *implRepository) buildListQuery(opt repo.ListDealsOptions) (string, []any) {
	var parts []string
	var args []any

	orderBy := opt.OrderBy
	if !allowedOrderBy[orderBy] {
		orderBy = defaultOrderBy
	}
	// rowid breaks ties between rows created in the same instant
	parts = append(parts, fmt.Sprintf("ORDER BY %s, rowid DESC", orderBy))

	switch {
	case opt.Limit > 0:
		parts = append(parts, "LIMIT ?")
		args = append(args, opt.Limit)
	case opt.Offset > 0:
		// SQLite requires a LIMIT before OFFSET
		parts = append(parts, "LIMIT -1")
	}
	if opt.Offset > 0 {
		parts = append(parts, "OFFSET ?")
		args = append(args, opt.Offset)
	}

	return strings.Join(parts, " "), args
}
