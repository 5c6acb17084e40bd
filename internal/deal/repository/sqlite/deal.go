package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"deal-tracker/internal/deal"
	repo "deal-tracker/internal/deal/repository"
)

const selectColumns = `SELECT id, data, created_at, updated_at FROM deals`

// CreateDeal inserts a new Deal row and returns the stored entity.
func (r *implRepository) CreateDeal(ctx context.Context, opt repo.CreateDealOptions) (deal.Deal, error) {
	d := opt.Deal
	now := r.now().UTC()
	d.CreatedAt, d.UpdatedAt = now, now

	data, err := encodeDeal(d)
	if err != nil {
		r.l.Errorf(ctx, "%s encode: %v", r.dsn("CreateDeal"), err)
		return deal.Deal{}, repo.ErrFailedToInsert
	}

	const query = `INSERT INTO deals (id, address, data, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, d.ID, d.Address, data, formatTime(now), formatTime(now)); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateDeal"), err)
		return deal.Deal{}, repo.ErrFailedToInsert
	}
	return d, nil
}

// GetOneDeal retrieves a single Deal by the provided filters (AND condition).
// Returns zero-value Deal (ID == "") when not found.
func (r *implRepository) GetOneDeal(ctx context.Context, opt repo.GetOneDealOptions) (deal.Deal, error) {
	if opt.AddressMatch != nil {
		return r.getOneByAddress(ctx, opt)
	}

	where, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("%s WHERE %s LIMIT 1", selectColumns, where)

	d, err := scanDeal(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return deal.Deal{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneDeal"), err)
		return deal.Deal{}, repo.ErrFailedToGet
	}
	return d, nil
}

// getOneByAddress scans addresses in insertion order and returns the first one AddressMatch
// accepts. SQLite has no built-in REGEXP, so matching happens here.
func (r *implRepository) getOneByAddress(ctx context.Context, opt repo.GetOneDealOptions) (deal.Deal, error) {
	where, args := r.buildGetOneQuery(repo.GetOneDealOptions{ID: opt.ID})
	query := fmt.Sprintf("SELECT id, address FROM deals WHERE %s ORDER BY created_at ASC", where)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneDeal"), err)
		return deal.Deal{}, repo.ErrFailedToGet
	}

	var matchID string
	for rows.Next() {
		var id, address string
		if err := rows.Scan(&id, &address); err != nil {
			rows.Close()
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("GetOneDeal"), err)
			return deal.Deal{}, repo.ErrFailedToGet
		}
		if opt.AddressMatch.MatchString(address) {
			matchID = id
			break
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("GetOneDeal"), err)
		return deal.Deal{}, repo.ErrFailedToGet
	}

	if matchID == "" {
		return deal.Deal{}, nil
	}
	return r.GetOneDeal(ctx, repo.GetOneDealOptions{ID: matchID})
}

// ListDeals returns a page of Deals and the total count.
func (r *implRepository) ListDeals(ctx context.Context, opt repo.ListDealsOptions) ([]deal.Deal, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM deals`).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListDeals"), err)
		return nil, 0, repo.ErrFailedToList
	}

	mods, args := r.buildListQuery(opt)
	rows, err := r.db.QueryContext(ctx, selectColumns+" "+mods, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListDeals"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	deals := make([]deal.Deal, 0)
	for rows.Next() {
		d, err := scanDeal(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListDeals"), err)
			return nil, 0, repo.ErrFailedToList
		}
		deals = append(deals, d)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListDeals"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return deals, total, nil
}

// UpdateDeal overwrites a Deal by ID and returns the stored entity.
// Returns zero-value Deal when no row has that ID.
func (r *implRepository) UpdateDeal(ctx context.Context, opt repo.UpdateDealOptions) (deal.Deal, error) {
	d := opt.Deal
	d.ID = opt.ID
	d.UpdatedAt = r.now().UTC()

	data, err := encodeDeal(d)
	if err != nil {
		r.l.Errorf(ctx, "%s encode: %v", r.dsn("UpdateDeal"), err)
		return deal.Deal{}, repo.ErrFailedToUpdate
	}

	const query = `UPDATE deals SET address = ?, data = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, d.Address, data, formatTime(d.UpdatedAt), opt.ID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateDeal"), err)
		return deal.Deal{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return deal.Deal{}, nil
	}

	return r.GetOneDeal(ctx, repo.GetOneDealOptions{ID: opt.ID})
}

// DeleteDeal removes a Deal by ID.
func (r *implRepository) DeleteDeal(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM deals WHERE id = ?`, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteDeal"), err)
		return false, repo.ErrFailedToDelete
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("DeleteDeal"), err)
		return false, repo.ErrFailedToDelete
	}
	return n > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDeal(row rowScanner) (deal.Deal, error) {
	var (
		id, data             string
		createdAt, updatedAt string
	)
	if err := row.Scan(&id, &data, &createdAt, &updatedAt); err != nil {
		return deal.Deal{}, err
	}

	var d deal.Deal
	if err := json.Unmarshal([]byte(data), &d); err != nil {
		return deal.Deal{}, fmt.Errorf("decode deal %s: %w", id, err)
	}
	d.ID = id

	var err error
	if d.CreatedAt, err = parseTime(createdAt); err != nil {
		return deal.Deal{}, err
	}
	if d.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return deal.Deal{}, err
	}
	return d, nil
}

func encodeDeal(d deal.Deal) (string, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// timeLayout is fixed width so that created_at sorts chronologically as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t, nil
}
