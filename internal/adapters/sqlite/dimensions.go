// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/ticketmart/internal/core/datedim"
)

// DBTX is the subset of database/sql shared by *sql.DB and *sql.Tx. The
// dimension resolver runs over it, so the same code serves standalone use
// and the loaders' phase transactions.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// DimensionRepository resolves and creates dimension rows.
type DimensionRepository struct {
	db DBTX
}

// NewDimensionRepository creates a dimension repository over db, which may
// be a *sql.DB or an open *sql.Tx.
func NewDimensionRepository(db DBTX) *DimensionRepository {
	return &DimensionRepository{db: db}
}

// EnsureUser inserts the user dimension row when absent and reports whether
// a row was created. The first write for an id wins; a later, different
// display name is ignored.
func (r *DimensionRepository) EnsureUser(ctx context.Context, id, name string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO dim_users (user_id, user_name) VALUES (?, ?)",
		id, name,
	)
	if err != nil {
		return false, fmt.Errorf("failed to ensure user %s: %w", id, err)
	}

	n, _ := res.RowsAffected()
	return n > 0, nil
}

// EnsureTechnician inserts the technician dimension row when absent and
// reports whether a row was created. First write wins, as with users.
func (r *DimensionRepository) EnsureTechnician(ctx context.Context, id, name string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO dim_technicians (tech_id, tech_name) VALUES (?, ?)",
		id, name,
	)
	if err != nil {
		return false, fmt.Errorf("failed to ensure technician %s: %w", id, err)
	}

	n, _ := res.RowsAffected()
	return n > 0, nil
}

// ResolveLocation resolves a location name to its surrogate id, creating the
// row on first sight. Callers skip the call entirely for empty names.
func (r *DimensionRepository) ResolveLocation(ctx context.Context, name string) (int64, bool, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO dim_locations (location_name) VALUES (?)",
		name,
	)
	if err != nil {
		return 0, false, fmt.Errorf("failed to ensure location %q: %w", name, err)
	}
	n, _ := res.RowsAffected()

	var id int64
	err = r.db.QueryRowContext(ctx,
		"SELECT location_id FROM dim_locations WHERE location_name = ?",
		name,
	).Scan(&id)
	if err != nil {
		return 0, false, fmt.Errorf("failed to resolve location %q: %w", name, err)
	}

	return id, n > 0, nil
}

// ResolveState resolves a state name to its surrogate id, creating the row
// on first sight. Callers skip the call entirely for empty names.
func (r *DimensionRepository) ResolveState(ctx context.Context, name string) (int64, bool, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO dim_states (state_name) VALUES (?)",
		name,
	)
	if err != nil {
		return 0, false, fmt.Errorf("failed to ensure state %q: %w", name, err)
	}
	n, _ := res.RowsAffected()

	var id int64
	err = r.db.QueryRowContext(ctx,
		"SELECT state_id FROM dim_states WHERE state_name = ?",
		name,
	).Scan(&id)
	if err != nil {
		return 0, false, fmt.Errorf("failed to resolve state %q: %w", name, err)
	}

	return id, n > 0, nil
}

// EnsureDate inserts the calendar row for a YYYYMMDD key when absent and
// reports whether a row was created. Key 0 means no date and is a no-op.
func (r *DimensionRepository) EnsureDate(ctx context.Context, key int) (bool, error) {
	if key == 0 {
		return false, nil
	}

	row, err := datedim.FromKey(key)
	if err != nil {
		return false, fmt.Errorf("failed to ensure date: %w", err)
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO dim_dates
			(date_id, full_date, year, quarter, month, month_name, week_of_year,
			 day_of_month, day_of_week, day_name, is_weekend)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		row.ID, row.FullDate, row.Year, row.Quarter, row.Month, row.MonthName,
		row.WeekOfYear, row.DayOfMonth, row.DayOfWeek, row.DayName, row.Weekend,
	)
	if err != nil {
		return false, fmt.Errorf("failed to ensure date %d: %w", key, err)
	}

	n, _ := res.RowsAffected()
	return n > 0, nil
}

// nullString maps "" to NULL for optional text columns.
func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
