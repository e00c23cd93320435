package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/ticketmart/internal/models"
	"github.com/example/ticketmart/internal/ports/secondary"
)

// statsTables lists the warehouse tables in display order.
var statsTables = []struct {
	name  string
	label string
}{
	{"dim_users", "Users"},
	{"dim_technicians", "Technicians"},
	{"dim_locations", "Locations"},
	{"dim_states", "States"},
	{"dim_dates", "Dates"},
	{"fact_interactions", "Interactions"},
	{"bridge_ims_inc", "IMS-INC Links"},
	{"load_runs", "Load Runs"},
}

// StatsRepository implements secondary.StatsReader with SQLite.
type StatsRepository struct {
	db *sql.DB
}

// NewStatsRepository creates a new SQLite stats repository.
func NewStatsRepository(db *sql.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// TableCounts reports row counts for the warehouse tables. A table that does
// not exist is reported as unavailable; nothing is ever created here, so the
// reader is safe against an empty or foreign database file.
func (r *StatsRepository) TableCounts(ctx context.Context) ([]models.TableCount, error) {
	counts := make([]models.TableCount, 0, len(statsTables))

	for _, t := range statsTables {
		tc := models.TableCount{Table: t.name, Label: t.label}

		var name string
		err := r.db.QueryRowContext(ctx,
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?",
			t.name,
		).Scan(&name)
		if err == sql.ErrNoRows {
			counts = append(counts, tc)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to check table %s: %w", t.name, err)
		}

		if err := r.db.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM "+t.name,
		).Scan(&tc.Count); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", t.name, err)
		}
		tc.Available = true

		counts = append(counts, tc)
	}

	return counts, nil
}

// Ensure StatsRepository implements the interface.
var _ secondary.StatsReader = (*StatsRepository)(nil)
