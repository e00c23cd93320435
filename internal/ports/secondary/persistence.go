// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"

	"github.com/example/ticketmart/internal/models"
)

// InteractionStore defines the secondary port for fact and dimension loading.
type InteractionStore interface {
	// LoadInteractions loads a batch of normalized interactions atomically,
	// creating dimension rows as needed along the way. Loading a number
	// that already exists replaces the whole fact row.
	LoadInteractions(ctx context.Context, interactions []*models.Interaction) (*models.InteractionLoadStats, error)
}

// LinkStore defines the secondary port for bridge loading.
type LinkStore interface {
	// LoadLinks loads a batch of enriched links atomically. A pair that is
	// already present is skipped, never rewritten.
	LoadLinks(ctx context.Context, links []*models.Link) (*models.LinkLoadStats, error)
}

// RunStore defines the secondary port for the load-run audit trail.
type RunStore interface {
	// RecordStart persists a load run in the running state.
	RecordStart(ctx context.Context, run *models.LoadRun) error

	// RecordFinish updates the run with its terminal status, counts and
	// finish time.
	RecordFinish(ctx context.Context, run *models.LoadRun) error

	// List retrieves the most recent load runs, newest first.
	List(ctx context.Context, limit int) ([]*models.LoadRun, error)
}

// StatsReader defines the secondary port for warehouse statistics.
type StatsReader interface {
	// TableCounts reports row counts for the warehouse tables. A table that
	// does not exist yet is reported as unavailable; the reader never
	// creates or migrates schema.
	TableCounts(ctx context.Context) ([]models.TableCount, error)
}
