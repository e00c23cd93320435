package primary

import (
	"context"

	"github.com/example/ticketmart/internal/models"
)

// RunService defines the primary port for load-run history.
type RunService interface {
	// RecentRuns lists the most recent load runs, newest first.
	RecentRuns(ctx context.Context, limit int) ([]*models.LoadRun, error)
}
