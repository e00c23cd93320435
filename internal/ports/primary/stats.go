package primary

import (
	"context"

	"github.com/example/ticketmart/internal/models"
)

// StatsService defines the primary port for warehouse statistics.
type StatsService interface {
	// Stats reports current row counts per warehouse table. It never
	// creates or migrates schema; absent tables come back unavailable.
	Stats(ctx context.Context) ([]models.TableCount, error)
}
