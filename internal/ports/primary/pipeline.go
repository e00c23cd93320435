// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces through which the outside world drives the application.
package primary

import (
	"context"

	"github.com/example/ticketmart/internal/models"
)

// PipelineService defines the primary port for feed ingestion.
type PipelineService interface {
	// Ingest runs the three-phase load (interactions, sys_id index, links)
	// and records it as a load run. A feed without a file skips its phase;
	// only storage failures abort the run.
	Ingest(ctx context.Context, req IngestRequest) (*IngestResponse, error)
}

// IngestRequest carries explicit feed paths. An empty field means discover
// the newest export for that feed instead.
type IngestRequest struct {
	InteractionsPath string
	LinksPath        string
	SysIDsPath       string
}

// IngestResponse summarizes a completed load run. File fields are empty for
// phases that were skipped.
type IngestResponse struct {
	RunID            string
	InteractionsFile string
	LinksFile        string
	SysIDsFile       string
	Interactions     models.InteractionLoadStats
	Links            models.LinkLoadStats
	SysIDsIndexed    int
}
