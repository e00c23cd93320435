package app

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/example/ticketmart/internal/core/crossref"
	"github.com/example/ticketmart/internal/core/fieldparse"
	"github.com/example/ticketmart/internal/models"
	"github.com/example/ticketmart/internal/ports/primary"
	"github.com/example/ticketmart/internal/ports/secondary"
)

// PipelineServiceImpl implements the PipelineService interface.
// It orchestrates one ingest run: interactions first, then the sys_id
// lookup, then the links that lookup enriches. Each phase is skipped
// with a warning when its feed is absent; storage errors abort the run.
type PipelineServiceImpl struct {
	catalog      secondary.FeedCatalog
	reader       secondary.FeedReader
	interactions secondary.InteractionStore
	links        secondary.LinkStore
	runs         secondary.RunStore
	baseURL      string
	logger       *slog.Logger
}

// NewPipelineService creates a new pipeline service.
func NewPipelineService(
	catalog secondary.FeedCatalog,
	reader secondary.FeedReader,
	interactions secondary.InteractionStore,
	links secondary.LinkStore,
	runs secondary.RunStore,
	baseURL string,
	logger *slog.Logger,
) *PipelineServiceImpl {
	return &PipelineServiceImpl{
		catalog:      catalog,
		reader:       reader,
		interactions: interactions,
		links:        links,
		runs:         runs,
		baseURL:      baseURL,
		logger:       logger,
	}
}

// Ingest runs the full pipeline and records the run in the audit trail.
// The run row is written before the first phase and finalized whether the
// phases succeed or fail, so interrupted loads stay visible.
func (s *PipelineServiceImpl) Ingest(ctx context.Context, req primary.IngestRequest) (*primary.IngestResponse, error) {
	interactionsPath, err := s.resolvePath("interactions", req.InteractionsPath, s.catalog.LatestInteractions)
	if err != nil {
		return nil, err
	}
	linksPath, err := s.resolvePath("links", req.LinksPath, s.catalog.LatestLinks)
	if err != nil {
		return nil, err
	}
	sysidsPath, err := s.resolvePath("sys_ids", req.SysIDsPath, s.catalog.LatestSysIDs)
	if err != nil {
		return nil, err
	}

	run := &models.LoadRun{
		RunID:            uuid.NewString(),
		StartedAt:        fieldparse.Timestamp(time.Now()),
		Status:           models.RunStatusRunning,
		InteractionsFile: interactionsPath,
		LinksFile:        linksPath,
		SysIDsFile:       sysidsPath,
	}
	if err := s.runs.RecordStart(ctx, run); err != nil {
		return nil, err
	}
	s.logger.Info("starting load run", "run_id", run.RunID)

	resp, phaseErr := s.runPhases(ctx, run, interactionsPath, linksPath, sysidsPath)

	run.FinishedAt = fieldparse.Timestamp(time.Now())
	if phaseErr != nil {
		run.Status = models.RunStatusFailed
		run.Error = phaseErr.Error()
	} else {
		run.Status = models.RunStatusCompleted
	}
	if err := s.runs.RecordFinish(ctx, run); err != nil {
		if phaseErr == nil {
			return nil, err
		}
		s.logger.Warn("failed to finalize load run", "run_id", run.RunID, "error", err)
	}
	if phaseErr != nil {
		return nil, phaseErr
	}

	s.logger.Info("load run completed", "run_id", run.RunID,
		"interactions", run.InteractionsLoaded,
		"links", run.LinksLoaded,
		"sys_ids", run.SysIDsIndexed)
	return resp, nil
}

// runPhases executes the three load phases in order, filling in the
// response and the run's counters as each phase completes.
func (s *PipelineServiceImpl) runPhases(ctx context.Context, run *models.LoadRun, interactionsPath, linksPath, sysidsPath string) (*primary.IngestResponse, error) {
	resp := &primary.IngestResponse{
		RunID:            run.RunID,
		InteractionsFile: interactionsPath,
		LinksFile:        linksPath,
		SysIDsFile:       sysidsPath,
	}

	if interactionsPath != "" {
		s.logger.Info("processing interactions", "file", interactionsPath)
		rows, err := s.reader.ReadInteractions(interactionsPath)
		if err != nil {
			return nil, err
		}
		batch := make([]*models.Interaction, 0, len(rows))
		for _, row := range rows {
			batch = append(batch, normalizeInteraction(row))
		}
		stats, err := s.interactions.LoadInteractions(ctx, batch)
		if err != nil {
			return nil, err
		}
		resp.Interactions = *stats
		run.InteractionsLoaded = stats.Loaded
		s.logger.Info("loaded interactions",
			"count", stats.Loaded,
			"users", stats.UsersCreated,
			"technicians", stats.TechniciansCreated,
			"locations", stats.LocationsCreated,
			"states", stats.StatesCreated,
			"dates", stats.DatesCreated)
	} else {
		s.logger.Warn("no interactions feed found, skipping phase")
	}

	lookup := map[crossref.Key]models.SysIDRecord{}
	if sysidsPath != "" {
		s.logger.Info("indexing sys_ids", "file", sysidsPath)
		records, err := s.reader.ReadSysIDs(sysidsPath)
		if err != nil {
			return nil, err
		}
		lookup = crossref.BuildLookup(records)
		resp.SysIDsIndexed = len(lookup)
		run.SysIDsIndexed = len(lookup)
		s.logger.Info("indexed sys_ids", "count", len(lookup))
	} else {
		s.logger.Warn("no sys_id feed found, links will not be enriched")
	}

	if linksPath != "" {
		s.logger.Info("processing links", "file", linksPath)
		rows, err := s.reader.ReadLinks(linksPath)
		if err != nil {
			return nil, err
		}
		batch := make([]*models.Link, 0, len(rows))
		for _, row := range rows {
			link := crossref.Enrich(row, lookup, s.baseURL)
			batch = append(batch, &link)
		}
		stats, err := s.links.LoadLinks(ctx, batch)
		if err != nil {
			return nil, err
		}
		resp.Links = *stats
		run.LinksLoaded = stats.Inserted
		s.logger.Info("loaded links", "inserted", stats.Inserted, "skipped", stats.Skipped)
	} else {
		s.logger.Warn("no links feed found, skipping phase")
	}

	return resp, nil
}

// resolvePath prefers the explicit path when one was given, falling back
// to discovery of the newest export. An explicit path that does not exist
// skips the phase with a warning rather than failing the run, matching
// how absent feeds behave under discovery.
func (s *PipelineServiceImpl) resolvePath(feed, explicit string, discover func() (string, error)) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			s.logger.Warn("feed file not found", "feed", feed, "path", explicit)
			return "", nil
		}
		return explicit, nil
	}
	return discover()
}

// Compile-time check that PipelineServiceImpl implements the interface
var _ primary.PipelineService = (*PipelineServiceImpl)(nil)
