// Package wire provides dependency injection for the ticketmart
// application. It builds the full service graph from configuration, so
// commands share one database handle and one logger.
package wire

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/example/ticketmart/internal/adapters/feeds"
	"github.com/example/ticketmart/internal/adapters/sqlite"
	"github.com/example/ticketmart/internal/app"
	"github.com/example/ticketmart/internal/config"
	"github.com/example/ticketmart/internal/db"
	"github.com/example/ticketmart/internal/ports/primary"
)

// Runtime owns the database handle and the services built on top of it.
// Callers must Close it when done.
type Runtime struct {
	Config   *config.Config
	Logger   *slog.Logger
	Pipeline primary.PipelineService
	Stats    primary.StatsService
	Runs     primary.RunService

	database *sql.DB
}

// NewRuntime opens the warehouse and wires every service onto it.
// The schema is not touched here; commands that load data call
// InitSchema first, read-only commands leave the database as found.
func NewRuntime(cfg *config.Config, logger *slog.Logger) (*Runtime, error) {
	database, err := db.Open(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	catalog := feeds.NewCatalog(
		cfg.ExportsDir,
		cfg.Feeds.InteractionsPattern,
		cfg.Feeds.LinksPattern,
		cfg.Feeds.SysIDsPattern,
	)
	reader := feeds.NewReader()

	interactionRepo := sqlite.NewInteractionRepository(database)
	linkRepo := sqlite.NewLinkRepository(database)
	runRepo := sqlite.NewRunRepository(database)
	statsRepo := sqlite.NewStatsRepository(database)

	return &Runtime{
		Config:   cfg,
		Logger:   logger,
		Pipeline: app.NewPipelineService(catalog, reader, interactionRepo, linkRepo, runRepo, cfg.InstanceBaseURL, logger),
		Stats:    app.NewStatsService(statsRepo),
		Runs:     app.NewRunService(runRepo),
		database: database,
	}, nil
}

// InitSchema applies any pending schema migrations.
func (r *Runtime) InitSchema() error {
	return db.InitSchema(r.database)
}

// SchemaVersion reports the applied schema version, 0 when uninitialized.
func (r *Runtime) SchemaVersion() (int, error) {
	return db.SchemaVersion(r.database)
}

// Close releases the database handle.
func (r *Runtime) Close() error {
	return r.database.Close()
}
