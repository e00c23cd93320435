package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/ticketmart/internal/models"
	"github.com/example/ticketmart/internal/ports/secondary"
)

// RunRepository implements secondary.RunStore with SQLite.
type RunRepository struct {
	db *sql.DB
}

// NewRunRepository creates a new SQLite run repository.
func NewRunRepository(db *sql.DB) *RunRepository {
	return &RunRepository{db: db}
}

// RecordStart persists a load run in the running state.
func (r *RunRepository) RecordStart(ctx context.Context, run *models.LoadRun) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO load_runs (run_id, started_at, status, interactions_file, links_file, sysids_file)
		VALUES (?, ?, ?, ?, ?, ?)`,
		run.RunID, run.StartedAt, run.Status,
		nullString(run.InteractionsFile), nullString(run.LinksFile), nullString(run.SysIDsFile),
	)
	if err != nil {
		return fmt.Errorf("failed to record load run %s: %w", run.RunID, err)
	}

	return nil
}

// RecordFinish updates the run with its terminal status, counts and finish
// time.
func (r *RunRepository) RecordFinish(ctx context.Context, run *models.LoadRun) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE load_runs
		SET finished_at = ?, status = ?,
		    interactions_file = ?, links_file = ?, sysids_file = ?,
		    interactions_loaded = ?, links_loaded = ?, sysids_indexed = ?,
		    error = ?
		WHERE run_id = ?`,
		run.FinishedAt, run.Status,
		nullString(run.InteractionsFile), nullString(run.LinksFile), nullString(run.SysIDsFile),
		run.InteractionsLoaded, run.LinksLoaded, run.SysIDsIndexed,
		nullString(run.Error),
		run.RunID,
	)
	if err != nil {
		return fmt.Errorf("failed to update load run %s: %w", run.RunID, err)
	}

	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("load run %s not found", run.RunID)
	}

	return nil
}

// List retrieves the most recent load runs, newest first.
func (r *RunRepository) List(ctx context.Context, limit int) ([]*models.LoadRun, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT run_id, started_at, finished_at, status,
		       interactions_file, links_file, sysids_file,
		       interactions_loaded, links_loaded, sysids_indexed, error
		FROM load_runs
		ORDER BY started_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list load runs: %w", err)
	}
	defer rows.Close()

	var runs []*models.LoadRun
	for rows.Next() {
		var (
			finishedAt       sql.NullString
			interactionsFile sql.NullString
			linksFile        sql.NullString
			sysidsFile       sql.NullString
			runErr           sql.NullString
		)

		run := &models.LoadRun{}
		err := rows.Scan(&run.RunID, &run.StartedAt, &finishedAt, &run.Status,
			&interactionsFile, &linksFile, &sysidsFile,
			&run.InteractionsLoaded, &run.LinksLoaded, &run.SysIDsIndexed, &runErr)
		if err != nil {
			return nil, fmt.Errorf("failed to scan load run: %w", err)
		}

		run.FinishedAt = finishedAt.String
		run.InteractionsFile = interactionsFile.String
		run.LinksFile = linksFile.String
		run.SysIDsFile = sysidsFile.String
		run.Error = runErr.String

		runs = append(runs, run)
	}

	return runs, nil
}

// Ensure RunRepository implements the interface.
var _ secondary.RunStore = (*RunRepository)(nil)
