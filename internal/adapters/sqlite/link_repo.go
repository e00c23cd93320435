package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/ticketmart/internal/models"
	"github.com/example/ticketmart/internal/ports/secondary"
)

// LinkRepository implements secondary.LinkStore with SQLite.
type LinkRepository struct {
	db *sql.DB
}

// NewLinkRepository creates a new SQLite link repository.
func NewLinkRepository(db *sql.DB) *LinkRepository {
	return &LinkRepository{db: db}
}

// LoadLinks loads the batch inside one transaction via INSERT OR IGNORE. A
// (interaction, incident) pair that is already present counts as skipped;
// the first write wins and the row never changes afterwards.
func (r *LinkRepository) LoadLinks(ctx context.Context, links []*models.Link) (*models.LinkLoadStats, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stats := &models.LinkLoadStats{}
	for _, link := range links {
		res, err := tx.ExecContext(ctx, `
			INSERT OR IGNORE INTO bridge_ims_inc
				(interaction_number, incident_number, interaction_sysid, incident_sysid,
				 created_by, created_on, interaction_url, incident_url)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			link.InteractionNumber, link.IncidentNumber,
			nullString(link.InteractionSysID), nullString(link.IncidentSysID),
			link.CreatedBy, link.CreatedOn,
			nullString(link.InteractionURL), nullString(link.IncidentURL),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to load link %s/%s: %w", link.InteractionNumber, link.IncidentNumber, err)
		}

		n, _ := res.RowsAffected()
		if n > 0 {
			stats.Inserted++
		} else {
			stats.Skipped++
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit links: %w", err)
	}

	return stats, nil
}

// Ensure LinkRepository implements the interface.
var _ secondary.LinkStore = (*LinkRepository)(nil)
