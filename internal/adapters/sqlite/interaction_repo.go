package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/ticketmart/internal/models"
	"github.com/example/ticketmart/internal/ports/secondary"
)

// InteractionRepository implements secondary.InteractionStore with SQLite.
type InteractionRepository struct {
	db *sql.DB
}

// NewInteractionRepository creates a new SQLite interaction repository.
func NewInteractionRepository(db *sql.DB) *InteractionRepository {
	return &InteractionRepository{db: db}
}

// LoadInteractions loads the whole batch inside one transaction: dimension
// rows first, then the fact row via INSERT OR REPLACE keyed on
// interaction_number. Any storage error rolls the entire phase back.
func (r *InteractionRepository) LoadInteractions(ctx context.Context, interactions []*models.Interaction) (*models.InteractionLoadStats, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	dims := NewDimensionRepository(tx)
	stats := &models.InteractionLoadStats{}

	for _, rec := range interactions {
		var userID, techID sql.NullString
		if rec.UserID != "" && rec.UserName != "" {
			created, err := dims.EnsureUser(ctx, rec.UserID, rec.UserName)
			if err != nil {
				return nil, err
			}
			if created {
				stats.UsersCreated++
			}
			userID = sql.NullString{String: rec.UserID, Valid: true}
		}

		if rec.TechnicianID != "" && rec.TechnicianName != "" {
			created, err := dims.EnsureTechnician(ctx, rec.TechnicianID, rec.TechnicianName)
			if err != nil {
				return nil, err
			}
			if created {
				stats.TechniciansCreated++
			}
			techID = sql.NullString{String: rec.TechnicianID, Valid: true}
		}

		var locationID, stateID sql.NullInt64
		if rec.Location != "" {
			id, created, err := dims.ResolveLocation(ctx, rec.Location)
			if err != nil {
				return nil, err
			}
			if created {
				stats.LocationsCreated++
			}
			locationID = sql.NullInt64{Int64: id, Valid: true}
		}

		if rec.State != "" {
			id, created, err := dims.ResolveState(ctx, rec.State)
			if err != nil {
				return nil, err
			}
			if created {
				stats.StatesCreated++
			}
			stateID = sql.NullInt64{Int64: id, Valid: true}
		}

		var dateID sql.NullInt64
		if rec.OpenedDateKey != 0 {
			created, err := dims.EnsureDate(ctx, rec.OpenedDateKey)
			if err != nil {
				return nil, err
			}
			if created {
				stats.DatesCreated++
			}
			dateID = sql.NullInt64{Int64: int64(rec.OpenedDateKey), Valid: true}
		}

		_, err := tx.ExecContext(ctx, `
			INSERT OR REPLACE INTO fact_interactions
				(interaction_number, short_description, interaction_type, work_notes,
				 user_id, tech_id, location_id, state_id, opened_date_id,
				 opened_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			rec.Number, rec.ShortDescription, rec.Type, rec.WorkNotes,
			userID, techID, locationID, stateID, dateID,
			nullString(rec.OpenedAt), nullString(rec.UpdatedAt),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to load interaction %s: %w", rec.Number, err)
		}
		stats.Loaded++
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit interactions: %w", err)
	}

	return stats, nil
}

// Ensure InteractionRepository implements the interface.
var _ secondary.InteractionStore = (*InteractionRepository)(nil)
