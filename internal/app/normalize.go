package app

import (
	"strings"

	"github.com/example/ticketmart/internal/core/fieldparse"
	"github.com/example/ticketmart/internal/models"
)

// normalizeInteraction converts a raw feed row into its normalized record:
// composite actor fields split into id and name, free text trimmed, and
// timestamps parsed into ISO form with the opened date keyed. Values that
// fail to parse become absent, never errors; the record always loads.
func normalizeInteraction(row models.InteractionRow) *models.Interaction {
	userID, userName := fieldparse.Actor(row.OpenedFor)
	techID, techName := fieldparse.Actor(row.AssignedTo)

	rec := &models.Interaction{
		Number:           strings.TrimSpace(row.Number),
		ShortDescription: strings.TrimSpace(row.ShortDescription),
		Type:             strings.TrimSpace(row.Type),
		WorkNotes:        strings.TrimSpace(row.WorkNotes),
		State:            strings.TrimSpace(row.State),
		Location:         strings.TrimSpace(row.Location),
		UserID:           userID,
		UserName:         userName,
		TechnicianID:     techID,
		TechnicianName:   techName,
	}

	if t, ok := fieldparse.DateTime(row.OpenedAt); ok {
		rec.OpenedAt = fieldparse.Timestamp(t)
		rec.OpenedDateKey = fieldparse.DateKey(t)
	}
	if t, ok := fieldparse.DateTime(row.UpdatedAt); ok {
		rec.UpdatedAt = fieldparse.Timestamp(t)
	}

	return rec
}
