// Package crossref joins link feed rows to the sys_id export records that
// carry their platform identifiers. This is part of the Functional Core -
// no I/O, only pure functions.
package crossref

import (
	"strings"

	"github.com/example/ticketmart/internal/models"
)

// Key identifies a sys_id export record by who created the link row and
// when. Values are matched exactly as they appear in the feeds, untrimmed.
type Key struct {
	CreatedBy string
	CreatedOn string
}

// BuildLookup indexes sys_id export records by their raw (creator,
// created-on) pair. When several records share a pair the last one wins.
func BuildLookup(records []models.SysIDRecord) map[Key]models.SysIDRecord {
	lookup := make(map[Key]models.SysIDRecord, len(records))
	for _, rec := range records {
		lookup[Key{CreatedBy: rec.CreatedBy, CreatedOn: rec.CreatedOn}] = rec
	}
	return lookup
}

// Enrich normalizes one link feed row and, when the lookup holds a record
// for the row's raw (creator, created-on) pair, attaches the platform
// sys_ids and the portal URLs derived from them. Rows without a match keep
// empty enrichment fields and still load.
func Enrich(row models.LinkRow, lookup map[Key]models.SysIDRecord, baseURL string) models.Link {
	link := models.Link{
		InteractionNumber: strings.TrimSpace(row.Interaction),
		IncidentNumber:    strings.TrimSpace(row.Task),
		CreatedBy:         strings.TrimSpace(row.CreatedBy),
		CreatedOn:         strings.TrimSpace(row.CreatedOn),
	}

	if rec, ok := lookup[Key{CreatedBy: row.CreatedBy, CreatedOn: row.CreatedOn}]; ok {
		link.InteractionSysID = rec.Interaction
		link.IncidentSysID = rec.Task
	}

	if link.InteractionSysID != "" {
		link.InteractionURL = baseURL + "/interaction.do?sys_id=" + link.InteractionSysID
	}
	if link.IncidentSysID != "" {
		link.IncidentURL = baseURL + "/incident.do?sys_id=" + link.IncidentSysID
	}
	return link
}
