package models

// LinkRow is a raw interaction/incident link feed row.
type LinkRow struct {
	Interaction string
	Task        string
	CreatedBy   string
	CreatedOn   string
}

// Link is a normalized interaction-to-incident association, optionally
// enriched with sys_ids and portal URLs from the sys_id export. Enrichment
// fields are empty when no matching export record exists.
type Link struct {
	InteractionNumber string
	IncidentNumber    string
	InteractionSysID  string
	IncidentSysID     string
	CreatedBy         string
	CreatedOn         string
	InteractionURL    string
	IncidentURL       string
}

// LinkLoadStats reports what a single link load pass did. Skipped counts
// rows that were already present.
type LinkLoadStats struct {
	Inserted int
	Skipped  int
}
