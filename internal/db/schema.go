package db

import "database/sql"

// SchemaSQL is the complete star schema for fresh installs.
//
// This is the SINGLE SOURCE OF TRUTH for the warehouse schema. Tests load it
// via GetSchemaSQL() instead of hardcoding CREATE TABLE statements, so a
// repository referencing a column that does not exist here fails immediately
// with "no such column" rather than passing against a drifted copy.
//
// Every statement is idempotent (IF NOT EXISTS), so applying the schema to an
// existing database is safe.
const SchemaSQL = `
-- Dimension tables
CREATE TABLE IF NOT EXISTS dim_users (
	user_id TEXT PRIMARY KEY,
	user_name TEXT NOT NULL,
	created_at TEXT DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS dim_technicians (
	tech_id TEXT PRIMARY KEY,
	tech_name TEXT NOT NULL,
	created_at TEXT DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS dim_locations (
	location_id INTEGER PRIMARY KEY AUTOINCREMENT,
	location_name TEXT UNIQUE NOT NULL,
	created_at TEXT DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS dim_states (
	state_id INTEGER PRIMARY KEY AUTOINCREMENT,
	state_name TEXT UNIQUE NOT NULL,
	created_at TEXT DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS dim_dates (
	date_id INTEGER PRIMARY KEY,  -- YYYYMMDD
	full_date TEXT NOT NULL,
	year INTEGER NOT NULL,
	quarter INTEGER NOT NULL,
	month INTEGER NOT NULL,
	month_name TEXT NOT NULL,
	week_of_year INTEGER NOT NULL,
	day_of_month INTEGER NOT NULL,
	day_of_week INTEGER NOT NULL,  -- 0=Monday, 6=Sunday
	day_name TEXT NOT NULL,
	is_weekend INTEGER DEFAULT 0
);

-- Fact table: interactions
CREATE TABLE IF NOT EXISTS fact_interactions (
	interaction_id INTEGER PRIMARY KEY AUTOINCREMENT,
	interaction_number TEXT UNIQUE NOT NULL,  -- IMS0001234
	short_description TEXT,
	interaction_type TEXT,
	work_notes TEXT,

	user_id TEXT REFERENCES dim_users(user_id),
	tech_id TEXT REFERENCES dim_technicians(tech_id),
	location_id INTEGER REFERENCES dim_locations(location_id),
	state_id INTEGER REFERENCES dim_states(state_id),
	opened_date_id INTEGER REFERENCES dim_dates(date_id),

	opened_at TEXT,
	updated_at TEXT,
	ingested_at TEXT DEFAULT (datetime('now'))
);

-- Bridge table: interaction-incident links
CREATE TABLE IF NOT EXISTS bridge_ims_inc (
	link_id INTEGER PRIMARY KEY AUTOINCREMENT,
	interaction_number TEXT NOT NULL,  -- IMS0001234
	incident_number TEXT,              -- INC0005678
	interaction_sysid TEXT,            -- 32-char platform id
	incident_sysid TEXT,
	created_by TEXT,
	created_on TEXT,
	interaction_url TEXT,
	incident_url TEXT,
	ingested_at TEXT DEFAULT (datetime('now')),
	UNIQUE(interaction_number, incident_number)
);

-- Load run audit trail
CREATE TABLE IF NOT EXISTS load_runs (
	run_id TEXT PRIMARY KEY,
	started_at TEXT NOT NULL,
	finished_at TEXT,
	status TEXT NOT NULL CHECK(status IN ('running', 'completed', 'failed')) DEFAULT 'running',
	interactions_file TEXT,
	links_file TEXT,
	sysids_file TEXT,
	interactions_loaded INTEGER DEFAULT 0,
	links_loaded INTEGER DEFAULT 0,
	sysids_indexed INTEGER DEFAULT 0,
	error TEXT
);

-- Indexes for common queries
CREATE INDEX IF NOT EXISTS idx_fact_opened_date ON fact_interactions(opened_date_id);
CREATE INDEX IF NOT EXISTS idx_fact_location ON fact_interactions(location_id);
CREATE INDEX IF NOT EXISTS idx_fact_tech ON fact_interactions(tech_id);
CREATE INDEX IF NOT EXISTS idx_fact_state ON fact_interactions(state_id);
CREATE INDEX IF NOT EXISTS idx_bridge_ims ON bridge_ims_inc(interaction_number);
CREATE INDEX IF NOT EXISTS idx_bridge_inc ON bridge_ims_inc(incident_number);
CREATE INDEX IF NOT EXISTS idx_load_runs_started ON load_runs(started_at DESC);
`

// InitSchema brings the database up to the current schema version. Safe to
// call on every start; already-applied migrations are skipped.
func InitSchema(conn *sql.DB) error {
	return RunMigrations(conn)
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
