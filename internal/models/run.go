package models

// Load run lifecycle states.
const (
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
)

// LoadRun records one pipeline execution: which files were consumed, how
// many rows each phase handled, and how the run ended. Timestamps are
// ISO-8601 strings; FinishedAt and Error stay empty while the run is live.
type LoadRun struct {
	RunID              string
	StartedAt          string
	FinishedAt         string
	Status             string
	InteractionsFile   string
	LinksFile          string
	SysIDsFile         string
	InteractionsLoaded int
	LinksLoaded        int
	SysIDsIndexed      int
	Error              string
}
