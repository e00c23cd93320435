package models

// InteractionRow is a raw interactions feed row, one string per column
// exactly as it appeared in the CSV.
type InteractionRow struct {
	Number           string
	ShortDescription string
	Type             string
	WorkNotes        string
	State            string
	Location         string
	OpenedFor        string
	AssignedTo       string
	OpenedAt         string
	UpdatedAt        string
}

// Interaction is a normalized interaction ready for loading. Identifier
// fields are split out of the combined "Name (id)" columns, timestamps are
// ISO-8601 strings (empty when the source value was absent or unparseable),
// and OpenedDateKey is a YYYYMMDD surrogate (0 when unknown).
type Interaction struct {
	Number           string
	ShortDescription string
	Type             string
	WorkNotes        string
	State            string
	Location         string
	UserID           string
	UserName         string
	TechnicianID     string
	TechnicianName   string
	OpenedAt         string
	UpdatedAt        string
	OpenedDateKey    int
}

// InteractionLoadStats reports what a single interactions load pass did.
type InteractionLoadStats struct {
	Loaded             int
	UsersCreated       int
	TechniciansCreated int
	LocationsCreated   int
	StatesCreated      int
	DatesCreated       int
}
