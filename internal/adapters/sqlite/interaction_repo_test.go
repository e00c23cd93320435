package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/example/ticketmart/internal/adapters/sqlite"
	"github.com/example/ticketmart/internal/models"
)

func sampleInteraction() *models.Interaction {
	return &models.Interaction{
		Number:           "IMS0001234",
		ShortDescription: "Password reset",
		Type:             "Phone",
		WorkNotes:        "Reset via self-service portal",
		State:            "Closed",
		Location:         "Building A",
		UserID:           "jphrakousonh",
		UserName:         "Jackie Phrakousonh",
		TechnicianID:     "mgarcia",
		TechnicianName:   "Maria Garcia",
		OpenedAt:         "2024-01-15T10:30:00",
		UpdatedAt:        "2024-01-15T11:00:00",
		OpenedDateKey:    20240115,
	}
}

func TestInteractionRepository_LoadInteractions(t *testing.T) {
	conn := setupTestDB(t)
	repo := sqlite.NewInteractionRepository(conn)

	stats, err := repo.LoadInteractions(context.Background(), []*models.Interaction{sampleInteraction()})
	if err != nil {
		t.Fatalf("LoadInteractions() error = %v", err)
	}

	if stats.Loaded != 1 {
		t.Errorf("stats.Loaded = %d, want 1", stats.Loaded)
	}
	if stats.UsersCreated != 1 || stats.TechniciansCreated != 1 {
		t.Errorf("stats users/techs = %d/%d, want 1/1", stats.UsersCreated, stats.TechniciansCreated)
	}
	if stats.LocationsCreated != 1 || stats.StatesCreated != 1 || stats.DatesCreated != 1 {
		t.Errorf("stats locations/states/dates = %d/%d/%d, want 1/1/1",
			stats.LocationsCreated, stats.StatesCreated, stats.DatesCreated)
	}

	// The fact row resolves through every dimension.
	var (
		desc     string
		userName string
		techName string
		location string
		state    string
		fullDate string
		openedAt string
	)
	err = conn.QueryRow(`
		SELECT f.short_description, u.user_name, tech.tech_name,
		       l.location_name, s.state_name, d.full_date, f.opened_at
		FROM fact_interactions f
		JOIN dim_users u ON u.user_id = f.user_id
		JOIN dim_technicians tech ON tech.tech_id = f.tech_id
		JOIN dim_locations l ON l.location_id = f.location_id
		JOIN dim_states s ON s.state_id = f.state_id
		JOIN dim_dates d ON d.date_id = f.opened_date_id
		WHERE f.interaction_number = ?`, "IMS0001234",
	).Scan(&desc, &userName, &techName, &location, &state, &fullDate, &openedAt)
	if err != nil {
		t.Fatalf("failed to query fact row: %v", err)
	}

	if desc != "Password reset" {
		t.Errorf("short_description = %q, want %q", desc, "Password reset")
	}
	if userName != "Jackie Phrakousonh" {
		t.Errorf("user_name = %q, want %q", userName, "Jackie Phrakousonh")
	}
	if techName != "Maria Garcia" {
		t.Errorf("tech_name = %q, want %q", techName, "Maria Garcia")
	}
	if location != "Building A" || state != "Closed" {
		t.Errorf("location/state = %q/%q, want Building A/Closed", location, state)
	}
	if fullDate != "2024-01-15" {
		t.Errorf("full_date = %q, want %q", fullDate, "2024-01-15")
	}
	if openedAt != "2024-01-15T10:30:00" {
		t.Errorf("opened_at = %q, want %q", openedAt, "2024-01-15T10:30:00")
	}
}

func TestInteractionRepository_LoadInteractions_ReplacesOnReload(t *testing.T) {
	conn := setupTestDB(t)
	repo := sqlite.NewInteractionRepository(conn)
	ctx := context.Background()

	if _, err := repo.LoadInteractions(ctx, []*models.Interaction{sampleInteraction()}); err != nil {
		t.Fatalf("LoadInteractions() error = %v", err)
	}

	// Reload the same number with updated fields.
	updated := sampleInteraction()
	updated.ShortDescription = "Password reset - reopened"
	updated.State = "Open"

	stats, err := repo.LoadInteractions(ctx, []*models.Interaction{updated})
	if err != nil {
		t.Fatalf("LoadInteractions() error = %v", err)
	}

	if got := countRows(t, conn, "fact_interactions"); got != 1 {
		t.Errorf("fact_interactions rows = %d, want 1 after reload", got)
	}
	if stats.UsersCreated != 0 || stats.TechniciansCreated != 0 || stats.DatesCreated != 0 {
		t.Errorf("reload created dimensions: %+v, want none", stats)
	}

	// "Open" is a new state, "Closed" survives from the first load.
	if got := countRows(t, conn, "dim_states"); got != 2 {
		t.Errorf("dim_states rows = %d, want 2", got)
	}

	var desc string
	if err := conn.QueryRow(
		"SELECT short_description FROM fact_interactions WHERE interaction_number = ?",
		"IMS0001234",
	).Scan(&desc); err != nil {
		t.Fatalf("failed to query fact row: %v", err)
	}
	if desc != "Password reset - reopened" {
		t.Errorf("short_description = %q, want replaced value", desc)
	}
}

func TestInteractionRepository_LoadInteractions_AbsentDimensions(t *testing.T) {
	conn := setupTestDB(t)
	repo := sqlite.NewInteractionRepository(conn)

	// Nothing parsed out of the source row except the number.
	rec := &models.Interaction{Number: "IMS0009999", ShortDescription: "Walk-in question"}

	stats, err := repo.LoadInteractions(context.Background(), []*models.Interaction{rec})
	if err != nil {
		t.Fatalf("LoadInteractions() error = %v", err)
	}
	if stats.Loaded != 1 {
		t.Errorf("stats.Loaded = %d, want 1", stats.Loaded)
	}

	var userID, techID sql.NullString
	var locationID, stateID, dateID sql.NullInt64
	var openedAt sql.NullString
	err = conn.QueryRow(`
		SELECT user_id, tech_id, location_id, state_id, opened_date_id, opened_at
		FROM fact_interactions WHERE interaction_number = ?`, "IMS0009999",
	).Scan(&userID, &techID, &locationID, &stateID, &dateID, &openedAt)
	if err != nil {
		t.Fatalf("failed to query fact row: %v", err)
	}

	if userID.Valid || techID.Valid || locationID.Valid || stateID.Valid || dateID.Valid || openedAt.Valid {
		t.Error("absent attributes stored non-NULL, want NULL for every missing dimension")
	}

	for _, table := range []string{"dim_users", "dim_technicians", "dim_locations", "dim_states", "dim_dates"} {
		if got := countRows(t, conn, table); got != 0 {
			t.Errorf("%s rows = %d, want 0", table, got)
		}
	}
}

func TestInteractionRepository_LoadInteractions_SharedDimensions(t *testing.T) {
	conn := setupTestDB(t)
	repo := sqlite.NewInteractionRepository(conn)

	second := sampleInteraction()
	second.Number = "IMS0001235"
	second.ShortDescription = "VPN issue"

	stats, err := repo.LoadInteractions(context.Background(),
		[]*models.Interaction{sampleInteraction(), second})
	if err != nil {
		t.Fatalf("LoadInteractions() error = %v", err)
	}

	if stats.Loaded != 2 {
		t.Errorf("stats.Loaded = %d, want 2", stats.Loaded)
	}
	// Both rows share every dimension value, so each dim gets one row.
	if stats.UsersCreated != 1 || stats.LocationsCreated != 1 || stats.DatesCreated != 1 {
		t.Errorf("stats = %+v, want shared dimensions created once", stats)
	}
	if got := countRows(t, conn, "dim_users"); got != 1 {
		t.Errorf("dim_users rows = %d, want 1", got)
	}
	if got := countRows(t, conn, "fact_interactions"); got != 2 {
		t.Errorf("fact_interactions rows = %d, want 2", got)
	}
}

func TestInteractionRepository_LoadInteractions_RollsBackOnError(t *testing.T) {
	conn := setupTestDB(t)
	repo := sqlite.NewInteractionRepository(conn)

	bad := sampleInteraction()
	bad.Number = "IMS0000001"
	bad.OpenedDateKey = 20240230 // no such day

	_, err := repo.LoadInteractions(context.Background(),
		[]*models.Interaction{sampleInteraction(), bad})
	if err == nil {
		t.Fatal("LoadInteractions() error = nil, want error for invalid date key")
	}

	// The whole phase rolls back, including the record that loaded cleanly.
	for _, table := range []string{"fact_interactions", "dim_users", "dim_technicians", "dim_locations", "dim_states", "dim_dates"} {
		if got := countRows(t, conn, table); got != 0 {
			t.Errorf("%s rows = %d after rollback, want 0", table, got)
		}
	}
}
