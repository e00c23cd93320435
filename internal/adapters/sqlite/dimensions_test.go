package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/ticketmart/internal/adapters/sqlite"
)

func TestDimensionRepository_EnsureUser(t *testing.T) {
	conn := setupTestDB(t)
	repo := sqlite.NewDimensionRepository(conn)
	ctx := context.Background()

	created, err := repo.EnsureUser(ctx, "jphrakousonh", "Jackie Phrakousonh")
	if err != nil {
		t.Fatalf("EnsureUser() error = %v", err)
	}
	if !created {
		t.Error("EnsureUser() created = false, want true on first insert")
	}

	// Same id again is a no-op.
	created, err = repo.EnsureUser(ctx, "jphrakousonh", "Jackie Phrakousonh")
	if err != nil {
		t.Fatalf("EnsureUser() error = %v", err)
	}
	if created {
		t.Error("EnsureUser() created = true, want false on repeat insert")
	}

	// A different display name for a known id is ignored: first write wins.
	if _, err := repo.EnsureUser(ctx, "jphrakousonh", "J. Phrakousonh"); err != nil {
		t.Fatalf("EnsureUser() error = %v", err)
	}

	var name string
	if err := conn.QueryRow("SELECT user_name FROM dim_users WHERE user_id = ?", "jphrakousonh").Scan(&name); err != nil {
		t.Fatalf("failed to query user: %v", err)
	}
	if name != "Jackie Phrakousonh" {
		t.Errorf("user_name = %q, want first-written %q", name, "Jackie Phrakousonh")
	}
	if got := countRows(t, conn, "dim_users"); got != 1 {
		t.Errorf("dim_users rows = %d, want 1", got)
	}
}

func TestDimensionRepository_EnsureTechnician(t *testing.T) {
	conn := setupTestDB(t)
	repo := sqlite.NewDimensionRepository(conn)
	ctx := context.Background()

	created, err := repo.EnsureTechnician(ctx, "mgarcia", "Maria Garcia")
	if err != nil {
		t.Fatalf("EnsureTechnician() error = %v", err)
	}
	if !created {
		t.Error("EnsureTechnician() created = false, want true on first insert")
	}

	created, err = repo.EnsureTechnician(ctx, "mgarcia", "Maria Garcia")
	if err != nil {
		t.Fatalf("EnsureTechnician() error = %v", err)
	}
	if created {
		t.Error("EnsureTechnician() created = true, want false on repeat insert")
	}
	if got := countRows(t, conn, "dim_technicians"); got != 1 {
		t.Errorf("dim_technicians rows = %d, want 1", got)
	}
}

func TestDimensionRepository_ResolveLocation(t *testing.T) {
	conn := setupTestDB(t)
	repo := sqlite.NewDimensionRepository(conn)
	ctx := context.Background()

	id1, created, err := repo.ResolveLocation(ctx, "Building A")
	if err != nil {
		t.Fatalf("ResolveLocation() error = %v", err)
	}
	if !created {
		t.Error("ResolveLocation() created = false, want true on first sight")
	}
	if id1 == 0 {
		t.Error("ResolveLocation() id = 0, want a surrogate id")
	}

	// Same name resolves to the same surrogate id.
	id2, created, err := repo.ResolveLocation(ctx, "Building A")
	if err != nil {
		t.Fatalf("ResolveLocation() error = %v", err)
	}
	if created {
		t.Error("ResolveLocation() created = true, want false for known name")
	}
	if id2 != id1 {
		t.Errorf("ResolveLocation() id = %d, want %d", id2, id1)
	}

	// A new name gets its own id.
	id3, _, err := repo.ResolveLocation(ctx, "Building B")
	if err != nil {
		t.Fatalf("ResolveLocation() error = %v", err)
	}
	if id3 == id1 {
		t.Errorf("ResolveLocation() id = %d for a different name, want distinct", id3)
	}
}

func TestDimensionRepository_ResolveState(t *testing.T) {
	conn := setupTestDB(t)
	repo := sqlite.NewDimensionRepository(conn)
	ctx := context.Background()

	id1, created, err := repo.ResolveState(ctx, "Closed")
	if err != nil {
		t.Fatalf("ResolveState() error = %v", err)
	}
	if !created || id1 == 0 {
		t.Errorf("ResolveState() = (%d, %v), want new surrogate id", id1, created)
	}

	id2, created, err := repo.ResolveState(ctx, "Closed")
	if err != nil {
		t.Fatalf("ResolveState() error = %v", err)
	}
	if created || id2 != id1 {
		t.Errorf("ResolveState() = (%d, %v), want (%d, false)", id2, created, id1)
	}
}

func TestDimensionRepository_EnsureDate(t *testing.T) {
	conn := setupTestDB(t)
	repo := sqlite.NewDimensionRepository(conn)
	ctx := context.Background()

	created, err := repo.EnsureDate(ctx, 20240115)
	if err != nil {
		t.Fatalf("EnsureDate() error = %v", err)
	}
	if !created {
		t.Error("EnsureDate() created = false, want true on first insert")
	}

	var (
		fullDate  string
		quarter   int
		weekOfYr  int
		dayOfWeek int
		dayName   string
		isWeekend int
	)
	err = conn.QueryRow(`
		SELECT full_date, quarter, week_of_year, day_of_week, day_name, is_weekend
		FROM dim_dates WHERE date_id = ?`, 20240115,
	).Scan(&fullDate, &quarter, &weekOfYr, &dayOfWeek, &dayName, &isWeekend)
	if err != nil {
		t.Fatalf("failed to query date row: %v", err)
	}

	if fullDate != "2024-01-15" {
		t.Errorf("full_date = %q, want %q", fullDate, "2024-01-15")
	}
	if quarter != 1 {
		t.Errorf("quarter = %d, want 1", quarter)
	}
	if weekOfYr != 3 {
		t.Errorf("week_of_year = %d, want 3", weekOfYr)
	}
	if dayOfWeek != 0 || dayName != "Monday" {
		t.Errorf("day = (%d, %q), want (0, Monday)", dayOfWeek, dayName)
	}
	if isWeekend != 0 {
		t.Errorf("is_weekend = %d, want 0", isWeekend)
	}

	// Re-ensuring leaves exactly one row.
	created, err = repo.EnsureDate(ctx, 20240115)
	if err != nil {
		t.Fatalf("EnsureDate() error = %v", err)
	}
	if created {
		t.Error("EnsureDate() created = true, want false on repeat insert")
	}
	if got := countRows(t, conn, "dim_dates"); got != 1 {
		t.Errorf("dim_dates rows = %d, want 1", got)
	}
}

func TestDimensionRepository_EnsureDate_ZeroKey(t *testing.T) {
	conn := setupTestDB(t)
	repo := sqlite.NewDimensionRepository(conn)

	created, err := repo.EnsureDate(context.Background(), 0)
	if err != nil {
		t.Fatalf("EnsureDate(0) error = %v", err)
	}
	if created {
		t.Error("EnsureDate(0) created = true, want false")
	}
	if got := countRows(t, conn, "dim_dates"); got != 0 {
		t.Errorf("dim_dates rows = %d, want 0", got)
	}
}

func TestDimensionRepository_EnsureDate_InvalidKey(t *testing.T) {
	conn := setupTestDB(t)
	repo := sqlite.NewDimensionRepository(conn)

	if _, err := repo.EnsureDate(context.Background(), 20240230); err == nil {
		t.Error("EnsureDate(20240230) error = nil, want error for nonexistent day")
	}
}
