package crossref

import (
	"testing"

	"github.com/example/ticketmart/internal/models"
)

const testBaseURL = "https://example.service-now.com"

func TestBuildLookup(t *testing.T) {
	records := []models.SysIDRecord{
		{CreatedBy: "alice", CreatedOn: "2024-01-15 10:00:00", Interaction: "first", Task: "t1"},
		{CreatedBy: "bob", CreatedOn: "2024-01-16 11:00:00", Interaction: "abc", Task: "t2"},
		{CreatedBy: "alice", CreatedOn: "2024-01-15 10:00:00", Interaction: "second", Task: "t3"},
	}

	lookup := BuildLookup(records)

	if len(lookup) != 2 {
		t.Fatalf("BuildLookup() len = %d, want 2", len(lookup))
	}

	got, ok := lookup[Key{CreatedBy: "alice", CreatedOn: "2024-01-15 10:00:00"}]
	if !ok {
		t.Fatal("BuildLookup() missing alice key")
	}
	if got.Interaction != "second" {
		t.Errorf("duplicate key Interaction = %q, want %q (last record wins)", got.Interaction, "second")
	}
}

func TestBuildLookup_Empty(t *testing.T) {
	lookup := BuildLookup(nil)
	if lookup == nil {
		t.Fatal("BuildLookup(nil) = nil, want empty map")
	}
	if len(lookup) != 0 {
		t.Errorf("BuildLookup(nil) len = %d, want 0", len(lookup))
	}
}

func TestEnrich(t *testing.T) {
	lookup := BuildLookup([]models.SysIDRecord{
		{
			CreatedBy:   "alice",
			CreatedOn:   "2024-01-15 10:00:00",
			Interaction: "abc123",
			Task:        "def456",
		},
	})

	row := models.LinkRow{
		Interaction: " IMS0001234 ",
		Task:        "INC0005678",
		CreatedBy:   "alice",
		CreatedOn:   "2024-01-15 10:00:00",
	}

	got := Enrich(row, lookup, testBaseURL)

	want := models.Link{
		InteractionNumber: "IMS0001234",
		IncidentNumber:    "INC0005678",
		InteractionSysID:  "abc123",
		IncidentSysID:     "def456",
		CreatedBy:         "alice",
		CreatedOn:         "2024-01-15 10:00:00",
		InteractionURL:    "https://example.service-now.com/interaction.do?sys_id=abc123",
		IncidentURL:       "https://example.service-now.com/incident.do?sys_id=def456",
	}
	if got != want {
		t.Errorf("Enrich() = %+v, want %+v", got, want)
	}
}

func TestEnrich_NoMatch(t *testing.T) {
	lookup := BuildLookup([]models.SysIDRecord{
		{CreatedBy: "alice", CreatedOn: "2024-01-15 10:00:00", Interaction: "abc123", Task: "def456"},
	})

	row := models.LinkRow{
		Interaction: "IMS0009999",
		Task:        "INC0009999",
		CreatedBy:   "carol",
		CreatedOn:   "2024-02-01 08:00:00",
	}

	got := Enrich(row, lookup, testBaseURL)

	if got.InteractionSysID != "" || got.IncidentSysID != "" {
		t.Errorf("Enrich() sys_ids = %q/%q, want empty", got.InteractionSysID, got.IncidentSysID)
	}
	if got.InteractionURL != "" || got.IncidentURL != "" {
		t.Errorf("Enrich() urls = %q/%q, want empty", got.InteractionURL, got.IncidentURL)
	}
	if got.InteractionNumber != "IMS0009999" || got.IncidentNumber != "INC0009999" {
		t.Errorf("Enrich() numbers = %q/%q, want originals kept", got.InteractionNumber, got.IncidentNumber)
	}
}

func TestEnrich_MatchesRawValuesOnly(t *testing.T) {
	lookup := BuildLookup([]models.SysIDRecord{
		{CreatedBy: "alice", CreatedOn: "2024-01-15 10:00:00", Interaction: "abc123", Task: "def456"},
	})

	// Same creator after trimming, but the raw value differs.
	row := models.LinkRow{
		Interaction: "IMS0001234",
		Task:        "INC0005678",
		CreatedBy:   " alice ",
		CreatedOn:   "2024-01-15 10:00:00",
	}

	got := Enrich(row, lookup, testBaseURL)

	if got.InteractionSysID != "" {
		t.Errorf("Enrich() InteractionSysID = %q, want empty for raw mismatch", got.InteractionSysID)
	}
	if got.CreatedBy != "alice" {
		t.Errorf("Enrich() CreatedBy = %q, want trimmed %q", got.CreatedBy, "alice")
	}
}

func TestEnrich_PartialRecord(t *testing.T) {
	lookup := BuildLookup([]models.SysIDRecord{
		{CreatedBy: "bob", CreatedOn: "2024-03-01 09:00:00", Interaction: "xyz789", Task: ""},
	})

	row := models.LinkRow{
		Interaction: "IMS0002000",
		Task:        "INC0002000",
		CreatedBy:   "bob",
		CreatedOn:   "2024-03-01 09:00:00",
	}

	got := Enrich(row, lookup, testBaseURL)

	if got.InteractionURL != testBaseURL+"/interaction.do?sys_id=xyz789" {
		t.Errorf("Enrich() InteractionURL = %q", got.InteractionURL)
	}
	if got.IncidentURL != "" {
		t.Errorf("Enrich() IncidentURL = %q, want empty for missing sys_id", got.IncidentURL)
	}
}
