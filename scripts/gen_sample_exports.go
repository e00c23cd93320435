// +build ignore

package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Generates a matched trio of sample export files so a fresh checkout can
// exercise the full pipeline without real exports:
//
//	go run scripts/gen_sample_exports.go
//	go run ./cmd/ticketmart ingest
//
// The files are stamped with today's date, so regenerating always produces
// the newest export set.
func main() {
	dir := flag.String("dir", "exports", "directory to write sample exports into")
	flag.Parse()

	if err := os.MkdirAll(*dir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create %s: %v\n", *dir, err)
		os.Exit(1)
	}

	stamp := time.Now().Format("20060102")

	interactionsPath := filepath.Join(*dir, "interaction_"+stamp+".csv")
	if err := writeInteractions(interactionsPath); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", interactionsPath, err)
		os.Exit(1)
	}

	linksPath := filepath.Join(*dir, "ims_inc_"+stamp+".csv")
	if err := writeLinks(linksPath); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", linksPath, err)
		os.Exit(1)
	}

	sysidsPath := filepath.Join(*dir, "sysid_"+stamp+".json")
	if err := writeSysIDs(sysidsPath); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", sysidsPath, err)
		os.Exit(1)
	}

	fmt.Println("Wrote sample exports:")
	fmt.Println("  " + interactionsPath)
	fmt.Println("  " + linksPath)
	fmt.Println("  " + sysidsPath)
}

func writeInteractions(path string) error {
	rows := [][]string{
		{"number", "short_description", "type", "work_notes", "state", "location", "opened_for", "assigned_to", "opened_at", "sys_updated_on"},
		{"IMS0001234", "Password reset", "Phone", "User locked out after vacation", "Closed", "Building A", "Jackie Phrakousonh (jphrakousonh)", "Maria Garcia (mgarcia)", "01-15-2024 10:30:00", "01-15-2024 11:02:14"},
		{"IMS0001235", "VPN keeps dropping", "Self-service", "", "Resolved", "Building B", "Tom Albright (talbright)", "Maria Garcia (mgarcia)", "01-15-2024 11:45:10", "01-16-2024 09:12:00"},
		{"IMS0001236", "Monitor flickering", "Walk-in", "Swapped cable", "Closed", "Building A", "Priya Nair (pnair)", "Dan Okafor (dokafor)", "01-16-2024 08:05:33", "01-16-2024 08:40:21"},
		{"IMS0001237", "Printer offline on floor 3", "Phone", "", "Open", "Building C", "Facilities Team", "", "01-16-2024 14:18:00", ""},
		{"IMS0001238", "Laptop battery swollen", "Email", "Ordered replacement", "In Progress", "Building B", "Tom Albright (talbright)", "Dan Okafor (dokafor)", "2024-01-17 09:00:00", "2024-01-17 09:30:00"},
		{"IMS0001239", "Email quota exceeded", "Self-service", "", "Closed", "", "Sara Whitfield (swhitfield)", "Maria Garcia (mgarcia)", "01-17-2024 13:22:45", "01-17-2024 13:25:00"},
		{"IMS0001240", "Badge reader rejects card", "Walk-in", "Re-encoded badge", "Resolved", "Building A", "Priya Nair (pnair)", "Dan Okafor (dokafor)", "not yet opened", ""},
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func writeLinks(path string) error {
	rows := [][]string{
		{"interaction", "task", "sys_created_by", "sys_created_on"},
		{"IMS0001234", "INC0005678", "mgarcia", "2024-01-15 10:35:00"},
		{"IMS0001235", "INC0005679", "mgarcia", "2024-01-15 11:50:22"},
		{"IMS0001235", "INC0005680", "mgarcia", "2024-01-16 09:14:05"},
		{"IMS0001236", "INC0005681", "dokafor", "2024-01-16 08:41:00"},
		// Duplicate of the first pair; the loader skips it.
		{"IMS0001234", "INC0005678", "mgarcia", "2024-01-15 10:35:00"},
		// No matching sys_id record; loads without enrichment.
		{"IMS0001238", "INC0005699", "dokafor", "2024-01-17 09:31:11"},
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func writeSysIDs(path string) error {
	type record struct {
		SysCreatedBy string `json:"sys_created_by"`
		SysCreatedOn string `json:"sys_created_on"`
		Interaction  string `json:"interaction"`
		Task         string `json:"task"`
	}

	payload := struct {
		Records []record `json:"records"`
	}{
		Records: []record{
			{"mgarcia", "2024-01-15 10:35:00", "8a3f29c41b2d5e10f0d2a9b4e54bcb72", "51be07d81b6d5e10f0d2a9b4e54bcbd1"},
			{"mgarcia", "2024-01-15 11:50:22", "9c1d44e01bad5e10f0d2a9b4e54bcb10", "62cf18e91b7d5e10f0d2a9b4e54bce02"},
			{"mgarcia", "2024-01-16 09:14:05", "ab2e55f11bbd5e10f0d2a9b4e54bcb21", "73d029fa1b8d5e10f0d2a9b4e54bcf13"},
			{"dokafor", "2024-01-16 08:41:00", "bc3f66021bcd5e10f0d2a9b4e54bcb32", "84e13a0b1b9d5e10f0d2a9b4e54bc024"},
		},
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
