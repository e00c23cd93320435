package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/ticketmart/internal/adapters/feeds"
	"github.com/example/ticketmart/internal/config"
	"github.com/example/ticketmart/internal/db"
)

// CheckResult represents the outcome of a single check
type CheckResult struct {
	Name    string
	Status  string // "✓", "⚠", "✗"
	Details string // Only shown if Status != "✓"
}

// DoctorCmd returns the doctor command for environment validation
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate the ticketmart environment",
		Long: `Environment health check for ticketmart.

Validates:
- Configuration loads cleanly
- Exports directory exists
- Each feed pattern matches at least one export
- Warehouse database exists with a current schema

Examples:
  ticketmart doctor              # Run full health check
  ticketmart doctor --quiet      # Exit code only (0=healthy, 1=issues)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			results := []CheckResult{}
			hasErrors := false

			cfg, cfgResult := checkConfig(cmd)
			results = append(results, cfgResult)
			if cfg != nil {
				results = append(results, checkExportsDir(cfg))
				results = append(results, checkFeeds(cfg)...)
				results = append(results, checkDatabase(cfg))
			}

			for _, r := range results {
				if r.Status == "✗" {
					hasErrors = true
					break
				}
			}

			if !quiet {
				fmt.Println()
				fmt.Println("Check              Status")
				fmt.Println("─────────────────────────")
				for _, r := range results {
					fmt.Printf("%-18s %s\n", r.Name, r.Status)
				}
				fmt.Println()

				hasDetails := false
				for _, r := range results {
					if r.Status != "✓" && r.Details != "" {
						if !hasDetails {
							fmt.Println("Details:")
							hasDetails = true
						}
						fmt.Printf("\n%s:\n%s\n", r.Name, r.Details)
					}
				}

				if hasErrors {
					fmt.Println("\n⚠ Issues found.")
				} else {
					fmt.Println("All checks passed.")
				}
			}

			if hasErrors {
				return fmt.Errorf("environment validation failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode - exit code only")

	return cmd
}

// checkConfig validates that configuration resolves cleanly
func checkConfig(cmd *cobra.Command) (*config.Config, CheckResult) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, CheckResult{Name: "Config", Status: "✗", Details: "  " + err.Error()}
	}
	return cfg, CheckResult{Name: "Config", Status: "✓"}
}

// checkExportsDir validates the feed source directory
func checkExportsDir(cfg *config.Config) CheckResult {
	info, err := os.Stat(cfg.ExportsDir)
	if err != nil {
		return CheckResult{
			Name:    "Exports Dir",
			Status:  "⚠",
			Details: fmt.Sprintf("  %s not found; nothing to ingest until it exists", cfg.ExportsDir),
		}
	}
	if !info.IsDir() {
		return CheckResult{
			Name:    "Exports Dir",
			Status:  "✗",
			Details: fmt.Sprintf("  %s is not a directory", cfg.ExportsDir),
		}
	}
	return CheckResult{Name: "Exports Dir", Status: "✓"}
}

// checkFeeds reports whether each feed pattern matches an export
func checkFeeds(cfg *config.Config) []CheckResult {
	catalog := feeds.NewCatalog(
		cfg.ExportsDir,
		cfg.Feeds.InteractionsPattern,
		cfg.Feeds.LinksPattern,
		cfg.Feeds.SysIDsPattern,
	)

	checks := []struct {
		name    string
		pattern string
		latest  func() (string, error)
	}{
		{"Interactions", cfg.Feeds.InteractionsPattern, catalog.LatestInteractions},
		{"Links", cfg.Feeds.LinksPattern, catalog.LatestLinks},
		{"Sys_ids", cfg.Feeds.SysIDsPattern, catalog.LatestSysIDs},
	}

	results := make([]CheckResult, 0, len(checks))
	for _, check := range checks {
		path, err := check.latest()
		if err != nil {
			results = append(results, CheckResult{Name: check.name, Status: "✗", Details: "  " + err.Error()})
			continue
		}
		if path == "" {
			results = append(results, CheckResult{
				Name:    check.name,
				Status:  "⚠",
				Details: fmt.Sprintf("  no files match %s in %s", check.pattern, cfg.ExportsDir),
			})
			continue
		}
		results = append(results, CheckResult{Name: check.name, Status: "✓"})
	}
	return results
}

// checkDatabase validates the warehouse file and its schema version.
// A missing or uninitialized database is a warning, not an error; ingest
// creates both on first run.
func checkDatabase(cfg *config.Config) CheckResult {
	if _, err := os.Stat(cfg.DatabasePath); err != nil {
		return CheckResult{
			Name:    "Database",
			Status:  "⚠",
			Details: fmt.Sprintf("  %s not found\n  Run: ticketmart init", cfg.DatabasePath),
		}
	}

	conn, err := db.Open(cfg.DatabasePath)
	if err != nil {
		return CheckResult{Name: "Database", Status: "✗", Details: "  " + err.Error()}
	}
	defer conn.Close()

	version, err := db.SchemaVersion(conn)
	if err != nil {
		return CheckResult{Name: "Database", Status: "✗", Details: "  " + err.Error()}
	}
	if version == 0 {
		return CheckResult{
			Name:    "Database",
			Status:  "⚠",
			Details: "  schema not initialized\n  Run: ticketmart init",
		}
	}
	return CheckResult{Name: "Database", Status: "✓"}
}
