package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/example/ticketmart/internal/models"
)

// StatsCmd returns the stats command.
func StatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show row counts for every warehouse table",
		Long: `Reports how many rows each dimension, fact, and bridge table holds.
Tables missing from an uninitialized database show as N/A; stats never
creates or migrates the schema.

Examples:
  ticketmart stats
  ticketmart stats --db /var/lib/ticketmart/warehouse.db`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd)
			if err != nil {
				return err
			}
			defer rt.Close()

			counts, err := rt.Stats.Stats(context.Background())
			if err != nil {
				return err
			}

			fmt.Printf("Warehouse statistics (%s)\n\n", rt.Config.DatabasePath)
			printStatsTable(counts)

			return nil
		},
	}
}

// printStatsTable renders per-table row counts; tables absent from an
// uninitialized database show as N/A. Shared with the ingest summary.
func printStatsTable(counts []models.TableCount) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TABLE\tLABEL\tROWS")
	fmt.Fprintln(w, "-----\t-----\t----")
	for _, tc := range counts {
		rows := "N/A"
		if tc.Available {
			rows = humanize.Comma(tc.Count)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", tc.Table, tc.Label, rows)
	}
	w.Flush()
}
