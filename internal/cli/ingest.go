package cli

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/example/ticketmart/internal/ports/primary"
)

// IngestCmd returns the ingest command.
func IngestCmd() *cobra.Command {
	var interactionsPath, linksPath, sysidsPath string

	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Load the newest exports into the warehouse",
		Long: `Discovers the newest interaction, link, and sys_id exports in the
exports directory and loads them into the SQLite star schema. Reloading
the same files is safe: interactions are replaced in place and duplicate
links are skipped.

Examples:
  ticketmart ingest                       # newest exports in the exports dir
  ticketmart ingest --interactions exports/interaction_20240115.csv
  ticketmart ingest --db /tmp/scratch.db --exports-dir /srv/feeds`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd)
			if err != nil {
				return err
			}
			defer rt.Close()

			if err := rt.InitSchema(); err != nil {
				return fmt.Errorf("failed to initialize schema: %w", err)
			}

			resp, err := rt.Pipeline.Ingest(context.Background(), primary.IngestRequest{
				InteractionsPath: interactionsPath,
				LinksPath:        linksPath,
				SysIDsPath:       sysidsPath,
			})
			if err != nil {
				return fmt.Errorf("ingest failed: %w", err)
			}

			fmt.Printf("✓ Load run %s complete\n\n", resp.RunID)

			if resp.InteractionsFile != "" {
				fmt.Printf("Interactions  %s\n", resp.InteractionsFile)
				fmt.Printf("  %s loaded (+%d users, +%d technicians, +%d locations, +%d states, +%d dates)\n",
					humanize.Comma(int64(resp.Interactions.Loaded)),
					resp.Interactions.UsersCreated,
					resp.Interactions.TechniciansCreated,
					resp.Interactions.LocationsCreated,
					resp.Interactions.StatesCreated,
					resp.Interactions.DatesCreated)
			} else {
				fmt.Println("Interactions  (no feed found)")
			}

			if resp.SysIDsFile != "" {
				fmt.Printf("Sys_ids       %s\n", resp.SysIDsFile)
				fmt.Printf("  %s indexed\n", humanize.Comma(int64(resp.SysIDsIndexed)))
			} else {
				fmt.Println("Sys_ids       (no feed found)")
			}

			if resp.LinksFile != "" {
				fmt.Printf("Links         %s\n", resp.LinksFile)
				fmt.Printf("  %s inserted, %s duplicates skipped\n",
					humanize.Comma(int64(resp.Links.Inserted)),
					humanize.Comma(int64(resp.Links.Skipped)))
			} else {
				fmt.Println("Links         (no feed found)")
			}

			counts, err := rt.Stats.Stats(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("\nWarehouse statistics (%s)\n\n", rt.Config.DatabasePath)
			printStatsTable(counts)

			return nil
		},
	}

	cmd.Flags().StringVar(&interactionsPath, "interactions", "", "Interactions CSV to load (overrides discovery)")
	cmd.Flags().StringVar(&linksPath, "links", "", "Interaction-incident links CSV to load (overrides discovery)")
	cmd.Flags().StringVar(&sysidsPath, "sysids", "", "Sys_id JSON to index (overrides discovery)")

	return cmd
}
