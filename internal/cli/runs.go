package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/ticketmart/internal/models"
)

// RunsCmd returns the runs command.
func RunsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Show recent load runs",
		Long: `Lists recent load runs from the audit trail, newest first, with the
files each run consumed and how many rows it loaded.

Examples:
  ticketmart runs
  ticketmart runs --limit 25`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd)
			if err != nil {
				return err
			}
			defer rt.Close()

			runs, err := rt.Runs.RecentRuns(context.Background(), limit)
			if err != nil {
				return err
			}

			if len(runs) == 0 {
				fmt.Println("No load runs recorded")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "RUN\tSTARTED\tSTATUS\tINTERACTIONS\tLINKS\tSYS_IDS")
			fmt.Fprintln(w, "---\t-------\t------\t------------\t-----\t-------")
			for _, run := range runs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\n",
					shortRunID(run.RunID),
					run.StartedAt,
					statusLabel(run.Status),
					run.InteractionsLoaded,
					run.LinksLoaded,
					run.SysIDsIndexed,
				)
			}
			w.Flush()

			for _, run := range runs {
				if run.Status == models.RunStatusFailed && run.Error != "" {
					fmt.Printf("\n✗ %s: %s\n", shortRunID(run.RunID), run.Error)
				}
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Number of runs to show")

	return cmd
}

// shortRunID keeps run tables readable; the full UUID stays in the database.
func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func statusLabel(status string) string {
	switch status {
	case models.RunStatusCompleted:
		return color.New(color.FgHiGreen).Sprint(status)
	case models.RunStatusFailed:
		return color.New(color.FgRed).Sprint(status)
	case models.RunStatusRunning:
		return color.New(color.FgYellow).Sprint(status)
	default:
		return status
	}
}
