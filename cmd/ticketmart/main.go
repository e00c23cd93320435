package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/ticketmart/internal/cli"
	"github.com/example/ticketmart/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "ticketmart",
		Short:   "ticketmart - IT support ticket warehouse loader",
		Version: version.String(),
		Long: `ticketmart loads IT support ticket exports into a local SQLite star
schema: interactions become facts against user, technician, location,
state, and date dimensions, and interaction-incident links become a
bridge table enriched with platform sys_ids.`,
	}

	rootCmd.PersistentFlags().String("config", "", "Path to config file (default ticketmart.yaml when present)")
	rootCmd.PersistentFlags().String("db", "", "SQLite database path (overrides config)")
	rootCmd.PersistentFlags().String("exports-dir", "", "Directory scanned for export feeds (overrides config)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(cli.IngestCmd())
	rootCmd.AddCommand(cli.StatsCmd())
	rootCmd.AddCommand(cli.RunsCmd())
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.DoctorCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
