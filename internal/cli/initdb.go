package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// InitCmd returns the init command.
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create or migrate the warehouse schema",
		Long: `Creates the SQLite warehouse and applies any pending schema
migrations. Running it against an existing database is safe; it only
applies what is missing.

Examples:
  ticketmart init
  ticketmart init --db /var/lib/ticketmart/warehouse.db`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd)
			if err != nil {
				return err
			}
			defer rt.Close()

			if err := rt.InitSchema(); err != nil {
				return fmt.Errorf("failed to initialize schema: %w", err)
			}

			version, err := rt.SchemaVersion()
			if err != nil {
				return err
			}

			fmt.Printf("✓ Warehouse ready at %s (schema version %d)\n", rt.Config.DatabasePath, version)
			return nil
		},
	}
}
