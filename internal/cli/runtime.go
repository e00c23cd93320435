package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/ticketmart/internal/config"
	"github.com/example/ticketmart/internal/logging"
	"github.com/example/ticketmart/internal/wire"
)

// loadConfig resolves configuration for a command invocation: config file
// and environment first, then persistent flag overrides on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if v, _ := cmd.Flags().GetString("db"); v != "" {
		cfg.DatabasePath = v
	}
	if v, _ := cmd.Flags().GetString("exports-dir"); v != "" {
		cfg.ExportsDir = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.Log.Level = v
	}

	return cfg, nil
}

// newRuntime builds the full service graph for a command invocation.
// The caller owns the returned runtime and must Close it.
func newRuntime(cmd *cobra.Command) (*wire.Runtime, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	rt, err := wire.NewRuntime(cfg, logging.New(cfg.Log.Level))
	if err != nil {
		return nil, fmt.Errorf("failed to open warehouse: %w", err)
	}
	return rt, nil
}
