package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultPath is the config file consulted when no --config flag is given.
const DefaultPath = "ticketmart.yaml"

// Config holds all configuration for ticketmart.
// Values can come from a YAML file or environment variables; environment
// variables override YAML for fields that carry both tags.
type Config struct {
	// ExportsDir is the directory scanned for export feeds.
	ExportsDir string `yaml:"exports_dir" env:"TICKETMART_EXPORTS_DIR" env-default:"exports"`

	// DatabasePath is the SQLite warehouse file.
	DatabasePath string `yaml:"database" env:"TICKETMART_DATABASE" env-default:"interactions.db"`

	// InstanceBaseURL is the ticketing instance that record URLs point at.
	InstanceBaseURL string `yaml:"instance_base_url" env:"TICKETMART_INSTANCE_BASE_URL" env-default:"https://example.service-now.com"`

	Feeds FeedsConfig `yaml:"feeds"`
	Log   LogConfig   `yaml:"log"`
}

// FeedsConfig names the glob patterns that identify each export feed
// inside the exports directory. The newest match by filename wins.
type FeedsConfig struct {
	InteractionsPattern string `yaml:"interactions_pattern" env:"TICKETMART_INTERACTIONS_PATTERN" env-default:"interaction_*.csv"`
	LinksPattern        string `yaml:"links_pattern" env:"TICKETMART_LINKS_PATTERN" env-default:"ims_inc_*.csv"`
	SysIDsPattern       string `yaml:"sysids_pattern" env:"TICKETMART_SYSIDS_PATTERN" env-default:"sysid_*.json"`
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level string `yaml:"level" env:"TICKETMART_LOG_LEVEL" env-default:"info"`
}

// Load reads configuration from the given YAML file with environment
// variable overrides. An empty path falls back to DefaultPath when that
// file exists; otherwise configuration comes from the environment and
// tag defaults alone. An explicitly named file must exist.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path == "" {
		if _, err := os.Stat(DefaultPath); err == nil {
			path = DefaultPath
		}
	}

	if path != "" {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		return cfg, nil
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	return cfg, nil
}
