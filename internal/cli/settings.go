package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vvka-141/seedscan/internal/config"
	"github.com/vvka-141/seedscan/internal/db"
	"github.com/vvka-141/seedscan/internal/fakedata"
	"github.com/vvka-141/seedscan/internal/services"
	"github.com/vvka-141/seedscan/pkg/seedscan"
)

// newSeeder builds the workflow service. Tests replace it.
var newSeeder = func(logger seedscan.Logger) seedscan.Seeder {
	factory := func(c *seedscan.ConnectionConfig) (seedscan.Connector, error) {
		return db.NewConnector(c, logger)
	}
	return services.NewSeedService(factory, fakedata.New(), logger)
}

// loadProjectConfig reads seedscan.yaml from --config-dir. A missing file
// yields nil so built-in defaults apply.
func loadProjectConfig() (*config.ProjectConfig, error) {
	projectCfg, err := config.Load(rootFlags.configDir)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load %s: %v: %w", config.ConfigFileName, err, seedscan.ErrInvalidConfig)
	}
	return projectCfg, nil
}

// loadConnectionConfig runs the Configure phase: load the .env file, then
// read and validate every DB_* key.
//
// The default .env may be absent when the variables are already exported;
// a file named with --env-file must exist.
func loadConnectionConfig(logger seedscan.Logger) (*seedscan.ConnectionConfig, error) {
	envFile := rootFlags.envFile
	if err := config.LoadEnv(envFile); err != nil {
		if envFileExplicit() {
			return nil, err
		}
		if _, statErr := os.Stat(envFile); statErr == nil {
			return nil, err
		}
		logger.Verbose("No %s file found, using process environment", envFile)
	} else {
		logger.Verbose("Loaded %s", envFile)
	}

	return config.FromEnv(nil)
}

type runFlagValues struct {
	records    int
	query      string
	skipSchema bool
	skipFill   bool
	timeout    time.Duration
}

// buildSeedConfig merges flags, seedscan.yaml and defaults, in that order of precedence.
func buildSeedConfig(cmd *cobra.Command, flags runFlagValues, logger seedscan.Logger) (seedscan.SeedConfig, error) {
	projectCfg, err := loadProjectConfig()
	if err != nil {
		return seedscan.SeedConfig{}, err
	}

	connConfig, err := loadConnectionConfig(logger)
	if err != nil {
		return seedscan.SeedConfig{}, err
	}

	cfg := seedscan.SeedConfig{
		Connection:  *connConfig,
		RecordCount: seedscan.DefaultRecordCount,
		Timeout:     seedscan.DefaultTimeout,
		Verbose:     rootFlags.verbose,
	}

	if projectCfg != nil {
		if projectCfg.Records != nil {
			cfg.RecordCount = *projectCfg.Records
		}
		cfg.Query = projectCfg.Query
		cfg.SkipSchema = projectCfg.SkipSchema
		cfg.SkipFill = projectCfg.SkipFill

		timeout, err := projectCfg.TimeoutDuration()
		if err != nil {
			return seedscan.SeedConfig{}, fmt.Errorf("%w: %w", seedscan.ErrInvalidConfig, err)
		}
		if timeout > 0 {
			cfg.Timeout = timeout
		}
	}

	changed := cmd.Flags().Changed
	if changed("records") {
		cfg.RecordCount = flags.records
	}
	if changed("query") {
		cfg.Query = flags.query
	}
	if changed("skip-schema") {
		cfg.SkipSchema = flags.skipSchema
	}
	if changed("skip-fill") {
		cfg.SkipFill = flags.skipFill
	}
	if changed("timeout") {
		cfg.Timeout = flags.timeout
	}

	if err := cfg.Validate(); err != nil {
		return seedscan.SeedConfig{}, err
	}

	logger.Verbose("Connection resolved: %s/%s as %s (sslmode=%s)",
		cfg.Connection.Address(), cfg.Connection.Database, cfg.Connection.Username, cfg.Connection.SSLMode)
	return cfg, nil
}
