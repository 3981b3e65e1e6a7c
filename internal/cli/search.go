package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/seedscan/internal/logging"
	"github.com/vvka-141/seedscan/pkg/seedscan"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the test table without seeding it",
	Long: `Search connects, runs the LIKE search on the normal and success columns and
disconnects. The table is neither created nor filled.

Examples:
  seedscan search lorem
  seedscan search          # every row`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

var searchFlags runFlagValues

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().DurationVar(&searchFlags.timeout, "timeout", seedscan.DefaultTimeout,
		"Catastrophic failure protection timeout")
}

func runSearch(cmd *cobra.Command, args []string) error {
	logger := logging.NewConsoleLogger(rootFlags.verbose)

	cfg, err := buildSeedConfig(cmd, searchFlags, logger)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.Query = args[0]
	}

	ctx, cancel := signalContext(cfg.Timeout)
	defer cancel()

	if _, err := newSeeder(logger).SearchOnly(ctx, cfg, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	return nil
}
