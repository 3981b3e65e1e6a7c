package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vvka-141/seedscan/internal/logging"
	"github.com/vvka-141/seedscan/pkg/seedscan"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create, fill and search the test table",
	Long: `Seed runs the full workflow against the database named in the .env file:

1. Connect (a failure here aborts with exit code 11)
2. Create table 'test' if it does not exist
3. Insert generated rows through a prepared statement
4. Search the normal and success columns for --query
5. Close the connection

Failures in steps 2-4 are reported on stdout and do not stop later steps.

Examples:
  # Default run: 10 rows, empty query (lists every row)
  seedscan seed

  # Insert 25 rows and look for "lorem"
  seedscan seed --records 25 --query lorem

  # Search only, against an existing table
  seedscan seed --skip-schema --skip-fill --query lorem`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

var seedFlags runFlagValues

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().IntVarP(&seedFlags.records, "records", "n", seedscan.DefaultRecordCount,
		"Number of generated rows to insert")
	seedCmd.Flags().StringVarP(&seedFlags.query, "query", "q", "",
		"Substring searched for in the normal and success columns (empty matches all)")
	seedCmd.Flags().BoolVar(&seedFlags.skipSchema, "skip-schema", false,
		"Do not run CREATE TABLE IF NOT EXISTS")
	seedCmd.Flags().BoolVar(&seedFlags.skipFill, "skip-fill", false,
		"Do not insert rows")
	seedCmd.Flags().DurationVar(&seedFlags.timeout, "timeout", seedscan.DefaultTimeout,
		"Catastrophic failure protection timeout for the whole run\n"+
			"Examples: 30s, 5m")
}

func runSeed(cmd *cobra.Command, args []string) error {
	logger := logging.NewConsoleLogger(rootFlags.verbose)

	cfg, err := buildSeedConfig(cmd, seedFlags, logger)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(cfg.Timeout)
	defer cancel()

	summary, err := newSeeder(logger).Run(ctx, cfg, cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}

	logger.Verbose("Schema ready: %t, inserted: %d, failed: %d, matches: %d",
		summary.SchemaReady, summary.Inserted, summary.FailedInsert, summary.Matches)
	return nil
}

// signalContext returns a context cancelled by the timeout or by Ctrl+C/SIGTERM.
// A zero timeout disables the deadline.
func signalContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	var (
		ctx    context.Context
		cancel context.CancelFunc
	)
	if timeout > 0 {
		ctx, cancel = context.WithTimeout(context.Background(), timeout)
	} else {
		ctx, cancel = context.WithCancel(context.Background())
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case <-sigChan:
			fmt.Fprintln(os.Stderr, "\n[INTERRUPT] Received interrupt signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(sigChan)
		cancel()
	}
}
