package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vvka-141/seedscan/internal/config"
	"github.com/vvka-141/seedscan/internal/db"
	"github.com/vvka-141/seedscan/internal/logging"
	"github.com/vvka-141/seedscan/internal/tui"
	"github.com/vvka-141/seedscan/internal/tui/wizards"
	"github.com/vvka-141/seedscan/pkg/seedscan"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the .env file with database settings",
	Long: `Init writes DB_HOST, DB_PORT, DB_USERNAME, DB_PASSWORD and DB_NAME to the
file named by --env-file (default .env).

On a terminal with no connection flags, an interactive form collects the
values. Otherwise values come from the flags; the password is read from
$DB_PASSWORD so it never appears in shell history.

Examples:
  seedscan init
  DB_PASSWORD=secret seedscan init --host localhost --username app --database app
  seedscan init --host db --username app --database app --force --test`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

type initFlagValues struct {
	host, username, database, sslMode string
	port                              int
	force                             bool
	test                              bool
}

var initFlags initFlagValues

// runEnvWizard is replaced in tests.
var runEnvWizard = wizards.RunEnvWizard

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&initFlags.host, "host", "", "Database server host (DB_HOST)")
	initCmd.Flags().IntVar(&initFlags.port, "port", 0, "Database server port (DB_PORT, default 5432)")
	initCmd.Flags().StringVar(&initFlags.username, "username", "", "Database user (DB_USERNAME)")
	initCmd.Flags().StringVar(&initFlags.database, "database", "", "Database name (DB_NAME)")
	initCmd.Flags().StringVar(&initFlags.sslMode, "sslmode", "", "SSL mode (DB_SSLMODE)")
	initCmd.Flags().BoolVar(&initFlags.force, "force", false, "Overwrite an existing file without asking")
	initCmd.Flags().BoolVar(&initFlags.test, "test", false, "Open a connection with the written settings")
}

func runInit(cmd *cobra.Command, args []string) error {
	logger := logging.NewConsoleLogger(rootFlags.verbose)
	target := rootFlags.envFile
	interactive := tui.IsInteractive()

	if _, err := os.Stat(target); err == nil && !initFlags.force {
		if !interactive {
			return fmt.Errorf("%s already exists; use --force to overwrite: %w", target, seedscan.ErrInvalidConfig)
		}
		if !tui.PromptConfirm(os.Stdin, cmd.ErrOrStderr(), fmt.Sprintf("%s exists. Overwrite?", target)) {
			return fmt.Errorf("kept existing %s", target)
		}
	}

	values := initValuesFromFlags()
	if interactive && !anyConnectionFlagSet(cmd) {
		collected, err := runEnvWizard(values)
		if err != nil {
			if errors.Is(err, wizards.ErrCancelled) {
				return fmt.Errorf("init cancelled, nothing written")
			}
			return err
		}
		values = collected
	}

	// validate with the same rules the seed command applies when reading
	connConfig, err := config.FromEnv(mapLookup(values))
	if err != nil {
		return err
	}

	if err := config.WriteEnv(target, values); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", target)

	if initFlags.test {
		return testConnection(cmd, connConfig, logger)
	}
	return nil
}

func initValuesFromFlags() map[string]string {
	values := map[string]string{
		seedscan.EnvHost:     initFlags.host,
		seedscan.EnvUsername: initFlags.username,
		seedscan.EnvDatabase: initFlags.database,
		seedscan.EnvPassword: os.Getenv(seedscan.EnvPassword),
	}
	if initFlags.port != 0 {
		values[seedscan.EnvPort] = strconv.Itoa(initFlags.port)
	}
	if initFlags.sslMode != "" {
		values[seedscan.EnvSSLMode] = initFlags.sslMode
	}
	return values
}

func anyConnectionFlagSet(cmd *cobra.Command) bool {
	for _, name := range []string{"host", "port", "username", "database", "sslmode"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// mapLookup exposes values through the os.LookupEnv signature.
func mapLookup(values map[string]string) config.LookupFunc {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func testConnection(cmd *cobra.Command, connConfig *seedscan.ConnectionConfig, logger seedscan.Logger) error {
	connector, err := db.NewConnector(connConfig, logger)
	if err != nil {
		return err
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithTimeout(parent, seedscan.DefaultConnectTimeout)
	defer cancel()

	conn, err := connector.Connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Close(context.WithoutCancel(ctx)) //nolint:errcheck

	fmt.Fprintf(cmd.OutOrStdout(), "%s Connected to %s/%s\n",
		tui.SymbolCheck, connConfig.Address(), connConfig.Database)
	return nil
}
