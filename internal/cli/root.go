package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/seedscan/pkg/seedscan"
)

var rootCmd = &cobra.Command{
	Use:   "seedscan",
	Short: "Data-file scanner and table seed/search utility",
	Long: `seedscan bundles two small tools:

  find    lists the *.ixt data files in a directory
  seed    creates the 'test' table, fills it with generated rows and searches it

Database settings come from a .env file (DB_HOST, DB_USERNAME, DB_PASSWORD,
DB_NAME, optional DB_PORT and DB_SSLMODE). Run 'seedscan init' to write one.
Optional run defaults can live in seedscan.yaml.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Database connection failed
  13 - SQL execution failed
  14 - Scanned directory not found`,
	SilenceUsage: true,
}

type rootFlagValues struct {
	verbose   bool
	envFile   string
	configDir string
}

var rootFlags rootFlagValues

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootFlags.verbose, "verbose", "v", false,
		"Enable verbose output for all commands")
	rootCmd.PersistentFlags().StringVar(&rootFlags.envFile, "env-file", seedscan.DefaultEnvFile,
		"Path of the .env file holding DB_* settings")
	rootCmd.PersistentFlags().StringVar(&rootFlags.configDir, "config-dir", ".",
		"Directory searched for seedscan.yaml")
}

// envFileExplicit reports whether --env-file was given on the command line.
func envFileExplicit() bool {
	return rootCmd.PersistentFlags().Changed("env-file")
}
