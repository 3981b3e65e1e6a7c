package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vvka-141/seedscan/internal/files/scanner"
	"github.com/vvka-141/seedscan/internal/logging"
	"github.com/vvka-141/seedscan/internal/tui"
)

var findCmd = &cobra.Command{
	Use:   "find [dir]",
	Short: "List the data files in a directory",
	Long: `Find lists the regular files in dir whose whole name is letters and digits
followed by ".ixt" (for example a1.ixt), sorted by name. Subdirectories are
not searched.

Without dir, data_dir from seedscan.yaml is used, then the datafiles
directory next to the seedscan executable.

A missing directory is fatal (exit code 14).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFind,
}

// findScanner is replaced in tests with an in-memory filesystem scanner.
var findScanner = scanner.NewScanner

func init() {
	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	logger := logging.NewConsoleLogger(rootFlags.verbose)

	dir, err := resolveFindDirectory(args)
	if err != nil {
		return err
	}
	logger.Verbose("Scanning %s", dir)

	names, err := findScanner().Discover(dir)
	if err != nil {
		return err
	}

	return reportFiles(cmd.OutOrStdout(), names, tui.IsStyled())
}

func resolveFindDirectory(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	projectCfg, err := loadProjectConfig()
	if err != nil {
		return "", err
	}
	if projectCfg != nil && projectCfg.DataDir != "" {
		return projectCfg.DataDir, nil
	}
	return scanner.DefaultDirectory(), nil
}

// reportFiles prints the plain report, styling only the header lines on a terminal.
func reportFiles(w io.Writer, names []string, styled bool) error {
	if !styled {
		return scanner.Report(w, names)
	}

	if len(names) == 0 {
		_, err := fmt.Fprintln(w, tui.Render(true, tui.WarningStyle, "No matching files found."))
		return err
	}
	if _, err := fmt.Fprintln(w, tui.Render(true, tui.TitleStyle, "Found files:")); err != nil {
		return err
	}
	for _, name := range names {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}
