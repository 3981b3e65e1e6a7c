package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vvka-141/seedscan/pkg/seedscan"
)

// resetCommandState restores package flag variables and cobra's Changed
// markers so tests do not leak settings into each other.
func resetCommandState(t *testing.T) {
	t.Helper()

	for _, cmd := range []*cobra.Command{rootCmd, seedCmd, searchCmd, findCmd, initCmd} {
		for _, fs := range []*pflag.FlagSet{cmd.Flags(), cmd.PersistentFlags()} {
			fs.VisitAll(func(f *pflag.Flag) {
				_ = f.Value.Set(f.DefValue)
				f.Changed = false
			})
		}
		cmd.SetOut(nil)
		cmd.SetErr(nil)
	}

	dir := t.TempDir()
	rootFlags.envFile = filepath.Join(dir, ".env")
	rootFlags.configDir = dir

	t.Setenv("SEEDSCAN_NON_INTERACTIVE", "1")
	for _, key := range []string{
		seedscan.EnvHost, seedscan.EnvUsername, seedscan.EnvPassword,
		seedscan.EnvDatabase, seedscan.EnvPort, seedscan.EnvSSLMode,
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

const validEnv = `DB_HOST=localhost
DB_USERNAME=app
DB_PASSWORD=secret
DB_NAME=appdb
`

// fakeSeeder records the configuration it was given.
type fakeSeeder struct {
	config     seedscan.SeedConfig
	searchOnly bool
	output     string
	err        error
}

func (f *fakeSeeder) Run(_ context.Context, config seedscan.SeedConfig, out io.Writer) (*seedscan.RunSummary, error) {
	f.config = config
	io.WriteString(out, f.output)
	if f.err != nil {
		return nil, f.err
	}
	return &seedscan.RunSummary{}, nil
}

func (f *fakeSeeder) SearchOnly(ctx context.Context, config seedscan.SeedConfig, out io.Writer) (*seedscan.RunSummary, error) {
	f.searchOnly = true
	return f.Run(ctx, config, out)
}

func useFakeSeeder(t *testing.T, f *fakeSeeder) {
	t.Helper()
	original := newSeeder
	newSeeder = func(seedscan.Logger) seedscan.Seeder { return f }
	t.Cleanup(func() { newSeeder = original })
}

func TestRootCmd_RegistersCommands(t *testing.T) {
	want := map[string]bool{"find": false, "seed": false, "search": false, "init": false, "version": false}
	for _, cmd := range rootCmd.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestCommands_ArgsValidation(t *testing.T) {
	tests := []struct {
		name string
		cmd  *cobra.Command
		args []string
	}{
		{"find with two dirs", findCmd, []string{"a", "b"}},
		{"seed with argument", seedCmd, []string{"x"}},
		{"search with two queries", searchCmd, []string{"a", "b"}},
		{"init with argument", initCmd, []string{"x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Args(tt.cmd, tt.args)
			if err == nil {
				t.Fatal("Expected error for invalid args")
			}
			if code := seedscan.ExitCodeForError(err); code != seedscan.ExitUsageError {
				t.Errorf("Expected exit code %d (usage), got %d for: %v", seedscan.ExitUsageError, code, err)
			}
		})
	}
}

func TestRootCmd_UnknownFlagIsUsageError(t *testing.T) {
	resetCommandState(t)

	var stderr bytes.Buffer
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs([]string{"seed", "--no-such-flag"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("Expected error for unknown flag")
	}
	if code := seedscan.ExitCodeForError(err); code != seedscan.ExitUsageError {
		t.Errorf("Expected usage exit code, got %d", code)
	}
}
