package tui

import (
	"os"

	"golang.org/x/term"
)

// Mode represents the interaction mode for seedscan.
type Mode int

const (
	// ModeNonInteractive: no prompts, no wizard, plain output.
	ModeNonInteractive Mode = iota
	// ModeInteractive: init may prompt and run the .env wizard.
	ModeInteractive
)

// NonInteractiveEnv forces non-interactive mode when set to "1".
const NonInteractiveEnv = "SEEDSCAN_NON_INTERACTIVE"

// Terminal describes the process's standard streams and environment.
type Terminal struct {
	Getenv    func(string) string
	StdinTTY  bool
	StdoutTTY bool
}

// CurrentTerminal inspects the running process.
func CurrentTerminal() Terminal {
	return Terminal{
		Getenv:    os.Getenv,
		StdinTTY:  term.IsTerminal(int(os.Stdin.Fd())),
		StdoutTTY: term.IsTerminal(int(os.Stdout.Fd())),
	}
}

func (t Terminal) env(key string) string {
	if t.Getenv == nil {
		return ""
	}
	return t.Getenv(key)
}

// Mode reports whether init may prompt. Both streams must be terminals and
// neither SEEDSCAN_NON_INTERACTIVE=1 nor CI may be set.
func (t Terminal) Mode() Mode {
	if t.env(NonInteractiveEnv) == "1" || t.env("CI") != "" {
		return ModeNonInteractive
	}
	if !t.StdinTTY || !t.StdoutTTY {
		return ModeNonInteractive
	}
	return ModeInteractive
}

// Styled reports whether report headers (find) may carry ANSI styling.
// Only stdout matters here; NO_COLOR and SEEDSCAN_NON_INTERACTIVE disable it.
func (t Terminal) Styled() bool {
	if t.env("NO_COLOR") != "" || t.env(NonInteractiveEnv) == "1" {
		return false
	}
	return t.StdoutTTY
}

// DetectMode returns the interaction mode of the running process.
func DetectMode() Mode {
	return CurrentTerminal().Mode()
}

// IsInteractive reports whether the running process may prompt.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}

// IsStyled reports whether the running process may style its stdout.
func IsStyled() bool {
	return CurrentTerminal().Styled()
}
