// Package wizards contains the interactive flows behind seedscan commands.
package wizards

import (
	"errors"
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/seedscan/internal/tui/components"
	"github.com/vvka-141/seedscan/pkg/seedscan"
)

// ErrCancelled is returned when the user leaves the wizard without submitting.
var ErrCancelled = errors.New("wizard cancelled")

// NewEnvForm builds the connection form, pre-filled from defaults
// (keyed by env name, e.g. DB_HOST).
func NewEnvForm(defaults map[string]string) components.Form {
	return components.NewForm("seedscan database configuration",
		components.NewTextField(seedscan.EnvHost, "Host", "localhost").
			WithValue(defaults[seedscan.EnvHost]).
			WithRequired(true),
		components.NewTextField(seedscan.EnvPort, "Port", strconv.Itoa(seedscan.DefaultPort)).
			WithValue(defaults[seedscan.EnvPort]).
			WithValidator(validatePort),
		components.NewTextField(seedscan.EnvUsername, "Username", "postgres").
			WithValue(defaults[seedscan.EnvUsername]).
			WithRequired(true),
		components.NewTextField(seedscan.EnvPassword, "Password", "").
			WithValue(defaults[seedscan.EnvPassword]).
			WithPassword(),
		components.NewTextField(seedscan.EnvDatabase, "Database", "seedscan").
			WithValue(defaults[seedscan.EnvDatabase]).
			WithRequired(true),
	)
}

// EnvValues converts a submitted form into .env entries. An empty port is
// omitted so the default applies.
func EnvValues(form components.Form) map[string]string {
	values := form.Values()
	if values[seedscan.EnvPort] == "" {
		delete(values, seedscan.EnvPort)
	}
	return values
}

// RunEnvWizard runs the form full-screen and returns the collected values.
func RunEnvWizard(defaults map[string]string) (map[string]string, error) {
	final, err := tea.NewProgram(NewEnvForm(defaults)).Run()
	if err != nil {
		return nil, fmt.Errorf("env wizard: %w", err)
	}

	form, ok := final.(components.Form)
	if !ok || form.Cancelled() || !form.Submitted() {
		return nil, ErrCancelled
	}
	return EnvValues(form), nil
}

func validatePort(s string) error {
	if s == "" {
		return nil
	}
	port, err := strconv.Atoi(s)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("port must be a number between 1 and 65535")
	}
	return nil
}
