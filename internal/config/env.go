package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/vvka-141/seedscan/pkg/seedscan"
)

// LoadEnv loads the .env file at path into the process environment.
// Variables already set in the environment are not overridden.
// A missing or unreadable file is a configuration error.
func LoadEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %v: %w", path, err, seedscan.ErrInvalidConfig)
	}
	return nil
}

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// FromEnv builds a ConnectionConfig from the DB_* variables.
//
// DB_HOST, DB_USERNAME and DB_NAME must be non-empty. DB_PASSWORD must be
// present but may be empty (trust or peer authentication). Every missing key
// is named in a single error. DB_PORT and DB_SSLMODE are optional.
func FromEnv(lookup LookupFunc) (*seedscan.ConnectionConfig, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	values := make(map[string]string, len(seedscan.RequiredEnvKeys))
	var missing []string
	for _, key := range seedscan.RequiredEnvKeys {
		value, ok := lookup(key)
		value = strings.TrimSpace(value)
		if !ok || (value == "" && key != seedscan.EnvPassword) {
			missing = append(missing, key)
			continue
		}
		values[key] = value
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required configuration keys: %s: %w",
			strings.Join(missing, ", "), seedscan.ErrInvalidConfig)
	}

	cfg := &seedscan.ConnectionConfig{
		Host:           values[seedscan.EnvHost],
		Port:           seedscan.DefaultPort,
		Username:       values[seedscan.EnvUsername],
		Password:       values[seedscan.EnvPassword],
		Database:       values[seedscan.EnvDatabase],
		SSLMode:        seedscan.DefaultSSLMode,
		AppName:        "seedscan",
		ConnectTimeout: seedscan.DefaultConnectTimeout,
	}

	if raw, ok := lookup(seedscan.EnvPort); ok && strings.TrimSpace(raw) != "" {
		port, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || port <= 0 || port > 65535 {
			return nil, fmt.Errorf("invalid %s %q: %w", seedscan.EnvPort, raw, seedscan.ErrInvalidConfig)
		}
		cfg.Port = port
	}

	if raw, ok := lookup(seedscan.EnvSSLMode); ok && strings.TrimSpace(raw) != "" {
		mode := strings.TrimSpace(raw)
		if !isValidSSLMode(mode) {
			return nil, fmt.Errorf("invalid %s %q (want disable, allow, prefer, require, verify-ca or verify-full): %w",
				seedscan.EnvSSLMode, raw, seedscan.ErrInvalidConfig)
		}
		cfg.SSLMode = mode
	}

	return cfg, nil
}

func isValidSSLMode(mode string) bool {
	switch mode {
	case "disable", "allow", "prefer", "require", "verify-ca", "verify-full":
		return true
	default:
		return false
	}
}

// WriteEnv writes values to a .env file at path with 0600 permissions.
// godotenv sorts the keys and quotes the values.
func WriteEnv(path string, values map[string]string) error {
	content, err := godotenv.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	if err := os.WriteFile(path, []byte(content+"\n"), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
