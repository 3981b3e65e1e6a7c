package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the project file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ProjectConfig holds optional run settings from seedscan.yaml.
// Zero values mean "use the built-in default".
type ProjectConfig struct {
	Records    *int   `yaml:"records,omitempty"`
	Query      string `yaml:"query,omitempty"`
	DataDir    string `yaml:"data_dir,omitempty"`
	Timeout    string `yaml:"timeout,omitempty"`
	SkipSchema bool   `yaml:"skip_schema,omitempty"`
	SkipFill   bool   `yaml:"skip_fill,omitempty"`
}

const ConfigFileName = "seedscan.yaml"

// Load reads seedscan.yaml from dir.
func Load(dir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// TimeoutDuration parses Timeout. An empty value yields zero.
func (c *ProjectConfig) TimeoutDuration() (time.Duration, error) {
	if c == nil || c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout in %s: %w", ConfigFileName, err)
	}
	return d, nil
}
