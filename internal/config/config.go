package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// CycleConfig names the distribution cycle the source directory holds.
type CycleConfig struct {
	// Effective is the cycle's effective date, "MM/DD/YYYY".
	Effective string `yaml:"effective,omitempty"`
}

// ProjectConfig is the optional per-distribution configuration, read from a
// nasr.yaml next to the distribution files. Command-line flags override
// everything set here.
type ProjectConfig struct {
	Cycle CycleConfig `yaml:"cycle"`

	// Types restricts parsing to the listed record types.
	Types []string `yaml:"types,omitempty"`

	// ContinueOnError skips row-level decode failures without prompting.
	ContinueOnError bool `yaml:"continue_on_error,omitempty"`

	// Verbose enables detailed logging.
	Verbose bool `yaml:"verbose,omitempty"`
}

const ConfigFileName = "nasr.yaml"

// Load reads the config file from the distribution directory. A missing file
// is ErrConfigNotFound; callers treat that as an empty config.
func Load(sourcePath string) (*ProjectConfig, error) {
	configPath := filepath.Join(sourcePath, ConfigFileName)
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
