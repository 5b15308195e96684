package convert

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls a conversion.
type Config struct {
	// DeclareLength declares the source file size in the pixel data
	// header. False streams with undefined length and a trailing
	// delimitation item.
	DeclareLength bool `yaml:"declareLength"`

	// StudyKey groups related conversions under shared study and
	// series identifiers persisted in UIDDatabase. Empty means fresh
	// identifiers per conversion.
	StudyKey    string `yaml:"studyKey"`
	UIDDatabase string `yaml:"uidDatabase"`

	// Overrides maps attribute keywords to values seeding the
	// initial attribute table. Overrides win over probed metadata
	// defaults only where the builder fills-if-absent.
	Overrides map[string]string `yaml:"overrides"`
}

// DefaultConfig returns the default conversion configuration.
func DefaultConfig() Config {
	return Config{
		DeclareLength: true,
		UIDDatabase:   "mpg2dcm-uids.db",
	}
}

// ParseConfig parses yaml configuration on top of the defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// ReadConfigFile reads and parses the configuration file at path.
func ReadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}
