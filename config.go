package callbase

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultMarker is the directive enabling enforcement for a method and
// every method overriding it.
const DefaultMarker = "callbase:require"

// Config is the runtime configuration of the analyzer.
type Config struct {
	// Marker is the directive comment text, without the leading slashes.
	Marker string `yaml:"marker"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{Marker: DefaultMarker}
}

// LoadConfig reads settings from a yaml file. Fields missing in the file
// keep their defaults.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	if cfg.Marker == "" {
		return Config{}, fmt.Errorf("config file %s: marker must not be empty", path)
	}

	return cfg, nil
}

// effectiveConfig resolves flag values against the optional config file.
func effectiveConfig() (Config, error) {
	cfg := DefaultConfig()

	if flagConfig != "" {
		loaded, err := LoadConfig(flagConfig)
		if err != nil {
			return Config{}, err
		}

		cfg = loaded
	}

	if flagMarker != "" {
		cfg.Marker = flagMarker
	}

	return cfg, nil
}
