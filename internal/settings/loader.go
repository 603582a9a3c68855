package settings

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML settings file from the given path.
func LoadFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Settings value, applying defaults and
// validating the result.
func Parse(data []byte) (Settings, error) {
	s := Default()

	// Distinguish "enabled: false" from the key being absent.
	var probe struct {
		AutoInclude *struct {
			Enabled *bool `yaml:"enabled"`
		} `yaml:"auto_include"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings YAML: %w", err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings YAML: %w", err)
	}

	if probe.AutoInclude == nil || probe.AutoInclude.Enabled == nil {
		s.AutoInclude.Enabled = true
	}

	applyDefaults(&s)

	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid settings: %w", err)
	}

	return s, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(s *Settings) {
	if s.Version == "" {
		s.Version = "1"
	}

	if s.Mode == "" {
		s.Mode = ModeExplicitInit
	}

	if s.Class.Base == "" {
		s.Class.Base = Default().Class.Base
	}

	if len(s.Naming.Prefixes) == 0 {
		s.Naming.Prefixes = DefaultPrefixes
	}
}

// Marshal serializes a Settings value to YAML.
func Marshal(s Settings) ([]byte, error) {
	return yaml.Marshal(&s)
}
