package scene

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile loads a scene tree from a YAML file and fixes up owner
// back-references.
func LoadFile(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a scene tree.
func Parse(data []byte) (*Node, error) {
	var root Node

	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse scene YAML: %w", err)
	}

	root.Normalize()

	return &root, nil
}

// UnmarshalYAML decodes a target kind from its lowercase wire name.
func (k *TargetKind) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}

	switch strings.ToLower(name) {
	case "", "auto":
		*k = KindAuto
	case "capability":
		*k = KindCapability
	case "container":
		*k = KindContainer
	case "node", "node_only":
		*k = KindNodeOnly
	default:
		return fmt.Errorf("unknown target kind %q", name)
	}

	return nil
}

// MarshalYAML encodes a target kind as its lowercase wire name.
func (k TargetKind) MarshalYAML() (any, error) {
	switch k {
	case KindAuto:
		return "auto", nil
	case KindCapability:
		return "capability", nil
	case KindContainer:
		return "container", nil
	case KindNodeOnly:
		return "node", nil
	default:
		return nil, fmt.Errorf("unknown target kind %d", int(k))
	}
}
