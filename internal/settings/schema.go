package settings

import (
	"errors"
	"fmt"
	"unicode"

	"viewgen/scene"
)

// Mode selects how generated fields get their values at runtime.
type Mode string

const (
	// ModeExplicitInit generates an initializer method that looks bindings
	// up by path and capability type at runtime.
	ModeExplicitInit Mode = "explicit"

	// ModeReference leaves the initializer empty and marks fields for
	// external persistence; values are written into the persisted instance
	// by the reference assigner.
	ModeReference Mode = "reference"
)

// IsValid returns true if the mode is a recognized value.
func (m Mode) IsValid() bool {
	return m == ModeExplicitInit || m == ModeReference
}

// Settings is the immutable per-run generation configuration.
type Settings struct {
	// Version of the settings schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Mode is the binding mode; defaults to ModeExplicitInit.
	Mode Mode `yaml:"mode,omitempty"`

	// Class holds rules for the generated class declaration.
	Class ClassRules `yaml:"class,omitempty"`

	// Naming holds the field naming pipeline configuration.
	Naming NamingRules `yaml:"naming,omitempty"`

	// AutoInclude configures the capability auto-include scan.
	AutoInclude AutoIncludeRules `yaml:"auto_include,omitempty"`
}

// ClassRules configures the generated class declaration.
type ClassRules struct {
	// Namespace wraps the class when non-empty.
	Namespace string `yaml:"namespace,omitempty"`

	// Base is the class's base type; replaced into an existing inheritance
	// clause on incremental merges.
	Base string `yaml:"base,omitempty"`

	// RequireUpperFirst rejects class names that do not start with an
	// uppercase letter.
	RequireUpperFirst bool `yaml:"require_upper_first,omitempty"`
}

// NamingRules configures the field naming pipeline.
type NamingRules struct {
	// Prefixes is the ordered type-to-prefix table consulted by the prefix
	// stage. Empty means DefaultPrefixes.
	Prefixes []TypePrefix `yaml:"prefixes,omitempty"`

	// UnderscoreCamel converts names to camelCase with a leading
	// underscore.
	UnderscoreCamel bool `yaml:"underscore_camel,omitempty"`

	// Properties generates read-only property accessors for the fields.
	Properties bool `yaml:"properties,omitempty"`

	// StripPrefix removes the type prefix again when deriving property
	// names.
	StripPrefix bool `yaml:"strip_prefix,omitempty"`
}

// TypePrefix maps a capability type name to a field name prefix.
type TypePrefix struct {
	Type   string `yaml:"type"`
	Prefix string `yaml:"prefix"`
}

// AutoIncludeRules configures the whole-subtree capability scan.
type AutoIncludeRules struct {
	// Enabled turns the scan on. Loader default is true; only markers
	// contribute bindings when false.
	Enabled bool `yaml:"enabled"`

	// Extended adds the extended capability set to the scan.
	Extended bool `yaml:"extended,omitempty"`
}

// DefaultPrefixes is the built-in type-to-prefix table.
var DefaultPrefixes = []TypePrefix{
	{Type: scene.TypeButton, Prefix: "btn"},
	{Type: scene.TypeToggle, Prefix: "tgl"},
	{Type: scene.TypeSlider, Prefix: "sld"},
	{Type: scene.TypeInputField, Prefix: "inp"},
	{Type: scene.TypeDropdown, Prefix: "drp"},
	{Type: scene.TypeText, Prefix: "txt"},
	{Type: scene.TypeImage, Prefix: "img"},
}

// Default returns the default settings value.
func Default() Settings {
	return Settings{
		Version: "1",
		Mode:    ModeExplicitInit,
		Class: ClassRules{
			Base:              "ViewBehaviour",
			RequireUpperFirst: true,
		},
		Naming: NamingRules{
			Prefixes:        DefaultPrefixes,
			UnderscoreCamel: true,
			Properties:      false,
			StripPrefix:     true,
		},
		AutoInclude: AutoIncludeRules{Enabled: true},
	}
}

// PrefixFor returns the prefix configured for the given capability type, or
// empty string if the table has no entry. First table entry wins.
func (n NamingRules) PrefixFor(typeName string) string {
	for _, p := range n.Prefixes {
		if p.Type == typeName {
			return p.Prefix
		}
	}

	return ""
}

// AutoIncludeTypes returns the capability types the auto-include pass scans
// for, or nil when the scan is disabled.
func (r AutoIncludeRules) AutoIncludeTypes() []string {
	if !r.Enabled {
		return nil
	}

	types := append([]string{}, scene.AutoIncludeBase...)
	if r.Extended {
		types = append(types, scene.AutoIncludeExtended...)
	}

	return types
}

// ErrInvalidClassName reports a derived class name that fails the
// identifier or case rules. Generation aborts and nothing is written.
var ErrInvalidClassName = errors.New("invalid class name")

// ValidateClassName checks a derived class name against the identifier
// rules and the class rules.
func (c ClassRules) ValidateClassName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidClassName)
	}

	for i, r := range name {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}

		if i > 0 && unicode.IsDigit(r) {
			continue
		}

		return fmt.Errorf("%w: %q is not an identifier", ErrInvalidClassName, name)
	}

	if c.RequireUpperFirst {
		first := []rune(name)[0]
		if !unicode.IsUpper(first) {
			return fmt.Errorf("%w: %q must start with an uppercase letter", ErrInvalidClassName, name)
		}
	}

	return nil
}

// Validate checks the settings for internal consistency.
func (s *Settings) Validate() error {
	if !s.Mode.IsValid() {
		return fmt.Errorf("unknown mode %q", s.Mode)
	}

	seen := map[string]struct{}{}
	for _, p := range s.Naming.Prefixes {
		if p.Type == "" {
			return errors.New("prefix table entry with empty type")
		}

		if _, dup := seen[p.Type]; dup {
			return fmt.Errorf("duplicate prefix table entry for type %q", p.Type)
		}

		seen[p.Type] = struct{}{}
	}

	return nil
}
