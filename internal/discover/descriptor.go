package discover

import "strings"

// Descriptor describes one generated field binding. Descriptors are
// produced fresh on every pass and never persisted.
type Descriptor struct {
	// TypeName is the bound capability type, or scene.TypeNode for a bare
	// node reference.
	TypeName string

	// FieldName starts as the provisional base name and is rewritten by
	// the naming pipeline.
	FieldName string

	// PropertyName is the derived accessor name; empty unless property
	// generation is enabled.
	PropertyName string

	// Path is the ordered list of node names from the root to the bound
	// node; empty means the root itself.
	Path []string

	// IsCapability is true when the binding resolves to a capability
	// instance rather than the node reference.
	IsCapability bool

	// CapabilityIndex picks among multiple same-type capabilities on the
	// bound node.
	CapabilityIndex int
}

// PathString renders the path as a slash-joined string; empty for the root.
func (d Descriptor) PathString() string {
	return strings.Join(d.Path, "/")
}
