package scene

//go:generate go tool stringer -type=TargetKind -output=targetkind_string.go

// TargetKind selects what a binding marker binds to on its node.
type TargetKind int

const (
	// KindAuto picks the best target by priority: interactive capability
	// types first, then display types, then container, then the node.
	KindAuto TargetKind = iota

	// KindCapability binds the capability named by the marker's
	// CapabilityType. Falls back to the KindAuto container/node rule when
	// the node has no capability of that type.
	KindCapability

	// KindContainer binds the node's layout handle.
	KindContainer

	// KindNodeOnly binds the node reference itself.
	KindNodeOnly
)

// BindingMarker is the optional per-node annotation steering discovery.
type BindingMarker struct {
	// FieldName overrides the generated field's base name; empty means
	// derive from the node name.
	FieldName string `yaml:"field_name,omitempty"`

	// IgnoreSubtree excludes this node's descendants from discovery.
	// The node itself still contributes its marker binding.
	IgnoreSubtree bool `yaml:"ignore_subtree,omitempty"`

	// Kind selects the binding target; zero value is KindAuto.
	Kind TargetKind `yaml:"kind,omitempty"`

	// CapabilityType names the capability to bind when Kind is
	// KindCapability.
	CapabilityType string `yaml:"capability_type,omitempty"`

	// CapabilityIndex disambiguates multiple same-type capabilities on one
	// node; clamped to the valid range on resolution.
	CapabilityIndex int `yaml:"capability_index,omitempty"`
}
