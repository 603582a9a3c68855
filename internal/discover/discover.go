package discover

import (
	"fmt"
	"sort"

	"viewgen/internal/settings"
	"viewgen/scene"
)

// Discover walks the tree under root and returns the deduplicated, sorted
// descriptor list. Field names are provisional; run the naming pipeline on
// the result before rendering.
func Discover(root *scene.Node, cfg settings.Settings) []Descriptor {
	var out []Descriptor

	out = append(out, autoIncludePass(root, cfg)...)
	out = append(out, markerPass(root)...)

	out = dedup(out)
	sortDescriptors(out)

	return out
}

// autoIncludePass scans the whole subtree for capabilities of each
// configured auto-include type, in table order.
func autoIncludePass(root *scene.Node, cfg settings.Settings) []Descriptor {
	types := cfg.AutoInclude.AutoIncludeTypes()
	if len(types) == 0 {
		return nil
	}

	var out []Descriptor

	for _, typeName := range types {
		walkIncluded(root, func(node *scene.Node, path []string) {
			for idx := range node.CapabilitiesOf(typeName) {
				out = append(out, Descriptor{
					TypeName:        typeName,
					FieldName:       provisionalName(node.Name, typeName),
					Path:            append([]string{}, path...),
					IsCapability:    true,
					CapabilityIndex: idx,
				})
			}
		})
	}

	return out
}

// markerPass resolves every binding marker in the (non-ignored) subtree.
func markerPass(root *scene.Node) []Descriptor {
	var out []Descriptor

	walkIncluded(root, func(node *scene.Node, path []string) {
		m := node.Marker
		if m == nil {
			return
		}

		d := resolveMarker(node, m)
		d.Path = append([]string{}, path...)

		if m.FieldName != "" {
			d.FieldName = m.FieldName
		}

		out = append(out, d)
	})

	return out
}

// walkIncluded visits root and all descendants not excluded by an ancestor
// marker with IgnoreSubtree set. A marked node still contributes itself;
// only its descendants are cut.
func walkIncluded(root *scene.Node, fn func(node *scene.Node, path []string)) {
	root.Walk(func(node *scene.Node, path []string) bool {
		fn(node, path)

		return node.Marker == nil || !node.Marker.IgnoreSubtree
	})
}

// resolveMarker picks the binding target for a marked node. The path is
// filled in by the caller.
func resolveMarker(node *scene.Node, m *scene.BindingMarker) Descriptor {
	switch m.Kind {
	case scene.KindCapability:
		if node.HasCapability(m.CapabilityType) {
			return Descriptor{
				TypeName:        m.CapabilityType,
				FieldName:       node.Name,
				IsCapability:    true,
				CapabilityIndex: clampIndex(m.CapabilityIndex, len(node.CapabilitiesOf(m.CapabilityType))),
			}
		}

		// Named type absent: same fallback as a KindAuto node with no
		// bindable capability.
		return containerDescriptor(node)

	case scene.KindContainer:
		return containerDescriptor(node)

	case scene.KindNodeOnly:
		return Descriptor{TypeName: scene.TypeNode, FieldName: node.Name}

	default: // scene.KindAuto
		return resolveAuto(node)
	}
}

// resolveAuto applies the fixed two-tier priority list: interactive control
// types first, then display types, first type present wins. Falls back to
// the container handle (every node owns one).
func resolveAuto(node *scene.Node) Descriptor {
	for _, tier := range [][]string{scene.InteractivePriority, scene.DisplayPriority} {
		for _, typeName := range tier {
			if node.HasCapability(typeName) {
				return Descriptor{
					TypeName:     typeName,
					FieldName:    node.Name,
					IsCapability: true,
				}
			}
		}
	}

	return containerDescriptor(node)
}

func containerDescriptor(node *scene.Node) Descriptor {
	return Descriptor{
		TypeName:     scene.TypeContainer,
		FieldName:    node.Name,
		IsCapability: true,
	}
}

// provisionalName derives the base field name from the node name. A name
// equal to the capability's short type name gets a trailing underscore so
// it cannot shadow the type in generated code.
func provisionalName(nodeName, typeName string) string {
	if nodeName == typeName {
		return nodeName + "_"
	}

	return nodeName
}

func clampIndex(idx, n int) int {
	if idx < 0 {
		return 0
	}

	if idx >= n {
		return n - 1
	}

	return idx
}

// dedup removes descriptors sharing (path, type, capability index),
// keeping the first occurrence.
func dedup(descs []Descriptor) []Descriptor {
	seen := map[string]struct{}{}
	out := descs[:0]

	for _, d := range descs {
		key := fmt.Sprintf("%s|%s|%d", d.PathString(), d.TypeName, d.CapabilityIndex)
		if _, dup := seen[key]; dup {
			continue
		}

		seen[key] = struct{}{}
		out = append(out, d)
	}

	return out
}

// sortDescriptors stable-sorts by (type name, field name) so generation
// order never depends on traversal order.
func sortDescriptors(descs []Descriptor) {
	sort.SliceStable(descs, func(i, j int) bool {
		if descs[i].TypeName != descs[j].TypeName {
			return descs[i].TypeName < descs[j].TypeName
		}

		return descs[i].FieldName < descs[j].FieldName
	})
}
