package attach

import (
	"viewgen/internal/discover"
	"viewgen/scene"
)

// Stats summarizes one reference assignment pass over a root. Purely for
// reporting; nothing branches on it.
type Stats struct {
	Total             int
	Success           int
	MissingPath       int
	MissingCapability int
}

// AssignReferences writes the resolved binding values into the reference
// slots of the root's persisted instance of typeName. Used in reference
// mode only; the attach step must have completed first, otherwise the pass
// aborts with zero stats.
//
// Per-descriptor failures never stop the pass: a slot absent from the
// compiled type (stale field after a rename) is skipped silently, an
// unresolvable path counts as MissingPath, an unresolvable value as
// MissingCapability. The root is persisted once at the end, and the stats
// are recorded under the root's ID, replacing any earlier entry.
func (a *Attacher) AssignReferences(root *scene.Node, typeName string, descs []discover.Descriptor) Stats {
	inst, ok := a.host.Instance(root, typeName)
	if !ok {
		a.log.Warn("no persisted instance to assign into", "root", root.ID, "type", typeName)
		a.stats[root.ID] = Stats{}

		return Stats{}
	}

	stats := Stats{Total: len(descs)}

	for _, d := range descs {
		slot, ok := inst.Slot(d.FieldName)
		if !ok {
			continue
		}

		node := root.Find(d.Path)
		if node == nil {
			stats.MissingPath++
			continue
		}

		value, ok := resolveValue(node, d)
		if !ok {
			stats.MissingCapability++
			continue
		}

		slot.Set(value)
		stats.Success++
	}

	if err := a.host.Persist(root); err != nil {
		a.log.Warn("persist failed after assignment", "root", root.ID, "error", err)
	}

	a.stats[root.ID] = stats

	return stats
}

// TryGetStats returns the stats recorded by the last assignment pass over
// the given root.
func (a *Attacher) TryGetStats(rootID string) (Stats, bool) {
	stats, ok := a.stats[rootID]

	return stats, ok
}

// resolveValue resolves what a descriptor binds on its node: the node
// reference itself, the container handle, or the typed capability at the
// descriptor's index.
func resolveValue(node *scene.Node, d discover.Descriptor) (any, bool) {
	switch {
	case !d.IsCapability:
		return node, true

	case d.TypeName == scene.TypeContainer:
		return node.Container(), true

	default:
		c := node.CapabilityAt(d.TypeName, d.CapabilityIndex)
		if c == nil {
			return nil, false
		}

		return c, true
	}
}
