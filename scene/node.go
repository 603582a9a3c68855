package scene

// Node is one entry in the scene tree.
type Node struct {
	// ID is a stable content key for the node. Root IDs identify roots in
	// the pending attach queue and the assignment stats table.
	ID string `yaml:"id,omitempty"`

	// Name is the node's display name; it also seeds generated field names.
	Name string `yaml:"name"`

	// Children are the node's ordered child nodes.
	Children []*Node `yaml:"children,omitempty"`

	// Capabilities are the typed attachments on this node, in attachment
	// order. Multiple capabilities of the same type are legal and are told
	// apart by index.
	Capabilities []*Capability `yaml:"capabilities,omitempty"`

	// Marker is the optional binding annotation; nil means no annotation.
	Marker *BindingMarker `yaml:"marker,omitempty"`

	// container is the node's lazily created layout handle.
	container *Capability
}

// Capability is a typed attachment on a node. Pointer identity is instance
// identity: the same capability resolved twice yields the same pointer.
type Capability struct {
	// Type is the capability's type name (e.g. "Button").
	Type string `yaml:"type"`

	// Owner is the node the capability is attached to.
	Owner *Node `yaml:"-"`
}

// Find returns the descendant at the given path of child names, walking one
// name per level. An empty path returns the node itself. Returns nil if any
// segment is missing; the first child with a matching name wins.
func (n *Node) Find(path []string) *Node {
	cur := n
	for _, name := range path {
		var next *Node

		for _, child := range cur.Children {
			if child.Name == name {
				next = child
				break
			}
		}

		if next == nil {
			return nil
		}

		cur = next
	}

	return cur
}

// CapabilitiesOf returns all capabilities of the given type on this node,
// in attachment order.
func (n *Node) CapabilitiesOf(typeName string) []*Capability {
	var out []*Capability
	for _, c := range n.Capabilities {
		if c.Type == typeName {
			out = append(out, c)
		}
	}

	return out
}

// CapabilityAt returns the capability of the given type at the given index.
// The index is clamped into the valid range, matching the marker semantics;
// returns nil only when the node has no capability of that type at all.
func (n *Node) CapabilityAt(typeName string, index int) *Capability {
	all := n.CapabilitiesOf(typeName)
	if len(all) == 0 {
		return nil
	}

	if index < 0 {
		index = 0
	}

	if index >= len(all) {
		index = len(all) - 1
	}

	return all[index]
}

// HasCapability reports whether the node carries at least one capability of
// the given type.
func (n *Node) HasCapability(typeName string) bool {
	return len(n.CapabilitiesOf(typeName)) > 0
}

// Container returns the node's layout handle. Every node owns exactly one;
// it is created on first use and stable afterwards.
func (n *Node) Container() *Capability {
	if n.container == nil {
		n.container = &Capability{Type: TypeContainer, Owner: n}
	}

	return n.container
}

// Attach appends a capability of the given type and returns it.
func (n *Node) Attach(typeName string) *Capability {
	c := &Capability{Type: typeName, Owner: n}
	n.Capabilities = append(n.Capabilities, c)

	return c
}

// Walk visits the node and all descendants depth-first, parents before
// children, calling fn with each node and its path of node names from the
// walk root (empty for the root itself). Walking stops early if fn returns
// false for a node's subtree.
func (n *Node) Walk(fn func(node *Node, path []string) bool) {
	n.walk(nil, fn)
}

func (n *Node) walk(path []string, fn func(node *Node, path []string) bool) {
	if !fn(n, path) {
		return
	}

	for _, child := range n.Children {
		childPath := append(append([]string{}, path...), child.Name)
		child.walk(childPath, fn)
	}
}

// Normalize fixes up owner back-references after external construction,
// e.g. when a tree was unmarshaled from YAML.
func (n *Node) Normalize() {
	for _, c := range n.Capabilities {
		c.Owner = n
	}

	for _, child := range n.Children {
		child.Normalize()
	}
}
