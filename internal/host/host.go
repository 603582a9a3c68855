// Package host abstracts the scene host the attacher and reference
// assigner talk to: the live type registry, persisted instance forms and
// their reference slots, the session-scoped string store, and the
// compile/reload boundary signal.
//
// Production wires the engine's introspection APIs behind these
// interfaces; the in-memory implementation in this package backs tests and
// the CLI.
package host

import "viewgen/scene"

// Type is a resolved entry of the live type registry.
type Type interface {
	// Name is the bare type name.
	Name() string

	// IsBehavior reports whether instances of the type can be attached to
	// a node as a capability-bearing behavior.
	IsBehavior() bool
}

// Slot is a writable reference slot on a persisted instance.
type Slot interface {
	Set(value any)
}

// Instance is a persisted instance form opened for slot writes.
type Instance interface {
	// Slot resolves the backing storage slot for a field name. Returns
	// false when the compiled type has no such slot, e.g. a stale field
	// after a rename.
	Slot(fieldName string) (Slot, bool)
}

// Registry resolves generated types against the live type registry.
type Registry interface {
	// ResolveTypeAt resolves the type compiled from the given artifact
	// path, when a compiled-unit handle exists for it.
	ResolveTypeAt(artifactPath string) (Type, bool)

	// ResolveType resolves a type by bare name across all loaded units.
	ResolveType(name string) (Type, bool)
}

// Host is the scene host surface the core mutates roots through.
type Host interface {
	Registry

	// Root resolves a root node by its stable content key. Queued attach
	// requests carry only the key across the reload boundary.
	Root(id string) (*scene.Node, bool)

	// Instance opens the persisted instance of the named type attached to
	// root, if any.
	Instance(root *scene.Node, typeName string) (Instance, bool)

	// Attach attaches a new instance of the behavior type to root. The
	// caller persists the root afterwards.
	Attach(root *scene.Node, t Type) error

	// Persist writes the root's persisted form.
	Persist(root *scene.Node) error
}

// SessionStore is session-scoped string storage. It survives the reload
// boundary but not a process restart.
type SessionStore interface {
	Get(key string) string
	Set(key, value string)
}

// ReloadSource is the injected compile/reload boundary event. The signal
// may fire any number of times, an arbitrary while after a request.
type ReloadSource interface {
	Subscribe(fn func())
}
