package host

import (
	"fmt"
	"reflect"

	"viewgen/scene"
)

// MemType is an in-memory registry entry.
type MemType struct {
	// TypeName is the bare type name.
	TypeName string

	// Behavior marks the type attachable to a node.
	Behavior bool

	// ArtifactPath is the source path the type was compiled from; empty
	// means no compiled-unit handle.
	ArtifactPath string

	// Slots lists the reference slot names of the compiled type. Ignored
	// when Prototype is set.
	Slots []string

	// Prototype, when non-nil, is a struct value whose exported fields
	// become the instance's slots, resolved with package reflect.
	Prototype any
}

func (t *MemType) Name() string     { return t.TypeName }
func (t *MemType) IsBehavior() bool { return t.Behavior }

// newInstance builds the persisted instance form for the type.
func (t *MemType) newInstance() Instance {
	if t.Prototype != nil {
		return &structInstance{value: reflect.New(reflect.TypeOf(t.Prototype))}
	}

	slots := map[string]any{}
	for _, name := range t.Slots {
		slots[name] = nil
	}

	return &mapInstance{slots: slots}
}

// MemRegistry is an in-memory type registry.
type MemRegistry struct {
	byName map[string]*MemType
	byPath map[string]*MemType
}

// NewMemRegistry returns an empty registry.
func NewMemRegistry() *MemRegistry {
	return &MemRegistry{
		byName: map[string]*MemType{},
		byPath: map[string]*MemType{},
	}
}

// Register adds a type and returns the registry for chaining.
func (r *MemRegistry) Register(t *MemType) *MemRegistry {
	r.byName[t.TypeName] = t
	if t.ArtifactPath != "" {
		r.byPath[t.ArtifactPath] = t
	}

	return r
}

// ResolveType implements Registry.
func (r *MemRegistry) ResolveType(name string) (Type, bool) {
	t, ok := r.byName[name]
	if !ok {
		return nil, false
	}

	return t, true
}

// ResolveTypeAt implements Registry.
func (r *MemRegistry) ResolveTypeAt(artifactPath string) (Type, bool) {
	t, ok := r.byPath[artifactPath]
	if !ok {
		return nil, false
	}

	return t, true
}

// MemHost is the in-memory Host implementation backing tests and the CLI.
type MemHost struct {
	*MemRegistry

	roots     map[string]*scene.Node
	instances map[*scene.Node]map[string]Instance

	// Persists counts Persist calls per root ID, for assertions.
	Persists map[string]int
}

// NewMemHost returns an empty host with its own registry.
func NewMemHost() *MemHost {
	return &MemHost{
		MemRegistry: NewMemRegistry(),
		roots:       map[string]*scene.Node{},
		instances:   map[*scene.Node]map[string]Instance{},
		Persists:    map[string]int{},
	}
}

// AddRoot makes a root resolvable by its ID and returns the host for
// chaining.
func (h *MemHost) AddRoot(root *scene.Node) *MemHost {
	h.roots[root.ID] = root

	return h
}

// Root implements Host.
func (h *MemHost) Root(id string) (*scene.Node, bool) {
	root, ok := h.roots[id]

	return root, ok
}

// Attach implements Host: attaches the capability to the node and creates
// the persisted instance form.
func (h *MemHost) Attach(root *scene.Node, t Type) error {
	mt, ok := t.(*MemType)
	if !ok {
		return fmt.Errorf("foreign type %q", t.Name())
	}

	root.Attach(mt.TypeName)

	if h.instances[root] == nil {
		h.instances[root] = map[string]Instance{}
	}

	h.instances[root][mt.TypeName] = mt.newInstance()

	return nil
}

// Instance implements Host.
func (h *MemHost) Instance(root *scene.Node, typeName string) (Instance, bool) {
	inst, ok := h.instances[root][typeName]

	return inst, ok
}

// Persist implements Host.
func (h *MemHost) Persist(root *scene.Node) error {
	h.Persists[root.ID]++

	return nil
}

// mapInstance backs instances declared by slot name list.
type mapInstance struct {
	slots map[string]any
}

func (m *mapInstance) Slot(fieldName string) (Slot, bool) {
	if _, ok := m.slots[fieldName]; !ok {
		return nil, false
	}

	return &mapSlot{instance: m, name: fieldName}, true
}

// Value returns the current slot value, for assertions.
func (m *mapInstance) Value(fieldName string) any {
	return m.slots[fieldName]
}

type mapSlot struct {
	instance *mapInstance
	name     string
}

func (s *mapSlot) Set(value any) {
	s.instance.slots[s.name] = value
}

// structInstance backs instances declared by a struct prototype. Slots are
// the exported fields, resolved reflectively.
type structInstance struct {
	value reflect.Value
}

func (s *structInstance) Slot(fieldName string) (Slot, bool) {
	f := s.value.Elem().FieldByName(fieldName)
	if !f.IsValid() || !f.CanSet() {
		return nil, false
	}

	return &structSlot{field: f}, true
}

// Struct returns the instance's struct value, for assertions.
func (s *structInstance) Struct() any {
	return s.value.Elem().Interface()
}

type structSlot struct {
	field reflect.Value
}

func (s *structSlot) Set(value any) {
	v := reflect.ValueOf(value)
	if !v.IsValid() || !v.Type().AssignableTo(s.field.Type()) {
		return
	}

	s.field.Set(v)
}
