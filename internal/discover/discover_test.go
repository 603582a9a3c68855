package discover

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"viewgen/internal/settings"
	"viewgen/scene"
)

func autoCfg(extended bool) settings.Settings {
	cfg := settings.Default()
	cfg.AutoInclude.Extended = extended

	return cfg
}

func TestDiscover_AutoIncludeBaseSet(t *testing.T) {
	root := &scene.Node{ID: "r", Name: "Menu"}
	ok := &scene.Node{Name: "OkButton"}
	ok.Attach(scene.TypeButton)
	title := &scene.Node{Name: "Title"}
	title.Attach(scene.TypeText)
	check := &scene.Node{Name: "Check"}
	check.Attach(scene.TypeToggle) // extended set, not scanned by default
	root.Children = []*scene.Node{ok, title, check}

	descs := Discover(root, autoCfg(false))

	require.Len(t, descs, 2)
	assert.Equal(t, scene.TypeButton, descs[0].TypeName)
	assert.Equal(t, "OkButton", descs[0].FieldName)
	assert.Equal(t, []string{"OkButton"}, descs[0].Path)
	assert.True(t, descs[0].IsCapability)

	assert.Equal(t, scene.TypeText, descs[1].TypeName)
	assert.Equal(t, "Title", descs[1].FieldName)
}

func TestDiscover_AutoIncludeExtendedSet(t *testing.T) {
	root := &scene.Node{ID: "r", Name: "Menu"}
	check := &scene.Node{Name: "Check"}
	check.Attach(scene.TypeToggle)
	root.Children = []*scene.Node{check}

	assert.Empty(t, Discover(root, autoCfg(false)))

	descs := Discover(root, autoCfg(true))
	require.Len(t, descs, 1)
	assert.Equal(t, scene.TypeToggle, descs[0].TypeName)
}

func TestDiscover_AutoIncludeDisabled(t *testing.T) {
	root := &scene.Node{ID: "r", Name: "Menu"}
	ok := &scene.Node{Name: "OkButton"}
	ok.Attach(scene.TypeButton)
	root.Children = []*scene.Node{ok}

	cfg := autoCfg(false)
	cfg.AutoInclude.Enabled = false

	assert.Empty(t, Discover(root, cfg))
}

func TestDiscover_NameCollidingWithTypeGetsUnderscore(t *testing.T) {
	root := &scene.Node{ID: "r", Name: "Menu"}
	b := &scene.Node{Name: "Button"}
	b.Attach(scene.TypeButton)
	root.Children = []*scene.Node{b}

	descs := Discover(root, autoCfg(false))

	require.Len(t, descs, 1)
	assert.Equal(t, "Button_", descs[0].FieldName)
}

func TestDiscover_IgnoreSubtreeIsAncestorDeep(t *testing.T) {
	root := &scene.Node{ID: "r", Name: "Menu"}
	decor := &scene.Node{Name: "Decor", Marker: &scene.BindingMarker{IgnoreSubtree: true}}
	decor.Attach(scene.TypeImage) // the marked node itself still counts
	inner := &scene.Node{Name: "Inner"}
	deep := &scene.Node{Name: "Deep"}
	deep.Attach(scene.TypeButton)
	deep.Marker = &scene.BindingMarker{} // markers under the cut are skipped too
	inner.Children = []*scene.Node{deep}
	decor.Children = []*scene.Node{inner}
	root.Children = []*scene.Node{decor}

	descs := Discover(root, autoCfg(false))

	// The marked node's own image survives (auto-include and the marker
	// collapse into one descriptor); nothing under the cut does.
	require.Len(t, descs, 1)
	assert.Equal(t, scene.TypeImage, descs[0].TypeName)
	assert.Equal(t, []string{"Decor"}, descs[0].Path)
}

func TestDiscover_MarkerCapabilityKind(t *testing.T) {
	root := &scene.Node{ID: "r", Name: "Menu"}
	row := &scene.Node{Name: "Row", Marker: &scene.BindingMarker{
		Kind:            scene.KindCapability,
		CapabilityType:  scene.TypeImage,
		CapabilityIndex: 7, // clamped
	}}
	row.Attach(scene.TypeImage)
	row.Attach(scene.TypeImage)
	root.Children = []*scene.Node{row}

	cfg := autoCfg(false)
	cfg.AutoInclude.Enabled = false

	descs := Discover(root, cfg)

	require.Len(t, descs, 1)
	assert.Equal(t, scene.TypeImage, descs[0].TypeName)
	assert.Equal(t, 1, descs[0].CapabilityIndex)
}

func TestDiscover_MarkerCapabilityKindFallsBackToContainer(t *testing.T) {
	root := &scene.Node{ID: "r", Name: "Menu"}
	row := &scene.Node{Name: "Row", Marker: &scene.BindingMarker{
		Kind:           scene.KindCapability,
		CapabilityType: scene.TypeSlider, // absent on the node
	}}
	root.Children = []*scene.Node{row}

	cfg := autoCfg(false)
	cfg.AutoInclude.Enabled = false

	descs := Discover(root, cfg)

	require.Len(t, descs, 1)
	assert.Equal(t, scene.TypeContainer, descs[0].TypeName)
	assert.True(t, descs[0].IsCapability)
}

func TestDiscover_MarkerKinds(t *testing.T) {
	tests := []struct {
		name     string
		marker   *scene.BindingMarker
		caps     []string
		wantType string
		wantCap  bool
	}{
		{"container", &scene.BindingMarker{Kind: scene.KindContainer}, []string{scene.TypeButton}, scene.TypeContainer, true},
		{"node only", &scene.BindingMarker{Kind: scene.KindNodeOnly}, []string{scene.TypeButton}, scene.TypeNode, false},
		{"auto prefers interactive", &scene.BindingMarker{}, []string{scene.TypeText, scene.TypeToggle}, scene.TypeToggle, true},
		{"auto falls back to display", &scene.BindingMarker{}, []string{scene.TypeImage}, scene.TypeImage, true},
		{"auto falls back to container", &scene.BindingMarker{}, nil, scene.TypeContainer, true},
	}

	for _, tt := range tests {
		root := &scene.Node{ID: "r", Name: "Menu"}
		child := &scene.Node{Name: "Child", Marker: tt.marker}

		for _, c := range tt.caps {
			child.Attach(c)
		}

		root.Children = []*scene.Node{child}

		cfg := autoCfg(false)
		cfg.AutoInclude.Enabled = false

		descs := Discover(root, cfg)

		require.Len(t, descs, 1, tt.name)
		assert.Equal(t, tt.wantType, descs[0].TypeName, tt.name)
		assert.Equal(t, tt.wantCap, descs[0].IsCapability, tt.name)
	}
}

func TestDiscover_MarkerFieldNameOverride(t *testing.T) {
	root := &scene.Node{ID: "r", Name: "Menu"}
	child := &scene.Node{Name: "Child", Marker: &scene.BindingMarker{
		Kind:      scene.KindNodeOnly,
		FieldName: "special",
	}}
	root.Children = []*scene.Node{child}

	cfg := autoCfg(false)
	cfg.AutoInclude.Enabled = false

	descs := Discover(root, cfg)

	require.Len(t, descs, 1)
	assert.Equal(t, "special", descs[0].FieldName)
}

func TestDiscover_MarkerOnRootHasEmptyPath(t *testing.T) {
	root := &scene.Node{ID: "r", Name: "Menu", Marker: &scene.BindingMarker{Kind: scene.KindContainer}}

	cfg := autoCfg(false)
	cfg.AutoInclude.Enabled = false

	descs := Discover(root, cfg)

	require.Len(t, descs, 1)
	assert.Empty(t, descs[0].Path)
}

func TestDiscover_DedupFirstOccurrenceWins(t *testing.T) {
	root := &scene.Node{ID: "r", Name: "Menu"}
	ok := &scene.Node{Name: "OkButton", Marker: &scene.BindingMarker{FieldName: "custom"}}
	ok.Attach(scene.TypeButton)
	root.Children = []*scene.Node{ok}

	descs := Discover(root, autoCfg(false))

	// The auto-include descriptor and the marker descriptor share
	// (path, type, index); the auto-include pass ran first, so its
	// provisional name survives.
	require.Len(t, descs, 1)
	assert.Equal(t, "OkButton", descs[0].FieldName)
}

func TestDiscover_DeterministicUnderChildReordering(t *testing.T) {
	build := func(reversed bool) *scene.Node {
		root := &scene.Node{ID: "r", Name: "Menu"}
		a := &scene.Node{Name: "Alpha"}
		a.Attach(scene.TypeButton)
		b := &scene.Node{Name: "Beta"}
		b.Attach(scene.TypeText)

		if reversed {
			root.Children = []*scene.Node{b, a}
		} else {
			root.Children = []*scene.Node{a, b}
		}

		return root
	}

	assert.Equal(t, Discover(build(false), autoCfg(false)), Discover(build(true), autoCfg(false)))
}
