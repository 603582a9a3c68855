package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Tree(t *testing.T) {
	data := []byte(`
id: root-1
name: MainMenu
children:
  - name: OkButton
    capabilities:
      - type: Button
    marker:
      kind: capability
      capability_type: Button
      capability_index: 1
  - name: Decor
    marker:
      ignore_subtree: true
    children:
      - name: Hidden
        capabilities:
          - type: Image
`)

	root, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, "root-1", root.ID)
	assert.Equal(t, "MainMenu", root.Name)
	require.Len(t, root.Children, 2)

	ok := root.Children[0]
	require.Len(t, ok.Capabilities, 1)
	assert.Equal(t, TypeButton, ok.Capabilities[0].Type)
	assert.Same(t, ok, ok.Capabilities[0].Owner)

	require.NotNil(t, ok.Marker)
	assert.Equal(t, KindCapability, ok.Marker.Kind)
	assert.Equal(t, TypeButton, ok.Marker.CapabilityType)
	assert.Equal(t, 1, ok.Marker.CapabilityIndex)

	decor := root.Children[1]
	require.NotNil(t, decor.Marker)
	assert.True(t, decor.Marker.IgnoreSubtree)
	assert.Equal(t, KindAuto, decor.Marker.Kind)
}

func TestTargetKind_YAMLNames(t *testing.T) {
	tests := []struct {
		name string
		want TargetKind
	}{
		{"auto", KindAuto},
		{"capability", KindCapability},
		{"container", KindContainer},
		{"node", KindNodeOnly},
		{"node_only", KindNodeOnly},
	}

	for _, tt := range tests {
		root, err := Parse([]byte("name: N\nmarker:\n  kind: " + tt.name + "\n"))
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, root.Marker.Kind, tt.name)
	}

	_, err := Parse([]byte("name: N\nmarker:\n  kind: bogus\n"))
	assert.Error(t, err)
}
