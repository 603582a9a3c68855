package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"viewgen/scene"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte("{}"))
	require.NoError(t, err)

	assert.Equal(t, "1", cfg.Version)
	assert.Equal(t, ModeExplicitInit, cfg.Mode)
	assert.Equal(t, "ViewBehaviour", cfg.Class.Base)
	assert.True(t, cfg.AutoInclude.Enabled)
	assert.Equal(t, DefaultPrefixes, cfg.Naming.Prefixes)
}

func TestParse_AutoIncludeExplicitlyDisabled(t *testing.T) {
	cfg, err := Parse([]byte("auto_include:\n  enabled: false\n"))
	require.NoError(t, err)

	assert.False(t, cfg.AutoInclude.Enabled)
	assert.Nil(t, cfg.AutoInclude.AutoIncludeTypes())
}

func TestParse_FullDocument(t *testing.T) {
	cfg, err := Parse([]byte(`
version: "1"
mode: reference
class:
  namespace: Game.UI
  base: PanelView
  require_upper_first: true
naming:
  underscore_camel: true
  properties: true
  strip_prefix: true
  prefixes:
    - type: Button
      prefix: b
auto_include:
  enabled: true
  extended: true
`))
	require.NoError(t, err)

	assert.Equal(t, ModeReference, cfg.Mode)
	assert.Equal(t, "Game.UI", cfg.Class.Namespace)
	assert.Equal(t, "PanelView", cfg.Class.Base)
	assert.Equal(t, "b", cfg.Naming.PrefixFor(scene.TypeButton))
	assert.Empty(t, cfg.Naming.PrefixFor(scene.TypeText))

	types := cfg.AutoInclude.AutoIncludeTypes()
	assert.Contains(t, types, scene.TypeButton)
	assert.Contains(t, types, scene.TypeToggle)
}

func TestParse_RejectsUnknownMode(t *testing.T) {
	_, err := Parse([]byte("mode: telepathy\n"))

	assert.ErrorContains(t, err, "unknown mode")
}

func TestParse_RejectsDuplicatePrefixEntries(t *testing.T) {
	_, err := Parse([]byte(`
naming:
  prefixes:
    - type: Button
      prefix: a
    - type: Button
      prefix: b
`))

	assert.ErrorContains(t, err, "duplicate prefix table entry")
}

func TestValidateClassName(t *testing.T) {
	rules := ClassRules{RequireUpperFirst: true}

	assert.NoError(t, rules.ValidateClassName("MainMenu"))
	assert.NoError(t, rules.ValidateClassName("Menu2"))

	assert.ErrorIs(t, rules.ValidateClassName(""), ErrInvalidClassName)
	assert.ErrorIs(t, rules.ValidateClassName("mainMenu"), ErrInvalidClassName)
	assert.ErrorIs(t, rules.ValidateClassName("2Menu"), ErrInvalidClassName)
	assert.ErrorIs(t, rules.ValidateClassName("Main Menu"), ErrInvalidClassName)

	relaxed := ClassRules{}
	assert.NoError(t, relaxed.ValidateClassName("mainMenu"))
	assert.NoError(t, relaxed.ValidateClassName("_View"))
}

func TestAutoIncludeTypes_BaseAndExtended(t *testing.T) {
	base := AutoIncludeRules{Enabled: true}
	assert.Equal(t, scene.AutoIncludeBase, base.AutoIncludeTypes())

	extended := AutoIncludeRules{Enabled: true, Extended: true}
	assert.Len(t, extended.AutoIncludeTypes(), len(scene.AutoIncludeBase)+len(scene.AutoIncludeExtended))
}
