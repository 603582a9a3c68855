// Package settings defines the per-run generation configuration and its
// YAML form.
//
// A settings value is immutable for the duration of one generation pass and
// fully determines it together with the tree snapshot: same tree, same
// settings, same output.
//
// # Schema overview
//
//	version: "1"
//	mode: explicit            # or: reference
//	class:
//	  namespace: Game.UI
//	  base: ViewBehaviour
//	  require_upper_first: true
//	naming:
//	  underscore_camel: true
//	  properties: true
//	  strip_prefix: true
//	  prefixes:
//	    - type: Button
//	      prefix: btn
//	auto_include:
//	  enabled: true
//	  extended: false
package settings
