// Package discover walks a scene tree and produces the ordered list of
// binding descriptors the generator renders into fields.
//
// Discovery pipeline:
//  1. Auto-include pass: scan the whole subtree for capabilities of the
//     configured auto-include types.
//  2. Marker pass: resolve each binding marker per its target kind.
//  3. Deduplicate by (path, type, capability index), first occurrence wins.
//  4. Stable sort by (type, field name).
//
// The result is a pure function of the tree snapshot and the settings:
// re-running discovery on an unchanged tree yields an identical list.
package discover
