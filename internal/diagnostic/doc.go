// Package diagnostic provides structured warnings, errors, and infos
// collected over one generation pass.
//
// Key capabilities:
//   - Marker recovery notices from the merge engine
//   - Field name collision notices from the naming pipeline
//   - Per-descriptor missing path / missing capability reports
package diagnostic
