// Package layoutfile provides file formats for panel group declarations
// and persisted layouts.
//
// # Overview
//
// Two formats live here, serving two different lifetimes:
//
//   - Group declarations are TOML: a human-edited description of the
//     panels in a group, their ordering, and their constraints.
//   - Saved layouts are JSON: a machine-written snapshot of the size
//     vector, keyed by panel ID so it survives reordering.
//
// # Group Declarations
//
// A declaration names the group's axis and sizing unit, then lists its
// panels:
//
//	direction = "horizontal"
//	units = "percentages"
//
//	[[panel]]
//	id = "sidebar"
//	min-size = 10.0
//	default-size = 20.0
//	collapsible = true
//
//	[[panel]]
//	id = "main"
//	min-size = 30.0
//
// Panels without an id are assigned a random one at parse time, which
// keeps the group usable but makes the panel invisible to saved layouts.
// Use [ParseGroup] to read a declaration from any io.Reader, or
// [ReadGroupFile] for file-based input.
//
// # Saved Layouts
//
// Use [SaveLayout] to snapshot a group's committed sizes and
// [LoadLayout] to restore them. Restoring runs the snapshot through the
// group's layout validation, so a snapshot taken under different
// constraints, or with panels that have since disappeared, is repaired
// rather than trusted.
package layoutfile
