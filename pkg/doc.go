// Package pkg provides the core libraries for resizable panel layouts.
//
// # Overview
//
// The pkg directory is organized into four areas:
//
//  1. [panels] - The sizing engine: size vectors, constraint clamping,
//     delta redistribution, validation, and group state
//  2. [layoutfile] - TOML group declarations and JSON layout snapshots
//  3. [observability] - Hooks for surfacing layout diagnostics
//  4. [buildinfo] - Build-time version information
//
// # Quick Start
//
// Declare a group, compute its layout, and drag a boundary:
//
//	g := panels.NewGroup(panels.Horizontal, panels.UnitsPercentages)
//	g.Register(&panels.Panel{ID: "sidebar", Constraints: panels.Constraints{MinSize: 10}})
//	g.Register(&panels.Panel{ID: "main", Constraints: panels.Constraints{MinSize: 30}})
//	g.Layout()
//
//	g.StartDrag("sidebar", "main")
//	g.Drag(-20, panels.EventPointer)
//	g.EndDrag()
//
// Persist and restore the result:
//
//	layoutfile.SaveLayout(g, "layout.json")
//	layoutfile.LoadLayout(g, "layout.json")
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/panels/...   # Specific package
//	go test -run Example       # Examples only
//
// [panels]: https://pkg.go.dev/github.com/hipstersmoothie/react-resizable-panels/pkg/panels
// [layoutfile]: https://pkg.go.dev/github.com/hipstersmoothie/react-resizable-panels/pkg/layoutfile
// [observability]: https://pkg.go.dev/github.com/hipstersmoothie/react-resizable-panels/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/hipstersmoothie/react-resizable-panels/pkg/buildinfo
package pkg
