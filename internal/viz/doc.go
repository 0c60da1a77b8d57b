// Package viz provides terminal-based rendering for fractal trees.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: tree view that redraws the active variant every frame
//   - [Canvas]: Braille-based pixel canvas with per-cell colour
//   - [CanvasSurface]: render.Surface adapter fitting the tree into the canvas
//   - Theme selection with 3 built-in paper colours
//
// # Key Bindings
//
//	B/1 - Grow a basic tree
//	R/2 - Grow a random tree
//	C/3 - Grow a colored tree
//	T   - Cycle color themes
//	S   - Save a PNG snapshot
//	?   - Show help overlay
//
// # Snapshots
//
// Snapshots are rendered at full canvas resolution through the export
// package and saved to the current directory.
package viz
