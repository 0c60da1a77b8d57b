// Package export writes rendered trees to image files.
//
// Both exporters are render.Surface implementations, so a file export goes
// through exactly the same draw calls as a window frame:
//
//   - [SVGSurface]: one <line> element per segment
//   - [PNGSurface]: rasterised with fogleman/gg
package export
