// Package gui shows fractal trees in a raylib window.
//
// Every frame clears the window and redraws the whole active sequence, then
// overlays one button per variant. Clicking a button, or pressing 1, 2 or 3,
// activates that variant and grows a fresh tree for it.
package gui
