// Package viz renders recorded steps in the terminal.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [App]: category and algorithm menus, an input editor and a player
//   - [RenderStep]: one step drawn for its view shape with role highlights
//   - [ArrayChart] and [SeriesChart]: asciigraph line charts
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	Space - Play/Pause
//	H/L   - Step back/forward
//	G     - First step (g) or last step (G)
//	+/-   - Faster/slower autoplay
//	T     - Cycle color themes
//	?     - Show help overlay
//	Esc   - Back to the input editor
//
// Autoplay ticks carry the epoch they were scheduled in. Any pause, seek or
// reload bumps the epoch, so a tick already in flight is ignored.
package viz
