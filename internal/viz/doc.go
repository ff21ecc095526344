// Package viz draws the dashboard's terminal graphics.
//
//   - [Canvas]: braille dot grid with per-cell color and text overlay
//   - [Projection] and [DrawBubbles]: bubble layout onto a canvas
//   - [Theme] and [Styles]: lipgloss styling, three built-in themes
package viz
