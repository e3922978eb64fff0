// Package viz renders integration results for the terminal.
//
//   - [Curves]: asciigraph line plot of every method's curve
//   - [Quiver]: one arrow glyph per direction-field sample
//   - [Overlay]: the field and the curves on one character canvas, the
//     terminal counterpart of a quiver plot with solution curves on top
//   - [Table]: lipgloss table for numeric summaries
//
// Colors come from the active [Theme]; when stdout is not a terminal
// lipgloss drops them and the output is plain text.
package viz
