// Package plot provides braille line and scatter plots and horizontal bar
// charts as layout elements.
//
// Line and scatter plots draw on a braille canvas: every character cell holds
// a 2x4 dot matrix, so a plot that is w cells wide has 2w horizontal dots and
// reports its canvas width in half columns. Bar charts draw one bar per
// canvas row with block characters and report whole columns.
//
// # Frame
//
// Every plot renders the same chrome around its canvas:
//
//	Title                    (only when titled)
//	        ┌──────────┐
//	    1.5 │⠀⡠⠊⠉⠢⡀    │
//	  value │  ...     │
//	   -1.5 │      ⠈⠢⠤│
//	        └──────────┘
//	         0        10
//	            time
//
// The gutter left of the canvas is as wide as the longer of the y-label and
// a tick label, plus one column. It depends only on decorations, so the
// horizontal overhead of a plot never changes with its data.
//
// # Limits
//
// Axis limits come from the xlim and ylim decorations when present
// (written with [element.FormatLimits]) and from the data otherwise.
package plot
