// Package layoutfile reads grid layouts from TOML files.
//
// A layout file lists rows top to bottom and the panels of each row left to
// right:
//
//	[[row]]
//	  [[row.panel]]
//	  kind   = "line"
//	  title  = "Sine"
//	  source = "sine"
//	  ylim   = [-1.5, 1.5]
//
//	  [[row.panel]]
//	  kind  = "text"
//	  width = 30
//	  text  = "Notes go here."
//
//	[[row]]
//	  [[row.panel]]
//	  kind   = "bar"
//	  height = 4
//	  labels = ["cpu", "mem", "disk", "net"]
//	  source = "walk"
//
// width and height are either "auto" (the default) or a positive integer.
// Plot data comes from a generator named by source and is recomputed for
// every frame by [Document.Build]; decorations never depend on the frame, so
// successive frames of an animation reuse the same negotiated layout.
package layoutfile
