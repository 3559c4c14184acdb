// Package pkg provides the core libraries for termgrid terminal dashboards.
//
// # Overview
//
// termgrid lays out rows of text-mode panels (plots, bar charts, text boxes)
// in a fixed-size terminal. Each frame it negotiates how many columns and
// lines every panel's canvas gets, renders the panels at those sizes and
// stitches the blocks into one frame. Negotiation results are cached per row
// so an animation loop only renegotiates a row when its decorations change.
//
// The pkg directory is organized into four areas:
//
//  1. [element] - The Renderable Element contract and concrete elements
//  2. [layout] - Negotiation, signatures, the render cache and the compositor
//  3. [layoutfile] - TOML layout files that build a [layout.Spec] per frame
//  4. [pipeline] - Orchestration (load → build → render) shared by all commands
//
// # Architecture
//
// The data flow for one frame:
//
//	layout.toml
//	     ↓
//	[layoutfile] package (decode, validate, generate frame data)
//	     ↓
//	[layout.Spec] (rows of panel requests)
//	     ↓
//	[layout] package (overhead probe → width/height negotiation → instantiate)
//	     ↓
//	compositor (merge blocks, truncate stale lines)
//	     ↓
//	frame string written to the terminal
//
// # Quick Start
//
// Build a spec in code and render it once:
//
//	import (
//	    "github.com/matzehuels/termgrid/pkg/element/plot"
//	    "github.com/matzehuels/termgrid/pkg/element/textpanel"
//	    "github.com/matzehuels/termgrid/pkg/layout"
//	)
//
//	cpu := plot.Line(points, plot.Title("cpu"), plot.YLim(0, 100))
//	notes := textpanel.New("all systems nominal", textpanel.Title("status"))
//
//	spec := layout.NewSpec(
//	    layout.Row{layout.Panel(cpu), layout.Panel(notes, layout.WithWidth(layout.Fixed(24)))},
//	)
//	frame, err := layout.Render(spec, layout.Size{Cols: 80, Rows: 24})
//
// Animate with a cache:
//
//	rc := layout.NewRenderCache()
//	for frame := 0; ; frame++ {
//	    spec, _ := doc.Build(frame)
//	    out, err := layout.RenderCached(rc, spec, size)
//	    ...
//	}
//
// # Main Packages
//
// ## Elements
//
// [element] - Kind tags, canvas width metrics, ordered decorations and the
// Element/Factory interfaces every panel implements.
//
// [element/plot] - Braille line and scatter plots measured in half columns,
// and horizontal bar charts measured in columns.
//
// [element/textpanel] - Word-wrapped text in a rounded lipgloss border.
//
// ## Layout
//
// [layout] - The negotiation engine:
//
//   - [layout.MeasureOverhead]: probe a factory for its decoration overhead
//   - [layout.NegotiateRowWidth]: split terminal columns between Auto panels
//   - [layout.NegotiateHeights]: split terminal lines between rows
//   - [layout.Sign]: decoration signature used for cache invalidation
//   - [layout.RenderCache]: per-row allocation cache for animation loops
//   - [layout.TruncateDisplay]: ANSI-safe column truncation
//
// [cache] - Allocation slot stores (memory and null) behind [layout.RenderCache].
//
// ## Infrastructure
//
// [layoutfile] - TOML layout documents with synthetic data sources.
//
// [pipeline] - Options, runner and animation sessions used by the CLI.
//
// [observability] - Negotiation and cache hooks with no-op defaults.
//
// [errors] - Structured error codes; configuration errors vs. internal ones.
//
// [buildinfo] - Version metadata injected at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                  # All tests
//	go test ./pkg/layout/...           # Specific package
//	go test -run Example ./pkg/layout  # Examples only
//
// [element]: https://pkg.go.dev/github.com/matzehuels/termgrid/pkg/element
// [element/plot]: https://pkg.go.dev/github.com/matzehuels/termgrid/pkg/element/plot
// [element/textpanel]: https://pkg.go.dev/github.com/matzehuels/termgrid/pkg/element/textpanel
// [layout]: https://pkg.go.dev/github.com/matzehuels/termgrid/pkg/layout
// [layout.Spec]: https://pkg.go.dev/github.com/matzehuels/termgrid/pkg/layout#Spec
// [layout.MeasureOverhead]: https://pkg.go.dev/github.com/matzehuels/termgrid/pkg/layout#MeasureOverhead
// [layout.NegotiateRowWidth]: https://pkg.go.dev/github.com/matzehuels/termgrid/pkg/layout#NegotiateRowWidth
// [layout.NegotiateHeights]: https://pkg.go.dev/github.com/matzehuels/termgrid/pkg/layout#NegotiateHeights
// [layout.Sign]: https://pkg.go.dev/github.com/matzehuels/termgrid/pkg/layout#Sign
// [layout.RenderCache]: https://pkg.go.dev/github.com/matzehuels/termgrid/pkg/layout#RenderCache
// [layout.TruncateDisplay]: https://pkg.go.dev/github.com/matzehuels/termgrid/pkg/layout#TruncateDisplay
// [cache]: https://pkg.go.dev/github.com/matzehuels/termgrid/pkg/cache
// [layoutfile]: https://pkg.go.dev/github.com/matzehuels/termgrid/pkg/layoutfile
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/termgrid/pkg/pipeline
// [observability]: https://pkg.go.dev/github.com/matzehuels/termgrid/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/termgrid/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/termgrid/pkg/buildinfo
package pkg
