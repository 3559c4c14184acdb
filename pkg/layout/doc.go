// Package layout arranges independently rendered terminal elements into rows
// and grids that fill a terminal, and re-renders them at animation speed.
//
// # Pipeline
//
// A [Spec] is an ordered list of rows; each row is an ordered list of
// [Request] values. Rendering runs four stages:
//
//  1. Overhead: each element is probed once at a nominal width to measure the
//     columns its chrome consumes ([MeasureOverhead])
//  2. Width: each row's Auto-width elements share what is left of the
//     terminal width ([NegotiateRowWidth])
//  3. Height: rows with Fixed heights are settled first, then all-Auto rows
//     split the remaining height ([NegotiateHeights])
//  4. Compose: elements are instantiated at their negotiated size, rendered,
//     and merged into one frame ([MergeHorizontal], [MergeVertical])
//
// # Caching
//
// [Render] negotiates from scratch on every call. [RenderCached] keeps the
// negotiated width and height of every row in a [RenderCache] and reuses them
// for as long as the row's signature vector ([Sign]) is unchanged. Data
// changes (a new sample in a series) keep the signature; decoration changes
// (a new title, different axis limits, a different element kind) change it
// and renegotiate that row only.
//
// Cached allocations are never checked against the terminal size. A frame
// that has become wider than the terminal is cut with [TruncateDisplay].
//
// # Degraded layouts
//
// Auto shares never drop below [MinCanvasWidth] and [MinCanvasHeight]. When
// the terminal is too small the frame overflows instead of failing; only
// configuration errors (empty rows, unknown canvas metrics) are returned.
//
// # Example
//
//	spec := layout.NewSpec(
//	    layout.Row{layout.Panel(sine), layout.Panel(cosine)},
//	    layout.Row{layout.Panel(notes, layout.WithHeight(layout.Fixed(6)))},
//	)
//	rc := layout.NewRenderCache()
//	for range ticker.C {
//	    frame, err := layout.RenderCached(rc, spec, layout.Size{Cols: 120, Rows: 40})
//	    ...
//	}
package layout
