// Package element defines the contract between the layout engine and the
// things it arranges.
//
// An element is anything that can render itself to a multi-line text block at
// a requested width and height: a braille line plot, a bar chart, a bordered
// text panel. The engine never looks inside a rendered block beyond measuring
// it; everything it needs to negotiate space comes from three accessors:
//
//   - [Element.CanvasWidth]: the content width the element drew, in either
//     whole or half character columns ([CanvasWidth])
//   - [Element.Decorations]: the ordered set of displayed metadata (title,
//     axis labels, axis limits) that determines the element's chrome
//   - [Element.Kind]: the capability variant, so that swapping a plot for a
//     text panel in the same slot is always visible to change detection
//
// # Factories
//
// Layouts hold [Factory] values rather than elements. A factory carries the
// element's data and decorations and can instantiate a fresh element at any
// size. The engine instantiates disposable probes to measure overhead and
// then the real element at the negotiated size:
//
//	el, err := f.Instantiate(width, height, title, f.Decorations())
//	frame := el.Render()
//
// # Decorations
//
// [Decorations] is an ordered mapping. Order is significant: two decoration
// sets with the same pairs in a different order are different sets, which
// keeps signature hashing simple and deterministic.
package element
