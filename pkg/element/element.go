package element

import (
	"fmt"

	"github.com/matzehuels/termgrid/pkg/errors"
)

// =============================================================================
// Kinds
// =============================================================================

// Kind identifies the capability variant of an element.
type Kind string

// Built-in element kinds.
const (
	KindLine    Kind = "line"
	KindScatter Kind = "scatter"
	KindBar     Kind = "bar"
	KindText    Kind = "text"
)

// =============================================================================
// Canvas Width
// =============================================================================

// Metric is the unit an element reports its canvas width in.
type Metric int

const (
	// MetricColumn reports whole character columns.
	MetricColumn Metric = iota + 1

	// MetricHalfColumn reports sub-character columns, two per cell
	// (braille canvases address two dots per character horizontally).
	MetricHalfColumn
)

// String returns the metric name.
func (m Metric) String() string {
	switch m {
	case MetricColumn:
		return "column"
	case MetricHalfColumn:
		return "half-column"
	default:
		return fmt.Sprintf("metric(%d)", int(m))
	}
}

// CanvasWidth is an element's self-reported content width.
type CanvasWidth struct {
	Metric Metric
	Value  int
}

// Columns returns the canvas width in whole character columns.
// Half-column metrics are integer-divided by two. Any other metric is a
// configuration error.
func (c CanvasWidth) Columns() (int, error) {
	switch c.Metric {
	case MetricColumn:
		return c.Value, nil
	case MetricHalfColumn:
		return c.Value / 2, nil
	default:
		return 0, errors.New(errors.ErrCodeUnknownMetric, "unknown canvas width metric %s", c.Metric)
	}
}

// Columns is a shorthand for a whole-column canvas width.
func Columns(n int) CanvasWidth { return CanvasWidth{Metric: MetricColumn, Value: n} }

// HalfColumns is a shorthand for a half-column canvas width.
func HalfColumns(n int) CanvasWidth { return CanvasWidth{Metric: MetricHalfColumn, Value: n} }

// =============================================================================
// Element Contract
// =============================================================================

// Signed is anything whose kind and decorations can be fingerprinted.
// Both instantiated elements and layout requests satisfy it.
type Signed interface {
	Kind() Kind
	Decorations() Decorations
}

// Element is a rendered-on-demand terminal graphic.
type Element interface {
	Signed

	// Render returns the element as a newline-separated text block.
	// Lines may contain ANSI escape sequences.
	Render() string

	// CanvasWidth reports the content width the element was laid out with.
	CanvasWidth() CanvasWidth
}

// Factory instantiates elements of one kind at arbitrary sizes.
//
// Instantiate must not mutate the factory: the engine calls it for probes
// with a stripped title and nominal size, then again for the real element.
type Factory interface {
	Signed
	Instantiate(width, height int, title string, dec Decorations) (Element, error)
}
