package plot

import (
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/matzehuels/termgrid/pkg/element"
	"github.com/matzehuels/termgrid/pkg/errors"
)

// Point is one sample of a series.
type Point struct {
	X, Y float64
}

// Bar is one bar of a bar chart.
type Bar struct {
	Label string
	Value float64
}

// Option configures a plot factory.
type Option func(*Factory)

// Title sets the title decoration.
func Title(s string) Option { return Decorate(element.KeyTitle, s) }

// XLabel sets the x-axis label decoration.
func XLabel(s string) Option { return Decorate(element.KeyXLabel, s) }

// YLabel sets the y-axis label decoration.
func YLabel(s string) Option { return Decorate(element.KeyYLabel, s) }

// XLim pins the x-axis limits.
func XLim(lo, hi float64) Option { return Decorate(element.KeyXLim, element.FormatLimits(lo, hi)) }

// YLim pins the y-axis limits.
func YLim(lo, hi float64) Option { return Decorate(element.KeyYLim, element.FormatLimits(lo, hi)) }

// Decorate sets an arbitrary decoration.
func Decorate(key, value string) Option {
	return func(f *Factory) { f.dec = f.dec.With(key, value) }
}

// Color sets the foreground color of the plotted data. Any lipgloss color
// string is accepted ("12", "#ff8800").
func Color(c string) Option {
	return func(f *Factory) { f.style = f.style.Foreground(lipgloss.Color(c)) }
}

// Factory holds the data and decorations of one plot.
type Factory struct {
	kind   element.Kind
	dec    element.Decorations
	points []Point
	bars   []Bar
	style  lipgloss.Style
}

var _ element.Factory = (*Factory)(nil)

// Line creates a factory for a line plot connecting points in order.
func Line(points []Point, opts ...Option) *Factory {
	return newFactory(element.KindLine, points, nil, opts)
}

// Scatter creates a factory for a scatter plot.
func Scatter(points []Point, opts ...Option) *Factory {
	return newFactory(element.KindScatter, points, nil, opts)
}

// Bars creates a factory for a horizontal bar chart, one bar per canvas row.
func Bars(bars []Bar, opts ...Option) *Factory {
	return newFactory(element.KindBar, nil, bars, opts)
}

func newFactory(kind element.Kind, points []Point, bars []Bar, opts []Option) *Factory {
	f := &Factory{kind: kind, points: points, bars: bars, style: lipgloss.NewStyle()}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Kind returns the plot kind.
func (f *Factory) Kind() element.Kind { return f.kind }

// Decorations returns the factory's decorations.
func (f *Factory) Decorations() element.Decorations { return f.dec }

// Instantiate creates a plot with a canvas of width by height cells.
func (f *Factory) Instantiate(width, height int, title string, dec element.Decorations) (element.Element, error) {
	if width < 1 || height < 1 {
		return nil, errors.New(errors.ErrCodeInvalidSize, "plot canvas %dx%d is empty", width, height)
	}
	for _, key := range []string{element.KeyXLim, element.KeyYLim} {
		if s, ok := dec.Get(key); ok {
			if lo, hi, ok := element.ParseLimits(s); !ok || !(hi > lo) {
				return nil, errors.New(errors.ErrCodeInvalidInput, "invalid %s %q", key, s)
			}
		}
	}
	return &Plot{
		kind:   f.kind,
		dec:    dec,
		title:  title,
		width:  width,
		height: height,
		points: f.points,
		bars:   f.bars,
		style:  f.style,
	}, nil
}

// Plot is an instantiated plot.
type Plot struct {
	kind          element.Kind
	dec           element.Decorations
	title         string
	width, height int
	points        []Point
	bars          []Bar
	style         lipgloss.Style
}

var _ element.Element = (*Plot)(nil)

// Kind returns the plot kind.
func (p *Plot) Kind() element.Kind { return p.kind }

// Decorations returns the plot's decorations.
func (p *Plot) Decorations() element.Decorations { return p.dec }

// CanvasWidth reports braille canvases in half columns and bar canvases in
// columns.
func (p *Plot) CanvasWidth() element.CanvasWidth {
	if p.kind == element.KindBar {
		return element.Columns(p.width)
	}
	return element.HalfColumns(2 * p.width)
}

// =============================================================================
// Limits
// =============================================================================

// limits returns the axis range from the decoration at key, or the range of
// values when the decoration is absent.
func limits(dec element.Decorations, key string, values []float64) (lo, hi float64) {
	if s, ok := dec.Get(key); ok {
		if lo, hi, ok := element.ParseLimits(s); ok && hi > lo {
			return lo, hi
		}
	}
	if len(values) == 0 {
		return 0, 1
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	if lo == hi {
		lo, hi = lo-1, hi+1
	}
	return lo, hi
}

// scale maps v in [lo, hi] onto 0..n-1.
func scale(v, lo, hi float64, n int) int {
	return int(math.Round((v - lo) / (hi - lo) * float64(n-1)))
}

// =============================================================================
// Labels
// =============================================================================

// tickWidth is the widest tick label; longer ones are cut.
const tickWidth = 7

// cond pins label widths so frames do not depend on the locale.
var cond = &runewidth.Condition{StrictEmojiNeutral: true}

// tick formats an axis limit.
func tick(v float64) string {
	return cond.Truncate(strconv.FormatFloat(v, 'g', 3, 64), tickWidth, "")
}

// gutterWidth returns the width of the label column left of the canvas.
func gutterWidth(ylabel string) int {
	return max(cond.StringWidth(ylabel), tickWidth) + 1
}
