package layout

import (
	"strings"

	"github.com/matzehuels/termgrid/pkg/element"
)

// fakeFactory instantiates boxes with a fixed chrome width.
//
// Rendered layout (overhead 6, width 3, height 2, titled):
//
//	title
//	+-------+
//	|    ...|
//	|    ...|
//	+-------+
//	<blank>
//	<blank>
type fakeFactory struct {
	kind     element.Kind
	dec      element.Decorations
	overhead int
	metric   element.Metric
	data     int // not a decoration; changing it must not change signatures
	calls    int
}

func newFake(overhead int, dec ...element.Decoration) *fakeFactory {
	return &fakeFactory{
		kind:     element.KindLine,
		dec:      element.Decorations(dec),
		overhead: overhead,
		metric:   element.MetricHalfColumn,
	}
}

func (f *fakeFactory) Kind() element.Kind                { return f.kind }
func (f *fakeFactory) Decorations() element.Decorations { return f.dec }

func (f *fakeFactory) Instantiate(width, height int, title string, dec element.Decorations) (element.Element, error) {
	f.calls++
	return &fakeElement{
		kind:     f.kind,
		dec:      dec,
		width:    width,
		height:   height,
		title:    title,
		overhead: f.overhead,
		metric:   f.metric,
	}, nil
}

type fakeElement struct {
	kind          element.Kind
	dec           element.Decorations
	width, height int
	title         string
	overhead      int
	metric        element.Metric
}

func (e *fakeElement) Kind() element.Kind                { return e.kind }
func (e *fakeElement) Decorations() element.Decorations { return e.dec }

func (e *fakeElement) CanvasWidth() element.CanvasWidth {
	if e.metric == element.MetricHalfColumn {
		return element.CanvasWidth{Metric: e.metric, Value: 2 * e.width}
	}
	return element.CanvasWidth{Metric: e.metric, Value: e.width}
}

func (e *fakeElement) Render() string {
	inner := e.width + e.overhead - 2
	border := "+" + strings.Repeat("-", inner) + "+"
	blank := strings.Repeat(" ", inner+2)

	var lines []string
	if e.title != "" {
		lines = append(lines, e.title)
	}
	lines = append(lines, border)
	for range e.height {
		lines = append(lines, "|"+strings.Repeat(" ", e.overhead-2)+strings.Repeat(".", e.width)+"|")
	}
	lines = append(lines, border, blank, blank)
	return strings.Join(lines, "\n")
}

// lineFactory renders a single line; probes of it are malformed.
type lineFactory struct{ fakeFactory }

func (f *lineFactory) Instantiate(width, height int, title string, dec element.Decorations) (element.Element, error) {
	return &lineElement{fakeElement{kind: f.kind, dec: dec, width: width, metric: element.MetricColumn}}, nil
}

type lineElement struct{ fakeElement }

func (e *lineElement) Render() string { return strings.Repeat("x", e.width) }

// metricFactory reports a canvas metric of its choosing.
type metricFactory struct {
	fakeFactory
	cw element.CanvasWidth
}

func (f *metricFactory) Instantiate(width, height int, title string, dec element.Decorations) (element.Element, error) {
	el, _ := f.fakeFactory.Instantiate(width, height, title, dec)
	return &metricElement{Element: el, cw: f.cw}, nil
}

type metricElement struct {
	element.Element
	cw element.CanvasWidth
}

func (e *metricElement) CanvasWidth() element.CanvasWidth { return e.cw }

func dec(key, value string) element.Decoration {
	return element.Decoration{Key: key, Value: value}
}

// replaceLines wraps every line of s in prefix and suffix.
func replaceLines(s, prefix, suffix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l + suffix
	}
	return strings.Join(lines, "\n")
}
