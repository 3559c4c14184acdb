package plot

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/termgrid/pkg/element"
	"github.com/matzehuels/termgrid/pkg/errors"
	"github.com/matzehuels/termgrid/pkg/layout"
)

func sine() []Point {
	pts := make([]Point, 50)
	for i := range pts {
		x := float64(i) / 5
		pts[i] = Point{X: x, Y: float64(i%10) - 5}
	}
	return pts
}

func render(t *testing.T, f *Factory, w, h int, title string) []string {
	t.Helper()
	dec := f.Decorations()
	if title != "" {
		dec = dec.With(element.KeyTitle, title)
	}
	el, err := f.Instantiate(w, h, title, dec)
	if err != nil {
		t.Fatalf("Instantiate(%d, %d) error = %v", w, h, err)
	}
	return strings.Split(ansi.Strip(el.Render()), "\n")
}

func TestOverhead(t *testing.T) {
	tests := []struct {
		name string
		f    *Factory
		want int
	}{
		{"line", Line(sine()), tickWidth + 1 + 2},
		{"scatter", Scatter(sine()), tickWidth + 1 + 2},
		{"bar", Bars([]Bar{{"a", 1}}), tickWidth + 1 + 2},
		{"long ylabel", Line(sine(), YLabel("amplitude [mV]")), 14 + 1 + 2},
		{"title ignored", Line(sine(), Title("a very long title indeed")), tickWidth + 1 + 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := layout.MeasureOverhead(tt.f)
			if err != nil {
				t.Fatalf("MeasureOverhead() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("MeasureOverhead() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestOverheadStableAcrossSizes(t *testing.T) {
	f := Line(sine(), Title("Sine"), XLabel("t"), YLabel("y"))
	overhead, err := layout.MeasureOverhead(f)
	if err != nil {
		t.Fatal(err)
	}
	for w := 5; w <= 60; w += 11 {
		for h := 1; h <= 9; h += 4 {
			el, err := f.Instantiate(w, h, "Sine", f.Decorations())
			if err != nil {
				t.Fatal(err)
			}
			cols, _ := el.CanvasWidth().Columns()
			lines := strings.Split(el.Render(), "\n")
			for i, l := range lines[1 : len(lines)-2] {
				if got := ansi.StringWidth(l) - cols; got != overhead {
					t.Errorf("w=%d h=%d line %d: overhead %d, want %d", w, h, i+1, got, overhead)
				}
			}
		}
	}
}

func TestRenderLineCount(t *testing.T) {
	f := Line(sine())
	if got := len(render(t, f, 20, 6, "")); got != 6+4 {
		t.Errorf("untitled: %d lines, want 10", got)
	}
	if got := len(render(t, f, 20, 6, "Sine")); got != 6+5 {
		t.Errorf("titled: %d lines, want 11", got)
	}
}

func TestLongTitleClipped(t *testing.T) {
	for _, f := range []*Factory{Line(sine()), Bars([]Bar{{"cpu", 1}})} {
		t.Run(string(f.Kind()), func(t *testing.T) {
			lines := render(t, f, 20, 4, strings.Repeat("T", 70))

			block := gutterWidth("") + 20 + 2
			if want := strings.Repeat("T", block-1) + "…"; lines[0] != want {
				t.Errorf("title = %q, want %q", lines[0], want)
			}
			for i, l := range lines {
				if w := ansi.StringWidth(l); w > block {
					t.Errorf("line %d width = %d, want <= %d", i, w, block)
				}
			}
		})
	}
}

func TestScatterCorners(t *testing.T) {
	f := Scatter([]Point{{0, 0}, {1, 1}, {5, 5}}, XLim(0, 1), YLim(0, 1))
	lines := render(t, f, 2, 1, "")

	// Bottom-left dot of the first cell, top-right dot of the second. A
	// single-row canvas shows only the upper limit.
	want := "      1 │⡀⠈│"
	if lines[1] != want {
		t.Errorf("canvas row = %q, want %q", lines[1], want)
	}
}

func TestLineConnectsPoints(t *testing.T) {
	f := Line([]Point{{0, 0}, {1, 1}}, XLim(0, 1), YLim(0, 1))
	lines := render(t, f, 2, 1, "")

	// A diagonal across 4x4 dots: (0,3) (1,2) (2,1) (3,0).
	if got := lines[1][len(lines[1])-len("⡠⠊│"):]; got != "⡠⠊│" {
		t.Errorf("canvas row = %q", lines[1])
	}
}

func TestBars(t *testing.T) {
	f := Bars([]Bar{{"cpu", 1}, {"mem", 2}, {"disk", 0}}, XLim(0, 2), YLabel("use"))
	lines := render(t, f, 4, 2, "")

	want := []string{
		"        ┌────┐",
		"    cpu │██  │",
		"    mem │████│",
		"        └────┘",
		"use     0    2",
		"             ",
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("bar chart mismatch (-want +got):\n%s", diff)
	}
}

func TestAxisLabels(t *testing.T) {
	f := Line(sine(), XLim(0, 10), YLim(-1.5, 1.5), XLabel("time"), YLabel("value"))
	lines := render(t, f, 10, 3, "")

	if got := lines[1]; !strings.HasPrefix(got, "    1.5 ") {
		t.Errorf("top row = %q", got)
	}
	if got := lines[2]; !strings.HasPrefix(got, "  value ") {
		t.Errorf("middle row = %q", got)
	}
	if got := lines[3]; !strings.HasPrefix(got, "   -1.5 ") {
		t.Errorf("bottom row = %q", got)
	}
	if got, want := lines[5], "        0         10"; got != want {
		t.Errorf("axis = %q, want %q", got, want)
	}
	if got, want := lines[6], "            time   "; got != want {
		t.Errorf("xlabel = %q, want %q", got, want)
	}
}

func TestCanvasWidth(t *testing.T) {
	el, _ := Line(sine()).Instantiate(12, 4, "", nil)
	if got := el.CanvasWidth(); got != element.HalfColumns(24) {
		t.Errorf("line CanvasWidth() = %+v", got)
	}
	el, _ = Bars(nil).Instantiate(12, 4, "", nil)
	if got := el.CanvasWidth(); got != element.Columns(12) {
		t.Errorf("bar CanvasWidth() = %+v", got)
	}
}

func TestInstantiateErrors(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		dec  element.Decorations
		code errors.Code
	}{
		{"zero width", 0, 5, nil, errors.ErrCodeInvalidSize},
		{"zero height", 5, 0, nil, errors.ErrCodeInvalidSize},
		{"bad xlim", 5, 5, element.Decorations{{Key: element.KeyXLim, Value: "nope"}}, errors.ErrCodeInvalidInput},
		{"inverted ylim", 5, 5, element.Decorations{{Key: element.KeyYLim, Value: "1,0"}}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Line(sine()).Instantiate(tt.w, tt.h, "", tt.dec)
			if !errors.Is(err, tt.code) {
				t.Errorf("Instantiate() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestCanvasLine(t *testing.T) {
	c := newCanvas(2, 1)
	c.line(3, 0, 0, 3)
	c.set(-1, 0)
	c.set(4, 0)
	if got, want := c.rows()[0], "⡠⠊"; got != want {
		t.Errorf("rows() = %q, want %q", got, want)
	}
}

func TestLimitsFromData(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		lo, hi float64
	}{
		{"empty", nil, 0, 1},
		{"flat", []float64{3, 3}, 2, 4},
		{"range", []float64{-2, 5, 1}, -2, 5},
	}
	for _, tt := range tests {
		lo, hi := limits(nil, element.KeyYLim, tt.values)
		if lo != tt.lo || hi != tt.hi {
			t.Errorf("%s: limits = %v,%v want %v,%v", tt.name, lo, hi, tt.lo, tt.hi)
		}
	}
}
