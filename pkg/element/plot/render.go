package plot

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/matzehuels/termgrid/pkg/element"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	axisStyle  = lipgloss.NewStyle().Faint(true)
)

// Render draws the plot inside its frame.
func (p *Plot) Render() string {
	var (
		rows   []string
		labels []string
		xlo    float64
		xhi    float64
	)
	if p.kind == element.KindBar {
		xlo, xhi = p.valueLimits()
		rows, labels = p.barRows(xlo, xhi)
	} else {
		xlo, xhi = limits(p.dec, element.KeyXLim, p.xs())
		ylo, yhi := limits(p.dec, element.KeyYLim, p.ys())
		rows = p.brailleRows(xlo, xhi, ylo, yhi)
		labels = p.yTicks(ylo, yhi)
	}
	return p.frame(rows, labels, xlo, xhi)
}

// frame wraps canvas rows in borders, the label gutter and the x axis.
func (p *Plot) frame(rows, labels []string, xlo, xhi float64) string {
	gutter := gutterWidth(p.dec.YLabel())
	blank := strings.Repeat(" ", gutter)
	rule := strings.Repeat("─", p.width)

	lines := make([]string, 0, len(rows)+5)
	if p.title != "" {
		lines = append(lines, titleStyle.Render(ansi.Truncate(p.title, gutter+p.width+2, "…")))
	}
	lines = append(lines, blank+axisStyle.Render("┌"+rule+"┐"))
	for i, row := range rows {
		label := cond.FillLeft(cond.Truncate(labels[i], gutter-1, ""), gutter-1)
		lines = append(lines, label+" "+axisStyle.Render("│")+row+axisStyle.Render("│"))
	}
	lines = append(lines, blank+axisStyle.Render("└"+rule+"┘"))

	// Bar charts use every gutter row for bar labels; their y-label moves
	// to the axis line.
	axisGutter := blank
	if p.kind == element.KindBar {
		axisGutter = cond.FillRight(p.dec.YLabel(), gutter)
	}
	lines = append(lines, axisGutter+p.axis(xlo, xhi), blank+" "+center(p.dec.XLabel(), p.width))
	return strings.Join(lines, "\n")
}

// axis renders the x limits under the bottom border.
func (p *Plot) axis(lo, hi float64) string {
	left, right := tick(lo), tick(hi)
	inner := p.width + 2
	pad := inner - cond.StringWidth(left) - cond.StringWidth(right)
	if pad < 1 {
		return cond.Truncate(left, inner, "")
	}
	return left + strings.Repeat(" ", pad) + right
}

// center centers s in n columns, cutting it when it does not fit.
func center(s string, n int) string {
	s = cond.Truncate(s, n, "")
	pad := n - cond.StringWidth(s)
	return strings.Repeat(" ", pad/2) + s + strings.Repeat(" ", pad-pad/2)
}

// =============================================================================
// Braille plots
// =============================================================================

func (p *Plot) xs() []float64 {
	out := make([]float64, len(p.points))
	for i, pt := range p.points {
		out[i] = pt.X
	}
	return out
}

func (p *Plot) ys() []float64 {
	out := make([]float64, len(p.points))
	for i, pt := range p.points {
		out[i] = pt.Y
	}
	return out
}

// brailleRows plots the points on a braille canvas.
func (p *Plot) brailleRows(xlo, xhi, ylo, yhi float64) []string {
	c := newCanvas(p.width, p.height)
	nx, ny := c.dotsX(), c.dotsY()
	dot := func(pt Point) (int, int) {
		return scale(pt.X, xlo, xhi, nx), ny - 1 - scale(pt.Y, ylo, yhi, ny)
	}

	switch p.kind {
	case element.KindScatter:
		for _, pt := range p.points {
			if pt.X < xlo || pt.X > xhi || pt.Y < ylo || pt.Y > yhi {
				continue
			}
			c.set(dot(pt))
		}
	default:
		for i, pt := range p.points {
			x, y := dot(pt)
			x, y = clamp(x, nx), clamp(y, ny)
			if i == 0 {
				c.set(x, y)
				continue
			}
			px, py := dot(p.points[i-1])
			c.line(clamp(px, nx), clamp(py, ny), x, y)
		}
	}

	rows := c.rows()
	for i, r := range rows {
		rows[i] = p.style.Render(r)
	}
	return rows
}

// yTicks labels the top and bottom canvas rows with the y limits and the
// middle row with the y-label.
func (p *Plot) yTicks(lo, hi float64) []string {
	labels := make([]string, p.height)
	if p.height > 2 {
		labels[p.height/2] = p.dec.YLabel()
	}
	labels[p.height-1] = tick(lo)
	labels[0] = tick(hi)
	return labels
}

// clamp limits a dot coordinate to 0..n-1.
func clamp(v, n int) int {
	return min(max(v, 0), n-1)
}

// =============================================================================
// Bar charts
// =============================================================================

// valueLimits returns the value axis range. Unpinned ranges always include 0.
func (p *Plot) valueLimits() (lo, hi float64) {
	if s, ok := p.dec.Get(element.KeyXLim); ok {
		if lo, hi, ok := element.ParseLimits(s); ok && hi > lo {
			return lo, hi
		}
	}
	lo, hi = 0, 0
	for _, b := range p.bars {
		lo, hi = math.Min(lo, b.Value), math.Max(hi, b.Value)
	}
	if lo == hi {
		hi = lo + 1
	}
	return lo, hi
}

// barRows draws one bar per canvas row. Bars beyond the canvas height are
// not shown.
func (p *Plot) barRows(lo, hi float64) (rows, labels []string) {
	rows = make([]string, p.height)
	labels = make([]string, p.height)
	for i := range p.height {
		n := 0
		if i < len(p.bars) {
			labels[i] = p.bars[i].Label
			frac := (p.bars[i].Value - lo) / (hi - lo)
			n = min(max(int(math.Round(frac*float64(p.width))), 0), p.width)
		}
		rows[i] = p.style.Render(strings.Repeat("█", n)) + strings.Repeat(" ", p.width-n)
	}
	return rows, labels
}
