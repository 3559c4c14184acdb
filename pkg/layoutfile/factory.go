package layoutfile

import (
	"github.com/matzehuels/termgrid/pkg/element"
	"github.com/matzehuels/termgrid/pkg/element/plot"
	"github.com/matzehuels/termgrid/pkg/element/textpanel"
)

// factory builds the element factory for p at the given frame.
func (p Panel) factory(frame int) element.Factory {
	if element.Kind(p.Kind) == element.KindText {
		opts := []textpanel.Option{}
		if p.Title != "" {
			opts = append(opts, textpanel.Title(p.Title))
		}
		if p.XLabel != "" {
			opts = append(opts, textpanel.Caption(p.XLabel))
		}
		if p.Color != "" {
			opts = append(opts, textpanel.BorderColor(p.Color))
		}
		return textpanel.New(p.Text, opts...)
	}

	var opts []plot.Option
	if p.Title != "" {
		opts = append(opts, plot.Title(p.Title))
	}
	if p.XLabel != "" {
		opts = append(opts, plot.XLabel(p.XLabel))
	}
	if p.YLabel != "" {
		opts = append(opts, plot.YLabel(p.YLabel))
	}
	if p.XLim != nil {
		opts = append(opts, plot.XLim(p.XLim[0], p.XLim[1]))
	}
	if p.YLim != nil {
		opts = append(opts, plot.YLim(p.YLim[0], p.YLim[1]))
	}
	if p.Color != "" {
		opts = append(opts, plot.Color(p.Color))
	}

	n := p.Points
	if n == 0 {
		n = DefaultPoints
	}
	if element.Kind(p.Kind) == element.KindBar && len(p.Labels) > 0 {
		n = len(p.Labels)
	}
	points := Generate(p.source(), n, frame, p.Seed)

	switch element.Kind(p.Kind) {
	case element.KindScatter:
		return plot.Scatter(points, opts...)
	case element.KindBar:
		return plot.Bars(bars(points, p.Labels), opts...)
	default:
		return plot.Line(points, opts...)
	}
}

func (p Panel) source() string {
	if p.Source == "" {
		return SourceSine
	}
	return p.Source
}
