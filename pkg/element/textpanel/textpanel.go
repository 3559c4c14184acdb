// Package textpanel provides a bordered, word-wrapped text block as a layout
// element.
//
// A panel renders its title on its own line, a rounded lipgloss border around
// exactly height lines of wrapped text (longer text is cut, shorter text is
// padded) and a caption line taken from the x-label, followed by one blank
// line so that panels line up with plots in the same row.
package textpanel

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/matzehuels/termgrid/pkg/element"
	"github.com/matzehuels/termgrid/pkg/errors"
)

// Option configures a panel factory.
type Option func(*Factory)

// Title sets the title decoration.
func Title(s string) Option {
	return func(f *Factory) { f.dec = f.dec.With(element.KeyTitle, s) }
}

// Caption sets the line shown under the panel.
func Caption(s string) Option {
	return func(f *Factory) { f.dec = f.dec.With(element.KeyXLabel, s) }
}

// BorderColor sets the border foreground color.
func BorderColor(c string) Option {
	return func(f *Factory) { f.border = f.border.BorderForeground(lipgloss.Color(c)) }
}

// Factory holds the text and decorations of one panel.
type Factory struct {
	dec    element.Decorations
	text   string
	border lipgloss.Style
}

var _ element.Factory = (*Factory)(nil)

// New creates a panel factory for text.
func New(text string, opts ...Option) *Factory {
	f := &Factory{
		text:   text,
		border: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Kind returns element.KindText.
func (f *Factory) Kind() element.Kind { return element.KindText }

// Decorations returns the factory's decorations.
func (f *Factory) Decorations() element.Decorations { return f.dec }

// Instantiate creates a panel with width by height cells of text.
func (f *Factory) Instantiate(width, height int, title string, dec element.Decorations) (element.Element, error) {
	if width < 1 || height < 1 {
		return nil, errors.New(errors.ErrCodeInvalidSize, "text panel %dx%d is empty", width, height)
	}
	return &Panel{
		dec:    dec,
		title:  title,
		text:   f.text,
		width:  width,
		height: height,
		border: f.border,
	}, nil
}

// Panel is an instantiated text panel.
type Panel struct {
	dec           element.Decorations
	title         string
	text          string
	width, height int
	border        lipgloss.Style
}

var _ element.Element = (*Panel)(nil)

var titleStyle = lipgloss.NewStyle().Bold(true)

func (p *Panel) Kind() element.Kind                { return element.KindText }
func (p *Panel) Decorations() element.Decorations { return p.dec }
func (p *Panel) CanvasWidth() element.CanvasWidth { return element.Columns(p.width) }

// Render draws the panel.
func (p *Panel) Render() string {
	wrapped := lipgloss.NewStyle().Width(p.width).Render(p.text)
	lines := strings.Split(wrapped, "\n")
	if len(lines) > p.height {
		lines = lines[:p.height]
	}
	box := p.border.Width(p.width).Height(p.height).Render(strings.Join(lines, "\n"))

	caption := ansi.Truncate(p.dec.XLabel(), p.width+2, "…")
	caption = lipgloss.PlaceHorizontal(p.width+2, lipgloss.Center, caption)

	var out []string
	if p.title != "" {
		out = append(out, titleStyle.Render(ansi.Truncate(p.title, p.width+2, "…")))
	}
	out = append(out, box, caption, "")
	return strings.Join(out, "\n")
}
