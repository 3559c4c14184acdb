package layoutfile

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/termgrid/pkg/element"
	"github.com/matzehuels/termgrid/pkg/errors"
	"github.com/matzehuels/termgrid/pkg/layout"
)

// DefaultPoints is the number of samples generated when points is unset.
const DefaultPoints = 60

// Document is a parsed layout file.
type Document struct {
	Rows []Row `toml:"row"`
}

// Row is one [[row]] table.
type Row struct {
	Panels []Panel `toml:"panel"`
}

// Panel is one [[row.panel]] table.
type Panel struct {
	Kind   string    `toml:"kind"`
	Title  string    `toml:"title"`
	XLabel string    `toml:"xlabel"`
	YLabel string    `toml:"ylabel"`
	Width  Dimension `toml:"width"`
	Height Dimension `toml:"height"`
	XLim   []float64 `toml:"xlim"`
	YLim   []float64 `toml:"ylim"`
	Color  string    `toml:"color"`

	// Text panels.
	Text string `toml:"text"`

	// Plots.
	Source string   `toml:"source"`
	Points int      `toml:"points"`
	Seed   uint64   `toml:"seed"`
	Labels []string `toml:"labels"`
}

// Dimension is a width or height written as "auto" or an integer.
type Dimension struct {
	layout.Policy
}

var _ toml.Unmarshaler = (*Dimension)(nil)

// UnmarshalTOML implements toml.Unmarshaler.
func (d *Dimension) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case string:
		if !strings.EqualFold(v, "auto") {
			return fmt.Errorf("dimension must be \"auto\" or an integer, got %q", v)
		}
		d.Policy = layout.Auto()
	case int64:
		d.Policy = layout.Fixed(int(v))
	default:
		return fmt.Errorf("dimension must be \"auto\" or an integer, got %T", v)
	}
	return nil
}

// Load reads and parses a layout file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "layout file %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read layout file: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes and validates a layout document. Unknown keys are rejected.
func Parse(data []byte) (*Document, error) {
	var doc Document
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode layout")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks panel kinds, sources and limits. Sizes are checked by
// layout.Spec.Validate when the document is built.
func (d *Document) Validate() error {
	for i, row := range d.Rows {
		for j, p := range row.Panels {
			if err := p.validate(); err != nil {
				return fmt.Errorf("row %d panel %d: %w", i, j, err)
			}
		}
	}
	return nil
}

func (p Panel) validate() error {
	kind := element.Kind(p.Kind)
	switch kind {
	case element.KindLine, element.KindScatter, element.KindBar:
		if p.Source != "" && !slices.Contains(Sources(), p.Source) {
			return errors.New(errors.ErrCodeInvalidInput, "unknown source %q (want one of %s)",
				p.Source, strings.Join(Sources(), ", "))
		}
		if kind != element.KindBar && len(p.Labels) > 0 {
			return errors.New(errors.ErrCodeUnsupported, "%s panels take no labels", kind)
		}
	case element.KindText:
		if p.Source != "" {
			return errors.New(errors.ErrCodeUnsupported, "text panels take no source")
		}
		if len(p.Labels) > 0 {
			return errors.New(errors.ErrCodeUnsupported, "text panels take no labels")
		}
	case "":
		return errors.New(errors.ErrCodeInvalidInput, "missing kind")
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown kind %q", p.Kind)
	}
	if err := validateLimits(element.KeyXLim, p.XLim); err != nil {
		return err
	}
	if err := validateLimits(element.KeyYLim, p.YLim); err != nil {
		return err
	}
	if p.Points < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "points must not be negative")
	}
	return nil
}

func validateLimits(key string, lim []float64) error {
	if lim != nil && (len(lim) != 2 || !(lim[1] > lim[0])) {
		return errors.New(errors.ErrCodeInvalidInput, "%s must be [lo, hi] with lo < hi", key)
	}
	return nil
}

// Build produces the layout for one animation frame.
func (d *Document) Build(frame int) (layout.Spec, error) {
	rows := make([]layout.Row, len(d.Rows))
	for i, r := range d.Rows {
		rows[i] = make(layout.Row, len(r.Panels))
		for j, p := range r.Panels {
			rows[i][j] = layout.Panel(p.factory(frame),
				layout.WithWidth(p.Width.Policy),
				layout.WithHeight(p.Height.Policy))
		}
	}
	spec := layout.NewSpec(rows...)
	if err := spec.Validate(); err != nil {
		return layout.Spec{}, err
	}
	return spec, nil
}
