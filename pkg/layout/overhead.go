package layout

import (
	"strings"

	"github.com/matzehuels/termgrid/pkg/element"
	"github.com/matzehuels/termgrid/pkg/errors"
	"github.com/matzehuels/termgrid/pkg/observability"
)

const (
	// ProbeWidth is the nominal canvas width probes are instantiated at.
	ProbeWidth = 10

	// ProbeHeight is the nominal canvas height probes are instantiated at.
	ProbeHeight = MinCanvasHeight
)

// MeasureOverhead returns the number of columns f's elements consume beyond
// their canvas content width.
//
// A disposable probe is instantiated at ProbeWidth with the title stripped,
// since some kinds print the title on its own line and a long title must not
// inflate a content-line measurement. The probe's second line (the first
// content line below the top border) is measured with escape sequences
// removed. Overhead is assumed not to depend on width, so one probe per
// negotiation is enough.
func MeasureOverhead(f element.Factory) (int, error) {
	dec := f.Decorations().Without(element.KeyTitle)
	probe, err := f.Instantiate(ProbeWidth, ProbeHeight, "", dec)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidElement, err, "instantiate %s probe", f.Kind())
	}

	lines := strings.Split(probe.Render(), "\n")
	if len(lines) < 2 {
		return 0, errors.New(errors.ErrCodeInvalidElement,
			"%s probe rendered %d line(s), need at least 2", f.Kind(), len(lines))
	}

	canvas, err := probe.CanvasWidth().Columns()
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeUnknownMetric, err, "%s probe", f.Kind())
	}

	overhead := VisibleWidth(lines[1]) - canvas
	if overhead < 0 {
		return 0, errors.New(errors.ErrCodeInvalidElement,
			"%s probe content line is narrower than its canvas (%d < %d)", f.Kind(), overhead+canvas, canvas)
	}

	observability.Negotiation().OnOverheadProbe(string(f.Kind()), overhead)
	return overhead, nil
}

// measureRow probes every request in row.
func measureRow(row Row) ([]int, error) {
	overheads := make([]int, len(row))
	for i, req := range row {
		o, err := MeasureOverhead(req.Factory)
		if err != nil {
			return nil, err
		}
		overheads[i] = o
	}
	return overheads, nil
}
