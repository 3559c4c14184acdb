package layout

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Renderer composes layouts into frames.
//
// The Renderer is stateless apart from its logger; all per-session state
// lives in the RenderCache the caller passes in. One Renderer may serve
// several independent loops as long as each loop has its own cache.
type Renderer struct {
	Logger *log.Logger
}

// NewRenderer creates a renderer. A nil logger discards output.
func NewRenderer(logger *log.Logger) *Renderer {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Renderer{Logger: logger}
}

// defaultRenderer backs the package-level functions.
var defaultRenderer = NewRenderer(nil)

// Render negotiates and composes spec from scratch. Nothing is cached and
// nothing is truncated; a layout that does not fit overflows.
func Render(spec Spec, size Size) (string, error) {
	return defaultRenderer.Render(spec, size)
}

// RenderCached composes spec reusing the allocations in rc. Lines wider than
// the terminal (the terminal shrank since rc was populated) are truncated.
func RenderCached(rc *RenderCache, spec Spec, size Size) (string, error) {
	return defaultRenderer.RenderCached(rc, spec, size)
}

// Render negotiates and composes spec from scratch.
func (r *Renderer) Render(spec Spec, size Size) (string, error) {
	return r.render(statelessCache(r.Logger), spec, size, false)
}

// RenderCached composes spec reusing the allocations in rc.
func (r *Renderer) RenderCached(rc *RenderCache, spec Spec, size Size) (string, error) {
	if rc == nil {
		return "", fmt.Errorf("render cached: nil render cache")
	}
	return r.render(rc, spec, size, true)
}

// render runs negotiation through rc and composes the frame. Either the
// whole frame is returned or an error; never a partial frame.
func (r *Renderer) render(rc *RenderCache, spec Spec, size Size, truncate bool) (string, error) {
	if err := spec.Validate(); err != nil {
		return "", err
	}
	if len(spec.Rows) == 0 {
		rc.lastLines = 0
		return "", nil
	}
	start := time.Now()

	widths := make([]int, len(spec.Rows))
	for i, row := range spec.Rows {
		w, err := rc.ResolveRowWidth(i, row, size.Cols)
		if err != nil {
			return "", fmt.Errorf("row %d: %w", i, err)
		}
		widths[i] = w
	}
	heights := rc.ResolveHeights(spec.Rows, size.Rows)

	rows := make([]string, len(spec.Rows))
	for i, row := range spec.Rows {
		blocks := make([]string, len(row))
		for j, req := range row {
			el, err := req.instantiate(req.Width.Resolve(widths[i]), req.Height.Resolve(heights[i]))
			if err != nil {
				return "", fmt.Errorf("row %d element %d: instantiate %s: %w", i, j, req.Factory.Kind(), err)
			}
			blocks[j] = el.Render()
		}
		rows[i] = MergeHorizontal(blocks)
	}

	frame := MergeVertical(rows)
	if truncate {
		frame = truncateFrame(frame, size.Cols)
	}
	rc.lastLines = strings.Count(frame, "\n") + 1

	r.Logger.Debug("rendered frame",
		"session", rc.ID(), "size", size, "rows", len(spec.Rows), "lines", rc.lastLines,
		"duration", time.Since(start))
	return frame, nil
}
