package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/termgrid/pkg/layout"
	"github.com/matzehuels/termgrid/pkg/layoutfile"
)

// Runner encapsulates layout loading and rendering with logging.
//
// The Runner is stateless except for its logger; per-animation state lives in
// the Sessions it opens.
type Runner struct {
	Renderer *layout.Renderer
	Logger   *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Renderer: layout.NewRenderer(logger),
		Logger:   logger,
	}
}

// Load reads and validates a layout file.
func (r *Runner) Load(ctx context.Context, path string) (*layoutfile.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	doc, err := layoutfile.Load(path)
	if err != nil {
		return nil, err
	}
	r.Logger.Debug("loaded layout", "path", path, "rows", len(doc.Rows), "duration", time.Since(start))
	return doc, nil
}

// Once renders the start frame of a layout without caching.
func (r *Runner) Once(ctx context.Context, opts Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", fmt.Errorf("invalid options: %w", err)
	}
	doc, err := r.Load(ctx, opts.Layout)
	if err != nil {
		return "", err
	}
	spec, err := doc.Build(opts.StartFrame)
	if err != nil {
		return "", fmt.Errorf("build: %w", err)
	}
	frame, err := r.Renderer.Render(spec, layout.Size{Cols: opts.Cols, Rows: opts.Rows})
	if err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	return frame, nil
}

// Open loads a layout and starts an animation session.
func (r *Runner) Open(ctx context.Context, opts Options) (*Session, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	doc, err := r.Load(ctx, opts.Layout)
	if err != nil {
		return nil, err
	}
	s := &Session{
		doc:      doc,
		renderer: r.Renderer,
		cache:    layout.NewRenderCache(layout.WithLogger(r.Logger)),
		frame:    opts.StartFrame,
	}
	r.Logger.Debug("opened session", "session", s.cache.ID(), "layout", opts.Layout)
	return s, nil
}

// Session renders successive frames of one layout through one render cache.
// A Session is not safe for concurrent use.
type Session struct {
	doc      *layoutfile.Document
	renderer *layout.Renderer
	cache    *layout.RenderCache
	frame    int
	rendered int
}

// Next builds and renders the next frame at the given terminal size.
func (s *Session) Next(size layout.Size) (string, error) {
	spec, err := s.doc.Build(s.frame)
	if err != nil {
		return "", fmt.Errorf("frame %d: build: %w", s.frame, err)
	}
	out, err := s.renderer.RenderCached(s.cache, spec, size)
	if err != nil {
		return "", fmt.Errorf("frame %d: %w", s.frame, err)
	}
	s.frame++
	s.rendered++
	return out, nil
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.cache.ID() }

// Rendered returns the number of frames rendered so far.
func (s *Session) Rendered() int { return s.rendered }

// LastLines returns the line count of the last frame.
func (s *Session) LastLines() int { return s.cache.LastLines() }

// Cache returns the session's render cache.
func (s *Session) Cache() *layout.RenderCache { return s.cache }
