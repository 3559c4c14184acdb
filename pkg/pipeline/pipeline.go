// Package pipeline drives layout files through the render engine.
//
// This package implements the load → build → render loop shared by the
// one-shot and animated CLI commands. By centralizing it, every entry point
// gets the same defaults, the same validation and the same logging.
//
// # Architecture
//
// A run has three stages:
//
//  1. Load: parse and validate a TOML layout file ([layoutfile.Load])
//  2. Build: instantiate the layout for one animation frame
//  3. Render: negotiate and compose the frame ([layout.Renderer])
//
// One-shot runs go through [Runner.Once], which negotiates from scratch.
// Animations open a [Session], which owns a [layout.RenderCache] and a frame
// counter, so successive frames reuse the negotiated allocation.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{Layout: "grid.toml", Cols: 120, Rows: 40}
//	frame, err := runner.Once(ctx, opts)
//
//	session, err := runner.Open(ctx, opts)
//	for {
//	    frame, err := session.Next(size)
//	    // redraw
//	}
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/termgrid/pkg/errors"
)

// =============================================================================
// Default Values - Single Source of Truth for the CLI
// =============================================================================

const (
	// DefaultCols is the terminal width used when none is known.
	DefaultCols = 80

	// DefaultRows is the terminal height used when none is known.
	DefaultRows = 24

	// DefaultFPS is the default animation frame rate.
	DefaultFPS = 10

	// MaxFPS bounds the animation frame rate.
	MaxFPS = 60
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run.
type Options struct {
	// Layout is the path of the TOML layout file.
	Layout string

	// Cols and Rows are the terminal geometry. Zero means DefaultCols and
	// DefaultRows.
	Cols int
	Rows int

	// FPS is the animation frame rate.
	FPS int

	// Frames stops an animation after this many frames; zero runs until
	// interrupted.
	Frames int

	// StartFrame is the frame number of the first frame.
	StartFrame int

	// Runtime options
	Logger *log.Logger
}

// SetDefaults fills unset fields.
func (o *Options) SetDefaults() {
	if o.Cols == 0 {
		o.Cols = DefaultCols
	}
	if o.Rows == 0 {
		o.Rows = DefaultRows
	}
	if o.FPS == 0 {
		o.FPS = DefaultFPS
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate applies defaults and checks every field.
func (o *Options) Validate() error {
	o.SetDefaults()
	if o.Layout == "" {
		return errors.New(errors.ErrCodeInvalidInput, "layout file is required")
	}
	if err := errors.ValidateSize(o.Cols, o.Rows); err != nil {
		return err
	}
	if o.FPS < 1 || o.FPS > MaxFPS {
		return errors.New(errors.ErrCodeInvalidInput, "fps must be between 1 and %d, got %d", MaxFPS, o.FPS)
	}
	if o.Frames < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "frames must not be negative, got %d", o.Frames)
	}
	if o.StartFrame < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "start frame must not be negative, got %d", o.StartFrame)
	}
	return nil
}

// Interval returns the time between animation frames.
func (o *Options) Interval() time.Duration {
	fps := o.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}
	return time.Second / time.Duration(fps)
}

// String summarizes the options for logs.
func (o *Options) String() string {
	return fmt.Sprintf("%s @ %dx%d", o.Layout, o.Cols, o.Rows)
}
