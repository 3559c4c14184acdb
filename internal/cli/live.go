package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/matzehuels/termgrid/pkg/layout"
	"github.com/matzehuels/termgrid/pkg/observability"
	"github.com/matzehuels/termgrid/pkg/pipeline"
)

// liveOpts holds the command-line flags for the live command.
type liveOpts struct {
	size   sizeFlags
	fps    int  // frames per second
	frames int  // stop after this many frames; 0 runs until interrupted
	inline bool // redraw in place instead of taking over the screen
	frame  int  // first animation frame
}

// liveCommand creates the live command, which animates a layout.
//
// By default the animation runs full screen. With --inline every frame is
// drawn over the previous one in the normal scrollback, using the previous
// frame's line count to move the cursor back up.
func (c *CLI) liveCommand() *cobra.Command {
	opts := liveOpts{fps: pipeline.DefaultFPS}

	cmd := &cobra.Command{
		Use:   "live [layout.toml]",
		Short: "Animate a layout in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLive(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	opts.size.register(cmd)
	cmd.Flags().IntVar(&opts.fps, "fps", opts.fps, "frames per second")
	cmd.Flags().IntVarP(&opts.frames, "frames", "n", 0, "stop after n frames (default: run until interrupted)")
	cmd.Flags().BoolVar(&opts.inline, "inline", false, "redraw in place instead of using the alternate screen")
	cmd.Flags().IntVar(&opts.frame, "start", 0, "first animation frame")

	return cmd
}

func (c *CLI) runLive(ctx context.Context, w io.Writer, path string, opts liveOpts) error {
	logger := loggerFromContext(ctx)
	popts := pipeline.Options{
		Layout:     path,
		FPS:        opts.fps,
		Frames:     opts.frames,
		StartFrame: opts.frame,
		Logger:     logger,
	}

	stats := &pipeline.CacheStats{}
	observability.SetCacheHooks(stats)
	defer observability.Reset()

	session, err := c.newRunner().Open(ctx, popts)
	if err != nil {
		return err
	}
	logger.Debug("starting animation", "session", session.ID(), "fps", popts.FPS, "inline", opts.inline)

	if opts.inline || !isTerminal() {
		err = runInline(ctx, w, session, opts.size, popts)
	} else {
		err = runFullScreen(ctx, w, session, stats, opts.size, popts)
	}
	if err != nil {
		return err
	}

	printCacheStats(session.Rendered(), stats)
	return nil
}

// runFullScreen animates session in the alternate screen until the user quits,
// the frame limit is reached or ctx is cancelled.
func runFullScreen(ctx context.Context, w io.Writer, s *pipeline.Session, stats *pipeline.CacheStats, size sizeFlags, opts pipeline.Options) error {
	m := NewLiveModel(s, stats, opts.Interval())
	m.Limit = opts.Frames
	m.Fixed = layout.Size{Cols: size.cols, Rows: size.rows}

	final, err := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithOutput(w),
	).Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("live: %w", err)
	}
	if fm, ok := final.(LiveModel); ok {
		return fm.Err()
	}
	return nil
}

// runInline draws frames in place. Each frame moves the cursor up by the
// previous frame's line count and clears below before drawing.
func runInline(ctx context.Context, w io.Writer, s *pipeline.Session, size sizeFlags, opts pipeline.Options) error {
	ticker := time.NewTicker(opts.Interval())
	defer ticker.Stop()

	for {
		prev := s.LastLines()
		frame, err := s.Next(terminalSize(size.cols, size.rows))
		if err != nil {
			return err
		}
		if prev > 0 {
			fmt.Fprint(w, ansi.CursorPreviousLine(prev)+ansi.EraseScreenBelow)
		}
		fmt.Fprintln(w, frame)

		if opts.Frames > 0 && s.Rendered() >= opts.Frames {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
