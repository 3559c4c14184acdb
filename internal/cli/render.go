package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/termgrid/pkg/pipeline"
)

// sizeFlags holds the geometry flags shared by render, live and probe.
type sizeFlags struct {
	cols int // terminal columns; 0 means detect
	rows int // terminal rows; 0 means detect
}

func (f *sizeFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.cols, "cols", 0, "terminal width in columns (default: detect)")
	cmd.Flags().IntVar(&f.rows, "rows", 0, "terminal height in rows (default: detect)")
}

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	size  sizeFlags
	frame int // animation frame to render
}

// renderCommand creates the render command, which prints one frame.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [layout.toml]",
		Short: "Render one frame of a layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			size := terminalSize(opts.size.cols, opts.size.rows)

			prog := newProgress(logger)
			frame, err := c.newRunner().Once(cmd.Context(), pipeline.Options{
				Layout:     args[0],
				Cols:       size.Cols,
				Rows:       size.Rows,
				StartFrame: opts.frame,
				Logger:     logger,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), frame)
			logger.Debug("frame", "size", size)
			prog.done(fmt.Sprintf("Rendered %s", args[0]))
			return nil
		},
	}

	opts.size.register(cmd)
	cmd.Flags().IntVar(&opts.frame, "frame", 0, "animation frame to render")

	return cmd
}
