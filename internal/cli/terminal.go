package cli

import (
	"os"

	"golang.org/x/term"

	"github.com/matzehuels/termgrid/pkg/layout"
	"github.com/matzehuels/termgrid/pkg/pipeline"
)

// terminalSize resolves the frame geometry: explicit flags win, then the size
// of the terminal on stdout, then the pipeline defaults.
func terminalSize(cols, rows int) layout.Size {
	size := layout.Size{Cols: cols, Rows: rows}
	if size.Cols > 0 && size.Rows > 0 {
		return size
	}
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		w, h = pipeline.DefaultCols, pipeline.DefaultRows
	}
	if size.Cols <= 0 {
		size.Cols = w
	}
	if size.Rows <= 0 {
		size.Rows = h
	}
	return size
}

// isTerminal reports whether stdout is a terminal.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
