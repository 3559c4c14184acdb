package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/termgrid/pkg/layout"
)

// probeRow is one panel's line in the probe table.
type probeRow struct {
	row, col  int
	kind      string
	width     string // policy and resolved canvas width
	height    string // policy and resolved canvas height
	overhead  int
	signature layout.Signature
}

// probeCommand creates the probe command, which reports how the engine sizes
// every panel of a layout.
func (c *CLI) probeCommand() *cobra.Command {
	var size sizeFlags
	var frame int

	cmd := &cobra.Command{
		Use:   "probe [layout.toml]",
		Short: "Show overhead, allocation and signature of every panel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.newRunner().Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			spec, err := doc.Build(frame)
			if err != nil {
				return err
			}
			geometry := terminalSize(size.cols, size.rows)
			rows, err := probeSpec(spec, geometry)
			if err != nil {
				return err
			}
			printProbeTable(cmd.OutOrStdout(), rows, geometry)
			return nil
		},
	}

	size.register(cmd)
	cmd.Flags().IntVar(&frame, "frame", 0, "animation frame to build")

	return cmd
}

// probeSpec measures every request of spec and negotiates the grid at size.
func probeSpec(spec layout.Spec, size layout.Size) ([]probeRow, error) {
	heights := layout.NegotiateHeights(spec.Rows, size.Rows)

	var out []probeRow
	for i, row := range spec.Rows {
		overheads := make([]int, len(row))
		for j, req := range row {
			o, err := layout.MeasureOverhead(req.Factory)
			if err != nil {
				return nil, fmt.Errorf("row %d panel %d: %w", i, j, err)
			}
			overheads[j] = o
		}
		auto := layout.NegotiateRowWidth(row, overheads, size.Cols)

		for j, req := range row {
			out = append(out, probeRow{
				row:       i,
				col:       j,
				kind:      string(req.Kind()),
				width:     fmt.Sprintf("%s → %d", req.Width, req.Width.Resolve(auto)),
				height:    fmt.Sprintf("%s → %d", req.Height, req.Height.Resolve(heights[i])),
				overhead:  overheads[j],
				signature: layout.Sign(req),
			})
		}
	}
	return out, nil
}

// printProbeTable renders probe rows as a rounded table.
func printProbeTable(w io.Writer, rows []probeRow, size layout.Size) {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	data := make([][]string, len(rows))
	for i, r := range rows {
		data[i] = []string{
			strconv.Itoa(r.row),
			strconv.Itoa(r.col),
			r.kind,
			r.width,
			r.height,
			strconv.Itoa(r.overhead),
			fmt.Sprintf("%016x", uint64(r.signature)),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Row", "Col", "Kind", "Width", "Height", "Overhead", "Signature").
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			if col == 6 {
				return cellStyle.Foreground(colorDim)
			}
			return cellStyle
		})

	fmt.Fprintln(w, StyleTitle.Render("Layout probe")+" "+StyleDim.Render("at "+size.String()))
	fmt.Fprintln(w, t.Render())
}
