package layout

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Reset clears all colors and attributes.
const Reset = "\x1b[0m"

// gap separates adjacent elements in a row.
var gap = strings.Repeat(" ", Gap)

// MergeHorizontal places rendered blocks side by side. Lines are matched by
// index; every line is padded to its block's widest line, blocks shorter than
// the tallest are padded with blank lines, and blocks are separated by Gap
// columns.
func MergeHorizontal(blocks []string) string {
	if len(blocks) == 0 {
		return ""
	}

	lines := make([][]string, len(blocks))
	widths := make([]int, len(blocks))
	tallest := 0
	for i, b := range blocks {
		lines[i] = strings.Split(b, "\n")
		for _, l := range lines[i] {
			widths[i] = max(widths[i], VisibleWidth(l))
		}
		tallest = max(tallest, len(lines[i]))
	}

	var sb strings.Builder
	for n := 0; n < tallest; n++ {
		if n > 0 {
			sb.WriteByte('\n')
		}
		for i := range blocks {
			if i > 0 {
				sb.WriteString(gap)
			}
			line := ""
			if n < len(lines[i]) {
				line = lines[i][n]
			}
			sb.WriteString(line)
			if pad := widths[i] - VisibleWidth(line); pad > 0 {
				sb.WriteString(strings.Repeat(" ", pad))
			}
		}
	}
	return sb.String()
}

// MergeVertical stacks row outputs, one line break apart.
func MergeVertical(rows []string) string {
	return strings.Join(rows, "\n")
}

// VisibleWidth returns the number of terminal columns line occupies, not
// counting escape sequences.
func VisibleWidth(line string) int {
	return ansi.StringWidth(line)
}

// TruncateDisplay cuts line to at most maxColumns visible columns.
//
// Escape sequences never count toward the budget and are never split; those
// past the cut are kept so hyperlinks and charset switches stay terminated.
// A cut line ends with Reset so colors do not bleed into whatever the
// terminal prints next. Lines that already fit are returned unchanged. A
// wide grapheme that would straddle the budget is dropped.
func TruncateDisplay(line string, maxColumns int) string {
	maxColumns = max(maxColumns, 0)
	if VisibleWidth(line) <= maxColumns {
		return line
	}
	return ansi.Truncate(line, maxColumns, "") + Reset
}

// truncateFrame applies TruncateDisplay to every line of a frame.
func truncateFrame(frame string, maxColumns int) string {
	lines := strings.Split(frame, "\n")
	for i, l := range lines {
		lines[i] = TruncateDisplay(l, maxColumns)
	}
	return strings.Join(lines, "\n")
}
