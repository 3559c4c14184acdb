package layout

const (
	// MinCanvasWidth is the smallest auto width ever handed out.
	MinCanvasWidth = 5

	// Gap is the number of blank columns between adjacent elements.
	Gap = 2
)

// NegotiateRowWidth solves the shared auto width for one row.
//
// Fixed-width requests take their literal width plus overhead. Whatever is
// left after Auto-width overheads and the gaps between elements is divided
// evenly (floor) among the Auto-width requests, but never below
// MinCanvasWidth. A row without Auto-width requests returns 0; the value is
// unused.
//
// overheads must hold one entry per request.
func NegotiateRowWidth(row Row, overheads []int, termWidth int) int {
	width, _ := negotiateRowWidth(row, overheads, termWidth)
	return width
}

// negotiateRowWidth also reports whether the floor was binding.
func negotiateRowWidth(row Row, overheads []int, termWidth int) (width int, degraded bool) {
	padding := Gap * (len(row) - 1)

	var totalFixed, totalAutoOverhead, k int
	for i, req := range row {
		if n, ok := req.Width.Value(); ok {
			totalFixed += n + overheads[i]
			continue
		}
		totalAutoOverhead += overheads[i]
		k++
	}
	if k == 0 {
		return 0, false
	}

	available := termWidth - totalFixed - totalAutoOverhead - padding
	share := floorDiv(available, k)
	if share < MinCanvasWidth {
		return MinCanvasWidth, true
	}
	return share, false
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
