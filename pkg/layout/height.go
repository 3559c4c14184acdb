package layout

const (
	// MinCanvasHeight is the smallest auto height ever handed out.
	MinCanvasHeight = 5

	// BaseHeightOverhead counts the top border, bottom border and the two
	// label lines under a canvas.
	BaseHeightOverhead = 4

	// RowSpacing is the number of blank lines between rows.
	RowSpacing = 1
)

// rowHeightOverhead returns the lines a row consumes beyond its canvas.
func rowHeightOverhead(row Row) int {
	if row.hasTitle() {
		return BaseHeightOverhead + 1
	}
	return BaseHeightOverhead
}

// NegotiateHeights solves the canvas height of every row of a grid.
//
// Rows with at least one Fixed height are settled first: their height is the
// largest fixed height in the row, and Auto-height requests in such a row
// adopt it. The remaining rows are all-Auto; they split what is left of the
// terminal after fixed rows and inter-row spacing evenly, each losing its own
// chrome, but never below MinCanvasHeight. Settling fixed rows first keeps a
// short fixed row from starving its taller Auto neighbours.
func NegotiateHeights(rows []Row, termHeight int) []int {
	heights := make([]int, len(rows))
	deferred := make([]int, 0, len(rows))

	totalFixed := 0
	for i, row := range rows {
		tallest, ok := tallestFixedHeight(row)
		if !ok {
			deferred = append(deferred, i)
			continue
		}
		heights[i] = tallest
		totalFixed += tallest + rowHeightOverhead(row)
	}

	if len(deferred) == 0 {
		return heights
	}

	available := termHeight - totalFixed - RowSpacing*(len(rows)-1)
	share := floorDiv(available, len(deferred))
	for _, i := range deferred {
		heights[i] = max(share-rowHeightOverhead(rows[i]), MinCanvasHeight)
	}
	return heights
}

// tallestFixedHeight returns the largest Fixed height in row, if any.
func tallestFixedHeight(row Row) (int, bool) {
	tallest, found := 0, false
	for _, req := range row {
		if n, ok := req.Height.Value(); ok {
			tallest = max(tallest, n)
			found = true
		}
	}
	return tallest, found
}
