package errors

// MaxDimension bounds fixed widths, heights and terminal geometry. Anything
// larger is almost certainly a unit mistake (pixels instead of cells).
const MaxDimension = 10000

// ValidateFixed checks a literal width or height given to a Fixed policy.
func ValidateFixed(what string, n int) error {
	if n <= 0 {
		return New(ErrCodeInvalidPolicy, "fixed %s must be positive, got %d", what, n)
	}
	if n > MaxDimension {
		return New(ErrCodeInvalidPolicy, "fixed %s too large (max %d), got %d", what, MaxDimension, n)
	}
	return nil
}

// ValidateSize checks terminal geometry supplied by a caller.
//
// Zero or negative sizes are rejected here even though the engine itself
// degrades gracefully; callers use this at their own boundary (CLI flags,
// window-size events) before the geometry reaches a render loop.
func ValidateSize(cols, rows int) error {
	if cols <= 0 || rows <= 0 {
		return New(ErrCodeInvalidSize, "terminal size must be positive, got %dx%d", cols, rows)
	}
	if cols > MaxDimension || rows > MaxDimension {
		return New(ErrCodeInvalidSize, "terminal size too large (max %d), got %dx%d", MaxDimension, cols, rows)
	}
	return nil
}
