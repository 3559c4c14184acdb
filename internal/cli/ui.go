package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/termgrid/pkg/pipeline"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary
	colorGreen  = lipgloss.Color("35")  // Green - cache hits
	colorYellow = lipgloss.Color("220") // Amber - paused, refreshes
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconInfo = lipgloss.NewStyle().Foreground(colorGray)
	styleHit      = lipgloss.NewStyle().Foreground(colorGreen)
	styleRefresh  = lipgloss.NewStyle().Foreground(colorYellow)
)

const iconInfo = "›"

// =============================================================================
// Status Output
// =============================================================================

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// =============================================================================
// Stats Display
// =============================================================================

// printCacheStats prints the frame count and render-cache counters of a live
// session on two lines.
func printCacheStats(frames int, stats *pipeline.CacheStats) {
	printInfo("%s frames", StyleNumber.Render(fmt.Sprint(frames)))
	fmt.Println("  " + formatCacheStats(stats))
}

// formatCacheStats formats cache counters as "12 hits · 4 misses · 0 refreshes · 75% cached".
func formatCacheStats(stats *pipeline.CacheStats) string {
	parts := []string{
		styleHit.Render(fmt.Sprintf("%d hits", stats.Hits())),
		StyleDim.Render(fmt.Sprintf("%d misses", stats.Misses())),
		styleRefresh.Render(fmt.Sprintf("%d refreshes", stats.Refreshes())),
		StyleDim.Render(fmt.Sprintf("%.0f%% cached", 100*stats.HitRate())),
	}
	line := ""
	for i, part := range parts {
		if i > 0 {
			line += StyleDim.Render(" · ")
		}
		line += part
	}
	return line
}
