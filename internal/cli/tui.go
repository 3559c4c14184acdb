package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/termgrid/pkg/layout"
	"github.com/matzehuels/termgrid/pkg/pipeline"
)

// Status bar styles
var (
	statusStyle = lipgloss.NewStyle().Foreground(colorGray)
	pausedStyle = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
)

// statusLines is the height reserved below the frame for the status bar.
const statusLines = 1

// =============================================================================
// LiveModel - Full-screen animation
// =============================================================================

// tickMsg asks the model to render the next frame.
type tickMsg time.Time

// LiveModel is the bubbletea model for full-screen animation. The terminal
// size comes from window-size events unless fixed by flags.
type LiveModel struct {
	Session  *pipeline.Session
	Stats    *pipeline.CacheStats
	Interval time.Duration
	Limit    int         // stop after this many frames; 0 means never
	Fixed    layout.Size // overrides window-size events when non-zero

	size   layout.Size
	frame  string
	paused bool
	err    error
}

// NewLiveModel creates a live model for session.
func NewLiveModel(s *pipeline.Session, stats *pipeline.CacheStats, interval time.Duration) LiveModel {
	return LiveModel{Session: s, Stats: stats, Interval: interval}
}

// Err returns the render error that ended the program, if any.
func (m LiveModel) Err() error { return m.err }

func (m LiveModel) tick() tea.Cmd {
	return tea.Tick(m.Interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m LiveModel) Init() tea.Cmd {
	return m.tick()
}

func (m LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "p":
			m.paused = !m.paused
		}
	case tea.WindowSizeMsg:
		m.size = layout.Size{Cols: msg.Width, Rows: msg.Height - statusLines}
	case tickMsg:
		if m.paused {
			return m, m.tick()
		}
		size := m.frameSize()
		if size.Cols <= 0 || size.Rows <= 0 {
			return m, m.tick()
		}
		frame, err := m.Session.Next(size)
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.frame = frame
		if m.Limit > 0 && m.Session.Rendered() >= m.Limit {
			return m, tea.Quit
		}
		return m, m.tick()
	}
	return m, nil
}

// frameSize returns the geometry the next frame is rendered at.
func (m LiveModel) frameSize() layout.Size {
	size := m.size
	if m.Fixed.Cols > 0 {
		size.Cols = m.Fixed.Cols
	}
	if m.Fixed.Rows > 0 {
		size.Rows = m.Fixed.Rows
	}
	return size
}

func (m LiveModel) View() string {
	var b strings.Builder
	b.WriteString(m.frame)
	b.WriteString("\n")
	b.WriteString(m.status())
	return b.String()
}

// status renders the one-line status bar.
func (m LiveModel) status() string {
	parts := []string{
		fmt.Sprintf("frame %d", m.Session.Rendered()),
		m.frameSize().String(),
	}
	if m.Stats != nil {
		parts = append(parts, fmt.Sprintf("cache %.0f%%", 100*m.Stats.HitRate()))
	}
	parts = append(parts, "space pause  q quit")

	line := statusStyle.Render(strings.Join(parts, " · "))
	if m.paused {
		line = pausedStyle.Render("paused") + " " + line
	}
	return line
}
