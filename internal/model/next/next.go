package next

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/sbokena/internal/render"
)

const nextPeriod = 1500 * time.Millisecond

type Model struct {
	width      int
	height     int
	termWidth  int
	termHeight int

	seed      int64
	best      int
	hasBest   bool
	nextUntil time.Time
}

// TickMsg is a tick message for periodic updates.
type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// TimedoutMsg signals the end of the transition period.
type TimedoutMsg struct{}

func timedoutCmd() tea.Cmd {
	return func() tea.Msg {
		return TimedoutMsg{}
	}
}

// New returns the card shown before the maze for seed. best is the fewest
// steps recorded for it, if any.
func New(seed int64, best int, hasBest bool, width, height int) Model {
	if width < lipgloss.Width(footer) {
		width = lipgloss.Width(footer)
	}
	return Model{
		width:  width,
		height: height,

		seed:      seed,
		best:      best,
		hasBest:   hasBest,
		nextUntil: time.Now().Add(nextPeriod),
	}
}

func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg.(type) {
	case tea.KeyMsg:
		// Any key skips the card.
		return m, timedoutCmd()
	case TickMsg:
		if time.Now().After(m.nextUntil) {
			return m, timedoutCmd()
		}
		return m, tick()
	}
	return m, nil
}

const footer = "any key — start"

func (m Model) View() string {
	return render.Page(fmt.Sprintf("Maze #%d", m.seed), m.renderContent(), footer, m.width, m.height, m.termWidth, m.termHeight)
}

func (m Model) renderContent() string {
	if m.hasBest {
		return fmt.Sprintf("\nSolved before in %d steps.\nGet ready...\n", m.best)
	}
	return "\nGet ready...\n"
}
