package quit

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const quitPeriod = 2 * time.Second

type Model struct {
	quitUntil time.Time
	solved    int
}

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

type TimedoutMsg struct{}

func timedoutCmd() tea.Cmd {
	return func() tea.Msg {
		return TimedoutMsg{}
	}
}

// New returns the farewell screen. solved is the number of mazes finished in this session.
func New(solved int) Model {
	return Model{
		quitUntil: time.Now().Add(quitPeriod),
		solved:    solved,
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if time.Now().After(m.quitUntil) {
		return m, timedoutCmd()
	}
	return m, tick()
}

func (m Model) View() string {
	switch m.solved {
	case 0:
		return "\nThe exit is still out there.\nBye!\n"
	case 1:
		return "\nOne maze solved.\nBye!\n"
	}
	return fmt.Sprintf("\n%d mazes solved.\nBye!\n", m.solved)
}
