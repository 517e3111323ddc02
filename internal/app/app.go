package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/sbokena/internal/dweller"
	"github.com/vinser/sbokena/internal/flags"
	"github.com/vinser/sbokena/internal/floor"
	"github.com/vinser/sbokena/internal/model/about"
	"github.com/vinser/sbokena/internal/model/next"
	"github.com/vinser/sbokena/internal/model/play"
	"github.com/vinser/sbokena/internal/model/quit"
	"github.com/vinser/sbokena/internal/state"
)

type status uint

const (
	statusPlay status = iota
	statusAbout
	statusFloorIntro
	statusQuitting
)

type Model struct {
	version string
	status  status
	state   *state.State
	hint    bool
	solved  int
	// models
	play  play.Model
	about about.Model
	next  next.Model
	quit  quit.Model
	// terminal size cache
	termWidth  int
	termHeight int
}

// New loads the saved state, applies the options and sets up the first maze.
func New(version string, fl *flags.Flags) (Model, error) {
	st := getState(fl)
	m := Model{
		version: version,
		status:  statusPlay,
		state:   st,
		hint:    fl != nil && fl.Hint,
	}
	if err := m.enterFloor(st.Seed); err != nil {
		return Model{}, err
	}
	return m, nil
}

func getState(fl *flags.Flags) *state.State {
	st := state.Load()
	if fl == nil {
		return st
	}
	if fl.Reset {
		st = state.New()
	}
	if fl.IsSet("seed") && fl.Seed != 0 {
		st.Seed = fl.Seed
	}
	if fl.IsSet("width") {
		st.Width = fl.Width
	}
	if fl.IsSet("height") {
		st.Height = fl.Height
	}
	if fl.IsSet("exits") {
		st.ShowExits = fl.Exits
	}
	return st
}

// enterFloor generates the maze for seed and places a fresh walker at its entry.
func (m *Model) enterFloor(seed int64) error {
	f, err := floor.New(seed, m.state.Width, m.state.Height)
	if err != nil {
		return fmt.Errorf("floor %d: %w", seed, err)
	}
	m.state.Seed = seed
	_ = m.state.Save()

	m.play = play.New(f, dweller.NewWalker(f.Start()), m.state.ShowExits, m.hint)
	if best, ok := m.state.BestFor(seed); ok {
		m.play.SetBest(best)
	}
	m.play.SetSize(m.termWidth, m.termHeight)
	return nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth, m.termHeight = msg.Width, msg.Height
		m.play.SetSize(msg.Width, msg.Height)
		switch m.status {
		case statusAbout:
			m.about.SetSize(msg.Width, msg.Height)
		case statusFloorIntro:
			m.next.SetSize(msg.Width, msg.Height)
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if m.status != statusQuitting {
				m.status = statusQuitting
				m.quit = quit.New(m.solved)
				return m, m.quit.Init()
			}
		}
	case quit.TimedoutMsg:
		return m, tea.Quit
	case play.SolvedMsg:
		m.solved++
		if isBest, _ := m.state.RecordAndSave(msg.Seed, msg.Steps); isBest {
			m.play.SetBest(msg.Steps)
		}
		return m, nil
	case play.NextFloorMsg:
		if err := m.enterFloor(msg.Seed); err != nil {
			return m, tea.Quit
		}
		m.status = statusFloorIntro
		size := m.play.Floor().Size()
		best, ok := m.state.BestFor(msg.Seed)
		m.next = next.New(msg.Seed, best, ok, size.X*2, size.Y+5)
		if m.termWidth > 0 && m.termHeight > 0 {
			m.next.SetSize(m.termWidth, m.termHeight)
		}
		return m, m.next.Init()
	case next.TimedoutMsg:
		m.status = statusPlay
		return m, nil
	case play.ExitsToggledMsg:
		m.state.ShowExits = msg.On
		_ = m.state.Save()
		return m, nil
	case play.HelpMsg:
		m.status = statusAbout
		size := m.play.Floor().Size()
		m.about = about.New(m.version, size.X*2, size.Y+5)
		if m.termWidth > 0 && m.termHeight > 0 {
			m.about.SetSize(m.termWidth, m.termHeight)
		}
		return m, m.about.Init()
	case about.CloseAboutMsg:
		m.status = statusPlay
		return m, nil
	}

	var cmd tea.Cmd
	switch m.status {
	case statusPlay:
		m.play, cmd = m.play.Update(msg)
	case statusAbout:
		m.about, cmd = m.about.Update(msg)
	case statusFloorIntro:
		m.next, cmd = m.next.Update(msg)
	case statusQuitting:
		m.quit, cmd = m.quit.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	switch m.status {
	case statusAbout:
		return m.about.View()
	case statusFloorIntro:
		return m.next.View()
	case statusQuitting:
		return m.quit.View()
	}
	return m.play.View()
}
