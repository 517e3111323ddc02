package play

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/sbokena/internal/dweller"
	"github.com/vinser/sbokena/internal/floor"
	"github.com/vinser/sbokena/internal/style"
	"github.com/vinser/sbokena/internal/types"
)

// TerminalDimensions holds the terminal size information
type TerminalDimensions struct {
	Width  int
	Height int
}

type Model struct {
	floor      *floor.Floor
	walker     *dweller.Walker
	best       int
	hasBest    bool
	bumps      int
	solved     bool
	exitsView  bool
	hint       bool
	transposed bool
	terminal   TerminalDimensions
	sb         *strings.Builder
}

// SolvedMsg is sent when the walker reaches the exit.
type SolvedMsg struct {
	Seed  int64
	Steps int
}

func solvedCmd(seed int64, steps int) tea.Cmd {
	return func() tea.Msg {
		return SolvedMsg{Seed: seed, Steps: steps}
	}
}

// NextFloorMsg asks for the maze generated from Seed.
type NextFloorMsg struct {
	Seed int64
}

func nextFloorCmd(seed int64) tea.Cmd {
	return func() tea.Msg {
		return NextFloorMsg{Seed: seed}
	}
}

// ExitsToggledMsg is sent when the exits view is switched so it can be remembered.
type ExitsToggledMsg struct {
	On bool
}

func exitsToggledCmd(on bool) tea.Cmd {
	return func() tea.Msg {
		return ExitsToggledMsg{On: on}
	}
}

// HelpMsg asks for the help page.
type HelpMsg struct{}

func helpCmd() tea.Cmd {
	return func() tea.Msg {
		return HelpMsg{}
	}
}

func New(f *floor.Floor, w *dweller.Walker, exitsView, hint bool) Model {
	return Model{
		floor:     f,
		walker:    w,
		exitsView: exitsView,
		hint:      hint,
		sb:        &strings.Builder{},
	}
}

// SetBest sets the fewest steps known for the current maze.
func (m *Model) SetBest(steps int) {
	m.best = steps
	m.hasBest = true
}

// SetSize stores the terminal size used to center the maze.
func (m *Model) SetSize(width, height int) {
	m.terminal = TerminalDimensions{Width: width, Height: height}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		key := msg.String()
		if d, ok := dweller.DirectionForKey(key); ok {
			return m.step(d)
		}
		switch key {
		case "u", "backspace":
			if _, ok := m.walker.Retreat(); ok {
				m.solved = false
			}
		case "r":
			m.walker.Reset()
			m.bumps = 0
			m.solved = false
		case "n":
			return m, nextFloorCmd(m.floor.Seed + 1)
		case "x":
			m.exitsView = !m.exitsView
			return m, exitsToggledCmd(m.exitsView)
		case "p":
			m.hint = !m.hint
		case "t":
			m.transposed = !m.transposed
		case "?":
			return m, helpCmd()
		}
	}
	return m, nil
}

// step moves the walker towards the on-screen direction d if the maze allows it.
func (m Model) step(d types.Direction) (Model, tea.Cmd) {
	if m.solved {
		return m, nil
	}
	if m.transposed {
		d = floor.TransposeDir(d)
	}
	if !m.floor.CanMove(m.walker.Pos(), d) {
		m.walker.Turn(d)
		m.bumps++
		return m, nil
	}
	m.walker.Advance(d)
	if m.walker.Pos() == m.floor.End() {
		m.solved = true
		return m, solvedCmd(m.floor.Seed, m.walker.Steps())
	}
	return m, nil
}

// Floor returns the maze in play.
func (m Model) Floor() *floor.Floor {
	return m.floor
}

// Walker returns the player token.
func (m Model) Walker() *dweller.Walker {
	return m.walker
}

// Solved reports whether the exit has been reached.
func (m Model) Solved() bool {
	return m.solved
}

// ExitsView reports whether exits are drawn.
func (m Model) ExitsView() bool {
	return m.exitsView
}

// screenSize returns the maze size as drawn, swapped in the transposed view.
func (m Model) screenSize() types.Position[int] {
	size := m.floor.Size()
	if m.transposed {
		return size.Transposed()
	}
	return size
}

// floorPos maps a screen cell to the maze cell drawn there.
func (m Model) floorPos(screen types.Position[int]) types.Position[int] {
	if m.transposed {
		return screen.Transposed()
	}
	return screen
}

func (m *Model) render() {
	size := m.screenSize()
	const spriteWidth = 2
	mazeWidthChars := size.X * spriteWidth

	horizontalPadding := (m.terminal.Width - mazeWidthChars) / 2
	if horizontalPadding < 0 {
		horizontalPadding = 0
	}
	pad := strings.Repeat(" ", horizontalPadding)

	m.sb.WriteString(pad)
	m.sb.WriteString(style.TopPattern.Render(strings.Repeat("/", mazeWidthChars)))
	m.sb.WriteString("\n")

	m.renderHeader(pad)
	m.renderMaze(size, pad)
	m.renderFooter(mazeWidthChars, pad)
}

func (m *Model) renderHeader(pad string) {
	size := m.floor.Size()
	m.sb.WriteString(pad)
	m.sb.WriteString(style.Title.Render(fmt.Sprintf("Seed: %d  Size: %dx%d", m.floor.Seed, size.X, size.Y)))
	if m.transposed {
		m.sb.WriteString(style.Title.Render("  [transposed]"))
	}
	m.sb.WriteString("\n")

	pos := m.walker.Pos()
	exits := m.floor.ExitsAt(pos)
	m.sb.WriteString(pad)
	m.sb.WriteString(style.PlayHeader.Render(fmt.Sprintf("Cell: %v  Exits: %v  %s", pos, exits, m.floor.Kind(pos))))
	m.sb.WriteString("\n")

	m.sb.WriteString(pad)
	m.sb.WriteString(fmt.Sprintf("Steps: %d  Bumps: %d  ", m.walker.Steps(), m.bumps))
	if m.hasBest {
		m.sb.WriteString(style.Best.Render(fmt.Sprintf("Best: %d", m.best)))
	} else {
		m.sb.WriteString("Best: —")
	}
	if m.solved {
		m.sb.WriteString(style.Solved.Render("  SOLVED"))
	}
	m.sb.WriteString("\n")
}

func (m *Model) renderMaze(size types.Position[int], pad string) {
	walkerPos := m.walker.Pos()
	trail := m.walker.Visited()
	for y := 0; y < size.Y; y++ {
		m.sb.WriteString(pad)
		for x := 0; x < size.X; x++ {
			p := m.floorPos(types.Position[int]{X: x, Y: y})
			m.sb.WriteString(m.cell(p, walkerPos, trail))
		}
		m.sb.WriteString("\n")
	}
}

func (m *Model) cell(p, walkerPos types.Position[int], trail map[types.Position[int]]types.Directions) string {
	if p == walkerPos {
		return m.walker.Render(m.transposed)
	}
	if sides, ok := trail[p]; ok && !m.exitsView {
		if item, _ := m.floor.ItemAt(p); item == floor.Empty {
			if m.transposed {
				sides = floor.Transpose(sides)
			}
			return style.Trail.Render(floor.Glyph(sides))
		}
	}
	return m.floor.RenderAt(p, m.exitsView, m.hint, m.transposed)
}

func (m *Model) renderFooter(width int, pad string) {
	m.sb.WriteString(pad)
	footer := "← ↑ ↓ → — move, u — undo, x — exits, t — transpose, ? — help, q — quit"
	if m.solved {
		footer = "n — next maze, u — undo, r — restart, q — quit"
	}
	m.sb.WriteString(style.Footer.Render(footer))
	if rest := width - len([]rune(footer)); rest > 0 {
		m.sb.WriteString(style.Footer.Render(strings.Repeat("/", rest)))
	}
	m.sb.WriteString("\n")
}

// View returns the complete screen output.
func (m Model) View() string {
	m.sb.Reset()
	m.render()
	return m.sb.String()
}
