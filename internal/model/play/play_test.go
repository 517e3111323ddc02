package play

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/sbokena/internal/dweller"
	"github.com/vinser/sbokena/internal/floor"
	"github.com/vinser/sbokena/internal/types"
)

func newTestModel(t *testing.T, seed int64) Model {
	t.Helper()
	f, err := floor.New(seed, floor.Width, floor.Height)
	if err != nil {
		t.Fatalf("floor.New(%d) failed: %v", seed, err)
	}
	return New(f, dweller.NewWalker(f.Start()), false, false)
}

func keyFor(d types.Direction) tea.KeyMsg {
	switch d {
	case types.Up:
		return tea.KeyMsg{Type: tea.KeyUp}
	case types.Down:
		return tea.KeyMsg{Type: tea.KeyDown}
	case types.Left:
		return tea.KeyMsg{Type: tea.KeyLeft}
	}
	return tea.KeyMsg{Type: tea.KeyRight}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// solutionMoves turns the shortest path into directions.
func solutionMoves(t *testing.T, f *floor.Floor) []types.Direction {
	t.Helper()
	path := f.Solution()
	moves := make([]types.Direction, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		step := path[i].Sub(path[i-1])
		found := false
		for _, d := range types.Cardinals {
			if floor.Offset(d) == step {
				moves = append(moves, d)
				found = true
			}
		}
		if !found {
			t.Fatalf("solution step %v is not a single cell", step)
		}
	}
	return moves
}

func TestWalkSolutionSolves(t *testing.T) {
	m := newTestModel(t, 21)
	moves := solutionMoves(t, m.Floor())

	var cmd tea.Cmd
	for i, d := range moves {
		if m.Solved() {
			t.Fatalf("solved early at step %d", i)
		}
		m, cmd = m.Update(keyFor(d))
	}
	if !m.Solved() {
		t.Fatalf("not solved after walking the solution; at %v, exit %v", m.Walker().Pos(), m.Floor().End())
	}
	if cmd == nil {
		t.Fatal("the last step should report the solve")
	}
	msg, ok := cmd().(SolvedMsg)
	if !ok {
		t.Fatalf("got %T; want SolvedMsg", cmd())
	}
	if msg.Seed != 21 || msg.Steps != len(moves) {
		t.Errorf("SolvedMsg = %+v; want seed 21 and %d steps", msg, len(moves))
	}
	if !strings.Contains(m.View(), "SOLVED") {
		t.Error("View() should announce the solve")
	}

	// Further moves are ignored until undo.
	before := m.Walker().Pos()
	m, _ = m.Update(keyFor(moves[len(moves)-1]))
	if m.Walker().Pos() != before {
		t.Error("walker moved after solving")
	}
	m, _ = m.Update(runeKey('u'))
	if m.Solved() {
		t.Error("undo should leave the solved state")
	}
}

func TestBumpIntoWall(t *testing.T) {
	m := newTestModel(t, 4)
	start := m.Walker().Pos()
	exits := m.Floor().ExitsAt(start)
	for _, d := range types.Cardinals {
		if exits.Contains(d) {
			continue
		}
		m, _ = m.Update(keyFor(d))
		if m.Walker().Pos() != start {
			t.Fatalf("walked through a wall towards %v", d)
		}
		if m.Walker().Heading() != d {
			t.Errorf("Heading() = %v; want %v", m.Walker().Heading(), d)
		}
		if m.bumps != 1 {
			t.Errorf("bumps = %d; want 1", m.bumps)
		}
		return
	}
	t.Skip("start cell is open on every side")
}

func TestUndoAndRestart(t *testing.T) {
	m := newTestModel(t, 8)
	start := m.Walker().Pos()
	moves := solutionMoves(t, m.Floor())
	if len(moves) < 3 {
		t.Skip("solution too short")
	}
	for _, d := range moves[:3] {
		m, _ = m.Update(keyFor(d))
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if m.Walker().Steps() != 2 {
		t.Errorf("Steps() after undo = %d; want 2", m.Walker().Steps())
	}
	m, _ = m.Update(runeKey('r'))
	if m.Walker().Pos() != start || m.Walker().Steps() != 0 {
		t.Errorf("restart left the walker at %v after %d steps", m.Walker().Pos(), m.Walker().Steps())
	}
}

func TestTransposedKeys(t *testing.T) {
	m := newTestModel(t, 13)
	m, _ = m.Update(runeKey('t'))
	d := solutionMoves(t, m.Floor())[0]
	want := m.Walker().Pos().Add(floor.Offset(d))

	// On a transposed screen the maze step d is drawn along the mirrored direction.
	m, _ = m.Update(keyFor(floor.TransposeDir(d)))
	if m.Walker().Pos() != want {
		t.Errorf("transposed step went to %v; want %v", m.Walker().Pos(), want)
	}
	if !strings.Contains(m.View(), "[transposed]") {
		t.Error("View() should mark the transposed view")
	}
}

func TestTransposedViewSwapsSize(t *testing.T) {
	m := newTestModel(t, 2)
	lines := func(view string) int { return strings.Count(view, "\n") }
	normal := lines(m.View())
	m, _ = m.Update(runeKey('t'))
	transposed := lines(m.View())
	size := m.Floor().Size()
	if transposed-normal != size.X-size.Y {
		t.Errorf("transposed view has %d lines, normal %d; want a difference of %d", transposed, normal, size.X-size.Y)
	}
}

func TestCommands(t *testing.T) {
	m := newTestModel(t, 30)

	m, cmd := m.Update(runeKey('x'))
	if msg, ok := cmd().(ExitsToggledMsg); !ok || !msg.On || !m.ExitsView() {
		t.Errorf("x produced %#v; want ExitsToggledMsg{On: true}", cmd())
	}
	_, cmd = m.Update(runeKey('n'))
	if msg, ok := cmd().(NextFloorMsg); !ok || msg.Seed != 31 {
		t.Errorf("n produced %#v; want NextFloorMsg{Seed: 31}", cmd())
	}
	_, cmd = m.Update(runeKey('?'))
	if _, ok := cmd().(HelpMsg); !ok {
		t.Errorf("? produced %#v; want HelpMsg", cmd())
	}
}

func TestViewHeader(t *testing.T) {
	m := newTestModel(t, 5)
	m.SetBest(40)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	view := m.View()
	for _, want := range []string{"Seed: 5", "Size: 21x15", "Best: 40", "Steps: 0", m.Walker().Pos().String()} {
		if !strings.Contains(view, want) {
			t.Errorf("View() is missing %q", want)
		}
	}
}
