package dweller

import (
	"strings"
	"testing"

	"github.com/vinser/sbokena/internal/types"
)

func TestAdvanceAndRetreat(t *testing.T) {
	home := types.Position[int]{X: 1, Y: 1}
	w := NewWalker(home)

	moves := []types.Direction{types.Right, types.Right, types.Down, types.Left}
	for _, d := range moves {
		next := w.NextPos(d)
		w.Advance(d)
		if w.Pos() != next {
			t.Fatalf("after %v position = %v; want %v", d, w.Pos(), next)
		}
	}
	if want := (types.Position[int]{X: 2, Y: 2}); w.Pos() != want {
		t.Fatalf("position = %v; want %v", w.Pos(), want)
	}
	if w.Steps() != len(moves) {
		t.Fatalf("Steps() = %d; want %d", w.Steps(), len(moves))
	}
	if w.Heading() != types.Left {
		t.Fatalf("Heading() = %v; want left", w.Heading())
	}

	for i := len(moves) - 1; i >= 0; i-- {
		d, ok := w.Retreat()
		if !ok || d != moves[i] {
			t.Fatalf("Retreat() = %v, %v; want %v, true", d, ok, moves[i])
		}
	}
	if w.Pos() != home {
		t.Fatalf("after undoing everything position = %v; want %v", w.Pos(), home)
	}
	if _, ok := w.Retreat(); ok {
		t.Fatal("Retreat() on an empty trail should report false")
	}
}

func TestReset(t *testing.T) {
	home := types.Position[int]{X: 3, Y: 0}
	w := NewWalker(home)
	w.Advance(types.Down)
	w.Advance(types.Down)
	w.Reset()
	if w.Pos() != home || w.Steps() != 0 || w.Heading() != types.Down {
		t.Fatalf("after Reset: pos=%v steps=%d heading=%v", w.Pos(), w.Steps(), w.Heading())
	}
}

func TestVisited(t *testing.T) {
	w := NewWalker(types.Position[int]{})
	w.Advance(types.Right)
	w.Advance(types.Left)
	w.Advance(types.Down)

	visited := w.Visited()
	if got := visited[types.Position[int]{}]; got != types.Right.Or(types.Down) {
		t.Errorf("visited at origin = %v; want {down|right}", got)
	}
	if got := visited[types.Position[int]{X: 1}]; got != types.Of(types.Left) {
		t.Errorf("visited at (1, 0) = %v; want {left}", got)
	}
	if got := visited[types.Position[int]{Y: 1}]; got != types.Of(types.Up) {
		t.Errorf("visited at (0, 1) = %v; want {up}", got)
	}
	if _, ok := visited[types.Position[int]{X: 1, Y: 1}]; ok {
		t.Error("(1, 1) was never visited")
	}
}

func TestDirectionForKey(t *testing.T) {
	tests := []struct {
		key    string
		want   types.Direction
		wantOK bool
	}{
		{"up", types.Up, true},
		{"k", types.Up, true},
		{"S", types.Down, true},
		{"h", types.Left, true},
		{"right", types.Right, true},
		{"q", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := DirectionForKey(tt.key)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("DirectionForKey(%q) = %v, %v; want %v, %v", tt.key, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestRenderMirrorsHeading(t *testing.T) {
	w := NewWalker(types.Position[int]{})
	w.Turn(types.Up)
	if !strings.Contains(w.Render(false), "▲") {
		t.Errorf("Render(false) = %q; want an up arrow", w.Render(false))
	}
	if !strings.Contains(w.Render(true), "◀") {
		t.Errorf("Render(true) = %q; want a left arrow", w.Render(true))
	}
}
