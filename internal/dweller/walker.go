package dweller

import (
	"github.com/vinser/sbokena/internal/floor"
	"github.com/vinser/sbokena/internal/style"
	"github.com/vinser/sbokena/internal/types"
)

// Walker represents the player token.
type Walker struct {
	home     types.Position[int]
	position types.Position[int]
	heading  types.Direction
	trail    []types.Direction
}

// NewWalker returns a walker standing at home and facing down.
func NewWalker(home types.Position[int]) *Walker {
	return &Walker{
		home:     home,
		position: home,
		heading:  types.Down,
	}
}

// Home returns the walker's starting position.
func (w *Walker) Home() types.Position[int] {
	return w.home
}

// Pos returns the walker's current position.
func (w *Walker) Pos() types.Position[int] {
	return w.position
}

// Heading returns the direction of the last move or turn.
func (w *Walker) Heading() types.Direction {
	return w.heading
}

// Steps returns how many moves have been made since the last reset.
func (w *Walker) Steps() int {
	return len(w.trail)
}

// NextPos returns the position one step towards d.
func (w *Walker) NextPos(d types.Direction) types.Position[int] {
	return w.position.Add(floor.Offset(d))
}

// Turn faces d without moving.
func (w *Walker) Turn(d types.Direction) {
	w.heading = d
}

// Advance moves one step towards d.
func (w *Walker) Advance(d types.Direction) {
	w.position.Translate(floor.Offset(d))
	w.heading = d
	w.trail = append(w.trail, d)
}

// Retreat undoes the last step and returns its direction.
func (w *Walker) Retreat() (types.Direction, bool) {
	if len(w.trail) == 0 {
		return 0, false
	}
	d := w.trail[len(w.trail)-1]
	w.trail = w.trail[:len(w.trail)-1]
	w.position.Translate(types.Neg(floor.Offset(d)))
	w.heading = d
	return d, true
}

// Reset puts the walker back home and forgets the trail.
func (w *Walker) Reset() {
	w.position = w.home
	w.heading = types.Down
	w.trail = w.trail[:0]
}

// Visited returns, for every cell on the trail, the sides the walker has
// crossed in either direction.
func (w *Walker) Visited() map[types.Position[int]]types.Directions {
	visited := make(map[types.Position[int]]types.Directions, len(w.trail)+1)
	pos := w.home
	for _, d := range w.trail {
		out := visited[pos]
		visited[pos] = *out.Add(d)
		pos.Translate(floor.Offset(d))
		in := visited[pos]
		visited[pos] = *in.Add(floor.Opposite(d))
	}
	return visited
}

// DirectionForKey maps a key name to a direction.
func DirectionForKey(key string) (types.Direction, bool) {
	switch key {
	case "up", "k", "w", "W":
		return types.Up, true
	case "down", "j", "s", "S":
		return types.Down, true
	case "left", "h", "a", "A":
		return types.Left, true
	case "right", "l", "d", "D":
		return types.Right, true
	}
	return 0, false
}

// Render returns the walker sprite. In a transposed view the heading is
// mirrored like the maze around it.
func (w *Walker) Render(transposed bool) string {
	heading := w.heading
	if transposed {
		heading = floor.TransposeDir(heading)
	}
	return style.Walker.Render(sprite(heading))
}

func sprite(d types.Direction) string {
	switch d {
	case types.Up:
		return "▲▲"
	case types.Down:
		return "▼▼"
	case types.Left:
		return "◀◀"
	case types.Right:
		return "▶▶"
	}
	return "██"
}
