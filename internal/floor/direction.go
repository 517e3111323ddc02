package floor

import "github.com/vinser/sbokena/internal/types"

// Offset returns the one-cell step for d. Rows grow downwards, so Up
// decreases Y.
func Offset(d types.Direction) types.Position[int] {
	switch d {
	case types.Up:
		return types.Position[int]{X: 0, Y: -1}
	case types.Down:
		return types.Position[int]{X: 0, Y: 1}
	case types.Left:
		return types.Position[int]{X: -1, Y: 0}
	case types.Right:
		return types.Position[int]{X: 1, Y: 0}
	}
	return types.Position[int]{}
}

// Opposite returns the direction that undoes a step towards d.
func Opposite(d types.Direction) types.Direction {
	back := types.Neg(Offset(d))
	for _, o := range types.Cardinals {
		if Offset(o) == back {
			return o
		}
	}
	return d
}

// TransposeDir mirrors d across the main diagonal, matching Position.Transposed.
func TransposeDir(d types.Direction) types.Direction {
	switch d {
	case types.Up:
		return types.Left
	case types.Left:
		return types.Up
	case types.Down:
		return types.Right
	case types.Right:
		return types.Down
	}
	return d
}

// Transpose mirrors every direction of s across the main diagonal.
func Transpose(s types.Directions) types.Directions {
	var t types.Directions
	for d := range s.All() {
		t.Add(TransposeDir(d))
	}
	return t
}

// CellKind describes a passable cell by the shape of its exits.
type CellKind int

const (
	Closed CellKind = iota
	DeadEnd
	Corridor
	Corner
	Junction
)

func (k CellKind) String() string {
	switch k {
	case DeadEnd:
		return "dead end"
	case Corridor:
		return "corridor"
	case Corner:
		return "corner"
	case Junction:
		return "junction"
	}
	return "closed"
}

var (
	vertical   = types.Up.Or(types.Down)
	horizontal = types.Left.Or(types.Right)
)

// Classify returns the kind of a cell with the given exits.
func Classify(exits types.Directions) CellKind {
	switch n := exits.Len(); {
	case n == 0:
		return Closed
	case n == 1:
		return DeadEnd
	case n >= 3:
		return Junction
	case exits.ContainsAll(vertical) || exits.ContainsAll(horizontal):
		return Corridor
	case exits.ContainsAny(vertical) && exits.ContainsAny(horizontal):
		return Corner
	}
	return Closed
}

// boxRunes is indexed by the raw exit flags.
var boxRunes = [16]rune{
	' ', '╵', '╷', '│',
	'╴', '┘', '┐', '┤',
	'╶', '└', '┌', '├',
	'─', '┴', '┬', '┼',
}

// Glyph draws exits as a two-column box-drawing sprite. The second column
// continues the line to the right when the cell opens that way.
func Glyph(exits types.Directions) string {
	tail := ' '
	if exits.Contains(types.Right) {
		tail = '─'
	}
	return string([]rune{boxRunes[exits.Flags()], tail})
}
