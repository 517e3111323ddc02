package floor

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/maze"
	"github.com/vinser/sbokena/internal/style"
	"github.com/vinser/sbokena/internal/types"
)

// ItemType represents a type of cell in the maze.
type ItemType int

const (
	Wall ItemType = iota
	Empty
	Start
	End
)

var ErrOutOfBounds = errors.New("out of bounds")

const (
	// Default maze size
	Width  = 21
	Height = 15
	// Smallest maze that still leaves room around the den
	MinWidth  = 11
	MinHeight = 9
	// Den reserved in the middle of every maze
	DenWidth  = 5
	DenHeight = 3
	// Maze generation Bias defines maze complexity
	Bias = 0.2
)

type Floor struct {
	Seed     int64
	Maze     *maze.Maze
	Items    [][]ItemType
	exits    [][]types.Directions
	solution []types.Position[int]
	onPath   map[types.Position[int]]bool
}

// ValidateSize checks that a maze of width x height can be generated.
func ValidateSize(width, height int) error {
	if width < MinWidth || height < MinHeight {
		return fmt.Errorf("maze size %dx%d is below the minimum %dx%d", width, height, MinWidth, MinHeight)
	}
	if width%2 == 0 || height%2 == 0 {
		return fmt.Errorf("maze size %dx%d must be odd in both dimensions", width, height)
	}
	return nil
}

// New generates the floor for seed. The same seed and size always give the same maze.
func New(seed int64, width, height int) (*Floor, error) {
	if err := ValidateSize(width, height); err != nil {
		return nil, err
	}
	m, err := maze.New(width, height, DenWidth, DenHeight)
	if err != nil {
		return nil, fmt.Errorf("new maze: %w", err)
	}
	m.Generate(seed, nil, nil, nil, "top", Bias)

	path, ok := m.Solve()
	if !ok {
		return nil, fmt.Errorf("no solution for width=%d, height=%d, seed=%d", width, height, seed)
	}

	f := &Floor{
		Seed:  seed,
		Maze:  m,
		Items: newItems(m),
	}
	f.exits = scanExits(f)
	f.solution, f.onPath = tracePath(path)
	return f, nil
}

// Size returns the maze dimensions as a position one past the bottom-right cell.
func (f *Floor) Size() types.Position[int] {
	return types.Position[int]{X: f.Maze.Width(), Y: f.Maze.Height()}
}

// Start returns the entry cell.
func (f *Floor) Start() types.Position[int] {
	return fromPoint(f.Maze.Start())
}

// End returns the exit cell.
func (f *Floor) End() types.Position[int] {
	return fromPoint(f.Maze.End())
}

// InBounds reports whether p lies on the floor.
func (f *Floor) InBounds(p types.Position[int]) bool {
	return p.X >= 0 && p.X < f.Maze.Width() && p.Y >= 0 && p.Y < f.Maze.Height()
}

// ItemAt returns the tile at p.
func (f *Floor) ItemAt(p types.Position[int]) (ItemType, error) {
	if !f.InBounds(p) {
		return Empty, ErrOutOfBounds
	}
	return f.Items[p.Y][p.X], nil
}

// ExitsAt returns the open sides of the cell at p. Walls and cells outside
// the floor have none.
func (f *Floor) ExitsAt(p types.Position[int]) types.Directions {
	if !f.InBounds(p) {
		return types.Directions{}
	}
	return f.exits[p.Y][p.X]
}

// CanMove reports whether a step from p towards d stays inside the maze corridors.
func (f *Floor) CanMove(p types.Position[int], d types.Direction) bool {
	return f.ExitsAt(p).Contains(d)
}

// Kind classifies the cell at p by its exits.
func (f *Floor) Kind(p types.Position[int]) CellKind {
	return Classify(f.ExitsAt(p))
}

// Solution returns the shortest path from start to end, both included.
func (f *Floor) Solution() []types.Position[int] {
	return f.solution
}

// OnSolution reports whether p is on the shortest path.
func (f *Floor) OnSolution(p types.Position[int]) bool {
	return f.onPath[p]
}

// RenderAt renders the cell at p as a two-column sprite. With exitsView the
// passable cells show their exits as box drawing; mirrored flips the exits
// across the main diagonal for a transposed view.
func (f *Floor) RenderAt(p types.Position[int], exitsView, hint, mirrored bool) string {
	item, err := f.ItemAt(p)
	if err != nil {
		return "  "
	}
	switch item {
	case Wall:
		return style.Wall.Render("▒▒")
	case Start:
		return style.Start.Render("◥◤")
	case End:
		return style.End.Render("◢◣")
	}
	if exitsView {
		exits := f.ExitsAt(p)
		if mirrored {
			exits = Transpose(exits)
		}
		return cellStyle(f.Kind(p)).Render(Glyph(exits))
	}
	if hint && f.OnSolution(p) {
		return style.Hint.Render("╺╸")
	}
	return "  "
}

func cellStyle(k CellKind) lipgloss.Style {
	switch k {
	case DeadEnd:
		return style.DeadEnd
	case Junction:
		return style.Junction
	default:
		return style.Corridor
	}
}

func fromPoint(p maze.Point) types.Position[int] {
	return types.Position[int]{X: p.X, Y: p.Y}
}
