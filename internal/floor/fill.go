package floor

import (
	"github.com/vinser/maze"
	"github.com/vinser/sbokena/internal/types"
)

// newItems creates a new items grid and fills it with walls from the maze.
func newItems(m *maze.Maze) [][]ItemType {
	items := make([][]ItemType, m.Height())
	for y := 0; y < m.Height(); y++ {
		items[y] = make([]ItemType, m.Width())
		for x := 0; x < m.Width(); x++ {
			cell, ok := m.Cell(x, y)
			if !ok {
				continue
			}
			switch cell {
			case maze.Wall:
				items[y][x] = Wall
			case maze.Path:
				items[y][x] = Empty
			case maze.Start:
				items[y][x] = Start
			case maze.End:
				items[y][x] = End
			default:
				items[y][x] = Wall
			}
		}
	}
	return items
}

// scanExits collects, for every passable cell, the sides that lead to another
// passable cell.
func scanExits(f *Floor) [][]types.Directions {
	exits := make([][]types.Directions, len(f.Items))
	for y := range f.Items {
		exits[y] = make([]types.Directions, len(f.Items[y]))
		for x := range f.Items[y] {
			p := types.Position[int]{X: x, Y: y}
			if !f.passable(p) {
				continue
			}
			for _, d := range types.Cardinals {
				if f.passable(p.Add(Offset(d))) {
					exits[y][x].Add(d)
				}
			}
		}
	}
	return exits
}

func (f *Floor) passable(p types.Position[int]) bool {
	item, err := f.ItemAt(p)
	return err == nil && item != Wall
}

// tracePath converts the maze solution and indexes it for lookups while rendering.
func tracePath(path []maze.Point) ([]types.Position[int], map[types.Position[int]]bool) {
	solution := make([]types.Position[int], 0, len(path))
	onPath := make(map[types.Position[int]]bool, len(path))
	for _, p := range path {
		pos := fromPoint(p)
		solution = append(solution, pos)
		onPath[pos] = true
	}
	return solution, onPath
}
