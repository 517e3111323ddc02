// Package types holds the spatial primitives shared by the board, the walker
// and the renderer: cardinal directions, sets of them, and grid positions.
package types

import "fmt"

// Direction is a 2D cardinal direction. Each value occupies its own bit so
// directions can be combined into a Directions set.
type Direction uint8

const (
	Up Direction = 1 << iota
	Down
	Left
	Right
)

// Cardinals lists every direction in declaration order.
var Cardinals = [...]Direction{Up, Down, Left, Right}

// Or returns the set holding both d and o.
func (d Direction) Or(o Direction) Directions {
	return Of(d).With(o)
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Direction(%#x)", uint8(d))
}
