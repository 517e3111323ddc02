package types

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Position is a cell coordinate on a 2D grid.
//
// Arithmetic wraps on overflow like any Go integer arithmetic; nothing here
// checks bounds.
type Position[T constraints.Integer] struct {
	X, Y T
}

// Transposed returns p with X and Y swapped.
func (p Position[T]) Transposed() Position[T] {
	return Position[T]{X: p.Y, Y: p.X}
}

// Add returns the component-wise sum of p and q.
func (p Position[T]) Add(q Position[T]) Position[T] {
	return Position[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference p - q.
func (p Position[T]) Sub(q Position[T]) Position[T] {
	return Position[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

// Translate adds q to p in place and returns p.
func (p *Position[T]) Translate(q Position[T]) *Position[T] {
	p.X += q.X
	p.Y += q.Y
	return p
}

// TranslateBack subtracts q from p in place and returns p.
func (p *Position[T]) TranslateBack(q Position[T]) *Position[T] {
	p.X -= q.X
	p.Y -= q.Y
	return p
}

func (p Position[T]) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Neg returns p with both components negated. Only signed positions can be
// negated; the minimum value of T negates to itself.
func Neg[T constraints.Signed](p Position[T]) Position[T] {
	return Position[T]{X: -p.X, Y: -p.Y}
}
