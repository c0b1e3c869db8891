package fixed

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Point is a 2D coordinate or vector.
type Point[T constraints.Integer] struct {
	X, Y T
}

func (p Point[T]) Add(q Point[T]) Point[T] { return Point[T]{p.X + q.X, p.Y + q.Y} }
func (p Point[T]) Sub(q Point[T]) Point[T] { return Point[T]{p.X - q.X, p.Y - q.Y} }
func (p Point[T]) Neg() Point[T]           { return Point[T]{-p.X, -p.Y} }

func (p Point[T]) String() string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}
