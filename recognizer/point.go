package recognizer

import "fmt"

// Point is a 2D digital point with integer coordinates. Points are value
// types: equality is ==, and Less gives the lexicographic total order used
// for set iteration.
type Point struct {
	X, Y int64
}

func Pt(x, y int64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// orient gives the sign of the turn a→b→c: positive for counterclockwise,
// negative for clockwise, zero for collinear. The cross product is computed
// in the exact domain so no coordinate difference can overflow silently.
func orient(ar Arith, a, b, c Point) int {
	abx := ar.Sub(ar.FromInt(b.X), ar.FromInt(a.X))
	aby := ar.Sub(ar.FromInt(b.Y), ar.FromInt(a.Y))
	acx := ar.Sub(ar.FromInt(c.X), ar.FromInt(a.X))
	acy := ar.Sub(ar.FromInt(c.Y), ar.FromInt(a.Y))
	cross := ar.Sub(ar.Mul(abx, acy), ar.Mul(aby, acx))
	return sign(ar, cross)
}

// A Contour is an ordered sequence of 2D points sampled along a digital
// curve. The recognizer only needs single-step traversal in either
// direction; running off either end is a normal terminal condition for
// extension, not an error.
type Contour struct {
	points []Point
}

func NewContour(points []Point) *Contour {
	return &Contour{points: points}
}

func (c *Contour) Len() int {
	return len(c.points)
}

func (c *Contour) At(i int) Point {
	return c.points[i]
}
