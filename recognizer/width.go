package recognizer

import "math"

// Rotating-calipers computation of the minimum-width enclosing strip of a
// hull. Every hull edge is a candidate strip axis: the strip width for an
// edge is the largest perpendicular distance from the edge's supporting
// line to any other hull vertex. The minimum over all edges is the width of
// the point set.
//
// Nothing here is normalized. For an edge direction d, the axis is the
// normal N = (-dy, dx), the extent along N is eps = max(N·P) - min(N·P)
// over hull vertices, and the Euclidean width is eps/‖N‖. Widths are
// compared by cross-multiplied squares so every decision stays in the exact
// domain.

// stripFit describes an enclosing strip: mu ≤ N·P ≤ mu+eps for every
// accepted point P, with N·N = normSq kept for exact width comparisons.
type stripFit struct {
	nx, ny Scalar
	mu     Scalar
	eps    Scalar
	normSq Scalar
}

// widthFloat is the Euclidean width of the strip, for display only.
func (f stripFit) widthFloat(ar Arith) float64 {
	n := ar.Float(f.normSq)
	if n == 0 {
		return 0
	}
	e := ar.Float(f.eps)
	return e / math.Sqrt(n)
}

// edgeNormal gives the inward normal of the directed edge a→b in the exact
// domain.
func edgeNormal(a, b Point, ar Arith) (nx, ny Scalar) {
	nx = ar.Sub(ar.FromInt(a.Y), ar.FromInt(b.Y))
	ny = ar.Sub(ar.FromInt(b.X), ar.FromInt(a.X))
	return nx, ny
}

// axisFit computes the strip along a fixed axis N = (nx, ny): the min and
// extent of N·P over the given hull vertices.
func axisFit(nx, ny Scalar, verts []int, at func(int) Point, ar Arith) stripFit {
	dot := func(p Point) Scalar {
		return ar.Add(ar.Mul(nx, ar.FromInt(p.X)), ar.Mul(ny, ar.FromInt(p.Y)))
	}
	min := dot(at(verts[0]))
	max := min
	for _, v := range verts[1:] {
		d := dot(at(v))
		if ar.Cmp(d, min) < 0 {
			min = d
		} else if ar.Cmp(d, max) > 0 {
			max = d
		}
	}
	return stripFit{
		nx:     nx,
		ny:     ny,
		mu:     min,
		eps:    ar.Sub(max, min),
		normSq: ar.Add(ar.Mul(nx, nx), ar.Mul(ny, ny)),
	}
}

// minimalStrip computes the minimum-width enclosing strip of the hull.
// Fewer than three distinct points always have width zero: a single point
// gets an arbitrary horizontal axis, two points the normal of their common
// line.
func minimalStrip(h *Hull, at func(int) Point, ar Arith) stripFit {
	vs := h.Vertices()
	zero := ar.FromInt(0)
	switch len(vs) {
	case 0:
		one := ar.FromInt(1)
		return stripFit{nx: zero, ny: one, mu: zero, eps: zero, normSq: one}
	case 1:
		p := at(vs[0])
		return stripFit{
			nx:     zero,
			ny:     ar.FromInt(1),
			mu:     ar.FromInt(p.Y),
			eps:    zero,
			normSq: ar.FromInt(1),
		}
	case 2:
		a, b := at(vs[0]), at(vs[1])
		nx, ny := edgeNormal(a, b, ar)
		f := axisFit(nx, ny, vs, at, ar)
		// Both points lie on the axis line, so the extent is exactly zero.
		f.eps = zero
		return f
	}

	var best stripFit
	for j := range vs {
		a := at(vs[j])
		b := at(vs[(j+1)%len(vs)])
		nx, ny := edgeNormal(a, b, ar)
		f := axisFit(nx, ny, vs, at, ar)
		if j == 0 || lessFit(f, best, ar) {
			best = f
		}
	}
	return best
}

// lessFit reports whether strip a is strictly narrower than strip b, by
// exact comparison of eps_a²·normSq_b against eps_b²·normSq_a.
func lessFit(a, b stripFit, ar Arith) bool {
	lhs := ar.Mul(ar.Mul(a.eps, a.eps), b.normSq)
	rhs := ar.Mul(ar.Mul(b.eps, b.eps), a.normSq)
	return ar.Cmp(lhs, rhs) < 0
}

// fitWithinBudget is the strict acceptance test against the thickness
// budget num/den: eps/‖N‖ < num/den, evaluated exactly as
// eps²·den² < num²·‖N‖². Equality at the threshold rejects.
func fitWithinBudget(f stripFit, num, den int64, ar Arith) bool {
	d := ar.FromInt(den)
	n := ar.FromInt(num)
	lhs := ar.Mul(ar.Mul(f.eps, f.eps), ar.Mul(d, d))
	rhs := ar.Mul(ar.Mul(n, n), f.normSq)
	return ar.Cmp(lhs, rhs) < 0
}
