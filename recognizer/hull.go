package recognizer

// Melkman-style maintenance of the convex hull of an incrementally growing
// point set. The hull is a double-ended sequence of arena indices into the
// point accumulator, ordered counterclockwise, with the first and last
// entries identical to close the polygon. Points reach the hull through an
// accessor function so that a trial point can live one index past the
// committed arena without being inserted first.
//
// The classical algorithm assumes vertices arrive along a single simple
// chain, with the deque seam sitting at the last vertex added. Here the
// chain grows at both ends, so the seam may be anywhere relative to the new
// point. Both insertion procedures therefore first locate the hull arc
// visible from the new point (rotating the seam into it) and then perform
// the usual double-ended onion peel from the two exposed ends. Total
// eviction work stays O(n) over a whole run; a single call is O(h) for a
// hull of h vertices.

type Hull struct {
	// closed deque: verts[0] == verts[len-1] once there are two or more
	// distinct vertices
	verts []int
}

func NewHull() *Hull {
	return &Hull{}
}

// Clone makes the scratch copy used for trial extension. The copy shares
// nothing with the original, so it can be mutated and dropped, or adopted
// wholesale on commit.
func (h *Hull) Clone() *Hull {
	c := &Hull{verts: make([]int, len(h.verts))}
	copy(c.verts, h.verts)
	return c
}

// VertexCount is the number of distinct hull vertices.
func (h *Hull) VertexCount() int {
	if len(h.verts) <= 1 {
		return len(h.verts)
	}
	return len(h.verts) - 1
}

// Vertices returns the distinct hull vertex indices in counterclockwise
// order, without the closing duplicate.
func (h *Hull) Vertices() []int {
	n := h.VertexCount()
	vs := make([]int, n)
	copy(vs, h.verts[:n])
	return vs
}

// Seed starts the hull from a single point.
func (h *Hull) Seed(i int) {
	if len(h.verts) != 0 {
		fatalf("cannot seed a non-empty hull")
	}
	h.verts = []int{i}
}

// AddFront grows the hull with a point appended at the front end of the
// defining chain.
func (h *Hull) AddFront(i int, at func(int) Point, ar Arith) {
	h.insert(i, at, ar)
}

// AddBack grows the hull with a point appended at the back end of the
// defining chain. Hull maintenance is direction-agnostic once the visible
// arc has been located, so both ends share one peel.
func (h *Hull) AddBack(i int, at func(int) Point, ar Arith) {
	h.insert(i, at, ar)
}

func (h *Hull) insert(i int, at func(int) Point, ar Arith) {
	p := at(i)
	switch h.VertexCount() {
	case 0:
		h.verts = []int{i}
		return
	case 1:
		a := h.verts[0]
		if at(a) == p {
			return
		}
		h.verts = []int{a, i, a}
		return
	case 2:
		h.insertDegenerate(i, at, ar)
		return
	}

	n := h.VertexCount()

	// An edge is visible from p when p lies strictly to its right. For a
	// point inside or on the hull there is no visible edge; for a point
	// outside, the visible edges form a contiguous arc.
	visible := make([]bool, n)
	any := false
	for j := 0; j < n; j++ {
		if orient(ar, at(h.verts[j]), at(h.verts[j+1]), p) < 0 {
			visible[j] = true
			any = true
		}
	}
	if !any {
		return
	}

	// Find the start of the visible run. A point outside a convex polygon
	// cannot see every edge, so an invisible predecessor always exists.
	s := -1
	for j := 0; j < n; j++ {
		if visible[j] && !visible[(j+n-1)%n] {
			s = j
			break
		}
	}
	if s == -1 {
		fatalf("convex hull corrupted: every edge visible from %v", p)
	}
	e := s
	for visible[(e+1)%n] {
		e = (e + 1) % n
	}

	// Keep the invisible chain from the end of the visible run back around
	// to its start. The new point replaces everything in between.
	var keep []int
	for j := (e + 1) % n; ; j = (j + 1) % n {
		keep = append(keep, h.verts[j])
		if j == s {
			break
		}
	}

	// Onion peel at the two exposed ends: evict junction vertices that end
	// up collinear with the new point, keeping the polygon strictly convex.
	for len(keep) >= 2 && orient(ar, at(keep[len(keep)-2]), at(keep[len(keep)-1]), p) <= 0 {
		keep = keep[:len(keep)-1]
	}
	for len(keep) >= 2 && orient(ar, p, at(keep[0]), at(keep[1])) <= 0 {
		keep = keep[1:]
	}

	h.verts = append(append(keep, i), keep[0])
}

// insertDegenerate handles the two-vertex hull, which is a segment rather
// than a polygon: either the new point fattens it into a CCW triangle, or
// all three are collinear and only the two extremes survive.
func (h *Hull) insertDegenerate(i int, at func(int) Point, ar Arith) {
	a, b := h.verts[0], h.verts[1]
	p := at(i)
	switch o := orient(ar, at(a), at(b), p); {
	case o > 0:
		h.verts = []int{a, b, i, a}
	case o < 0:
		h.verts = []int{a, i, b, a}
	default:
		// Collinear points sort along their common line exactly as they
		// sort lexicographically.
		lo, hi := a, b
		if at(hi).Less(at(lo)) {
			lo, hi = hi, lo
		}
		if p.Less(at(lo)) {
			lo = i
		} else if at(hi).Less(p) {
			hi = i
		}
		h.verts = []int{lo, hi, lo}
	}
}

// Contains reports whether a point lies inside or on the hull.
func (h *Hull) Contains(p Point, at func(int) Point, ar Arith) bool {
	switch n := h.VertexCount(); n {
	case 0:
		return false
	case 1:
		return at(h.verts[0]) == p
	case 2:
		a, b := at(h.verts[0]), at(h.verts[1])
		if orient(ar, a, b, p) != 0 {
			return false
		}
		lo, hi := a, b
		if hi.Less(lo) {
			lo, hi = hi, lo
		}
		return !p.Less(lo) && !hi.Less(p)
	default:
		for j := 0; j < n; j++ {
			if orient(ar, at(h.verts[j]), at(h.verts[j+1]), p) < 0 {
				return false
			}
		}
		return true
	}
}

// isConvex checks the strict convexity invariant: every consecutive turn is
// counterclockwise, with no redundant collinear vertex. Degenerate hulls of
// fewer than three vertices are vacuously convex.
func (h *Hull) isConvex(at func(int) Point, ar Arith) bool {
	n := h.VertexCount()
	if n < 3 {
		return true
	}
	for j := 0; j < n; j++ {
		a := at(h.verts[j])
		b := at(h.verts[(j+1)%n])
		c := at(h.verts[(j+2)%n])
		if orient(ar, a, b, c) <= 0 {
			return false
		}
	}
	return true
}
