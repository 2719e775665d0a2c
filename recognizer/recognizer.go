package recognizer

import "fmt"

// Recognizer incrementally recognizes a fuzzy (blurred) digital straight
// segment: a run of contour points enclosable in a strip strictly narrower
// than the thickness budget fixed at construction. Growth is caller-driven,
// one point per extend call, in either contour direction. The recognizer is
// single-threaded and exclusively owned by its caller; it is not meant to
// be copied.
type Recognizer struct {
	arith    Arith
	widthNum int64
	widthDen int64

	set  *PointSet
	hull *Hull
	fit  stripFit

	contour   *Contour
	nextFront int
	nextBack  int
	active    bool
}

type direction int

const (
	front direction = iota
	back
)

// NewRecognizer creates a recognizer over the given exact numeric domain
// with thickness budget widthNum/widthDen. There is no default budget: a
// zero-width strip would degenerate to exact collinearity testing, so the
// caller must always choose. Non-positive budgets and a nil domain are
// contract violations.
func NewRecognizer(ar Arith, widthNum, widthDen int64) *Recognizer {
	return NewRecognizerWithCapacity(ar, widthNum, widthDen, DefaultMaxSize)
}

// NewRecognizerWithCapacity is NewRecognizer with an explicit ceiling on
// the number of accepted points.
func NewRecognizerWithCapacity(ar Arith, widthNum, widthDen int64, maxSize int) *Recognizer {
	if ar == nil {
		fatalf("recognizer needs a numeric domain")
	}
	if widthNum <= 0 || widthDen <= 0 {
		fatalf("thickness budget must be positive, got %d/%d", widthNum, widthDen)
	}
	if maxSize <= 0 {
		fatalf("capacity must be positive, got %d", maxSize)
	}
	return &Recognizer{
		arith:    ar,
		widthNum: widthNum,
		widthDen: widthDen,
		set:      NewPointSet(maxSize),
		hull:     NewHull(),
	}
}

// Size is the number of distinct points in the current fuzzy segment.
func (r *Recognizer) Size() int {
	return r.set.Size()
}

// Empty reports whether the recognizer contains no point.
func (r *Recognizer) Empty() bool {
	return r.set.Empty()
}

// MaxSize is the maximal allowed number of points in the fuzzy segment.
func (r *Recognizer) MaxSize() int {
	return r.set.MaxSize()
}

// Points returns the accepted points in their total order.
func (r *Recognizer) Points() []Point {
	return r.set.Points()
}

// Init seeds the recognizer with the contour point at the given position.
// Calling Init on an active recognizer is a contract violation.
func (r *Recognizer) Init(c *Contour, start int) {
	if r.active {
		fatalf("init called on an active recognizer")
	}
	if c == nil {
		fatalf("init needs a contour")
	}
	if start < 0 || start >= c.Len() {
		fatalf("init position %d outside contour of %d points", start, c.Len())
	}
	idx, _ := r.set.Insert(c.At(start))
	r.hull.Seed(idx)
	r.fit = minimalStrip(r.hull, r.set.At, r.arith)
	r.contour = c
	r.nextFront = start + 1
	r.nextBack = start - 1
	r.active = true
}

// IsExtendableFront tests whether the segment can absorb the next contour
// point in the front direction. Pure query: all work happens on a scratch
// hull and no committed state changes, whatever the outcome.
func (r *Recognizer) IsExtendableFront() bool {
	r.requireActive()
	_, ok := r.tryExtend(front)
	return ok
}

// IsExtendableBack is IsExtendableFront for the back direction.
func (r *Recognizer) IsExtendableBack() bool {
	r.requireActive()
	_, ok := r.tryExtend(back)
	return ok
}

// ExtendFront runs the same test as IsExtendableFront and commits the point
// on success. Returns false, with no state change, when the strip would
// reach the thickness budget, the contour is exhausted forward, or the
// segment is at capacity.
func (r *Recognizer) ExtendFront() bool {
	r.requireActive()
	return r.extend(front)
}

// ExtendBack is ExtendFront for the back direction.
func (r *Recognizer) ExtendBack() bool {
	r.requireActive()
	return r.extend(back)
}

// Primitive returns the current bounding strip. Its width is strictly less
// than the thickness budget and every accepted point satisfies its
// inequality. Calling Primitive on an uninitialized recognizer is a
// contract violation.
func (r *Recognizer) Primitive() *ParallelStrip {
	if !r.active {
		fatalf("primitive requested from an uninitialized recognizer")
	}
	return newParallelStrip(r.fit, r.arith)
}

// IsValid recomputes the width of the committed hull independently and
// checks every internal invariant: the hull is strictly convex and contains
// all accepted points, the recomputed strip stays strictly below the
// budget, and every accepted point satisfies the strip inequality. A false
// result means a defect (numeric overflow, corrupted hull), not a normal
// outcome.
func (r *Recognizer) IsValid() bool {
	if !r.active {
		return false
	}
	if !r.hull.isConvex(r.set.At, r.arith) {
		return false
	}
	fit := minimalStrip(r.hull, r.set.At, r.arith)
	if !fitWithinBudget(fit, r.widthNum, r.widthDen, r.arith) {
		return false
	}
	strip := newParallelStrip(fit, r.arith)
	for _, p := range r.set.Points() {
		if !strip.Contains(p) {
			return false
		}
		if !r.hull.Contains(p, r.set.At, r.arith) {
			return false
		}
	}
	return true
}

// String is a human-readable dump for diagnostics, not a stable format.
func (r *Recognizer) String() string {
	if !r.active {
		return fmt.Sprintf("FuzzySegment %s { uninitialized }", r.DbgName())
	}
	return fmt.Sprintf("FuzzySegment %s { size: %d, budget: %d/%d, strip: %s }",
		r.DbgName(), r.Size(), r.widthNum, r.widthDen, r.Primitive())
}

func (r *Recognizer) requireActive() {
	if !r.active {
		fatalf("recognizer not initialized")
	}
}

// trial is the outcome of testing one candidate point on scratch state.
type trial struct {
	point     Point
	duplicate bool
	hull      *Hull
	fit       stripFit
}

func (r *Recognizer) peek(d direction) (Point, bool) {
	switch d {
	case front:
		if r.nextFront >= r.contour.Len() {
			return Point{}, false
		}
		return r.contour.At(r.nextFront), true
	default:
		if r.nextBack < 0 {
			return Point{}, false
		}
		return r.contour.At(r.nextBack), true
	}
}

// tryExtend builds the candidate state for absorbing the next point in the
// given direction, entirely on scratch copies. Committed state is never
// touched; the caller either adopts the scratch hull or drops it.
func (r *Recognizer) tryExtend(d direction) (trial, bool) {
	p, ok := r.peek(d)
	if !ok {
		return trial{}, false
	}
	if r.set.Has(p) {
		// A revisited point changes nothing: the current strip already
		// covers it, so the extension trivially succeeds.
		return trial{point: p, duplicate: true}, true
	}
	if r.set.Full() {
		return trial{}, false
	}

	scratch := r.hull.Clone()
	idx := r.set.Size()
	at := func(i int) Point {
		if i == idx {
			return p
		}
		return r.set.At(i)
	}
	if d == front {
		scratch.AddFront(idx, at, r.arith)
	} else {
		scratch.AddBack(idx, at, r.arith)
	}
	fit := minimalStrip(scratch, at, r.arith)
	if !fitWithinBudget(fit, r.widthNum, r.widthDen, r.arith) {
		return trial{}, false
	}
	return trial{point: p, hull: scratch, fit: fit}, true
}

func (r *Recognizer) extend(d direction) bool {
	t, ok := r.tryExtend(d)
	if !ok {
		return false
	}
	if !t.duplicate {
		r.set.Insert(t.point)
		r.hull = t.hull
		r.fit = t.fit
	}
	if d == front {
		r.nextFront++
	} else {
		r.nextBack--
	}
	return true
}
