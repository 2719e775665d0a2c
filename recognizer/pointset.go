package recognizer

import "sort"

// DefaultMaxSize is the capacity ceiling of a point set when none is given.
const DefaultMaxSize = 1 << 20

// PointSet is the accumulator of points accepted into the fuzzy segment. It
// doubles as the arena the hull indexes into: points live in insertion
// order at stable indices, and a point inserted twice keeps its first index
// (set semantics, silent no-op). The set never shrinks.
type PointSet struct {
	arena    []Point
	index    map[Point]int
	capacity int
}

func NewPointSet(maxSize int) *PointSet {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &PointSet{index: make(map[Point]int), capacity: maxSize}
}

func (s *PointSet) Size() int {
	return len(s.arena)
}

func (s *PointSet) Empty() bool {
	return len(s.arena) == 0
}

// MaxSize is the maximal allowed number of points in the set.
func (s *PointSet) MaxSize() int {
	return s.capacity
}

func (s *PointSet) Full() bool {
	return len(s.arena) >= s.capacity
}

func (s *PointSet) Has(p Point) bool {
	_, ok := s.index[p]
	return ok
}

// At returns the point stored at an arena index.
func (s *PointSet) At(i int) Point {
	return s.arena[i]
}

// Insert adds a point and returns its arena index. A duplicate is a no-op
// returning the existing index and false. Inserting a new point into a full
// set is a contract violation; callers must check Full first.
func (s *PointSet) Insert(p Point) (int, bool) {
	if i, ok := s.index[p]; ok {
		return i, false
	}
	if s.Full() {
		fatalf("point set is full (maxSize %d)", s.capacity)
	}
	i := len(s.arena)
	s.arena = append(s.arena, p)
	s.index[p] = i
	return i, true
}

// Points returns the accepted points in their lexicographic total order. The
// slice is a copy; mutating it does not affect the set.
func (s *PointSet) Points() []Point {
	pts := make([]Point, len(s.arena))
	copy(pts, s.arena)
	sort.Slice(pts, func(i, j int) bool { return pts[i].Less(pts[j]) })
	return pts
}
