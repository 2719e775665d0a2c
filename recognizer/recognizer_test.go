package recognizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorPreconditions(t *testing.T) {
	assert.Panics(t, func() { NewRecognizer(nil, 1, 1) })
	assert.Panics(t, func() { NewRecognizer(Int64Arith{}, 0, 1) })
	assert.Panics(t, func() { NewRecognizer(Int64Arith{}, 1, 0) })
	assert.Panics(t, func() { NewRecognizer(Int64Arith{}, -1, 2) })
	assert.Panics(t, func() { NewRecognizer(Int64Arith{}, 1, -2) })
	assert.Panics(t, func() { NewRecognizerWithCapacity(Int64Arith{}, 1, 1, 0) })
}

func TestInitSeedsOnePoint(t *testing.T) {
	r := NewRecognizer(Int64Arith{}, 1, 1)
	assert.True(t, r.Empty())
	assert.False(t, r.IsValid())

	c := NewContour([]Point{Pt(0, 0), Pt(1, 0), Pt(2, 0)})
	r.Init(c, 1)
	assert.Equal(t, 1, r.Size())
	assert.Equal(t, []Point{Pt(1, 0)}, r.Points())
	assert.True(t, r.IsValid())

	// A second init is a contract violation
	assert.Panics(t, func() { r.Init(c, 0) })
}

func TestInitPreconditions(t *testing.T) {
	c := NewContour([]Point{Pt(0, 0)})
	assert.Panics(t, func() { NewRecognizer(Int64Arith{}, 1, 1).Init(nil, 0) })
	assert.Panics(t, func() { NewRecognizer(Int64Arith{}, 1, 1).Init(c, -1) })
	assert.Panics(t, func() { NewRecognizer(Int64Arith{}, 1, 1).Init(c, 1) })
}

func TestUninitializedCallsPanic(t *testing.T) {
	r := NewRecognizer(Int64Arith{}, 1, 1)
	assert.Panics(t, func() { r.Primitive() })
	assert.Panics(t, func() { r.ExtendFront() })
	assert.Panics(t, func() { r.ExtendBack() })
	assert.Panics(t, func() { r.IsExtendableFront() })
	assert.Panics(t, func() { r.IsExtendableBack() })
}

// Collinear points have width zero, so extension succeeds indefinitely in
// both directions at any positive budget.
func TestCollinearExtendsIndefinitely(t *testing.T) {
	eachDomain(t, func(t *testing.T, ar Arith) {
		pts := []Point{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0), Pt(4, 0), Pt(5, 0)}
		r := NewRecognizer(ar, 1, 1)
		r.Init(NewContour(pts), 2)

		for r.ExtendFront() {
		}
		for r.ExtendBack() {
		}
		assert.Equal(t, len(pts), r.Size())
		assert.InDelta(t, 0, r.Primitive().Width(), 1e-12)
		assert.True(t, r.IsValid())
	})
}

// A point far off the common line of the current segment is rejected and
// nothing changes.
func TestFarPointRejectedWithoutMutation(t *testing.T) {
	eachDomain(t, func(t *testing.T, ar Arith) {
		r := NewRecognizer(ar, 1, 1)
		r.Init(NewContour([]Point{Pt(2, 3), Pt(0, 0), Pt(4, 0)}), 1)

		// The second point always fits: two points span a width-zero strip
		require.True(t, r.ExtendFront())
		require.Equal(t, 2, r.Size())

		// (2,3) makes a fat triangle of width 3, over budget 1
		assert.False(t, r.IsExtendableBack())
		assert.False(t, r.ExtendBack())
		assert.Equal(t, 2, r.Size())
		assert.Equal(t, []Point{Pt(0, 0), Pt(4, 0)}, r.Points())
		assert.True(t, r.IsValid())
	})
}

// Narrow zig-zag under the budget: all points accepted and the primitive
// covers every one of them.
func TestZigZagAccepted(t *testing.T) {
	eachDomain(t, func(t *testing.T, ar Arith) {
		pts := []Point{Pt(0, 0), Pt(2, 1), Pt(4, 0), Pt(6, 1)}
		r := NewRecognizer(ar, 3, 2)
		r.Init(NewContour(pts), 0)
		for r.ExtendFront() {
		}

		assert.Equal(t, 4, r.Size())
		strip := r.Primitive()
		assert.InDelta(t, 1, strip.Width(), 1e-9)
		assert.Less(t, strip.Width(), 1.5)
		for _, p := range pts {
			assert.True(t, strip.Contains(p), "strip misses %v", p)
		}
		assert.True(t, r.IsValid())
	})
}

// A width exactly equal to the budget must be rejected: strictly less, not
// less-or-equal.
func TestThresholdExactness(t *testing.T) {
	eachDomain(t, func(t *testing.T, ar Arith) {
		square := []Point{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)}

		r := NewRecognizer(ar, 1, 1)
		r.Init(NewContour(square), 0)
		// The first three span width 1/√2 < 1
		require.True(t, r.ExtendFront())
		require.True(t, r.ExtendFront())
		// The fourth closes the unit square: width exactly 1, rejected
		assert.False(t, r.ExtendFront())
		assert.Equal(t, 3, r.Size())

		// A hair above the width accepts it
		r = NewRecognizer(ar, 101, 100)
		r.Init(NewContour(square), 0)
		for r.ExtendFront() {
		}
		assert.Equal(t, 4, r.Size())
	})
}

func TestCapacityStopsExtension(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0), Pt(4, 0)}
	r := NewRecognizerWithCapacity(Int64Arith{}, 1, 1, 3)
	r.Init(NewContour(pts), 0)

	assert.True(t, r.ExtendFront())
	assert.True(t, r.ExtendFront())
	// Geometrically extendable (still collinear), but the set is full
	assert.False(t, r.IsExtendableFront())
	assert.False(t, r.ExtendFront())
	assert.Equal(t, 3, r.Size())
	assert.Equal(t, 3, r.MaxSize())
}

func TestExhaustionStopsExtension(t *testing.T) {
	r := NewRecognizer(Int64Arith{}, 1, 1)
	r.Init(NewContour([]Point{Pt(0, 0), Pt(1, 0), Pt(2, 0)}), 1)

	assert.True(t, r.ExtendFront())
	assert.False(t, r.IsExtendableFront())
	assert.False(t, r.ExtendFront())

	assert.True(t, r.ExtendBack())
	assert.False(t, r.IsExtendableBack())
	assert.False(t, r.ExtendBack())

	assert.Equal(t, 3, r.Size())
}

// The isExtendable queries are pure: any number of calls leaves size,
// iteration contents and the primitive untouched.
func TestQueryPurity(t *testing.T) {
	eachDomain(t, func(t *testing.T, ar Arith) {
		pts := []Point{Pt(0, 0), Pt(2, 1), Pt(4, 0), Pt(6, 1), Pt(0, 9)}
		r := NewRecognizer(ar, 3, 2)
		r.Init(NewContour(pts), 0)
		require.True(t, r.ExtendFront())
		require.True(t, r.ExtendFront())

		size := r.Size()
		points := r.Points()
		primitive := r.Primitive().String()

		for i := 0; i < 5; i++ {
			r.IsExtendableFront()
			r.IsExtendableBack()
		}

		assert.Equal(t, size, r.Size())
		assert.Equal(t, points, r.Points())
		assert.Equal(t, primitive, r.Primitive().String())

		// And the query agrees with what extend then reports
		want := r.IsExtendableFront()
		assert.Equal(t, want, r.ExtendFront())
	})
}

// Once an extension is rejected, repeating it keeps failing: no hidden
// state change can enable a different outcome.
func TestIdempotentRejection(t *testing.T) {
	r := NewRecognizer(Int64Arith{}, 1, 1)
	r.Init(NewContour([]Point{Pt(0, 0), Pt(4, 0), Pt(2, 3)}), 0)
	require.True(t, r.ExtendFront())

	for i := 0; i < 4; i++ {
		assert.False(t, r.ExtendFront())
		assert.Equal(t, 2, r.Size())
	}
}

// Adding points never shrinks the minimal enclosing strip.
func TestMonotoneWidth(t *testing.T) {
	eachDomain(t, func(t *testing.T, ar Arith) {
		pts := []Point{
			Pt(-4, -1), Pt(-3, 0), Pt(-2, 0), Pt(-1, 1), Pt(0, 0),
			Pt(1, 0), Pt(2, 1), Pt(3, 0), Pt(4, 1), Pt(5, 1),
		}
		r := NewRecognizer(ar, 3, 1)
		r.Init(NewContour(pts), 4)

		prev := r.fit
		for i := 0; ; i++ {
			var ok bool
			if i%2 == 0 {
				ok = r.ExtendFront()
			} else {
				ok = r.ExtendBack()
			}
			if !ok {
				if !r.IsExtendableFront() && !r.IsExtendableBack() {
					break
				}
				continue
			}
			assert.False(t, lessFit(r.fit, prev, ar), "width shrank after commit")
			prev = r.fit
		}
		assert.True(t, r.IsValid())
	})
}

// A contour that revisits a point: extension succeeds, the cursor moves,
// and the set keeps set semantics.
func TestDuplicatePointIsSilentNoop(t *testing.T) {
	r := NewRecognizer(Int64Arith{}, 1, 1)
	r.Init(NewContour([]Point{Pt(0, 0), Pt(1, 0), Pt(0, 0), Pt(2, 0)}), 0)

	assert.True(t, r.ExtendFront()) // (1,0)
	assert.True(t, r.ExtendFront()) // (0,0) again: no-op but consumed
	assert.Equal(t, 2, r.Size())
	assert.True(t, r.ExtendFront()) // (2,0)
	assert.Equal(t, 3, r.Size())
	assert.True(t, r.IsValid())
}

func TestBidirectionalGrowth(t *testing.T) {
	eachDomain(t, func(t *testing.T, ar Arith) {
		// Digital line of slope 1/2 walked outward from the middle
		pts := []Point{
			Pt(0, 0), Pt(1, 0), Pt(2, 1), Pt(3, 1), Pt(4, 2), Pt(5, 2), Pt(6, 3), Pt(7, 3),
		}
		r := NewRecognizer(ar, 1, 1)
		r.Init(NewContour(pts), 4)

		for r.IsExtendableFront() || r.IsExtendableBack() {
			r.ExtendFront()
			r.ExtendBack()
		}

		assert.Equal(t, len(pts), r.Size())
		strip := r.Primitive()
		assert.InDelta(t, 0.4472135955, strip.Width(), 1e-9)
		for _, p := range pts {
			assert.True(t, strip.Contains(p))
		}
		assert.True(t, r.IsValid())
	})
}

func TestPrimitiveReflectsCommittedStateOnly(t *testing.T) {
	r := NewRecognizer(Int64Arith{}, 2, 1)
	r.Init(NewContour([]Point{Pt(0, 0), Pt(1, 0), Pt(2, 1)}), 0)
	require.True(t, r.ExtendFront())

	before := r.Primitive().String()
	// A rejected or untried candidate never leaks into the primitive
	r.IsExtendableFront()
	assert.Equal(t, before, r.Primitive().String())

	require.True(t, r.ExtendFront())
	assert.NotEqual(t, before, r.Primitive().String())
}

func TestString(t *testing.T) {
	r := NewRecognizer(Int64Arith{}, 3, 2)
	assert.Contains(t, r.String(), "uninitialized")

	r.Init(NewContour([]Point{Pt(0, 0), Pt(1, 0)}), 0)
	r.ExtendFront()
	s := r.String()
	assert.Contains(t, s, "size: 2")
	assert.Contains(t, s, "budget: 3/2")
	assert.Contains(t, s, "ParallelStrip")
}
