// An incremental recognizer of fuzzy (blurred) digital straight segments.
//
// A fuzzy segment is a run of contour points enclosable in a strip of
// bounded width, generalizing exact digital straight lines to tolerate
// noise. This package grows a segment one point at a time in either contour
// direction, maintaining the convex hull of the accepted points (Melkman
// style) and the minimum-width enclosing strip (rotating calipers), with
// every accept/reject decision made in exact arithmetic.
package fuzzyseg

import "github.com/nzfeng/fuzzyseg/recognizer"

type Point = recognizer.Point
type Contour = recognizer.Contour
type ParallelStrip = recognizer.ParallelStrip
type Recognizer = recognizer.Recognizer
type Arith = recognizer.Arith
type Int64Arith = recognizer.Int64Arith
type BigIntArith = recognizer.BigIntArith

func Pt(x, y int64) Point {
	return recognizer.Pt(x, y)
}

func NewContour(points []Point) *Contour {
	return recognizer.NewContour(points)
}

// NewRecognizer creates a recognizer with thickness budget
// widthNum/widthDen over the given exact numeric domain. See the
// recognizer package for the full protocol; contract violations
// (non-positive budget, double init, primitive before init) panic with an
// error, which Recognize and Decompose recover into normal error returns.
func NewRecognizer(ar Arith, widthNum, widthDen int64) *Recognizer {
	return recognizer.NewRecognizer(ar, widthNum, widthDen)
}

// Recognize grows a fuzzy segment forward from the first contour point as
// far as the thickness budget widthNum/widthDen allows, and returns its
// bounding strip along with the number of contour points absorbed. It runs
// over the big-integer domain, so any int64 coordinates are safe.
func Recognize(points []Point, widthNum, widthDen int64) (strip *ParallelStrip, accepted int, err error) {
	defer func() {
		if recoveredErr := recognizer.HandleRecognizerPanicRecover(recover()); recoveredErr != nil {
			strip, accepted, err = nil, 0, recoveredErr
		}
	}()
	if len(points) == 0 {
		return nil, 0, nil
	}
	r := recognizer.NewRecognizer(recognizer.BigIntArith{}, widthNum, widthDen)
	r.Init(recognizer.NewContour(points), 0)
	accepted = 1
	for r.ExtendFront() {
		accepted++
	}
	return r.Primitive(), accepted, nil
}

// Segment is one maximal fuzzy segment of a contour decomposition: the
// contour positions Start through End inclusive, bounded by Strip.
type Segment struct {
	Start, End int
	Strip      *ParallelStrip
}

// Decompose splits a contour into maximal fuzzy segments greedily from the
// front, with consecutive segments sharing their junction point, the way
// segment computers are chained over whole digital contours.
func Decompose(points []Point, widthNum, widthDen int64) (segments []Segment, err error) {
	defer func() {
		if recoveredErr := recognizer.HandleRecognizerPanicRecover(recover()); recoveredErr != nil {
			segments, err = nil, recoveredErr
		}
	}()
	c := recognizer.NewContour(points)
	start := 0
	for start < len(points) {
		r := recognizer.NewRecognizer(recognizer.BigIntArith{}, widthNum, widthDen)
		r.Init(c, start)
		end := start
		for r.ExtendFront() {
			end++
		}
		segments = append(segments, Segment{Start: start, End: end, Strip: r.Primitive()})
		if end == len(points)-1 {
			break
		}
		if end > start {
			start = end
		} else {
			start = end + 1
		}
	}
	return segments, nil
}
