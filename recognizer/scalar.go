package recognizer

import "math/big"

// All hull and width decisions run over an exact signed numeric domain. The
// domain is a capability passed in at construction rather than a hard-coded
// type, so the same algorithm can run over fixed-width integers or big
// integers. Scalars are opaque values owned by their Arith; mixing scalars
// from different domains is a caller bug.
type Scalar interface{}

// Arith is the capability required of a numeric domain: construction from
// small integers, exact add/subtract/multiply, and exact total ordering.
// Floating point never participates in a comparison; Float exists for
// display only.
type Arith interface {
	FromInt(v int64) Scalar
	Add(a, b Scalar) Scalar
	Sub(a, b Scalar) Scalar
	Mul(a, b Scalar) Scalar
	Neg(a Scalar) Scalar
	// Cmp returns -1, 0 or 1 as a is less than, equal to or greater than b.
	Cmp(a, b Scalar) int
	// Float gives an inexact rendering of the scalar for diagnostics.
	Float(a Scalar) float64
}

// Int64Arith computes directly on int64. It is the fast choice for digital
// contours with small coordinates. The width test multiplies two squared
// dot products, so intermediate values reach roughly (2·C²·den)² for
// coordinate magnitude C; past a few thousand in coordinate range, prefer
// BigIntArith.
type Int64Arith struct{}

func (Int64Arith) FromInt(v int64) Scalar { return v }
func (Int64Arith) Add(a, b Scalar) Scalar { return a.(int64) + b.(int64) }
func (Int64Arith) Sub(a, b Scalar) Scalar { return a.(int64) - b.(int64) }
func (Int64Arith) Mul(a, b Scalar) Scalar { return a.(int64) * b.(int64) }
func (Int64Arith) Neg(a Scalar) Scalar    { return -a.(int64) }
func (Int64Arith) Float(a Scalar) float64 { return float64(a.(int64)) }

func (Int64Arith) Cmp(a, b Scalar) int {
	x, y := a.(int64), b.(int64)
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// BigIntArith computes on math/big integers and never overflows. Scalars are
// treated as immutable: every operation allocates a fresh *big.Int.
type BigIntArith struct{}

func (BigIntArith) FromInt(v int64) Scalar { return big.NewInt(v) }

func (BigIntArith) Add(a, b Scalar) Scalar {
	return new(big.Int).Add(a.(*big.Int), b.(*big.Int))
}

func (BigIntArith) Sub(a, b Scalar) Scalar {
	return new(big.Int).Sub(a.(*big.Int), b.(*big.Int))
}

func (BigIntArith) Mul(a, b Scalar) Scalar {
	return new(big.Int).Mul(a.(*big.Int), b.(*big.Int))
}

func (BigIntArith) Neg(a Scalar) Scalar { return new(big.Int).Neg(a.(*big.Int)) }

func (BigIntArith) Cmp(a, b Scalar) int { return a.(*big.Int).Cmp(b.(*big.Int)) }

func (BigIntArith) Float(a Scalar) float64 {
	f, _ := new(big.Float).SetInt(a.(*big.Int)).Float64()
	return f
}

// sign of a scalar without materializing zero at every call site
func sign(ar Arith, a Scalar) int {
	return ar.Cmp(a, ar.FromInt(0))
}
