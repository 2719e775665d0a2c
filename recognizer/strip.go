package recognizer

import "fmt"

// ParallelStrip is the primitive a recognized fuzzy segment is bounded by:
// the region between the two parallel lines N·X = Mu and N·X = Mu+Eps. The
// axis N is an integer-domain vector, not normalized, so the containment
// inequality is exact; Width gives the Euclidean distance between the two
// lines for human consumption. A strip built by the recognizer always has
// width strictly below the thickness budget it was constructed under.
type ParallelStrip struct {
	Nx, Ny Scalar
	Mu     Scalar
	Eps    Scalar

	normSq Scalar
	arith  Arith
}

func newParallelStrip(f stripFit, ar Arith) *ParallelStrip {
	return &ParallelStrip{
		Nx:     f.nx,
		Ny:     f.ny,
		Mu:     f.mu,
		Eps:    f.eps,
		normSq: f.normSq,
		arith:  ar,
	}
}

// Contains checks the strip inequality Mu ≤ N·P ≤ Mu+Eps exactly.
func (s *ParallelStrip) Contains(p Point) bool {
	ar := s.arith
	d := ar.Add(ar.Mul(s.Nx, ar.FromInt(p.X)), ar.Mul(s.Ny, ar.FromInt(p.Y)))
	if ar.Cmp(d, s.Mu) < 0 {
		return false
	}
	return ar.Cmp(d, ar.Add(s.Mu, s.Eps)) <= 0
}

// Width is the Euclidean distance between the two supporting lines. Display
// only; acceptance decisions never go through this value.
func (s *ParallelStrip) Width() float64 {
	return stripFit{nx: s.Nx, ny: s.Ny, mu: s.Mu, eps: s.Eps, normSq: s.normSq}.widthFloat(s.arith)
}

func (s *ParallelStrip) String() string {
	return fmt.Sprintf("ParallelStrip { %v ≤ (%v,%v)·X ≤ %v + %v, width ≈ %.4f }",
		s.Mu, s.Nx, s.Ny, s.Mu, s.Eps, s.Width())
}
