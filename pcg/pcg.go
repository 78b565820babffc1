package pcg

import "github.com/amguinto/treepcg/numeric"

// Solver runs preconditioned conjugate gradient against a fixed matvec
// and preconditioner.
type Solver struct {
	MatVec MatVec
	Precond Preconditioner
	Opts   Options
}

// NewSolver returns a Solver with the given matvec, preconditioner and
// options.
func NewSolver(matvec MatVec, precond Preconditioner, opts Options) *Solver {
	return &Solver{MatVec: matvec, Precond: precond, Opts: opts}
}

// Solve returns x approximately satisfying A·x = b, along with the
// iteration count spent. x starts at the zero vector, which is correct
// for the singular Laplacian systems this module solves provided b sums
// to zero (Σb = 0 is the consistency condition spec §4 requires of
// callers).
func (s *Solver) Solve(b []float64) (x []float64, iters int, err error) {
	n := len(b)
	x = make([]float64, n)

	bNorm := numeric.Norm(b)
	if bNorm == 0 {
		return x, 0, nil
	}

	r := append([]float64(nil), b...)
	z, err := s.Precond.Solve(r)
	if err != nil {
		return nil, 0, err
	}
	p := append([]float64(nil), z...)
	rz := numeric.Dot(r, z)

	q := make([]float64, n)
	for iter := 0; iter < s.Opts.MaxIters; iter++ {
		if err := s.MatVec(p, q); err != nil {
			return nil, iter, err
		}
		pq := numeric.Dot(p, q)
		if pq <= 0 {
			return nil, iter, ErrBreakdown
		}

		alpha := rz / pq
		numeric.AddScaled(x, alpha, p)
		numeric.AddScaled(r, -alpha, q)

		if numeric.Norm(r)/bNorm <= s.Opts.Tolerance {
			return x, iter + 1, nil
		}

		zNew, err := s.Precond.Solve(r)
		if err != nil {
			return nil, iter, err
		}
		rzNew := numeric.Dot(r, zNew)
		beta := rzNew / rz

		for i := range p {
			p[i] = zNew[i] + beta*p[i]
		}
		z = zNew
		rz = rzNew
	}

	return nil, s.Opts.MaxIters, ErrNonConvergent
}
