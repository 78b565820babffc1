package pcg

import "errors"

// ErrNonConvergent indicates Options.MaxIters was spent without the
// relative residual dropping to Options.Tolerance.
var ErrNonConvergent = errors.New("pcg: did not converge within MaxIters")

// ErrBreakdown indicates p·q <= 0 partway through the iteration — the
// preconditioner is not positive definite on the residual's subspace, or
// the system itself is not SPD there.
var ErrBreakdown = errors.New("pcg: breakdown (p.q <= 0)")

// MatVec computes out = A*x for the linear operator being solved
// against. Implementations must not alias x and out.
type MatVec func(x, out []float64) error

// Preconditioner approximately solves Mz = r for a preconditioner M
// chosen to cluster A's spectrum. mindegree.Solver implements this
// directly; IdentitySolver is the M=I baseline.
type Preconditioner interface {
	Solve(r []float64) ([]float64, error)
}

// Options configures the iteration's stopping criteria.
type Options struct {
	// Tolerance is the target relative residual ‖r‖/‖b‖.
	Tolerance float64

	// MaxIters caps the number of iterations performed.
	MaxIters int
}

// DefaultOptions returns a tolerance of 1e-8 and a cap of 1000
// iterations, generous enough for the graph sizes spec §8's scenarios
// exercise.
func DefaultOptions() Options {
	return Options{Tolerance: 1e-8, MaxIters: 1000}
}
