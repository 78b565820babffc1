package numeric

import "gonum.org/v1/gonum/floats"

// Dot returns the Euclidean inner product of a and b.
func Dot(a, b []float64) float64 {
	return floats.Dot(a, b)
}

// AddScaled sets dst[i] += alpha*s[i] for every i.
func AddScaled(dst []float64, alpha float64, s []float64) {
	floats.AddScaled(dst, alpha, s)
}

// Norm returns the Euclidean (L2) norm of a.
func Norm(a []float64) float64 {
	return floats.Norm(a, 2)
}

// Scale sets dst[i] *= alpha for every i.
func Scale(alpha float64, dst []float64) {
	floats.Scale(alpha, dst)
}
