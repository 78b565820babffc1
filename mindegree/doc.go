// Package mindegree implements the minimum-degree Cholesky-like
// elimination of spec §4.5: repeatedly eliminate the current
// minimum-degree vertex (ties broken by smaller id), folding its
// neighbors into a re-weighted clique (the Schur complement / star-mesh
// transform) before removing it. Because the input is a tree augmented
// with O(k) extra edges, fill-in stays O(n + k·polylog n).
//
// Solver.Solve performs the paired forward/backward substitution implied
// by the elimination order: forward, it propagates each eliminated
// vertex's right-hand side into its still-active neighbors; backward, it
// recovers each x_v from its (by then known) neighbor values — exactly
// the formula spec §4.5 states as the testable property:
//
//	x_v ← (b_v + Σ w(v,a)·x_a) / degree(v)
//
// summed over neighbors a eliminated after v (or the final ungrounded
// vertex, whose potential is fixed at 0 as the Laplacian's gauge).
//
// TreeSolver (treesolver.go) specializes this to a pure tree with no
// augmenting edges, skipping the priority queue entirely since a tree's
// elimination order is just "leaves first" — any post-order walk works.
package mindegree

import "errors"

// ErrSingularSystem indicates elimination found an isolated (degree-0)
// vertex before reducing to the final ungrounded vertex — the augmented
// graph was disconnected, which spec §4.5 says "can occur only from
// malformed input".
var ErrSingularSystem = errors.New("mindegree: singular system (disconnected during elimination)")
