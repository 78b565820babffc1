// Package pcg implements the preconditioned conjugate gradient loop of
// spec §4.6: given a matvec for the (symmetric, positive semi-definite)
// Laplacian operator and a Preconditioner that approximately solves the
// same system, Solver.Solve iterates
//
//	z  = M⁻¹r
//	p  = z + β·p
//	q  = A·p
//	x += α·p
//	r -= α·q
//
// until ‖r‖/‖b‖ drops to Options.Tolerance or Options.MaxIters is spent.
// mindegree.Solver (run over the augmented-tree structure built by
// akpw/tree/stretch/sampler) is the intended Preconditioner; identity.go
// ships IdentitySolver, the do-nothing M=I baseline spec §4 lists as an
// out-of-scope collaborator useful mainly for convergence tests.
package pcg
