// Package numeric provides the Laplacian mat-vec and the vector
// arithmetic the PCG loop (spec §4.6) iterates with. The vector
// operations (dot, scaled-add, norm, scale) are thin wrappers over
// gonum.org/v1/gonum/floats rather than hand-rolled loops, matching how
// the rest of the numeric ecosystem this module draws on leans on
// gonum for dense linear algebra primitives.
package numeric
