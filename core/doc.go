// Package core defines the graph primitives shared by every stage of the
// augmented-tree preconditioner pipeline: the two parallel edge
// parameterizations (resistance and conductance), the ordered edge list
// that owns them, and the two adjacency views built on top — a read-only
// CSR-like AdjacencyArray for fast neighbor iteration and a mutable
// AdjacencyMap for incremental construction (tree + sampled edges) and
// min-degree elimination.
//
// Vertices are dense integers in [0, n), not strings: the pipeline never
// needs named vertices, and integer indices let every downstream stage
// (TreeR, AdjacencyArray, the min-degree elimination order) use plain
// slices instead of maps.
//
// Errors:
//
//	ErrMalformedEdge     - out-of-range vertex, self-loop, or non-positive weight.
//	ErrGraphDisconnected - a tree builder was given a disconnected graph.
//	ErrDimensionMismatch - vector/matrix sizes inconsistent across an operation.
package core

import "errors"

// Sentinel errors shared across the pipeline. Packages that need a
// narrower error (mindegree.ErrSingularSystem, pcg.ErrNonConvergent, ...)
// define their own; these three are the ones every layer can raise.
var (
	// ErrMalformedEdge indicates an edge referenced an out-of-range vertex,
	// connected a vertex to itself, or carried a non-positive weight.
	ErrMalformedEdge = errors.New("core: malformed edge")

	// ErrGraphDisconnected indicates a spanning-tree builder was given a
	// graph that does not have a single connected component.
	ErrGraphDisconnected = errors.New("core: graph is disconnected")

	// ErrDimensionMismatch indicates vector or matrix sizes did not agree.
	ErrDimensionMismatch = errors.New("core: dimension mismatch")
)
