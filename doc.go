// Package treepcg implements an augmented-tree-preconditioned conjugate
// gradient solver for symmetric diagonally dominant (SDD) linear
// systems expressed as weighted graph Laplacians.
//
// Given a weighted, connected graph whose Laplacian L is SDD, treepcg
// solves Lx = b (for b summing to zero, the system's consistency
// condition) by building a low-stretch spanning tree, augmenting it
// with a small stretch-weighted sample of the remaining edges, and
// using a minimum-degree factorization of that augmented structure as
// a preconditioner for CG against the original system.
//
// Subpackages, in pipeline order:
//
//	core/      — edge lists, adjacency representations, sparse matrices
//	rng/       — seeded randomness (uniform and exponential draws)
//	akpw/      — low-stretch spanning tree construction
//	tree/      — rooted tree, depth and root-path queries
//	stretch/   — off-tree edge stretch scoring against a tree
//	sampler/   — stretch-weighted sampling into an augmented structure
//	mindegree/ — minimum-degree elimination solver (general and pure-tree)
//	numeric/   — Laplacian mat-vec and vector arithmetic
//	pcg/       — the preconditioned conjugate gradient loop
//	augtree/   — the full pipeline wired together behind one call
//	gio/       — graph file I/O (binary sparse format, Matrix Market)
//
// cmd/treepcg is a thin CLI driver over augtree and gio.
package treepcg
