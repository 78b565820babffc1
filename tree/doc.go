// Package tree implements TreeR, the rooted-tree representation produced
// by akpw.DijkstraTree or by NewFromEdgeList (for example over the edge
// list akpw.AKPW returns) and consumed by stretch computation and
// mindegree.TreeSolver.
//
// TreeR stores each vertex's parent and the resistance of the edge to
// that parent; the root is its own parent. Following parents from any
// vertex reaches the root in at most n steps, with no cycles — the
// invariant every builder in package akpw must establish before
// returning.
package tree
