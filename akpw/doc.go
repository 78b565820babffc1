// Package akpw builds low-stretch spanning trees. AKPW implements the
// Alon–Karp–Peleg–West hierarchical clustering described in spec §4.1;
// DijkstraTree is the plain shortest-path-tree fallback the spec
// describes as sufficient "for small grids and unit tests".
//
// AKPW returns the spanning tree as an edge list of n-1 edges (root it
// with tree.NewFromEdgeList); DijkstraTree returns a tree.TreeR rooted at
// the vertex the caller chooses. Both fail fast with
// core.ErrGraphDisconnected on a disconnected input graph.
package akpw

import "errors"

// ErrTooFewVertices indicates an input graph had zero vertices, which no
// tree builder can root.
var ErrTooFewVertices = errors.New("akpw: graph has no vertices")
