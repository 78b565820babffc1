// Package augtree wires together the full pipeline of spec §2 into one
// call: akpw builds a low-stretch spanning tree, tree wraps it for
// rooted-path queries, stretch scores every off-tree edge against that
// tree, sampler draws a stretch-weighted subset of them into an
// augmented-tree structure, mindegree factors that structure into a
// preconditioner, and pcg iterates it against the original graph's
// Laplacian.
package augtree
