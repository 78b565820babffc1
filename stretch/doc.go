// Package stretch computes the stretch of every off-tree edge against a
// rooted tree (spec §4.3): stretch(e) = R(u,v) / r_e, where R(u,v) is the
// tree-path resistance between e's endpoints.
//
// ComputeStretch walks both endpoints up to their lowest common ancestor
// simultaneously (first leveling depth, then stepping together),
// accumulating resistance along the way, using tree.TreeR's precomputed
// depths so each query costs O(depth) with no extra allocation beyond the
// output slice.
package stretch
