// Package gio is the file-I/O boundary the core solver packages never
// touch (spec §1 scopes file formats out of the solver itself): it
// reads the binary sparse graph format cmd/treepcg accepts and writes
// Matrix Market output for interoperating with other linear-algebra
// tooling. Nothing in core, akpw, tree, stretch, sampler, mindegree,
// pcg, numeric or augtree imports this package; only cmd/treepcg does.
package gio
