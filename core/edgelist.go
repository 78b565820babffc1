package core

import "fmt"

// EdgeList is an ordered sequence of edges on N vertices, parameterized by
// the edge payload (EdgeR or EdgeC). Parallel edges are permitted and
// never compacted here; AdjacencyMap sums their conductances on insertion
// (as sampler.Sample does), while AdjacencyArray keeps one arc per edge.
//
// EdgeList is a value type: assigning it copies the header, not the
// backing array, matching Go's ordinary slice semantics. Callers that
// need an independent copy should clone Edges explicitly.
type EdgeList[E any] struct {
	N     int
	Edges []E
}

// NewEdgeListR returns an empty resistance-form edge list on n vertices.
func NewEdgeListR(n int) EdgeList[EdgeR] {
	return EdgeList[EdgeR]{N: n}
}

// NewEdgeListC returns an empty conductance-form edge list on n vertices.
func NewEdgeListC(n int) EdgeList[EdgeC] {
	return EdgeList[EdgeC]{N: n}
}

// AddR validates and appends a resistance edge to el. Validation order:
// vertex range, then self-loop, then weight sign.
//
// This is a free function, not a method: a method declared against one
// instantiation of a generic receiver (e.g. "func (el *EdgeList[EdgeR])
// AddR(...)") does not specialize the receiver to that instantiation —
// the identifier inside the receiver's [...] instead declares a fresh,
// unconstrained type-parameter name scoped to that method, shadowing
// the package-level EdgeR type. A composite literal naming the shadowed
// parameter then has no core type to target and fails to compile. AddR
// and AddC take the edge list as an ordinary parameter instead.
func AddR(el *EdgeList[EdgeR], u, v int, r float64) error {
	if err := validateEndpoints(el.N, u, v); err != nil {
		return err
	}
	if r <= 0 {
		return fmt.Errorf("%w: resistance %g is not positive", ErrMalformedEdge, r)
	}
	el.Edges = append(el.Edges, EdgeR{U: u, V: v, R: r})
	return nil
}

// AddC validates and appends a conductance edge to el. See AddR for why
// this is a free function rather than a method.
func AddC(el *EdgeList[EdgeC], u, v int, c float64) error {
	if err := validateEndpoints(el.N, u, v); err != nil {
		return err
	}
	if c <= 0 {
		return fmt.Errorf("%w: conductance %g is not positive", ErrMalformedEdge, c)
	}
	el.Edges = append(el.Edges, EdgeC{U: u, V: v, C: c})
	return nil
}

func validateEndpoints(n, u, v int) error {
	if u < 0 || u >= n || v < 0 || v >= n {
		return fmt.Errorf("%w: vertex out of range [0,%d): u=%d v=%d", ErrMalformedEdge, n, u, v)
	}
	if u == v {
		return fmt.Errorf("%w: self-loop at vertex %d", ErrMalformedEdge, u)
	}
	return nil
}

// ToConductance returns the conductance-form equivalent of a resistance
// edge list. Parallel edges are not combined; each source edge maps to
// exactly one output edge.
func ToConductance(el EdgeList[EdgeR]) EdgeList[EdgeC] {
	out := EdgeList[EdgeC]{N: el.N, Edges: make([]EdgeC, len(el.Edges))}
	for i, e := range el.Edges {
		out.Edges[i] = e.ToConductance()
	}
	return out
}

// ToResistance returns the resistance-form equivalent of a conductance
// edge list.
func ToResistance(el EdgeList[EdgeC]) EdgeList[EdgeR] {
	out := EdgeList[EdgeR]{N: el.N, Edges: make([]EdgeR, len(el.Edges))}
	for i, e := range el.Edges {
		out.Edges[i] = e.ToResistance()
	}
	return out
}

// Normalize rescales every resistance in-place so the minimum resistance
// becomes 1, and returns the scale factor applied (new = old / minR).
// AKPW's first step (spec §4.1) requires this normalization before the
// hierarchical clustering begins. Normalize is a no-op (factor 1) on an
// empty edge list.
func Normalize(el *EdgeList[EdgeR]) float64 {
	if len(el.Edges) == 0 {
		return 1
	}
	minR := el.Edges[0].R
	for _, e := range el.Edges[1:] {
		if e.R < minR {
			minR = e.R
		}
	}
	for i := range el.Edges {
		el.Edges[i].R /= minR
	}
	return minR
}
