package tree

import (
	"fmt"

	"github.com/amguinto/treepcg/core"
)

// Vertex is one entry of a TreeR: the parent vertex and the resistance of
// the edge connecting this vertex to its parent. The root's Parent equals
// its own index and its ParentR is 0.
type Vertex struct {
	Parent  int
	ParentR float64
}

// TreeR is a rooted spanning tree over n vertices, indexed by vertex.
// It is built once (by NewFromEdgeList, or directly by an akpw tree
// builder) and is read-only afterward: every query below only reads
// Vertices and the precomputed Depth slice.
type TreeR struct {
	Root     int
	Vertices []Vertex
	depth    []int
}

// New wraps an already-built parent array into a TreeR and precomputes
// depths in O(n). Builders that already know the parent structure
// (akpw.DijkstraTree) call this directly instead of
// re-deriving it with NewFromEdgeList's BFS.
func New(root int, vertices []Vertex) TreeR {
	t := TreeR{Root: root, Vertices: vertices}
	t.computeDepths()
	return t
}

// NewFromEdgeList builds a TreeR rooted at root from a spanning-tree edge
// list via BFS. el must contain exactly el.N-1 edges forming a tree; this
// is not re-validated here (AKPW's output already satisfies it).
func NewFromEdgeList(el core.EdgeList[core.EdgeR], root int) (TreeR, error) {
	if root < 0 || root >= el.N {
		return TreeR{}, fmt.Errorf("%w: root %d out of range [0,%d)", core.ErrMalformedEdge, root, el.N)
	}

	adj := core.BuildAdjacencyArrayR(el)
	vertices := make([]Vertex, el.N)
	visited := make([]bool, el.N)
	vertices[root] = Vertex{Parent: root, ParentR: 0}
	visited[root] = true

	queue := make([]int, 0, el.N)
	queue = append(queue, root)
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for _, arc := range adj.Neighbors(u) {
			if visited[arc.To] {
				continue
			}
			visited[arc.To] = true
			vertices[arc.To] = Vertex{Parent: u, ParentR: arc.Weight}
			queue = append(queue, arc.To)
		}
	}

	for v, ok := range visited {
		if !ok {
			return TreeR{}, fmt.Errorf("%w: vertex %d unreachable from root %d", core.ErrGraphDisconnected, v, root)
		}
	}

	return New(root, vertices), nil
}

func (t *TreeR) computeDepths() {
	n := len(t.Vertices)
	t.depth = make([]int, n)
	visited := make([]bool, n)

	var depthOf func(v int) int
	depthOf = func(v int) int {
		if v == t.Root || visited[v] {
			return t.depth[v]
		}
		d := depthOf(t.Vertices[v].Parent) + 1
		t.depth[v] = d
		visited[v] = true
		return d
	}

	visited[t.Root] = true
	t.depth[t.Root] = 0
	for v := range t.Vertices {
		depthOf(v)
	}
}

// Depth returns the precomputed root-distance (in edges) of v.
func (t TreeR) Depth(v int) int {
	return t.depth[v]
}

// N returns the number of vertices in the tree.
func (t TreeR) N() int {
	return len(t.Vertices)
}

// Step is one hop of a RootPath walk: the vertex reached and the
// cumulative resistance from the walk's start up to and including this
// vertex.
type Step struct {
	Vertex     int
	CumulativeR float64
}

// RootPath returns the sequence of steps from v to the root, inclusive of
// both endpoints, with strictly increasing cumulative resistance. The
// first step is v itself at cumulative resistance 0; the last is the
// root. Runs in O(depth(v)) and allocates only the returned slice.
func (t TreeR) RootPath(v int) []Step {
	path := make([]Step, 0, t.depth[v]+1)
	cum := 0.0
	path = append(path, Step{Vertex: v, CumulativeR: cum})
	for v != t.Root {
		cum += t.Vertices[v].ParentR
		v = t.Vertices[v].Parent
		path = append(path, Step{Vertex: v, CumulativeR: cum})
	}
	return path
}
