package akpw

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/amguinto/treepcg/core"
	"github.com/amguinto/treepcg/tree"
)

// DijkstraTree builds a shortest-path tree rooted at root using a
// lazy-decrease-key binary heap, the same approach as the teacher's
// dijkstra.Dijkstra (dijkstra/dijkstra.go) adapted from string vertex IDs
// and a *core.Graph to dense integer vertices and a core.AdjacencyArray.
//
// Unlike AKPW, DijkstraTree makes no stretch guarantee; spec §4.1
// describes it as the fallback "used for small grids and unit tests".
// Returns core.ErrGraphDisconnected if root cannot reach every vertex.
func DijkstraTree(adj core.AdjacencyArray, root int) (tree.TreeR, error) {
	n := adj.N()
	if root < 0 || root >= n {
		return tree.TreeR{}, fmt.Errorf("%w: root %d out of range [0,%d)", core.ErrMalformedEdge, root, n)
	}

	dist := make([]float64, n)
	vertices := make([]tree.Vertex, n)
	visited := make([]bool, n)
	for v := range dist {
		dist[v] = math.Inf(1)
	}
	dist[root] = 0
	vertices[root] = tree.Vertex{Parent: root, ParentR: 0}

	pq := make(nodePQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: root, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.id
		if visited[u] {
			continue
		}
		visited[u] = true

		for _, arc := range adj.Neighbors(u) {
			v := arc.To
			newDist := dist[u] + arc.Weight
			if newDist >= dist[v] {
				continue
			}
			dist[v] = newDist
			vertices[v] = tree.Vertex{Parent: u, ParentR: arc.Weight}
			heap.Push(&pq, &nodeItem{id: v, dist: newDist})
		}
	}

	for v := 0; v < n; v++ {
		if !visited[v] {
			return tree.TreeR{}, fmt.Errorf("%w: vertex %d unreachable from root %d", core.ErrGraphDisconnected, v, root)
		}
	}

	return tree.New(root, vertices), nil
}

// nodeItem pairs a vertex with its current best distance from the root,
// exactly mirroring dijkstra.nodeItem's lazy-decrease-key role.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by ascending dist.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
