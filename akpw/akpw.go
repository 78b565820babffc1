package akpw

import (
	"math"
	"sort"

	"github.com/amguinto/treepcg/core"
	"github.com/amguinto/treepcg/rng"
)

// levelDSU is a small union-find over the compact cluster-id space of a
// single AKPW level, reset every level. Same union-by-rank/path-compression
// shape as core's internal dsu and the teacher's Kruskal disjoint-set
// (prim_kruskal/kruskal.go); kept separate and unexported because AKPW
// relabels its id space every level, unlike core's fixed-vertex dsu.
type levelDSU struct {
	parent, rank []int
}

func newLevelDSU(n int) *levelDSU {
	d := &levelDSU{parent: make([]int, n), rank: make([]int, n)}
	for i := range d.parent {
		d.parent[i] = i
	}
	return d
}

func (d *levelDSU) find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}
	return x
}

func (d *levelDSU) union(a, b int) bool {
	ra, rb := d.find(a), d.find(b)
	if ra == rb {
		return false
	}
	if d.rank[ra] < d.rank[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	if d.rank[ra] == d.rank[rb] {
		d.rank[ra]++
	}
	return true
}

// boundaryEdge is one candidate for absorption: the neighboring cluster,
// the threshold weight used to compare against a ball's radius, and the
// original (untouched) edge it traces back to — the one actually emitted
// into the output tree.
type boundaryEdge struct {
	neighbor    int
	scaledR     float64
	origU, origV int
	origR       float64
}

// AKPW builds a low-stretch spanning tree of es (spec §4.1). r supplies
// every random draw (the exponential ball radii), in cluster-ascending
// order within each level, so a fixed seed fixes the output tree.
//
// Returns core.ErrGraphDisconnected if es is not connected, and
// ErrTooFewVertices if es.N == 0.
func AKPW(es core.EdgeList[core.EdgeR], r *rng.RNG) (core.EdgeList[core.EdgeR], error) {
	if es.N == 0 {
		return core.EdgeList[core.EdgeR]{}, ErrTooFewVertices
	}
	if !core.IsConnectedR(es) {
		return core.EdgeList[core.EdgeR]{}, core.ErrGraphDisconnected
	}

	out := core.NewEdgeListR(es.N)
	if es.N == 1 {
		return out, nil
	}

	// Step 1: normalize a private copy so the minimum resistance is 1;
	// the original es.Edges[i].R is kept alongside for the edges we
	// actually emit into the tree.
	normEL := core.EdgeList[core.EdgeR]{N: es.N, Edges: append([]core.EdgeR(nil), es.Edges...)}
	core.Normalize(&normEL)

	clusterOf := make([]int, es.N)
	for v := range clusterOf {
		clusterOf[v] = v
	}
	numClusters := es.N
	scale := 1.0

	for numClusters > 1 {
		// Step 2/3: boundary[c] holds c's candidate absorptions, deduped
		// to the cheapest edge per neighboring cluster, sorted ascending.
		boundary := make([][]boundaryEdge, numClusters)
		best := make(map[[2]int]int) // canonical (min,max) cluster pair -> index into es.Edges

		for i, e := range es.Edges {
			cu, cv := clusterOf[e.U], clusterOf[e.V]
			if cu == cv {
				continue
			}
			key := [2]int{cu, cv}
			if key[0] > key[1] {
				key[0], key[1] = key[1], key[0]
			}
			if prev, ok := best[key]; !ok || normEL.Edges[i].R < normEL.Edges[prev].R {
				best[key] = i
			}
		}

		for _, i := range best {
			e := es.Edges[i]
			w := normEL.Edges[i].R * scale
			cu, cv := clusterOf[e.U], clusterOf[e.V]
			boundary[cu] = append(boundary[cu], boundaryEdge{neighbor: cv, scaledR: w, origU: e.U, origV: e.V, origR: e.R})
			boundary[cv] = append(boundary[cv], boundaryEdge{neighbor: cu, scaledR: w, origU: e.U, origV: e.V, origR: e.R})
		}
		for c := range boundary {
			sort.Slice(boundary[c], func(i, j int) bool {
				a, b := boundary[c][i], boundary[c][j]
				if a.scaledR != b.scaledR {
					return a.scaledR < b.scaledR
				}
				return a.neighbor < b.neighbor // ties: smaller cluster id first
			})
		}

		rho := growthParameter(len(best), es.N)
		d := newLevelDSU(numClusters)

		// Randomized ball growth: clusters in ascending id order grow an
		// exponential-radius ball and absorb neighbors reachable within it.
		for c := 0; c < numClusters; c++ {
			if d.find(c) != c {
				continue // already absorbed by an earlier cluster this level
			}
			radius := r.Exponential(1 / rho)
			for _, be := range boundary[c] {
				if be.scaledR > radius {
					break // boundary is sorted ascending; nothing further fits
				}
				if d.find(be.neighbor) == d.find(c) {
					continue
				}
				out.Edges = append(out.Edges, core.EdgeR{U: be.origU, V: be.origV, R: be.origR})
				d.union(c, be.neighbor)
			}
		}

		// Forced progress pass: any cluster left isolated by the random
		// draws merges with its cheapest surviving neighbor. The input
		// graph is connected, so some cluster always has one, guaranteeing
		// the cluster count strictly decreases this level.
		for c := 0; c < numClusters; c++ {
			if d.find(c) != c {
				continue
			}
			for _, be := range boundary[c] {
				if d.find(be.neighbor) == d.find(c) {
					continue
				}
				out.Edges = append(out.Edges, core.EdgeR{U: be.origU, V: be.origV, R: be.origR})
				d.union(c, be.neighbor)
				break
			}
		}

		// Relabel clusters to a compact id space for the next level.
		newID := make(map[int]int)
		for v := range clusterOf {
			root := d.find(clusterOf[v])
			id, ok := newID[root]
			if !ok {
				id = len(newID)
				newID[root] = id
			}
			clusterOf[v] = id
		}
		numClusters = len(newID)
		scale *= rho
	}

	return out, nil
}

// growthParameter computes ρ_ℓ ≈ m^{1/log n} for the current level's
// boundary edge count m and the original vertex count n, per spec §4.1
// step 2. Guarded to stay finite and above 1 for degenerate small inputs.
func growthParameter(m, n int) float64 {
	if n < 3 || m < 1 {
		return 2.0
	}
	rho := math.Pow(float64(m), 1/math.Log(float64(n)))
	if math.IsNaN(rho) || math.IsInf(rho, 0) || rho < 1.01 {
		return 2.0
	}
	return rho
}
