// Package sampler implements the stretch-weighted sampling step of the
// augmented-tree preconditioner pipeline (spec §4.4): each off-tree edge
// i is included independently with probability
//
//	p_i = min(1, C·k·strs[i] / Σstrs)
//
// where C is Options.Multiplier (default 5, spec §9 makes the source's
// hard-coded 5 configurable) and k is Options.K. The expected number of
// included edges is Σp_i ≈ C·k when every p_i < 1.
//
// Sample returns a core.AdjacencyMap seeded with every tree edge (as
// conductance) and then augmented with the sampled off-tree edges — the
// structure mindegree.NewSolver factors.
package sampler
