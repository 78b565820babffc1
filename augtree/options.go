package augtree

import (
	"github.com/amguinto/treepcg/pcg"
	"github.com/amguinto/treepcg/sampler"
)

// Options aggregates every sub-package's configuration into the single
// knob set AugTreePCG takes.
type Options struct {
	// Root is the vertex AKPW's low-stretch tree (and the rooted tree
	// built over it) is anchored at. Any vertex works; AKPW's stretch
	// guarantees do not depend on the choice.
	Root int

	// Seed drives every random draw (AKPW's ball-growth radii, sampler's
	// edge-inclusion coin flips). A fixed seed makes a run reproducible.
	Seed int64

	// K is the sampler density parameter: the expected number of sampled
	// off-tree edges is roughly Multiplier*K.
	K int

	// Multiplier overrides the sampler's constant C. Zero uses
	// sampler.DefaultMultiplier.
	Multiplier float64

	// PCG configures the outer iteration's stopping criteria.
	PCG pcg.Options
}

// DefaultOptions returns Options rooted at vertex 0 with the given seed
// and sampler density k, sampler.DefaultMultiplier, and
// pcg.DefaultOptions().
func DefaultOptions(k int, seed int64) Options {
	return Options{
		Root: 0,
		Seed: seed,
		K:    k,
		PCG:  pcg.DefaultOptions(),
	}
}

func (o Options) samplerOptions() sampler.Options {
	m := o.Multiplier
	if m <= 0 {
		m = sampler.DefaultMultiplier
	}
	return sampler.Options{K: o.K, Multiplier: m}
}
