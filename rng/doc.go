// Package rng wraps the single seeded random source threaded through the
// whole pipeline (spec §5: "a single RNG is threaded through the
// pipeline... owned by the top-level driver and passed by mutable
// borrow"). Every stochastic decision — AKPW's exponential ball radii,
// the sampler's Bernoulli draws — goes through one *RNG in a fixed,
// documented order, so fixing rng.seed fixes the output (spec §9).
//
// Uniform draws use math/rand directly; exponential draws are delegated
// to gonum.org/v1/gonum/stat/distuv's Exponential distribution, the same
// API family as the gonum-gonum example pack's distuv.Gamma/distuv.Beta.
package rng

import (
	"math/rand"
	"time"

	"gonum.org/v1/gonum/stat/distuv"
)

// RNG is a seeded source for every random decision in the pipeline.
type RNG struct {
	src *rand.Rand
}

// New returns an RNG seeded deterministically from seed. Equal seeds
// reproduce an identical draw sequence across runs.
func New(seed int64) *RNG {
	return &RNG{src: rand.New(rand.NewSource(seed))}
}

// NewFromTime returns an RNG seeded from the current time, for callers
// that did not set rng.seed and accept run-to-run variation (spec §1's
// "no guaranteed bit-exact reproducibility across runs" is the default).
func NewFromTime() *RNG {
	return New(time.Now().UnixNano())
}

// Float64 returns a uniform draw in [0,1), used by the sampler's
// Bernoulli edge-inclusion decisions.
func (r *RNG) Float64() float64 {
	return r.src.Float64()
}

// Exponential returns a draw from an exponential distribution with the
// given rate, used by AKPW's ball-growth radii (spec §4.1 step 2:
// "exponentially distributed radius").
func (r *RNG) Exponential(rate float64) float64 {
	d := distuv.Exponential{Rate: rate, Src: r.src}
	return d.Rand()
}

// Intn returns a uniform draw in [0,n). No pipeline stage calls it; AKPW
// breaks ties deterministically by cluster id instead.
func (r *RNG) Intn(n int) int {
	return r.src.Intn(n)
}
