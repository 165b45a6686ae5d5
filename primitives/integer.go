// SPDX-License-Identifier: MIT
// Package: tohu/primitives
//
// integer.go - uniform integers and booleans.

package primitives

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/tohu/core"
)

// newRand returns the unseeded-but-deterministic source every primitive
// starts with (seed 0) until Reset is called.
func newRand() *rand.Rand { return rand.New(rand.NewSource(0)) }

// Integer draws integers k with low <= k <= high.
type Integer struct {
	core.Base
	low, high int64
	rng       *rand.Rand
}

// NewInteger returns a uniform integer generator over [low, high].
// Returns ErrInvalidParam if low > high.
func NewInteger(low, high int64) (*Integer, error) {
	if low > high {
		return nil, fmt.Errorf("NewInteger(%d, %d): low > high: %w", low, high, ErrInvalidParam)
	}

	return &Integer{Base: core.NewBase("Integer"), low: low, high: high, rng: newRand()}, nil
}

// Next returns the next integer as int64.
func (g *Integer) Next() (any, error) {
	// span wraps to 0 for the full int64 range
	span := uint64(g.high-g.low) + 1
	switch {
	case span == 0:
		return int64(g.rng.Uint64()), nil
	case span <= math.MaxInt64:
		return g.low + g.rng.Int63n(int64(span)), nil
	}
	// spans above 2^63: rejection sampling over a multiple of span
	limit := math.MaxUint64 - math.MaxUint64%span
	for {
		if u := g.rng.Uint64(); u < limit {
			return g.low + int64(u%span), nil
		}
	}
}

// Reset reseeds the generator and its clones.
func (g *Integer) Reset(seed int64) error {
	g.rng.Seed(seed)
	return g.ResetClones(seed)
}

// Spawn returns an Integer over the same range with a fresh RNG.
func (g *Integer) Spawn(*core.SpawnMapping) (core.Generator, error) {
	return &Integer{Base: g.Derive(), low: g.low, high: g.high, rng: newRand()}, nil
}

// Boolean yields true with probability p.
type Boolean struct {
	core.Base
	p   float64
	rng *rand.Rand
}

// NewBoolean returns a Bernoulli(p) generator. Returns ErrInvalidParam if
// p is outside [0, 1].
func NewBoolean(p float64) (*Boolean, error) {
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("NewBoolean(%g): %w", p, ErrInvalidParam)
	}

	return &Boolean{Base: core.NewBase("Boolean"), p: p, rng: newRand()}, nil
}

// Next returns the next bool.
func (g *Boolean) Next() (any, error) { return g.rng.Float64() < g.p, nil }

// Reset reseeds the generator and its clones.
func (g *Boolean) Reset(seed int64) error {
	g.rng.Seed(seed)
	return g.ResetClones(seed)
}

// Spawn returns a Boolean with the same p and a fresh RNG.
func (g *Boolean) Spawn(*core.SpawnMapping) (core.Generator, error) {
	return &Boolean{Base: g.Derive(), p: g.p, rng: newRand()}, nil
}
