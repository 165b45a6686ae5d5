// SPDX-License-Identifier: MIT
// Package: tohu/primitives
//
// choice.go - categorical draws from a fixed value list.

package primitives

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/tohu/core"
)

// Choice picks one of a fixed list of values with equal probability.
type Choice struct {
	core.Base
	values []any
	rng    *rand.Rand
}

// NewChoice returns a generator drawing from values. The slice is copied.
// Returns ErrInvalidParam if values is empty.
func NewChoice(values ...any) (*Choice, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("NewChoice: no values: %w", ErrInvalidParam)
	}
	vs := make([]any, len(values))
	copy(vs, values)

	return &Choice{Base: core.NewBase("Choice"), values: vs, rng: newRand()}, nil
}

// Next returns one of the values.
func (g *Choice) Next() (any, error) { return g.values[g.rng.Intn(len(g.values))], nil }

// Reset reseeds the generator and its clones.
func (g *Choice) Reset(seed int64) error {
	g.rng.Seed(seed)
	return g.ResetClones(seed)
}

// Spawn returns a Choice over the same values; the backing slice is shared
// because it is never mutated.
func (g *Choice) Spawn(*core.SpawnMapping) (core.Generator, error) {
	return &Choice{Base: g.Derive(), values: g.values, rng: newRand()}, nil
}
