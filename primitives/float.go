// SPDX-License-Identifier: MIT
// Package: tohu/primitives
//
// float.go - uniform floats over [low, high).

package primitives

import (
	"fmt"
	randv2 "math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/tohu/core"
)

// Float draws float64 values uniformly from [low, high).
type Float struct {
	core.Base
	src  *randv2.PCG
	dist distuv.Uniform
}

// NewFloat returns a uniform float generator. Returns ErrInvalidParam if
// low >= high.
func NewFloat(low, high float64) (*Float, error) {
	if !(low < high) {
		return nil, fmt.Errorf("NewFloat(%g, %g): low must be below high: %w", low, high, ErrInvalidParam)
	}

	return newFloat(core.NewBase("Float"), low, high), nil
}

func newFloat(base core.Base, low, high float64) *Float {
	src := randv2.NewPCG(0, 0)
	return &Float{Base: base, src: src, dist: distuv.Uniform{Min: low, Max: high, Src: src}}
}

// Next returns the next float64.
func (g *Float) Next() (any, error) { return g.dist.Rand(), nil }

// Reset reseeds the PCG source and the clones.
func (g *Float) Reset(seed int64) error {
	g.src.Seed(uint64(seed), 0)
	return g.ResetClones(seed)
}

// Spawn returns a Float over the same interval with a fresh source.
func (g *Float) Spawn(*core.SpawnMapping) (core.Generator, error) {
	return newFloat(g.Derive(), g.dist.Min, g.dist.Max), nil
}
