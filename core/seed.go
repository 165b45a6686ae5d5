// SPDX-License-Identifier: MIT
// Package: tohu/core
//
// seed.go - SeedDeriver and domain-separated seeds.
//
// SeedDeriver is deliberately not a Generator: it never appears as a field
// and is never spawned, cloned or registered in a namespace.

package core

import (
	"math/rand"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// MaxSubSeed is the largest value SeedDeriver.Next returns.
const MaxSubSeed = 1<<32 - 1

// SeedDeriver produces a reproducible sequence of child seeds from one
// parent seed.
type SeedDeriver struct {
	rng *rand.Rand
}

// NewSeedDeriver returns a deriver seeded with 0.
func NewSeedDeriver() *SeedDeriver {
	return &SeedDeriver{rng: rand.New(rand.NewSource(0))}
}

// Reset reseeds the deriver; the following Next calls are a pure function
// of seed.
func (d *SeedDeriver) Reset(seed int64) *SeedDeriver {
	d.rng.Seed(seed)
	return d
}

// Next returns the next child seed in [0, MaxSubSeed].
func (d *SeedDeriver) Next() int64 {
	return int64(d.rng.Uint32())
}

// DomainSeed folds a domain label into seed, so that two unrelated domains
// (e.g. two custom generators whose fields happen to be declared with the
// same types in the same order) never share a seed tree by coincidence.
func DomainSeed(domain string, seed int64) int64 {
	return int64(xxhash.Sum64String(domain + "/" + strconv.FormatInt(seed, 10)))
}
