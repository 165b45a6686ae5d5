// SPDX-License-Identifier: MIT
package core_test

import (
	"math/rand"

	"github.com/katalvlaran/tohu/core"
)

// dice is a minimal seeded generator used across core tests.
type dice struct {
	core.Base
	sides int
	rng   *rand.Rand
}

func newDice(sides int) *dice {
	return &dice{Base: core.NewBase("Dice"), sides: sides, rng: rand.New(rand.NewSource(0))}
}

func (d *dice) Next() (any, error) { return d.rng.Intn(d.sides) + 1, nil }

func (d *dice) Reset(seed int64) error {
	d.rng.Seed(seed)
	return d.ResetClones(seed)
}

func (d *dice) Spawn(*core.SpawnMapping) (core.Generator, error) {
	return &dice{Base: d.Derive(), sides: d.sides, rng: rand.New(rand.NewSource(0))}, nil
}

// sum adds the draws of its (cloned) inputs; it resolves inputs through the
// spawn mapping the same way derived generators do.
type sum struct {
	core.Base
	inputs []core.Generator
}

func newSum(inputs ...core.Generator) (*sum, error) {
	s := &sum{Base: core.NewBase("Sum")}
	for _, in := range inputs {
		c, err := core.Clone(in)
		if err != nil {
			return nil, err
		}
		s.inputs = append(s.inputs, c)
	}

	return s, nil
}

func (s *sum) Next() (any, error) {
	total := 0
	for _, in := range s.inputs {
		v, err := in.Next()
		if err != nil {
			return nil, err
		}
		total += v.(int)
	}

	return total, nil
}

func (s *sum) Reset(seed int64) error { return s.ResetClones(seed) }

func (s *sum) Spawn(m *core.SpawnMapping) (core.Generator, error) {
	if m == nil {
		return newSum(s.inputs...)
	}
	resolved := make([]core.Generator, 0, len(s.inputs))
	for _, in := range s.inputs {
		p := in.Lineage().Parent()
		if p == nil {
			return nil, core.ErrMappingLookup
		}
		r, err := m.Resolve(p)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, r)
	}

	return newSum(resolved...)
}

func (s *sum) Dependencies() []core.Generator { return s.inputs }
