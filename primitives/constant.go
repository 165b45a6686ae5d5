// SPDX-License-Identifier: MIT
// Package: tohu/primitives
//
// constant.go - the stateless Constant generator.

package primitives

import "github.com/katalvlaran/tohu/core"

// Constant repeats one value indefinitely.
type Constant struct {
	core.Base
	value any
}

// NewConstant returns a generator that always yields value.
func NewConstant(value any) *Constant {
	return &Constant{Base: core.NewBase("Constant"), value: value}
}

// Next returns the constant value.
func (c *Constant) Next() (any, error) { return c.value, nil }

// Reset has no effect on the value; seed is only forwarded to clones so the
// lineage contract holds for every generator.
func (c *Constant) Reset(seed int64) error { return c.ResetClones(seed) }

// Spawn returns a new Constant with the same value.
func (c *Constant) Spawn(*core.SpawnMapping) (core.Generator, error) {
	return &Constant{Base: c.Derive(), value: c.value}, nil
}
