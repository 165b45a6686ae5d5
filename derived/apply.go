// SPDX-License-Identifier: MIT
// Package: tohu/derived
//
// apply.go - Apply, a generator computing a pure function of other
// generators' draws.
//
// Ownership:
//   - Apply owns clones of its argument generators, never the originals.
//     Resetting an original therefore resets the clone too, while draws made
//     by other composites through their own clones do not interfere.

package derived

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tohu/core"
)

// ErrNilFunc indicates Apply was given no function.
var ErrNilFunc = errors.New("derived: nil function")

// Func computes one value from positional and keyword argument draws.
// It must be pure: the same inputs always give the same output.
type Func func(args []any, kwargs map[string]any) (any, error)

type kwarg struct {
	name string
	gen  core.Generator
}

// ApplyGen calls a Func with fresh draws from its argument generators.
type ApplyGen struct {
	core.Base
	fn     Func
	args   []core.Generator
	kwargs []kwarg
}

// Apply returns a derived generator over args. Each argument is cloned.
func Apply(fn Func, args ...core.Generator) (*ApplyGen, error) {
	if fn == nil {
		return nil, fmt.Errorf("Apply: %w", ErrNilFunc)
	}
	a := &ApplyGen{Base: core.NewBase("Apply"), fn: fn}
	for i, g := range args {
		c, err := core.Clone(g)
		if err != nil {
			return nil, fmt.Errorf("Apply: argument #%d: %w", i, err)
		}
		a.args = append(a.args, c)
	}

	return a, nil
}

// MustApply is Apply for declarations known to be valid. It panics on error.
func MustApply(fn Func, args ...core.Generator) *ApplyGen {
	a, err := Apply(fn, args...)
	if err != nil {
		panic(err)
	}

	return a
}

// WithKwarg adds a keyword argument drawn from a clone of g. Keyword
// arguments are drawn after the positional ones, in the order they were
// added; re-adding a name replaces its generator in place.
func (a *ApplyGen) WithKwarg(name string, g core.Generator) (*ApplyGen, error) {
	c, err := core.Clone(g)
	if err != nil {
		return nil, fmt.Errorf("Apply.WithKwarg(%q): %w", name, err)
	}
	for i := range a.kwargs {
		if a.kwargs[i].name == name {
			a.kwargs[i].gen = c
			return a, nil
		}
	}
	a.kwargs = append(a.kwargs, kwarg{name: name, gen: c})

	return a, nil
}

// Next draws once from every argument, positional first, and calls the
// function.
func (a *ApplyGen) Next() (any, error) {
	args := make([]any, len(a.args))
	for i, g := range a.args {
		v, err := g.Next()
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	var kwargs map[string]any
	if len(a.kwargs) > 0 {
		kwargs = make(map[string]any, len(a.kwargs))
		for _, kw := range a.kwargs {
			v, err := kw.gen.Next()
			if err != nil {
				return nil, err
			}
			kwargs[kw.name] = v
		}
	}

	return a.fn(args, kwargs)
}

// Reset only resets the clones registered on a. The argument clones are
// reseeded through their parents, which the owner of the graph resets.
func (a *ApplyGen) Reset(seed int64) error { return a.ResetClones(seed) }

// Spawn rebuilds the generator on top of the spawned counterparts of the
// argument parents. With a nil mapping (the Clone path) the new generator
// wraps fresh clones of the current argument clones instead.
func (a *ApplyGen) Spawn(m *core.SpawnMapping) (core.Generator, error) {
	resolve := func(g core.Generator) (core.Generator, error) {
		if m == nil {
			return g, nil
		}
		p := g.Lineage().Parent()
		if p == nil {
			return nil, fmt.Errorf("Apply.Spawn: argument %s has no parent: %w", g.Lineage(), core.ErrMappingLookup)
		}

		return m.Resolve(p)
	}

	out := &ApplyGen{Base: a.Derive(), fn: a.fn}
	for _, g := range a.args {
		r, err := resolve(g)
		if err != nil {
			return nil, err
		}
		c, err := core.Clone(r)
		if err != nil {
			return nil, err
		}
		out.args = append(out.args, c)
	}
	for _, kw := range a.kwargs {
		r, err := resolve(kw.gen)
		if err != nil {
			return nil, err
		}
		c, err := core.Clone(r)
		if err != nil {
			return nil, err
		}
		out.kwargs = append(out.kwargs, kwarg{name: kw.name, gen: c})
	}

	return out, nil
}

// Dependencies returns the argument clones, positional first.
func (a *ApplyGen) Dependencies() []core.Generator {
	out := make([]core.Generator, 0, len(a.args)+len(a.kwargs))
	out = append(out, a.args...)
	for _, kw := range a.kwargs {
		out = append(out, kw.gen)
	}

	return out
}

// KwargNames returns the keyword argument names in insertion order.
func (a *ApplyGen) KwargNames() []string {
	out := make([]string, len(a.kwargs))
	for i, kw := range a.kwargs {
		out[i] = kw.name
	}

	return out
}
