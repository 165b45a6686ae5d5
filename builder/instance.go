// SPDX-License-Identifier: MIT
// Package: tohu/builder
//
// instance.go - Instance, one isolated generator graph of a definition.
//
// Determinism:
//   - Reset(seed) reseeds the namespace (class-separated seed derivation);
//     loop variables are left where the runner put them.
//   - Looped generation derives one seed per cycle from the overall seed
//     and resets the instance with it at the start of the cycle.

package builder

import (
	"fmt"
	"iter"
	"log/slog"

	"github.com/katalvlaran/tohu/core"
	"github.com/katalvlaran/tohu/depgraph"
	"github.com/katalvlaran/tohu/items"
	"github.com/katalvlaran/tohu/looping"
	"github.com/katalvlaran/tohu/namespace"
	"github.com/katalvlaran/tohu/schema"
)

// Instance produces records of one definition. Its Next returns a
// schema.Record, so an instance can itself be a field of another
// definition. An Instance is not safe for concurrent use.
type Instance struct {
	core.Base
	def    *Definition
	runner *looping.Runner
	ns     *namespace.Namespace
}

// Group is the output of one group of GenerateGrouped.
type Group struct {
	Key   looping.Combination
	Items *items.List
}

// Definition returns the definition the instance was spawned from.
func (in *Instance) Definition() *Definition { return in.def }

// Schema returns the record schema.
func (in *Instance) Schema() *schema.Schema { return in.ns.Schema() }

// Runner returns the instance's own loop runner. Moving it changes what
// the fields that depend on loop variables produce.
func (in *Instance) Runner() *looping.Runner { return in.runner }

// Namespace returns the assembled generator graph.
func (in *Instance) Namespace() *namespace.Namespace { return in.ns }

// Graph returns the dependency graph of the instance's generators.
func (in *Instance) Graph() (*depgraph.Graph, error) { return in.ns.Graph() }

// Describe renders the instance for debugging.
func (in *Instance) Describe() string { return in.ns.Describe() }

// NextRecord draws one record.
func (in *Instance) NextRecord() (schema.Record, error) { return in.ns.Next() }

// Next implements core.Generator; the value is a schema.Record.
func (in *Instance) Next() (any, error) {
	r, err := in.ns.Next()
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Reset reseeds every generator of the instance, then its clones.
func (in *Instance) Reset(seed int64) error {
	if err := in.ns.Reset(seed); err != nil {
		return err
	}
	return in.ResetClones(seed)
}

// Spawn returns a fresh instance of the same definition. The mapping is
// not consulted: an instance never shares generators with its host.
func (in *Instance) Spawn(*core.SpawnMapping) (core.Generator, error) {
	out, err := in.def.New()
	if err != nil {
		return nil, err
	}
	out.Base = in.Derive()

	return out, nil
}

// config merges the definition defaults with call options.
func (in *Instance) config(opts []Option) genConfig {
	return newGenConfig(append(append([]Option(nil), in.def.opts...), opts...)...)
}

// records yields n records from the current state.
func (in *Instance) records(n int) iter.Seq2[schema.Record, error] {
	return func(yield func(schema.Record, error) bool) {
		for range n {
			r, err := in.ns.Next()
			if !yield(r, err) || err != nil {
				return
			}
		}
	}
}

// Generate returns a list of num records. With WithSeed every pass over
// the list resets the instance first and yields the same records; without
// it every pass continues from the current state.
func (in *Instance) Generate(num int, opts ...Option) (*items.List, error) {
	if num < 0 {
		return nil, builderErrorf(MethodGenerate, "num=%d: %w", num, core.ErrNegativeCount)
	}
	cfg := in.config(opts)
	produce := func() iter.Seq2[schema.Record, error] {
		if !cfg.hasSeed {
			return in.records(num)
		}
		return func(yield func(schema.Record, error) bool) {
			if err := in.Reset(cfg.seed); err != nil {
				yield(schema.Record{}, err)
				return
			}
			in.records(num)(yield)
		}
	}

	return items.NewList(in.ns.Schema(), num, produce), nil
}

// cycle resets the instance with the cycle seed and yields its records.
// The runner has already been positioned on the cycle's combination.
func (in *Instance) cycle(c looping.Cycle) iter.Seq2[schema.Record, error] {
	return func(yield func(schema.Record, error) bool) {
		if err := in.ns.Reset(c.Seed); err != nil {
			yield(schema.Record{}, fmt.Errorf("cycle %d: %w", c.Index, err))
			return
		}
		in.records(c.Ticks)(yield)
	}
}

// GenerateLooped walks every loop cycle in enumeration order and produces
// the cycle's tick count of records, each cycle reset with its own derived
// seed. Requires WithTicks, here or on Define.
func (in *Instance) GenerateLooped(opts ...Option) (*items.List, error) {
	cfg := in.config(opts)
	if cfg.ticks == nil {
		return nil, builderErrorf(MethodGenerateLooped, "%w", ErrMissingTicks)
	}
	total, err := in.runner.TotalTicks(cfg.ticks)
	if err != nil {
		return nil, builderErrorf(MethodGenerateLooped, "%w", err)
	}
	cfg.logger.Debug("looped generation",
		slog.String("class", in.def.className),
		slog.Int("cycles", in.runner.NumCombinations()),
		slog.Int("items", total),
		slog.Int64("seed", cfg.seed))

	produce := func() iter.Seq2[schema.Record, error] {
		return looping.Produce(in.runner, cfg.ticks, cfg.seed, in.cycle)
	}

	return items.NewList(in.ns.Schema(), total, produce), nil
}

// GenerateGrouped splits looped generation by the values of the loop
// variables in names: one list per distinct value combination, in
// enumeration order. Every record keeps the seed it has in GenerateLooped,
// so concatenating the groups of an outermost-level split reproduces it.
func (in *Instance) GenerateGrouped(names []string, opts ...Option) ([]Group, error) {
	cfg := in.config(opts)
	if cfg.ticks == nil {
		return nil, builderErrorf(MethodGenerateGrouped, "%w", ErrMissingTicks)
	}
	keys, err := in.runner.Groups(names...)
	if err != nil {
		return nil, builderErrorf(MethodGenerateGrouped, "%w", err)
	}
	sizes := make([]int, len(keys))
	for c, err := range in.runner.Cycles(cfg.ticks, cfg.seed) {
		if err != nil {
			return nil, builderErrorf(MethodGenerateGrouped, "%w", err)
		}
		for i, k := range keys {
			if c.Combination.Matches(k) {
				sizes[i] += c.Ticks
			}
		}
	}

	out := make([]Group, len(keys))
	for i, k := range keys {
		produce := func() iter.Seq2[schema.Record, error] {
			return looping.ProduceGroup(in.runner, cfg.ticks, cfg.seed, k, in.cycle)
		}
		out[i] = Group{Key: k, Items: items.NewList(in.ns.Schema(), sizes[i], produce)}
	}

	return out, nil
}
