// SPDX-License-Identifier: MIT
// Package: tohu/looping
//
// cycles.go - per-cycle item counts and seeds, production and grouping.
//
// Determinism:
//   - One SeedDeriver, seeded once from the overall seed, yields the seed of
//     every cycle in enumeration order. Grouped production replays the full
//     enumeration, so a cycle gets the same seed whether it is produced on
//     its own group or as part of the whole loop.

package looping

import (
	"fmt"
	"iter"
	"log/slog"
	"slices"

	"github.com/katalvlaran/tohu/core"
)

// Cycle is one loop cycle: a combination, its item count and its seed.
type Cycle struct {
	Index       int
	Combination Combination
	Ticks       int
	Seed        int64
}

// Cycles enumerates (combination, ticks, seed) for every loop cycle. When
// spec has no count for a cycle the enumeration ends there and a warning is
// logged. A spec error is yielded once and ends the sequence.
func (r *Runner) Cycles(spec TickSpec, seed int64) iter.Seq2[Cycle, error] {
	return func(yield func(Cycle, error) bool) {
		if spec == nil {
			yield(Cycle{}, fmt.Errorf("Cycles: nil spec: %w", ErrInvalidTicks))
			return
		}
		seeds := core.NewSeedDeriver().Reset(seed)
		i := 0
		for c := range r.Combinations() {
			n, ok, err := spec.Ticks(i, c)
			if err != nil {
				yield(Cycle{}, err)
				return
			}
			if !ok {
				r.logger.Warn("ticks specifier exhausted before the loop completed; stopping early",
					slog.Int("cycles_done", i),
					slog.Int("cycles_total", r.NumCombinations()))
				return
			}
			if !yield(Cycle{Index: i, Combination: c, Ticks: n, Seed: seeds.Next()}, nil) {
				return
			}
			i++
		}
	}
}

// TotalTicks sums the item counts of all cycles that spec covers.
func (r *Runner) TotalTicks(spec TickSpec) (int, error) {
	total := 0
	for c, err := range r.Cycles(spec, 0) {
		if err != nil {
			return 0, err
		}
		total += c.Ticks
	}

	return total, nil
}

// Produce walks the cycles of r, positions r's variables at each cycle's
// combination and concatenates what fn yields for it. fn typically resets
// a generator with the cycle seed and draws cycle.Ticks items.
func Produce[T any](r *Runner, spec TickSpec, seed int64, fn func(Cycle) iter.Seq2[T, error]) iter.Seq2[T, error] {
	return produce(r, spec, seed, nil, fn)
}

// ProduceGroup is Produce restricted to the cycles whose combination
// matches key. Seeds are those of the full enumeration.
func ProduceGroup[T any](r *Runner, spec TickSpec, seed int64, key Combination, fn func(Cycle) iter.Seq2[T, error]) iter.Seq2[T, error] {
	return produce(r, spec, seed, &key, fn)
}

func produce[T any](r *Runner, spec TickSpec, seed int64, key *Combination, fn func(Cycle) iter.Seq2[T, error]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		for c, err := range r.Cycles(spec, seed) {
			if err != nil {
				yield(zero, err)
				return
			}
			if key != nil && !c.Combination.Matches(*key) {
				continue
			}
			if err = r.Seek(c.Combination); err != nil {
				yield(zero, err)
				return
			}
			for v, err := range fn(c) {
				if !yield(v, err) || err != nil {
					return
				}
			}
		}
	}
}

// Groups returns the projections of all combinations onto names that
// differ in value, in first-seen order. Names are ordered like Variables,
// whatever order they are given in. Returns ErrUnknownVariable for names
// r does not have.
func (r *Runner) Groups(names ...string) ([]Combination, error) {
	for _, n := range names {
		if _, ok := r.byName[n]; !ok {
			return nil, fmt.Errorf("Groups(%q): %w", n, ErrUnknownVariable)
		}
	}
	var out []Combination
	for c := range r.Combinations() {
		p := c.Project(names...)
		if slices.ContainsFunc(out, p.Equal) {
			continue
		}
		out = append(out, p)
	}

	return slices.Clip(out), nil
}
