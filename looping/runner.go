// SPDX-License-Identifier: MIT
// Package: tohu/looping
//
// runner.go - Runner, the nested-loop engine over leveled loop variables.
//
// Enumeration order:
//   - Levels are visited from the highest number (outermost, slowest) to
//     level 1 (innermost, fastest).
//   - Variables of one level are paired element-wise, never crossed.
//   - A runner without variables has exactly one, empty, combination.

package looping

import (
	"fmt"
	"iter"
	"log/slog"
	"slices"

	"github.com/katalvlaran/tohu/core"
)

// Runner groups loop variables by level and enumerates their combinations.
// A Runner is not safe for concurrent use; spawn one per goroutine.
type Runner struct {
	levels map[int][]*Variable
	byName map[string]*Variable
	logger *slog.Logger
}

// NewRunner returns an empty runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		levels: make(map[int][]*Variable),
		byName: make(map[string]*Variable),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// AddAtLevel places vars at level, after any variables already there.
// Returns ErrInvalidLevel, ErrDuplicateVariable, core.ErrUnassigned for a
// variable without values, or ErrLevelLength when the value lists of the
// level's variables differ in length. On error the runner is unchanged.
func (r *Runner) AddAtLevel(level int, vars ...*Variable) error {
	if level < 1 {
		return fmt.Errorf("AddAtLevel(%d): %w", level, ErrInvalidLevel)
	}
	want := -1
	if cur := r.levels[level]; len(cur) > 0 {
		want = cur[0].Len()
	}
	seen := make(map[string]bool, len(vars))
	for _, v := range vars {
		if v == nil {
			return fmt.Errorf("AddAtLevel(%d): %w", level, core.ErrNilGenerator)
		}
		name := v.VarName()
		if _, dup := r.byName[name]; dup || seen[name] {
			return fmt.Errorf("AddAtLevel(%d): %q: %w", level, name, ErrDuplicateVariable)
		}
		seen[name] = true
		if v.State() == Unassigned {
			return fmt.Errorf("AddAtLevel(%d): %q: %w", level, name, core.ErrUnassigned)
		}
		if want >= 0 && v.Len() != want {
			return fmt.Errorf("AddAtLevel(%d): %q has %d values, level has %d: %w",
				level, name, v.Len(), want, ErrLevelLength)
		}
		want = v.Len()
	}

	for _, v := range vars {
		// level >= 1 was checked above
		_ = v.SetLevel(level)
		r.levels[level] = append(r.levels[level], v)
		r.byName[v.VarName()] = v
	}
	r.logger.Debug("loop variables added", slog.Int("level", level), slog.Int("count", len(vars)))

	return nil
}

// Levels returns the occupied levels in ascending order.
func (r *Runner) Levels() []int {
	out := make([]int, 0, len(r.levels))
	for l := range r.levels {
		out = append(out, l)
	}
	slices.Sort(out)

	return out
}

// MaxLevel returns the highest occupied level, 0 for an empty runner.
func (r *Runner) MaxLevel() int {
	m := 0
	for l := range r.levels {
		m = max(m, l)
	}

	return m
}

// AtLevel returns the variables of level in declaration order.
func (r *Runner) AtLevel(level int) []*Variable {
	return slices.Clone(r.levels[level])
}

// Variables returns all variables, outermost level first.
func (r *Runner) Variables() []*Variable {
	levels := r.Levels()
	out := make([]*Variable, 0, len(r.byName))
	for i := len(levels) - 1; i >= 0; i-- {
		out = append(out, r.levels[levels[i]]...)
	}

	return out
}

// Lookup returns the variable called name.
func (r *Runner) Lookup(name string) (*Variable, bool) {
	v, ok := r.byName[name]
	return v, ok
}

// NumCombinations returns the number of loop cycles.
func (r *Runner) NumCombinations() int {
	n := 1
	for _, vars := range r.levels {
		n *= vars[0].Len()
	}

	return n
}

// Combinations enumerates all combinations without touching the variables'
// positions.
// Complexity: O(C * V), C = NumCombinations, V = number of variables.
func (r *Runner) Combinations() iter.Seq[Combination] {
	return func(yield func(Combination) bool) {
		levels := r.Levels()
		slices.Reverse(levels) // outermost first
		pos := make([]int, len(levels))
		for {
			if !yield(r.combinationAt(levels, pos)) {
				return
			}
			// odometer over pos, last (innermost) digit fastest
			i := len(pos) - 1
			for ; i >= 0; i-- {
				pos[i]++
				if pos[i] < r.levels[levels[i]][0].Len() {
					break
				}
				pos[i] = 0
			}
			if i < 0 {
				return
			}
		}
	}
}

func (r *Runner) combinationAt(levels []int, pos []int) Combination {
	var c Combination
	for li, l := range levels {
		for _, v := range r.levels[l] {
			c.names = append(c.names, v.VarName())
			c.values = append(c.values, v.values[pos[li]])
			c.indices = append(c.indices, pos[li])
		}
	}

	return c
}

// Current returns the combination the variables currently sit at.
// Returns the error of the first variable that is not Ready.
func (r *Runner) Current() (Combination, error) {
	var c Combination
	for _, v := range r.Variables() {
		val, err := v.Current()
		if err != nil {
			return Combination{}, err
		}
		c.names = append(c.names, v.VarName())
		c.values = append(c.values, val)
		c.indices = append(c.indices, v.Index())
	}

	return c, nil
}

// Advance steps the variables of level. When they are exhausted they are
// rewound and the next level up is advanced (odometer carry). Advancing
// past MaxLevel reports AdvanceExhausted: every combination has been
// visited and all variables are back at their first value.
// Returns ErrInvalidLevel for level < 1.
func (r *Runner) Advance(level int) (core.Advance, error) {
	if level < 1 {
		return core.AdvanceExhausted, fmt.Errorf("Advance(%d): %w", level, ErrInvalidLevel)
	}
	for ; level <= r.MaxLevel(); level++ {
		vars := r.levels[level]
		if len(vars) == 0 {
			continue
		}
		exhausted := false
		for _, v := range vars {
			res, err := v.Advance()
			if err != nil {
				return core.AdvanceExhausted, err
			}
			exhausted = exhausted || res == core.AdvanceExhausted
		}
		if !exhausted {
			return core.AdvanceOk, nil
		}
		for _, v := range vars {
			if err := v.Rewind(); err != nil {
				return core.AdvanceExhausted, err
			}
		}
	}

	return core.AdvanceExhausted, nil
}

// Rewind moves every variable back to its first value.
func (r *Runner) Rewind() error {
	for _, v := range r.byName {
		if err := v.Rewind(); err != nil {
			return err
		}
	}

	return nil
}

// Seek positions the variables named in c at c's values. Variables c does
// not mention keep their position.
// Returns ErrUnknownVariable or ErrUnknownValue.
func (r *Runner) Seek(c Combination) error {
	for i, name := range c.names {
		v, ok := r.byName[name]
		if !ok {
			return fmt.Errorf("Seek(%s): %q: %w", c, name, ErrUnknownVariable)
		}
		var err error
		if idx := c.indices[i]; idx >= 0 {
			err = v.Seek(idx)
		} else {
			err = v.SeekValue(c.values[i])
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// Each rewinds the runner and walks all combinations by repeated
// Advance(1), calling fn with the variables positioned at each one. The
// variables end rewound. The first error from fn stops the walk.
func (r *Runner) Each(fn func(Combination) error) error {
	if err := r.Rewind(); err != nil {
		return err
	}
	for {
		c, err := r.Current()
		if err != nil {
			return err
		}
		if err = fn(c); err != nil {
			return err
		}
		res, err := r.Advance(1)
		if err != nil {
			return err
		}
		if res == core.AdvanceExhausted {
			return nil
		}
	}
}

// Spawn returns a runner holding fresh copies of every variable (same
// levels and values, first position) and the mapping from each original
// variable to its copy. Field generators that draw from a loop variable
// are spawned through this mapping, so they follow the new runner.
func (r *Runner) Spawn() (*Runner, *core.SpawnMapping, error) {
	out := NewRunner(WithLogger(r.logger))
	m := core.NewSpawnMapping()
	for _, level := range r.Levels() {
		vars := r.levels[level]
		spawned := make([]*Variable, len(vars))
		for i, v := range vars {
			spawned[i] = v.spawn()
			if err := m.Put(v, spawned[i]); err != nil {
				return nil, nil, err
			}
		}
		if err := out.AddAtLevel(level, spawned...); err != nil {
			return nil, nil, err
		}
	}

	return out, m, nil
}
