// SPDX-License-Identifier: MIT
package looping_test

import (
	"bytes"
	"errors"
	"iter"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tohu/core"
	"github.com/katalvlaran/tohu/looping"
)

// xy returns a runner with x=[1,2] at level 2 and y=[a,b,c] at level 1.
func xy(t *testing.T, opts ...looping.Option) *looping.Runner {
	t.Helper()
	r := looping.NewRunner(opts...)
	require.NoError(t, r.AddAtLevel(2, looping.MustVariable("x", 1, 2)))
	require.NoError(t, r.AddAtLevel(1, looping.MustVariable("y", "a", "b", "c")))
	return r
}

func collect(r *looping.Runner) [][]any {
	var out [][]any
	for c := range r.Combinations() {
		out = append(out, c.Values())
	}
	return out
}

func TestRunner_EnumerationOrder(t *testing.T) {
	r := xy(t)
	assert.Equal(t, [][]any{
		{1, "a"}, {1, "b"}, {1, "c"},
		{2, "a"}, {2, "b"}, {2, "c"},
	}, collect(r))
	assert.Equal(t, 6, r.NumCombinations())
	assert.Equal(t, []int{1, 2}, r.Levels())
	assert.Equal(t, 2, r.MaxLevel())

	names := make([]string, 0, 2)
	for _, v := range r.Variables() {
		names = append(names, v.VarName())
	}
	assert.Equal(t, []string{"x", "y"}, names, "outermost first")
}

func TestRunner_PairedLevel(t *testing.T) {
	r := looping.NewRunner()
	require.NoError(t, r.AddAtLevel(1,
		looping.MustVariable("n", 1, 2, 3),
		looping.MustVariable("s", "a", "b", "c"),
	))
	assert.Equal(t, [][]any{{1, "a"}, {2, "b"}, {3, "c"}}, collect(r))
}

func TestRunner_Empty(t *testing.T) {
	r := looping.NewRunner()
	assert.Equal(t, 1, r.NumCombinations())
	got := collect(r)
	require.Len(t, got, 1)
	assert.Empty(t, got[0])
}

func TestRunner_AddAtLevelValidation(t *testing.T) {
	r := looping.NewRunner()
	assert.ErrorIs(t, r.AddAtLevel(0, looping.MustVariable("x", 1)), looping.ErrInvalidLevel)
	assert.ErrorIs(t, r.AddAtLevel(1,
		looping.MustVariable("x", 1, 2),
		looping.MustVariable("y", 1),
	), looping.ErrLevelLength)
	assert.Empty(t, r.Variables(), "failed adds leave the runner unchanged")

	require.NoError(t, r.AddAtLevel(1, looping.MustVariable("x", 1, 2)))
	assert.ErrorIs(t, r.AddAtLevel(2, looping.MustVariable("x", 3)), looping.ErrDuplicateVariable)
	assert.ErrorIs(t, r.AddAtLevel(1, looping.MustVariable("z", 1, 2, 3)), looping.ErrLevelLength)

	unassigned, err := looping.NewVariable("u", nil)
	require.NoError(t, err)
	assert.ErrorIs(t, r.AddAtLevel(3, unassigned), core.ErrUnassigned)
}

func TestRunner_OdometerAdvance(t *testing.T) {
	r := xy(t)
	var seen [][]any
	err := r.Each(func(c looping.Combination) error {
		seen = append(seen, c.Values())
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, collect(r), seen, "odometer walk matches enumeration")

	cur, err := r.Current()
	require.NoError(t, err)
	assert.Equal(t, []any{1, "a"}, cur.Values(), "variables end rewound")

	res, err := r.Advance(3)
	require.NoError(t, err)
	assert.Equal(t, core.AdvanceExhausted, res)
	_, err = r.Advance(0)
	assert.ErrorIs(t, err, looping.ErrInvalidLevel)

	// Carry: advancing level 1 three times moves x.
	for i := 0; i < 3; i++ {
		res, err = r.Advance(1)
		require.NoError(t, err)
		assert.Equal(t, core.AdvanceOk, res)
	}
	cur, _ = r.Current()
	assert.Equal(t, []any{2, "a"}, cur.Values())
}

func TestRunner_EachStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	n := 0
	err := xy(t).Each(func(looping.Combination) error {
		n++
		if n == 2 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, n)
}

func TestRunner_Cycles(t *testing.T) {
	r := xy(t)
	var first []looping.Cycle
	for c, err := range r.Cycles(looping.Fixed(4), 99) {
		require.NoError(t, err)
		first = append(first, c)
	}
	require.Len(t, first, 6)

	var second []looping.Cycle
	for c, err := range r.Cycles(looping.Fixed(4), 99) {
		require.NoError(t, err)
		second = append(second, c)
	}
	assert.Equal(t, first, second, "same seed, same cycle seeds")

	seeds := map[int64]bool{}
	for i, c := range first {
		assert.Equal(t, i, c.Index)
		assert.Equal(t, 4, c.Ticks)
		seeds[c.Seed] = true
	}
	assert.Len(t, seeds, 6)
}

func TestRunner_PerCycleTicks(t *testing.T) {
	r := xy(t)
	spec := looping.PerCycle(func(vals map[string]any) int {
		return vals["x"].(int) * 10
	})
	total, err := r.TotalTicks(spec)
	require.NoError(t, err)
	assert.Equal(t, 3*10+3*20, total)

	bad := looping.PerCycle(func(map[string]any) int { return -1 })
	_, err = r.TotalTicks(bad)
	assert.ErrorIs(t, err, looping.ErrInvalidTicks)
}

func TestRunner_SequenceExhaustionStopsEarly(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	r := looping.NewRunner(looping.WithLogger(logger))
	require.NoError(t, r.AddAtLevel(1, looping.MustVariable("x", 1, 2, 3)))

	var ticks []int
	for c, err := range r.Cycles(looping.Sequence{3, 5}, 1) {
		require.NoError(t, err)
		ticks = append(ticks, c.Ticks)
	}
	assert.Equal(t, []int{3, 5}, ticks)
	assert.Contains(t, buf.String(), "level=WARN")

	total, err := r.TotalTicks(looping.Sequence{3, 5})
	require.NoError(t, err)
	assert.Equal(t, 8, total)
}

func TestRunner_ProduceSeeksVariables(t *testing.T) {
	r := xy(t)
	x, _ := r.Lookup("x")
	y, _ := r.Lookup("y")

	seq := looping.Produce(r, looping.Fixed(1), 5, func(c looping.Cycle) iter.Seq2[string, error] {
		return func(yield func(string, error) bool) {
			xv, _ := x.Next()
			yv, _ := y.Next()
			yield(string(rune('0'+xv.(int)))+yv.(string), nil)
		}
	})
	var got []string
	for v, err := range seq {
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []string{"1a", "1b", "1c", "2a", "2b", "2c"}, got)
}

func TestRunner_Groups(t *testing.T) {
	r := xy(t)
	groups, err := r.Groups("x")
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, []any{1}, groups[0].Values())
	assert.Equal(t, []any{2}, groups[1].Values())

	groups, err = r.Groups("y", "x")
	require.NoError(t, err)
	require.Len(t, groups, 6)
	assert.Equal(t, []string{"x", "y"}, groups[0].Names(), "names follow variable order")

	_, err = r.Groups("nope")
	assert.ErrorIs(t, err, looping.ErrUnknownVariable)
}

func TestRunner_GroupsRepeatedValues(t *testing.T) {
	r := looping.NewRunner()
	require.NoError(t, r.AddAtLevel(1, looping.MustVariable("x", 1, 1, 2)))

	groups, err := r.Groups("x")
	require.NoError(t, err)
	require.Len(t, groups, 2, "equal values share a group")
	assert.Equal(t, []any{1}, groups[0].Values())
	assert.Equal(t, []any{2}, groups[1].Values())

	var cycles int
	for _, g := range groups {
		seq := looping.ProduceGroup(r, looping.Fixed(1), 3, g, func(c looping.Cycle) iter.Seq2[int, error] {
			return func(yield func(int, error) bool) { yield(c.Index, nil) }
		})
		for _, err := range seq {
			require.NoError(t, err)
			cycles++
		}
	}
	assert.Equal(t, 3, cycles, "every cycle lands in exactly one group")
}

func TestRunner_ProduceGroupKeepsSeeds(t *testing.T) {
	r := xy(t)
	all := map[string]int64{}
	for c, err := range r.Cycles(looping.Fixed(1), 7) {
		require.NoError(t, err)
		all[c.Combination.String()] = c.Seed
	}

	key := looping.NewCombination([]string{"x"}, []any{2})
	seq := looping.ProduceGroup(r, looping.Fixed(1), 7, key, func(c looping.Cycle) iter.Seq2[looping.Cycle, error] {
		return func(yield func(looping.Cycle, error) bool) { yield(c, nil) }
	})
	n := 0
	for c, err := range seq {
		require.NoError(t, err)
		n++
		v, _ := c.Combination.Get("x")
		assert.Equal(t, 2, v)
		assert.Equal(t, all[c.Combination.String()], c.Seed)
	}
	assert.Equal(t, 3, n)
}

func TestRunner_Spawn(t *testing.T) {
	r := xy(t)
	x, _ := r.Lookup("x")
	_, _ = x.Advance()

	s, m, err := r.Spawn()
	require.NoError(t, err)
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, collect(r), collect(s))

	sx, ok := s.Lookup("x")
	require.True(t, ok)
	mapped, ok := m.Lookup(x)
	require.True(t, ok)
	assert.Same(t, sx, mapped)
	assert.Equal(t, 0, sx.Index(), "spawned variables start at their first value")
	assert.Equal(t, 2, sx.Level())

	// Moving the copy does not move the original.
	_, _ = s.Advance(2)
	assert.Equal(t, 1, x.Index())
}

func TestRunner_Seek(t *testing.T) {
	r := xy(t)
	require.NoError(t, r.Seek(looping.NewCombination([]string{"x", "y"}, []any{2, "c"})))
	cur, err := r.Current()
	require.NoError(t, err)
	assert.Equal(t, []any{2, "c"}, cur.Values())

	assert.ErrorIs(t, r.Seek(looping.NewCombination([]string{"z"}, []any{1})), looping.ErrUnknownVariable)
	assert.ErrorIs(t, r.Seek(looping.NewCombination([]string{"x"}, []any{9})), looping.ErrUnknownValue)
}
