// SPDX-License-Identifier: MIT
package derived_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tohu/core"
	"github.com/katalvlaran/tohu/derived"
	"github.com/katalvlaran/tohu/primitives"
)

func identity(args []any, _ map[string]any) (any, error) { return args[0], nil }

func sumInts(args []any, kwargs map[string]any) (any, error) {
	var total int64
	for _, a := range args {
		total += a.(int64)
	}
	for _, v := range kwargs {
		total += v.(int64)
	}

	return total, nil
}

func TestApply_CallsWithFreshDraws(t *testing.T) {
	g, err := primitives.NewInteger(0, 1_000_000)
	require.NoError(t, err)
	a := derived.MustApply(identity, g)

	// After resetting the shared source, the Apply draws the same sequence the
	// source itself would draw.
	require.NoError(t, g.Reset(5))
	direct, err := core.Take(g, 10)
	require.NoError(t, err)
	require.NoError(t, g.Reset(5))
	viaApply, err := core.Take(a, 10)
	require.NoError(t, err)
	assert.Equal(t, direct, viaApply)
}

// Two derived generators sharing one source advance independently but
// restart together.
func TestApply_SharedSourceIndependence(t *testing.T) {
	g, err := primitives.NewInteger(0, 1_000_000)
	require.NoError(t, err)
	a := derived.MustApply(identity, g)
	b := derived.MustApply(identity, g)

	require.NoError(t, g.Reset(11))
	fromA, err := core.Take(a, 5)
	require.NoError(t, err)
	// b was not perturbed by a's five draws.
	fromB, err := core.Take(b, 5)
	require.NoError(t, err)
	assert.Equal(t, fromA, fromB)
}

func TestApply_Kwargs(t *testing.T) {
	one := primitives.NewConstant(int64(1))
	ten := primitives.NewConstant(int64(10))
	hundred := primitives.NewConstant(int64(100))

	var seen []string
	a, err := derived.Apply(func(args []any, kwargs map[string]any) (any, error) {
		seen = seen[:0]
		for k := range kwargs {
			seen = append(seen, k)
		}
		return sumInts(args, kwargs)
	}, one)
	require.NoError(t, err)
	_, err = a.WithKwarg("ten", ten)
	require.NoError(t, err)
	_, err = a.WithKwarg("hundred", hundred)
	require.NoError(t, err)

	v, err := a.Next()
	require.NoError(t, err)
	assert.Equal(t, int64(111), v)
	assert.ElementsMatch(t, []string{"ten", "hundred"}, seen)
	assert.Equal(t, []string{"ten", "hundred"}, a.KwargNames())
	assert.Len(t, a.Dependencies(), 3)
}

func TestApply_SpawnThroughMapping(t *testing.T) {
	g, err := primitives.NewInteger(0, 1_000_000)
	require.NoError(t, err)
	a := derived.MustApply(identity, g)
	b := derived.MustApply(identity, g)

	m := core.NewSpawnMapping()
	sa, err := m.Resolve(a)
	require.NoError(t, err)
	sb, err := m.Resolve(b)
	require.NoError(t, err)

	sg, ok := m.Lookup(g)
	require.True(t, ok)
	assert.Equal(t, 3, m.Len(), "g is spawned once")

	// The spawned graph is driven by the spawned g only.
	require.NoError(t, sg.Reset(21))
	va, err := core.Take(sa, 3)
	require.NoError(t, err)
	vb, err := core.Take(sb, 3)
	require.NoError(t, err)
	assert.Equal(t, va, vb)

	require.NoError(t, g.Reset(21))
	orig, err := core.Take(a, 3)
	require.NoError(t, err)
	assert.Equal(t, orig, va)
}

func TestApply_SpawnWithoutParent(t *testing.T) {
	g, err := primitives.NewInteger(0, 9)
	require.NoError(t, err)
	a := derived.MustApply(identity, g)

	// Cloning works without a mapping; the clone's arguments are clones of
	// a's arguments, which keeps them tied to g.
	c, err := core.Clone(a)
	require.NoError(t, err)
	require.NoError(t, g.Reset(3))
	x, _ := core.Take(a, 4)
	y, _ := core.Take(c, 4)
	assert.Equal(t, x, y)

	// A clone's arguments have parents too, so it can be spawned as well.
	_, err = core.NewSpawnMapping().Resolve(c)
	require.NoError(t, err)
}

func TestApply_Errors(t *testing.T) {
	_, err := derived.Apply(nil)
	assert.ErrorIs(t, err, derived.ErrNilFunc)

	_, err = derived.Apply(identity, nil)
	assert.ErrorIs(t, err, core.ErrNilGenerator)

	boom := errors.New("boom")
	a := derived.MustApply(func([]any, map[string]any) (any, error) { return nil, boom }, primitives.NewConstant(1))
	_, err = a.Next()
	assert.ErrorIs(t, err, boom)

	assert.Panics(t, func() { derived.MustApply(nil) })
}

func ExampleApply() {
	first := primitives.NewConstant("Ada")
	last := primitives.NewConstant("Lovelace")
	full := derived.MustApply(func(args []any, _ map[string]any) (any, error) {
		return fmt.Sprint(args[0], " ", args[1]), nil
	}, first, last)

	v, _ := full.Next()
	fmt.Println(v)
	// Output: Ada Lovelace
}
