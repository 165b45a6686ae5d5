// SPDX-License-Identifier: MIT
package namespace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tohu/core"
	"github.com/katalvlaran/tohu/depgraph"
	"github.com/katalvlaran/tohu/derived"
	"github.com/katalvlaran/tohu/looping"
	"github.com/katalvlaran/tohu/namespace"
	"github.com/katalvlaran/tohu/primitives"
	"github.com/katalvlaran/tohu/schema"
)

func identity(args []any, _ map[string]any) (any, error) { return args[0], nil }

func integer(t *testing.T) *primitives.Integer {
	t.Helper()
	g, err := primitives.NewInteger(0, 1_000_000)
	require.NoError(t, err)
	return g
}

func draw(t *testing.T, ns *namespace.Namespace, seed int64, n int) []schema.Record {
	t.Helper()
	require.NoError(t, ns.Reset(seed))
	out := make([]schema.Record, n)
	for i := range out {
		r, err := ns.Next()
		require.NoError(t, err)
		out[i] = r
	}
	return out
}

func build(t *testing.T, class string, fields map[string]core.Generator, order ...string) *namespace.Namespace {
	t.Helper()
	ns := namespace.New(class, nil)
	for _, name := range order {
		require.NoError(t, ns.AddField(name, fields[name]))
	}
	name, err := schema.DeriveName(class)
	require.NoError(t, err)
	require.NoError(t, ns.Finalize(name))
	return ns
}

func TestNamespace_Deterministic(t *testing.T) {
	a, b := integer(t), integer(t)
	fields := map[string]core.Generator{"a": a, "b": b}
	ns := build(t, "FooGenerator", fields, "a", "b")

	first := draw(t, ns, 1234, 10)
	second := draw(t, ns, 1234, 10)
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"a", "b"}, ns.Schema().Fields())
	assert.Equal(t, "Foo", ns.Schema().Name())

	other := draw(t, ns, 4321, 10)
	assert.NotEqual(t, first, other)
}

func TestNamespace_InstancesAreIsolated(t *testing.T) {
	a := integer(t)
	fields := map[string]core.Generator{"a": a}
	ns1 := build(t, "FooGenerator", fields, "a")
	ns2 := build(t, "FooGenerator", fields, "a")

	require.NoError(t, ns1.Reset(5))
	require.NoError(t, ns2.Reset(5))
	r1, err := ns1.Next()
	require.NoError(t, err)
	// Drawing from ns1 again does not move ns2.
	_, _ = ns1.Next()
	r2, err := ns2.Next()
	require.NoError(t, err)
	assert.True(t, r1.Equal(r2))

	f1, _ := ns1.Field("a")
	f2, _ := ns2.Field("a")
	assert.NotSame(t, f1, f2)
	assert.NotSame(t, a, f1)
}

func TestNamespace_DomainSeparation(t *testing.T) {
	fields := map[string]core.Generator{"a": integer(t)}
	foo := build(t, "FooGenerator", fields, "a")
	bar := build(t, "BarGenerator", fields, "a")

	fromFoo := draw(t, foo, 99, 5)
	fromBar := draw(t, bar, 99, 5)
	same := true
	for i := range fromFoo {
		same = same && fromFoo[i].Equal(fromBar[i])
	}
	assert.False(t, same, "identical layouts under different class names must differ")
}

// A generator shared by two derived fields is spawned once; both fields
// advance independently but restart from the same seed.
func TestNamespace_SharedDependency(t *testing.T) {
	src := integer(t)
	left := derived.MustApply(identity, src)
	right := derived.MustApply(identity, src)
	fields := map[string]core.Generator{"left": left, "right": right}
	ns := build(t, "PairGenerator", fields, "left", "right")

	// src, left, right: src spawned once, implicitly.
	require.Len(t, ns.ResetList(), 3)

	for _, r := range draw(t, ns, 8, 20) {
		assert.Equal(t, r.At(0), r.At(1))
	}

	g, err := ns.Graph()
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount())
	order, err := depgraph.DependencyOrder(g)
	require.NoError(t, err)
	v, err := g.Vertex(order[0])
	require.NoError(t, err)
	assert.Equal(t, "Integer", v.Generator.Lineage().Kind())
}

// The same generator declared as two fields: the second holds a clone of the
// first, so both emit identical values.
func TestNamespace_ReusedFieldIsClone(t *testing.T) {
	g := integer(t)
	ns := namespace.New("TwinGenerator", nil)
	require.NoError(t, ns.AddField("a", g))
	require.NoError(t, ns.AddField("b", g))
	require.NoError(t, ns.Finalize("Twin"))
	assert.Len(t, ns.ResetList(), 1)

	fa, _ := ns.Field("a")
	fb, _ := ns.Field("b")
	assert.Same(t, fa, fb.Lineage().Parent())

	for _, r := range draw(t, ns, 3, 10) {
		assert.Equal(t, r.At(0), r.At(1))
	}
}

func TestNamespace_ExternalLoopVariable(t *testing.T) {
	runner := looping.NewRunner()
	x := looping.MustVariable("x", 10, 20)
	require.NoError(t, runner.AddAtLevel(1, x))
	spawned, mapping, err := runner.Spawn()
	require.NoError(t, err)

	plusX := derived.MustApply(func(args []any, _ map[string]any) (any, error) {
		return args[0].(int) + int(args[1].(int64)%2), nil
	}, x, integer(t))

	ns := namespace.New("LoopedGenerator", mapping)
	require.NoError(t, ns.AddHidden("x", x, true))
	require.NoError(t, ns.AddField("x", x))
	require.ErrorIs(t, ns.AddField("x", x), schema.ErrDuplicateField)
	require.NoError(t, ns.AddField("v", plusX))
	require.NoError(t, ns.Finalize("Looped"))

	// Only the integer and the Apply are reset by the namespace.
	assert.Len(t, ns.ResetList(), 2)
	sx, _ := spawned.Lookup("x")
	assert.True(t, ns.IsExternal(sx))
	hx, ok := ns.Hidden("x")
	require.True(t, ok)
	assert.Same(t, sx, hx)

	require.NoError(t, ns.Reset(1))
	r, err := ns.Next()
	require.NoError(t, err)
	assert.Equal(t, 10, r.At(0))

	_, err = spawned.Advance(1)
	require.NoError(t, err)
	r, err = ns.Next()
	require.NoError(t, err)
	assert.Equal(t, 20, r.At(0))
	v, _ := r.Get("v")
	assert.GreaterOrEqual(t, v.(int), 20)

	// Resetting the namespace leaves the runner's position alone.
	require.NoError(t, ns.Reset(1))
	r, _ = ns.Next()
	assert.Equal(t, 20, r.At(0))

	assert.Contains(t, ns.Describe(), "hidden x")
}

func TestNamespace_Errors(t *testing.T) {
	ns := namespace.New("FooGenerator", nil)
	_, err := ns.Next()
	assert.ErrorIs(t, err, namespace.ErrNotFinalized)

	assert.ErrorIs(t, ns.AddField("", integer(t)), schema.ErrEmptyField)
	assert.ErrorIs(t, ns.AddField("a", nil), core.ErrNilGenerator)
	require.NoError(t, ns.AddField("a", integer(t)), "a failed registration frees the name")

	require.NoError(t, ns.Finalize("Foo"))
	assert.ErrorIs(t, ns.Finalize("Foo"), namespace.ErrFinalized)
	assert.ErrorIs(t, ns.AddField("b", integer(t)), namespace.ErrFinalized)
	assert.Panics(t, func() { namespace.WithLogger(nil) })
}

func TestNamespace_FinalizeDerivesName(t *testing.T) {
	ns := namespace.New("QuuxGenerator", nil)
	require.NoError(t, ns.AddField("a", integer(t)))
	require.NoError(t, ns.Finalize(""))
	assert.Equal(t, "Quux", ns.Schema().Name())

	bad := namespace.New("Quux", nil)
	require.NoError(t, bad.AddField("a", integer(t)))
	assert.ErrorIs(t, bad.Finalize(""), schema.ErrNaming)
	assert.Nil(t, bad.Schema())
}
