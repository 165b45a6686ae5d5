// SPDX-License-Identifier: MIT
package schema_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/tohu/schema"
)

func TestDeriveName(t *testing.T) {
	cases := []struct {
		class string
		want  string
		err   error
	}{
		{"FooGenerator", "Foo", nil},
		{"PersonGenerator", "Person", nil},
		{"Quux", "", schema.ErrNaming},
		{"Generator", "", schema.ErrNaming},
		{"GeneratorFoo", "", schema.ErrNaming},
	}
	for _, tc := range cases {
		t.Run(tc.class, func(t *testing.T) {
			got, err := schema.DeriveName(tc.class)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNew_Validation(t *testing.T) {
	_, err := schema.New("Foo", "a", "b", "a")
	assert.ErrorIs(t, err, schema.ErrDuplicateField)
	_, err = schema.New("Foo", "a", "")
	assert.ErrorIs(t, err, schema.ErrEmptyField)
	_, err = schema.New("", "a")
	assert.ErrorIs(t, err, schema.ErrEmptyField)

	s, err := schema.New("Foo", "b", "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, s.Fields())
	assert.Equal(t, "Foo(b, a)", s.String())
	i, ok := s.Index("a")
	assert.True(t, ok)
	assert.Equal(t, 1, i)
}

func TestRecord_EqualityRoundTrip(t *testing.T) {
	s, err := schema.New("Quux", "a", "b")
	require.NoError(t, err)
	r, err := s.Record(1, 2)
	require.NoError(t, err)

	other, err := schema.New("Other", "x", "y")
	require.NoError(t, err)
	r2, err := other.Record(1, 2)
	require.NoError(t, err)

	assert.True(t, r.Equal([]any{1, 2}))
	assert.True(t, r.Equal(map[string]any{"a": 1, "b": 2}))
	assert.True(t, r.Equal(r2))
	assert.True(t, r.Equal(&r2))

	assert.False(t, r.Equal([]any{2, 1}))
	assert.False(t, r.Equal([]any{1, 2, 3}))
	assert.False(t, r.Equal(map[string]any{"a": 1, "c": 2}))
	assert.False(t, r.Equal(map[string]any{"a": 1}))
	assert.False(t, r.Equal("Quux(a=1, b=2)"))
	assert.False(t, r.Equal((*schema.Record)(nil)))
}

func TestRecord_Access(t *testing.T) {
	s, err := schema.New("Foo", "name", "age")
	require.NoError(t, err)
	r, err := s.Record("ann", 33)
	require.NoError(t, err)

	assert.Equal(t, "ann", r.At(0))
	v, ok := r.Get("age")
	assert.True(t, ok)
	assert.Equal(t, 33, v)
	_, ok = r.Get("email")
	assert.False(t, ok)
	assert.Equal(t, []any{"ann", 33}, r.Tuple())
	assert.Equal(t, map[string]any{"name": "ann", "age": 33}, r.Map())
	assert.Equal(t, "Foo(name=ann, age=33)", r.String())

	p, err := r.Project("age")
	require.NoError(t, err)
	assert.True(t, p.Equal([]any{33}))
	_, err = r.Project("email")
	assert.ErrorIs(t, err, schema.ErrUnknownField)

	_, err = s.Record("ann")
	assert.ErrorIs(t, err, schema.ErrArity)
}

func TestRecord_TupleIsCopy(t *testing.T) {
	s, _ := schema.New("Foo", "a")
	r, _ := s.Record(1)
	tup := r.Tuple()
	tup[0] = 99
	assert.Equal(t, 1, r.At(0))
}

func TestRecord_Msgpack(t *testing.T) {
	s, err := schema.New("Foo", "b", "a")
	require.NoError(t, err)
	r, err := s.Record("x", int64(7))
	require.NoError(t, err)

	raw, err := msgpack.Marshal(r)
	require.NoError(t, err)

	dec := msgpack.NewDecoder(bytes.NewReader(raw))
	n, err := dec.DecodeMapLen()
	require.NoError(t, err)
	require.Equal(t, 2, n)
	k, err := dec.DecodeString()
	require.NoError(t, err)
	assert.Equal(t, "b", k, "field order is preserved")

	var back map[string]any
	require.NoError(t, msgpack.Unmarshal(raw, &back))
	assert.Equal(t, "x", back["b"])
	assert.EqualValues(t, 7, back["a"])
}
