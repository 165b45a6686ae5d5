// SPDX-License-Identifier: MIT
package items_test

import (
	"errors"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tohu/items"
	"github.com/katalvlaran/tohu/schema"
)

// counting returns a list of n records (i, 2i) and a counter of how many
// times it was produced.
func counting(t *testing.T, n int) (*items.List, *int) {
	t.Helper()
	s, err := schema.New("Pair", "a", "b")
	require.NoError(t, err)
	calls := 0
	l := items.NewList(s, n, func() iter.Seq2[schema.Record, error] {
		calls++
		return func(yield func(schema.Record, error) bool) {
			for i := 0; i < n; i++ {
				r, err := s.Record(i, 2*i)
				if !yield(r, err) {
					return
				}
			}
		}
	})

	return l, &calls
}

func TestList_ReproducesOnEveryPass(t *testing.T) {
	l, calls := counting(t, 3)
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, 0, *calls, "nothing is produced up front")

	first, err := l.Records()
	require.NoError(t, err)
	second, err := l.Records()
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 2, *calls)
	assert.True(t, first[2].Equal([]any{2, 4}))
}

func TestList_Compute(t *testing.T) {
	l, calls := counting(t, 4)
	_, err := l.Compute()
	require.NoError(t, err)
	assert.True(t, l.IsCached())
	for range 3 {
		recs, err := l.Records()
		require.NoError(t, err)
		assert.Len(t, recs, 4)
	}
	assert.Equal(t, 1, *calls)
}

func TestList_Select(t *testing.T) {
	l, _ := counting(t, 2)
	sel, err := l.Select("b")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, sel.Fields())
	recs, err := sel.Records()
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.True(t, recs[1].Equal(map[string]any{"b": 2}))

	_, err = l.Select("c")
	assert.ErrorIs(t, err, schema.ErrUnknownField)
}

func TestList_ProducerError(t *testing.T) {
	s, _ := schema.New("X", "a")
	boom := errors.New("boom")
	l := items.NewList(s, 1, func() iter.Seq2[schema.Record, error] {
		return func(yield func(schema.Record, error) bool) { yield(schema.Record{}, boom) }
	})
	_, err := l.Records()
	assert.ErrorIs(t, err, boom)
	_, err = l.Compute()
	assert.ErrorIs(t, err, boom)
	assert.False(t, l.IsCached())
}

func TestFromRecords(t *testing.T) {
	s, _ := schema.New("X", "a")
	r, _ := s.Record(1)
	l := items.FromRecords(s, []schema.Record{r})
	assert.True(t, l.IsCached())
	assert.Equal(t, "<List containing 1 items>", l.String())
	got, err := l.Records()
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
