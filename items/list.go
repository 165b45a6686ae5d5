// SPDX-License-Identifier: MIT
// Package: tohu/items

// Package items holds generated records as lazy, restartable lists.
//
// A List does not store records by default. Every iteration calls its
// producer again, which regenerates the records from scratch (the producer
// resets the generator with the list's seed). Compute materialises the
// records once when repeated passes should not pay for regeneration.
package items

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/tohu/schema"
)

// Producer returns a fresh record stream on every call.
type Producer func() iter.Seq2[schema.Record, error]

// List is a restartable sequence of records of one schema.
// A List is not safe for concurrent use while Compute runs.
type List struct {
	schema  *schema.Schema
	size    int
	produce Producer
	cached  []schema.Record
}

// NewList wraps produce. size is the number of records produce is expected
// to yield; it is reported by Len without producing anything.
func NewList(s *schema.Schema, size int, produce Producer) *List {
	return &List{schema: s, size: size, produce: produce}
}

// FromRecords returns an already computed list.
func FromRecords(s *schema.Schema, records []schema.Record) *List {
	l := &List{schema: s, size: len(records), cached: records}
	l.produce = l.fromCache
	return l
}

// Schema returns the record schema.
func (l *List) Schema() *schema.Schema { return l.schema }

// Fields returns the field names, the column list of export writers.
func (l *List) Fields() []string { return l.schema.Fields() }

// Len returns the declared number of records.
func (l *List) Len() int { return l.size }

// IsCached reports whether Compute has run.
func (l *List) IsCached() bool { return l.cached != nil }

// All yields the records, from the cache when computed, otherwise by
// producing them again.
func (l *List) All() iter.Seq2[schema.Record, error] {
	if l.cached != nil {
		return l.fromCache()
	}

	return l.produce()
}

func (l *List) fromCache() iter.Seq2[schema.Record, error] {
	return func(yield func(schema.Record, error) bool) {
		for _, r := range l.cached {
			if !yield(r, nil) {
				return
			}
		}
	}
}

// Compute produces all records once and serves later iterations from
// memory. It returns l for chaining.
func (l *List) Compute() (*List, error) {
	if l.cached != nil {
		return l, nil
	}
	recs := make([]schema.Record, 0, l.size)
	for r, err := range l.produce() {
		if err != nil {
			return nil, err
		}
		recs = append(recs, r)
	}
	l.cached = recs
	l.size = len(recs)

	return l, nil
}

// Records returns all records as a slice.
func (l *List) Records() ([]schema.Record, error) {
	out := make([]schema.Record, 0, l.size)
	for r, err := range l.All() {
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}

	return out, nil
}

// Select returns a lazy list of the records projected onto fields.
// Returns schema.ErrUnknownField for fields the schema does not have.
func (l *List) Select(fields ...string) (*List, error) {
	s, err := l.schema.Project(fields...)
	if err != nil {
		return nil, fmt.Errorf("Select: %w", err)
	}
	produce := func() iter.Seq2[schema.Record, error] {
		return func(yield func(schema.Record, error) bool) {
			for r, err := range l.All() {
				if err != nil {
					yield(schema.Record{}, err)
					return
				}
				p, err := r.Project(fields...)
				if !yield(p, err) || err != nil {
					return
				}
			}
		}
	}

	return NewList(s, l.size, produce), nil
}

// String renders "<List containing N items>".
func (l *List) String() string {
	return fmt.Sprintf("<List containing %d items>", l.size)
}
