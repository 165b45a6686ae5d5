// SPDX-License-Identifier: MIT
// Package: tohu/core
//
// spawn.go - SpawnMapping, the visited-table of one graph spawn.
//
// Contract:
//   - Keys are generator identities (Base.ID), values the spawned counterparts.
//   - Within one spawn operation a generator maps to exactly one spawned node:
//     Resolve consults the table before spawning and records what it spawns.
//   - Entries keep insertion order; dependencies are recorded before the
//     generators that depend on them.

package core

import (
	"fmt"

	"github.com/google/uuid"
)

// SpawnEntry is one original -> spawned pair of a SpawnMapping.
type SpawnEntry struct {
	Original Generator
	Spawned  Generator
}

// SpawnMapping maps original generators to their spawned counterparts for
// the duration of one graph spawn. The zero value is not usable; call
// NewSpawnMapping.
type SpawnMapping struct {
	index   map[uuid.UUID]int
	entries []SpawnEntry
}

// NewSpawnMapping returns an empty mapping.
func NewSpawnMapping() *SpawnMapping {
	return &SpawnMapping{index: make(map[uuid.UUID]int)}
}

// Len returns the number of recorded originals. A nil mapping has length 0.
func (m *SpawnMapping) Len() int {
	if m == nil {
		return 0
	}

	return len(m.entries)
}

// Lookup returns the spawned counterpart of g, if any.
func (m *SpawnMapping) Lookup(g Generator) (Generator, bool) {
	if m == nil || g == nil {
		return nil, false
	}
	i, ok := m.index[g.Lineage().ID()]
	if !ok {
		return nil, false
	}

	return m.entries[i].Spawned, true
}

// Put records original -> spawned. Re-putting an original replaces its
// counterpart in place and keeps its original position.
func (m *SpawnMapping) Put(original, spawned Generator) error {
	if original == nil || spawned == nil {
		return fmt.Errorf("SpawnMapping.Put: %w", ErrNilGenerator)
	}
	id := original.Lineage().ID()
	if id == uuid.Nil {
		return fmt.Errorf("SpawnMapping.Put(%s): %w", original.Lineage(), ErrNoIdentity)
	}
	if i, ok := m.index[id]; ok {
		m.entries[i].Spawned = spawned
		return nil
	}
	m.index[id] = len(m.entries)
	m.entries = append(m.entries, SpawnEntry{Original: original, Spawned: spawned})

	return nil
}

// Resolve returns the counterpart of g in this spawn operation, spawning g
// through m (and recording it) when it has not been visited yet.
// A nil mapping cannot resolve anything and yields ErrMappingLookup.
//
// Complexity: O(1) for visited generators, otherwise the cost of g.Spawn(m).
func (m *SpawnMapping) Resolve(g Generator) (Generator, error) {
	if g == nil {
		return nil, fmt.Errorf("SpawnMapping.Resolve: %w", ErrNilGenerator)
	}
	if m == nil {
		return nil, fmt.Errorf("SpawnMapping.Resolve(%s): nil mapping: %w", g.Lineage(), ErrMappingLookup)
	}
	if s, ok := m.Lookup(g); ok {
		return s, nil
	}
	s, err := g.Spawn(m)
	if err != nil {
		return nil, err
	}
	if err = m.Put(g, s); err != nil {
		return nil, err
	}

	return s, nil
}

// Entries returns a copy of all pairs in insertion order.
func (m *SpawnMapping) Entries() []SpawnEntry {
	return m.Since(0)
}

// Since returns a copy of the pairs recorded after the first n entries.
// Callers use it to find out what a single Resolve call spawned.
func (m *SpawnMapping) Since(n int) []SpawnEntry {
	if m == nil || n >= len(m.entries) {
		return nil
	}
	if n < 0 {
		n = 0
	}
	out := make([]SpawnEntry, len(m.entries)-n)
	copy(out, m.entries[n:])

	return out
}
