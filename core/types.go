// SPDX-License-Identifier: MIT
// Package: tohu/core
//
// types.go - the Generator contract, the embeddable Base and the Advance
// result variant.

package core

import (
	"fmt"

	"github.com/google/uuid"
)

// idDisplayLen is the number of hex characters of the uuid shown by String.
const idDisplayLen = 6

// Generator is a stateful, reseedable, conceptually infinite value stream.
//
// Contract:
//   - Next advances and returns the next value. It may be called indefinitely.
//   - Reset deterministically reinitialises the generator from seed and MUST
//     also reset every registered clone with the same seed (see Base.ResetClones).
//   - Spawn returns a structurally identical, independently owned generator.
//     Composite generators resolve their dependencies through m (consulting it
//     before spawning); m is nil on the Clone path.
//   - Lineage exposes the embedded Base (identity, name, clones, parent).
type Generator interface {
	Next() (any, error)
	Reset(seed int64) error
	Spawn(m *SpawnMapping) (Generator, error)
	Lineage() *Base
}

// Dependent is implemented by composite generators that draw from other
// generators. It is used for introspection (dependency graphs), never for
// value production.
type Dependent interface {
	Dependencies() []Generator
}

// Base carries the identity and clone bookkeeping shared by all generators.
// Embed it by value and initialise it with NewBase (or Base.Derive on spawn).
type Base struct {
	id     uuid.UUID
	kind   string
	name   string
	clones []Generator
	parent Generator
}

// NewBase returns a Base with a fresh identity. kind is a short type label
// used in debug output ("Integer", "Apply", ...).
func NewBase(kind string) Base {
	return Base{id: uuid.New(), kind: kind}
}

// Derive returns a fresh Base for a spawn of b: new identity, same kind and
// debug name, no clones and no parent.
func (b *Base) Derive() Base {
	return Base{id: uuid.New(), kind: b.kind, name: b.name}
}

// Lineage returns b itself; it satisfies Generator for embedding types.
func (b *Base) Lineage() *Base { return b }

// ID returns the opaque identity of the generator.
func (b *Base) ID() uuid.UUID { return b.id }

// Kind returns the type label given to NewBase.
func (b *Base) Kind() string { return b.kind }

// Name returns the optional debug name.
func (b *Base) Name() string { return b.name }

// SetName sets the debug name shown by String.
func (b *Base) SetName(name string) { b.name = name }

// Parent returns the generator this one was cloned from, or nil.
func (b *Base) Parent() Generator { return b.parent }

// Clones returns a copy of the registered clones, in registration order.
func (b *Base) Clones() []Generator {
	out := make([]Generator, len(b.clones))
	copy(out, b.clones)
	return out
}

// ResetClones resets every registered clone with seed, in registration order.
// Concrete generators call it from their own Reset after reseeding themselves.
func (b *Base) ResetClones(seed int64) error {
	for _, c := range b.clones {
		if err := c.Reset(seed); err != nil {
			return err
		}
	}

	return nil
}

// String renders "<name: Kind (id=abcdef)>" for debugging.
func (b *Base) String() string {
	id := b.id.String()
	if len(id) > idDisplayLen {
		id = id[:idDisplayLen]
	}
	if b.name == "" {
		return fmt.Sprintf("<%s (id=%s)>", b.kind, id)
	}

	return fmt.Sprintf("<%s: %s (id=%s)>", b.name, b.kind, id)
}

// Named sets the debug name of g and returns g, for use in declarations:
//
//	answer := core.Named(primitives.NewConstant(42), "answer")
func Named[G Generator](g G, name string) G {
	g.Lineage().SetName(name)
	return g
}

// Advance is the result of stepping a loop-like generator.
type Advance uint8

const (
	// AdvanceOk means the step succeeded and a new current value is set.
	AdvanceOk Advance = iota
	// AdvanceExhausted means there was no further value; the caller decides
	// whether to rewind (odometer carry) or stop.
	AdvanceExhausted
)

// String implements fmt.Stringer.
func (a Advance) String() string {
	switch a {
	case AdvanceOk:
		return "ok"
	case AdvanceExhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("Advance(%d)", uint8(a))
	}
}
