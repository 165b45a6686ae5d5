// SPDX-License-Identifier: MIT
// Package: tohu/namespace
//
// namespace.go - the per-instance generator graph of a custom generator.
//
// Reset list:
//   - Every generator this namespace spawns (fields and their implicit
//     dependencies), in spawn order.
//   - Not included: clones (they follow their parent), generators that were
//     already in the mapping when the namespace was created, and hidden
//     generators registered as externally managed.

package namespace

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/katalvlaran/tohu/core"
	"github.com/katalvlaran/tohu/depgraph"
	"github.com/katalvlaran/tohu/schema"
)

type entry struct {
	name     string
	gen      core.Generator
	external bool
}

// Namespace assembles a schema and an isolated generator graph from field
// declarations. It is not safe for concurrent use.
type Namespace struct {
	className string
	mapping   *core.SpawnMapping
	fields    []entry
	hidden    []entry
	names     map[string]bool // field names
	hidNames  map[string]bool
	external  map[uuid.UUID]bool
	resetList []core.Generator
	deriver   *core.SeedDeriver
	schema    *schema.Schema
	logger    *slog.Logger
}

// New returns an empty namespace for className. Generators already present
// in mapping (typically the loop variables of a spawned runner) are treated
// as externally managed: fields drawing from them are wired to their
// spawned counterparts, but the namespace never resets them. A nil mapping
// starts empty.
func New(className string, mapping *core.SpawnMapping, opts ...Option) *Namespace {
	if mapping == nil {
		mapping = core.NewSpawnMapping()
	}
	ns := &Namespace{
		className: className,
		mapping:   mapping,
		names:     make(map[string]bool),
		hidNames:  make(map[string]bool),
		external:  make(map[uuid.UUID]bool),
		deriver:   core.NewSeedDeriver(),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(ns)
	}
	for _, e := range mapping.Entries() {
		ns.external[e.Spawned.Lineage().ID()] = true
	}

	return ns
}

// ClassName returns the class name the namespace seeds are separated by.
func (ns *Namespace) ClassName() string { return ns.className }

// claim reserves name in names. Fields and hidden generators have separate
// name sets, so a loop variable can be hidden and emitted under one name.
func (ns *Namespace) claim(names map[string]bool, name string) error {
	switch {
	case ns.schema != nil:
		return ErrFinalized
	case name == "":
		return schema.ErrEmptyField
	case names[name]:
		return schema.ErrDuplicateField
	}
	names[name] = true

	return nil
}

// spawn resolves g through the mapping and returns the generator to store.
// A generator seen before yields a clone of its counterpart; otherwise
// everything newly spawned joins the reset list, or is marked external.
func (ns *Namespace) spawn(g core.Generator, external bool) (core.Generator, error) {
	if s, ok := ns.mapping.Lookup(g); ok {
		if external {
			ns.external[s.Lineage().ID()] = true
			return s, nil
		}
		return core.Clone(s)
	}
	before := ns.mapping.Len()
	s, err := ns.mapping.Resolve(g)
	if err != nil {
		return nil, err
	}
	for _, e := range ns.mapping.Since(before) {
		if external {
			ns.external[e.Spawned.Lineage().ID()] = true
			continue
		}
		ns.resetList = append(ns.resetList, e.Spawned)
	}

	return s, nil
}

// AddField registers g under name. g is spawned into this namespace (with
// all its dependencies) unless it was spawned before, in which case the
// field holds a clone of that spawn so both positions stay correlated.
// Returns schema.ErrEmptyField, schema.ErrDuplicateField, ErrFinalized or a
// spawn error.
func (ns *Namespace) AddField(name string, g core.Generator) error {
	if err := ns.claim(ns.names, name); err != nil {
		return fmt.Errorf("AddField(%q): %w", name, err)
	}
	s, err := ns.spawn(g, false)
	if err != nil {
		delete(ns.names, name)
		return fmt.Errorf("AddField(%q): %w", name, err)
	}
	s.Lineage().SetName(name)
	ns.fields = append(ns.fields, entry{name: name, gen: s})
	ns.logger.Debug("field registered",
		slog.String("class", ns.className), slog.String("field", name), slog.String("gen", s.Lineage().String()))

	return nil
}

// AddHidden registers a generator that takes part in dependency resolution
// but is not emitted as a field, typically a loop variable. When
// externallyManaged is set, the namespace never resets it (nor anything it
// spawns for it); its owner, usually a looping.Runner, moves it instead.
func (ns *Namespace) AddHidden(name string, g core.Generator, externallyManaged bool) error {
	if err := ns.claim(ns.hidNames, name); err != nil {
		return fmt.Errorf("AddHidden(%q): %w", name, err)
	}
	s, err := ns.spawn(g, externallyManaged)
	if err != nil {
		delete(ns.hidNames, name)
		return fmt.Errorf("AddHidden(%q): %w", name, err)
	}
	ns.hidden = append(ns.hidden, entry{name: name, gen: s, external: externallyManaged})
	ns.logger.Debug("hidden generator registered",
		slog.String("class", ns.className), slog.String("name", name), slog.Bool("external", externallyManaged))

	return nil
}

// Finalize builds the schema from the registered fields, in registration
// order. Hidden generators are not part of it. An empty schemaName is
// derived from the class name (schema.DeriveName, so "FooGenerator" gives
// "Foo" and a class without the suffix fails with schema.ErrNaming).
// Returns schema errors, or ErrFinalized when called twice.
func (ns *Namespace) Finalize(schemaName string) error {
	if ns.schema != nil {
		return fmt.Errorf("Finalize(%q): %w", schemaName, ErrFinalized)
	}
	if schemaName == "" {
		name, err := schema.DeriveName(ns.className)
		if err != nil {
			return fmt.Errorf("Finalize: %w", err)
		}
		schemaName = name
	}
	s, err := schema.New(schemaName, ns.FieldNames()...)
	if err != nil {
		return fmt.Errorf("Finalize: %w", err)
	}
	ns.schema = s

	return nil
}

// Schema returns the finalized schema, or nil before Finalize.
func (ns *Namespace) Schema() *schema.Schema { return ns.schema }

// FieldNames returns the field names in registration order.
func (ns *Namespace) FieldNames() []string {
	out := make([]string, len(ns.fields))
	for i, f := range ns.fields {
		out[i] = f.name
	}

	return out
}

// Field returns the spawned generator of a field.
func (ns *Namespace) Field(name string) (core.Generator, bool) {
	for _, f := range ns.fields {
		if f.name == name {
			return f.gen, true
		}
	}

	return nil, false
}

// Hidden returns the generator registered under a hidden name.
func (ns *Namespace) Hidden(name string) (core.Generator, bool) {
	for _, h := range ns.hidden {
		if h.name == name {
			return h.gen, true
		}
	}

	return nil, false
}

// ResetList returns the generators Reset reseeds, in reset order.
func (ns *Namespace) ResetList() []core.Generator {
	out := make([]core.Generator, len(ns.resetList))
	copy(out, ns.resetList)
	return out
}

// IsExternal reports whether g (a spawned generator of this namespace) is
// managed outside of it.
func (ns *Namespace) IsExternal(g core.Generator) bool {
	return g != nil && ns.external[core.Root(g).Lineage().ID()]
}

// Reset reseeds the namespace: the seed is first separated by class name,
// then one sub-seed is derived per reset-list generator, in order.
func (ns *Namespace) Reset(seed int64) error {
	ns.deriver.Reset(core.DomainSeed(ns.className, seed))
	for _, g := range ns.resetList {
		if err := g.Reset(ns.deriver.Next()); err != nil {
			return fmt.Errorf("%s.Reset: %s: %w", ns.className, g.Lineage(), err)
		}
	}

	return nil
}

// Next draws one value per field, in schema order.
// Returns ErrNotFinalized before Finalize.
func (ns *Namespace) Next() (schema.Record, error) {
	if ns.schema == nil {
		return schema.Record{}, fmt.Errorf("%s.Next: %w", ns.className, ErrNotFinalized)
	}
	values := make([]any, len(ns.fields))
	for i, f := range ns.fields {
		v, err := f.gen.Next()
		if err != nil {
			return schema.Record{}, fmt.Errorf("%s.%s: %w", ns.className, f.name, err)
		}
		values[i] = v
	}

	return ns.schema.Record(values...)
}

// Graph returns the dependency graph of all fields and hidden generators.
func (ns *Namespace) Graph() (*depgraph.Graph, error) {
	roots := make([]depgraph.Root, 0, len(ns.fields)+len(ns.hidden))
	for _, f := range ns.fields {
		roots = append(roots, depgraph.Root{Label: f.name, Generator: f.gen})
	}
	for _, h := range ns.hidden {
		roots = append(roots, depgraph.Root{Label: h.name, Generator: h.gen})
	}

	return depgraph.FromGenerators(roots...)
}

// Describe renders the namespace for debugging.
func (ns *Namespace) Describe() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Namespace %s\n", ns.className)
	for _, f := range ns.fields {
		fmt.Fprintf(&sb, "  field  %-12s %s\n", f.name, f.gen.Lineage())
	}
	for _, h := range ns.hidden {
		kind := "internal"
		if h.external {
			kind = "external"
		}
		fmt.Fprintf(&sb, "  hidden %-12s %s (%s)\n", h.name, h.gen.Lineage(), kind)
	}
	fmt.Fprintf(&sb, "  reset list: %d generator(s)\n", len(ns.resetList))

	return sb.String()
}
