// SPDX-License-Identifier: MIT
// Package: tohu/builder
//
// definition.go - Definition, the declarative side of a custom generator.
//
// Lifecycle:
//   - Define → Field/Foreach (chainable, errors accumulate) → Build → New.
//   - Build validates everything once and freezes the definition; New may
//     then be called any number of times, each call spawning an isolated
//     instance graph.
//   - Generators given to Field/Foreach are templates. They are never drawn
//     from or reset by instances; only their spawns are.

package builder

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/tohu/core"
	"github.com/katalvlaran/tohu/depgraph"
	"github.com/katalvlaran/tohu/looping"
	"github.com/katalvlaran/tohu/namespace"
	"github.com/katalvlaran/tohu/schema"
)

type fieldDecl struct {
	name string
	gen  core.Generator
}

// Definition declares the fields and loop variables of a custom generator.
// It is not safe for concurrent mutation; a built definition may be
// instantiated from several goroutines.
type Definition struct {
	className  string
	schemaName string
	fields     []fieldDecl
	names      map[string]bool
	runner     *looping.Runner
	errs       []error
	built      bool
	cfg        genConfig
	opts       []Option
}

// Define starts a definition for className, which must follow the naming
// contract ("FooGenerator" produces "Foo" records; see schema.DeriveName).
// opts are the defaults of every generation call of the definition's
// instances.
func Define(className string, opts ...Option) *Definition {
	cfg := newGenConfig(opts...)
	return &Definition{
		className: className,
		names:     make(map[string]bool),
		runner:    looping.NewRunner(looping.WithLogger(cfg.logger)),
		cfg:       cfg,
		opts:      opts,
	}
}

// ClassName returns the class name given to Define.
func (d *Definition) ClassName() string { return d.className }

// SchemaName returns the record type name; empty before Build.
func (d *Definition) SchemaName() string { return d.schemaName }

// Fields returns the declared field names in declaration order.
func (d *Definition) Fields() []string {
	out := make([]string, len(d.fields))
	for i, f := range d.fields {
		out[i] = f.name
	}

	return out
}

// Runner returns the loop declarations. It must not be driven directly;
// every instance works on its own spawn of it.
func (d *Definition) Runner() *looping.Runner { return d.runner }

// fail records err and returns d, keeping the declaration chain going.
func (d *Definition) fail(err error) *Definition {
	d.errs = append(d.errs, err)
	return d
}

// Field declares a field named name that draws from g. Using one
// generator for several fields yields correlated fields: each instance
// spawns g once and every further field holds a clone of that spawn.
func (d *Definition) Field(name string, g core.Generator) *Definition {
	switch {
	case d.built:
		return d.fail(builderErrorf(MethodField, "%q: %w", name, ErrFrozen))
	case name == "":
		return d.fail(builderErrorf(MethodField, "%w", schema.ErrEmptyField))
	case d.names[name]:
		return d.fail(builderErrorf(MethodField, "%q: %w", name, schema.ErrDuplicateField))
	case g == nil:
		return d.fail(builderErrorf(MethodField, "%q: %w", name, core.ErrNilGenerator))
	}
	d.names[name] = true
	d.fields = append(d.fields, fieldDecl{name: name, gen: g})

	return d
}

// Foreach declares vars as one loop level, paired element-wise, nested
// outside every level declared so far. The first call declares level 1,
// the innermost loop.
func (d *Definition) Foreach(vars ...*looping.Variable) *Definition {
	return d.ForeachAt(d.runner.MaxLevel()+FirstLoopLevel, vars...)
}

// ForeachAt adds vars to an explicit level. Variables added to an
// occupied level are paired with the ones already there.
func (d *Definition) ForeachAt(level int, vars ...*looping.Variable) *Definition {
	if d.built {
		return d.fail(builderErrorf(MethodForeach, "%w", ErrFrozen))
	}
	if err := d.runner.AddAtLevel(level, vars...); err != nil {
		return d.fail(builderErrorf(MethodForeach, "%w", err))
	}

	return d
}

// Build validates the definition and freezes it. It reports every
// declaration error at once (errors.Join), then checks the naming contract
// and that each loop variable a field depends on is declared with Foreach.
// Build is idempotent once it has succeeded; declarations attempted after
// that are reported as ErrFrozen.
func (d *Definition) Build() (*Definition, error) {
	if d.built {
		if len(d.errs) > 0 {
			return nil, errors.Join(d.errs...)
		}
		return d, nil
	}
	errs := append([]error(nil), d.errs...)

	name, err := schema.DeriveName(d.className)
	if err != nil {
		errs = append(errs, builderErrorf(MethodBuild, "%w", err))
	}
	if len(d.fields) == 0 {
		errs = append(errs, builderErrorf(MethodBuild, "%s declares no fields: %w", d.className, schema.ErrEmptyField))
	}
	if err = d.checkGraph(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	d.schemaName = name
	d.built = true
	d.cfg.logger.Debug("definition built",
		slog.String("class", d.className),
		slog.Int("fields", len(d.fields)),
		slog.Int("loop_levels", len(d.runner.Levels())),
		slog.Int("cycles", d.runner.NumCombinations()))

	return d, nil
}

// MustBuild is Build that panics on error, for package-level definitions.
func (d *Definition) MustBuild() *Definition {
	if _, err := d.Build(); err != nil {
		panic(err)
	}
	return d
}

// checkGraph orders the template graph (rejecting cycles) and verifies the
// loop variables reachable from the fields.
func (d *Definition) checkGraph() error {
	roots := make([]depgraph.Root, len(d.fields))
	for i, f := range d.fields {
		roots[i] = depgraph.Root{Label: f.name, Generator: f.gen}
	}
	g, err := depgraph.FromGenerators(roots...)
	if err != nil {
		return builderErrorf(MethodBuild, "%w", err)
	}
	if _, err = depgraph.DependencyOrder(g); err != nil {
		return builderErrorf(MethodBuild, "%w", err)
	}
	ids := make([]string, len(d.fields))
	for i, f := range d.fields {
		ids[i] = depgraph.VertexID(core.Root(f.gen))
	}
	order, err := depgraph.Reachable(g, ids...)
	if err != nil {
		return builderErrorf(MethodBuild, "%w", err)
	}

	var errs []error
	for _, id := range order {
		v, _ := g.Vertex(id)
		lv, ok := v.Generator.(*looping.Variable)
		if !ok {
			continue
		}
		if declared, found := d.runner.Lookup(lv.VarName()); !found || declared != lv {
			errs = append(errs, builderErrorf(MethodBuild, "%s: %w", lv, ErrUndeclaredLoopVariable))
		}
	}

	return errors.Join(errs...)
}

// New spawns an isolated instance: a fresh runner, then a namespace wired
// to the runner's variables, then every field in declaration order.
// New builds the definition first and returns Build's errors.
func (d *Definition) New() (*Instance, error) {
	if _, err := d.Build(); err != nil {
		return nil, builderErrorf(MethodNew, "%w", err)
	}
	runner, mapping, err := d.runner.Spawn()
	if err != nil {
		return nil, builderErrorf(MethodNew, "%w", err)
	}
	ns := namespace.New(d.className, mapping, namespace.WithLogger(d.cfg.logger))
	for _, v := range d.runner.Variables() {
		if err = ns.AddHidden(v.VarName(), v, true); err != nil {
			return nil, builderErrorf(MethodNew, "%w", err)
		}
	}
	for _, f := range d.fields {
		if err = ns.AddField(f.name, f.gen); err != nil {
			return nil, builderErrorf(MethodNew, "%w", err)
		}
	}
	if err = ns.Finalize(d.schemaName); err != nil {
		return nil, builderErrorf(MethodNew, "%w", err)
	}

	return &Instance{
		Base:   core.NewBase(d.className),
		def:    d,
		runner: runner,
		ns:     ns,
	}, nil
}
