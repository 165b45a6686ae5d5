// SPDX-License-Identifier: MIT
// Package: tohu/loader
//
// loader.go - turning a Document into a built Definition.

package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tohu/builder"
	"github.com/katalvlaran/tohu/core"
	"github.com/katalvlaran/tohu/looping"
)

// Parse decodes one YAML document and builds its definition. Unknown keys
// are rejected. The document's seed and ticks become defaults of the
// definition; the tick specifier is also returned (nil when absent).
// opts are passed to builder.Define after the document's own options.
func Parse(r io.Reader, opts ...builder.Option) (*builder.Definition, looping.TickSpec, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, fmt.Errorf("Parse: empty document: %w", ErrInvalidDocument)
		}
		return nil, nil, fmt.Errorf("Parse: %w", err)
	}
	def, err := doc.Definition(opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("Parse(%s): %w", doc.Name, err)
	}
	var ticks looping.TickSpec
	if doc.Ticks != nil {
		ticks = doc.Ticks.Spec
	}

	return def, ticks, nil
}

// Load is Parse on the file at path.
func Load(path string, opts ...builder.Option) (*builder.Definition, looping.TickSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("Load: %w", err)
	}
	defer f.Close()

	return Parse(f, opts...)
}

// Definition builds the builder.Definition the document describes. Loop
// variables are created first so fields can emit them (loop) or draw from
// them (args); fields are then declared in document order.
func (doc *Document) Definition(opts ...builder.Option) (*builder.Definition, error) {
	var defOpts []builder.Option
	if doc.Seed != nil {
		defOpts = append(defOpts, builder.WithSeed(*doc.Seed))
	}
	if doc.Ticks != nil {
		defOpts = append(defOpts, builder.WithTicks(doc.Ticks.Spec))
	}
	def := builder.Define(doc.Name, append(defOpts, opts...)...)

	vars := make(map[string]*looping.Variable)
	for _, lvl := range doc.Loops {
		level := make([]*looping.Variable, 0, len(lvl.Vars))
		for _, lv := range lvl.Vars {
			v, err := looping.NewVariable(lv.Name, lv.Values)
			if err != nil {
				return nil, fmt.Errorf("loop %q: %w", lv.Name, err)
			}
			vars[lv.Name] = v
			level = append(level, v)
		}
		def.ForeachAt(lvl.Level, level...)
	}

	gens := make(map[string]core.Generator)
	for _, f := range doc.Fields {
		g, err := doc.field(f, gens, vars)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
		gens[f.Name] = g
		def.Field(f.Name, g)
	}

	return def.Build()
}

// field resolves the generator of one field declaration.
func (doc *Document) field(f FieldDoc, gens map[string]core.Generator, vars map[string]*looping.Variable) (core.Generator, error) {
	set := 0
	for _, s := range []string{f.Kind, f.Ref, f.Loop} {
		if s != "" {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("want exactly one of kind, ref, loop: %w", ErrInvalidDocument)
	}

	switch {
	case f.Ref != "":
		g, ok := gens[f.Ref]
		if !ok {
			return nil, fmt.Errorf("ref %q: no earlier field: %w", f.Ref, ErrInvalidDocument)
		}
		return g, nil
	case f.Loop != "":
		v, ok := vars[f.Loop]
		if !ok {
			return nil, fmt.Errorf("loop %q: %w", f.Loop, looping.ErrUnknownVariable)
		}
		return v, nil
	}

	build, ok := kinds[f.Kind]
	if !ok {
		return nil, fmt.Errorf("%q: %w", f.Kind, ErrUnknownKind)
	}
	args := make([]core.Generator, len(f.Args))
	for i, name := range f.Args {
		if g, ok := gens[name]; ok {
			args[i] = g
			continue
		}
		if v, ok := vars[name]; ok {
			args[i] = v
			continue
		}
		return nil, fmt.Errorf("arg %q: no earlier field or loop variable: %w", name, ErrInvalidDocument)
	}

	return build(&f.Params, args)
}
