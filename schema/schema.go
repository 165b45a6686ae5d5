// SPDX-License-Identifier: MIT
// Package: tohu/schema
//
// schema.go - ItemSchema: an ordered, immutable set of unique field names.

package schema

import (
	"fmt"
	"strings"
)

// Schema is an ordered list of unique field names plus a record type name.
// A Schema is immutable after New and safe for concurrent use.
type Schema struct {
	name   string
	fields []string
	index  map[string]int
}

// New builds a schema. Field order is declaration order.
// Returns ErrEmptyField for an empty name or field, ErrDuplicateField when a
// field repeats.
func New(name string, fields ...string) (*Schema, error) {
	if name == "" {
		return nil, fmt.Errorf("New: schema name: %w", ErrEmptyField)
	}
	s := &Schema{
		name:   name,
		fields: make([]string, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		if f == "" {
			return nil, fmt.Errorf("New(%s): field #%d: %w", name, i, ErrEmptyField)
		}
		if _, dup := s.index[f]; dup {
			return nil, fmt.Errorf("New(%s): field %q: %w", name, f, ErrDuplicateField)
		}
		s.index[f] = i
		s.fields[i] = f
	}

	return s, nil
}

// Name returns the record type name ("Foo" for FooGenerator).
func (s *Schema) Name() string { return s.name }

// Fields returns a copy of the field names in order.
func (s *Schema) Fields() []string {
	out := make([]string, len(s.fields))
	copy(out, s.fields)
	return out
}

// Len returns the number of fields.
func (s *Schema) Len() int { return len(s.fields) }

// Index returns the position of field.
func (s *Schema) Index(field string) (int, bool) {
	i, ok := s.index[field]
	return i, ok
}

// Record assembles a record from values given in field order.
// Returns ErrArity when len(values) != Len().
func (s *Schema) Record(values ...any) (Record, error) {
	if len(values) != len(s.fields) {
		return Record{}, fmt.Errorf("%s.Record: got %d values for %d fields: %w",
			s.name, len(values), len(s.fields), ErrArity)
	}
	vs := make([]any, len(values))
	copy(vs, values)

	return Record{schema: s, values: vs}, nil
}

// Project returns the schema restricted to fields, in the given order.
// Returns ErrUnknownField for names not in s.
func (s *Schema) Project(fields ...string) (*Schema, error) {
	for _, f := range fields {
		if _, ok := s.index[f]; !ok {
			return nil, fmt.Errorf("%s.Project(%q): %w", s.name, f, ErrUnknownField)
		}
	}

	return New(s.name, fields...)
}

// String renders "Foo(a, b)".
func (s *Schema) String() string {
	return s.name + "(" + strings.Join(s.fields, ", ") + ")"
}
