// SPDX-License-Identifier: MIT
// Package: tohu/schema
//
// record.go - Record, one value tuple of a Schema.

package schema

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Record holds one value per schema field, in field order.
// Records are values; their contents must be treated as read-only.
type Record struct {
	schema *Schema
	values []any
}

// Schema returns the schema the record was built from.
func (r Record) Schema() *Schema { return r.schema }

// Len returns the number of values.
func (r Record) Len() int { return len(r.values) }

// At returns the i-th value. Panics if i is out of range, like indexing.
func (r Record) At(i int) any { return r.values[i] }

// Get returns the value of field.
func (r Record) Get(field string) (any, bool) {
	if r.schema == nil {
		return nil, false
	}
	i, ok := r.schema.index[field]
	if !ok {
		return nil, false
	}

	return r.values[i], true
}

// Tuple returns a copy of the values in field order.
func (r Record) Tuple() []any {
	out := make([]any, len(r.values))
	copy(out, r.values)
	return out
}

// Map returns the record as field -> value.
func (r Record) Map() map[string]any {
	out := make(map[string]any, len(r.values))
	for i, v := range r.values {
		out[r.schema.fields[i]] = v
	}

	return out
}

// Equal reports whether other holds the same values. other may be:
//   - a Record or *Record of any schema with the same number of fields
//     (compared positionally, field names are not consulted);
//   - a []any compared positionally;
//   - a map[string]any with exactly the record's field names.
//
// Any other type is never equal. Values are compared with reflect.DeepEqual.
func (r Record) Equal(other any) bool {
	switch o := other.(type) {
	case Record:
		return equalValues(r.values, o.values)
	case *Record:
		return o != nil && equalValues(r.values, o.values)
	case []any:
		return equalValues(r.values, o)
	case map[string]any:
		if len(o) != len(r.values) {
			return false
		}
		for i, v := range r.values {
			ov, ok := o[r.schema.fields[i]]
			if !ok || !reflect.DeepEqual(v, ov) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func equalValues(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !reflect.DeepEqual(a[i], b[i]) {
			return false
		}
	}

	return true
}

// Project returns a record of the projected schema holding the values of
// fields. Returns ErrUnknownField for names not in the schema.
func (r Record) Project(fields ...string) (Record, error) {
	s, err := r.schema.Project(fields...)
	if err != nil {
		return Record{}, err
	}
	vs := make([]any, len(fields))
	for i, f := range fields {
		vs[i] = r.values[r.schema.index[f]]
	}

	return Record{schema: s, values: vs}, nil
}

// String renders "Foo(a=1, b=x)".
func (r Record) String() string {
	if r.schema == nil {
		return "Record()"
	}
	var sb strings.Builder
	sb.WriteString(r.schema.name)
	sb.WriteByte('(')
	for i, v := range r.values {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s=%v", r.schema.fields[i], v)
	}
	sb.WriteByte(')')

	return sb.String()
}

var _ msgpack.CustomEncoder = Record{}

// EncodeMsgpack writes the record as a msgpack map in field order.
func (r Record) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeMapLen(len(r.values)); err != nil {
		return err
	}
	for i, v := range r.values {
		if err := enc.EncodeString(r.schema.fields[i]); err != nil {
			return err
		}
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("%s.%s: %w", r.schema.name, r.schema.fields[i], err)
		}
	}

	return nil
}
