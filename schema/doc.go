// Package schema defines the item schema of a custom generator and the
// records it produces.
//
// A Schema is an ordered list of unique field names together with a record
// type name. The name is derived from the custom generator's class name by
// DeriveName ("PersonGenerator" produces "Person" records).
//
// Records support positional access (At, Tuple), access by name (Get, Map)
// and comparison against plain tuples and maps of the same shape:
//
//	s, _ := schema.New("Quux", "a", "b")
//	r, _ := s.Record(1, 2)
//	r.Equal([]any{1, 2})                    // true
//	r.Equal(map[string]any{"a": 1, "b": 2}) // true
//
// Records encode to msgpack as ordered maps, which keeps field order stable
// across export formats.
package schema
