// SPDX-License-Identifier: MIT
// Package: tohu/looping
//
// combination.go - one assignment of values to loop variables.

package looping

import (
	"fmt"
	"reflect"
	"strings"
)

// Combination assigns one value to each of a set of loop variables. Names
// are ordered outermost level first, declaration order within a level.
type Combination struct {
	names   []string
	values  []any
	indices []int // position of each value in its variable, -1 if unknown
}

// NewCombination builds a combination from parallel name/value lists, for
// use as a group key. Panics if the lists differ in length.
func NewCombination(names []string, values []any) Combination {
	if len(names) != len(values) {
		panic("looping: NewCombination: names and values differ in length")
	}
	c := Combination{
		names:   append([]string(nil), names...),
		values:  append([]any(nil), values...),
		indices: make([]int, len(names)),
	}
	for i := range c.indices {
		c.indices[i] = -1
	}

	return c
}

// Len returns the number of variables.
func (c Combination) Len() int { return len(c.names) }

// Names returns the variable names in order.
func (c Combination) Names() []string { return append([]string(nil), c.names...) }

// Values returns the values in name order.
func (c Combination) Values() []any { return append([]any(nil), c.values...) }

// Get returns the value of the named variable.
func (c Combination) Get(name string) (any, bool) {
	for i, n := range c.names {
		if n == name {
			return c.values[i], true
		}
	}

	return nil, false
}

// Map returns name -> value; this is what PerCycle tick callbacks receive.
func (c Combination) Map() map[string]any {
	out := make(map[string]any, len(c.names))
	for i, n := range c.names {
		out[n] = c.values[i]
	}

	return out
}

// Project keeps only the named variables, in c's order. Names c does not
// have are skipped.
func (c Combination) Project(names ...string) Combination {
	keep := make(map[string]bool, len(names))
	for _, n := range names {
		keep[n] = true
	}
	var out Combination
	for i, n := range c.names {
		if keep[n] {
			out.names = append(out.names, n)
			out.values = append(out.values, c.values[i])
			out.indices = append(out.indices, c.indices[i])
		}
	}

	return out
}

// Equal reports whether both combinations assign the same values to the same
// names, regardless of order.
func (c Combination) Equal(o Combination) bool {
	if len(c.names) != len(o.names) {
		return false
	}
	for i, n := range c.names {
		v, ok := o.Get(n)
		if !ok || !reflect.DeepEqual(c.values[i], v) {
			return false
		}
	}

	return true
}

// Matches reports whether c assigns key's values to every name of key.
func (c Combination) Matches(key Combination) bool {
	return c.Project(key.names...).Equal(key)
}

// String renders "{x=1, y=a}".
func (c Combination) String() string {
	parts := make([]string, len(c.names))
	for i, n := range c.names {
		parts[i] = fmt.Sprintf("%s=%v", n, c.values[i])
	}

	return "{" + strings.Join(parts, ", ") + "}"
}
