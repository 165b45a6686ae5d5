// SPDX-License-Identifier: MIT
// Package: tohu/looping
//
// ticks.go - item-count ("tick") specifiers.
//
// A TickSpec is asked once per loop cycle, in enumeration order. It reports
// ok == false when it has no count for the cycle; the runner then stops
// early, which is a documented limitation rather than a failure.

package looping

import (
	"fmt"
	"reflect"
)

// TickSpec resolves the number of items of one loop cycle.
type TickSpec interface {
	Ticks(cycle int, c Combination) (n int, ok bool, err error)
}

// Fixed produces the same count for every cycle.
type Fixed int

// Ticks implements TickSpec.
func (f Fixed) Ticks(int, Combination) (int, bool, error) {
	if f < 0 {
		return 0, false, fmt.Errorf("Fixed(%d): %w", int(f), ErrInvalidTicks)
	}

	return int(f), true, nil
}

// PerCycle computes the count from the cycle's loop-variable values.
type PerCycle func(values map[string]any) int

// Ticks implements TickSpec.
func (p PerCycle) Ticks(_ int, c Combination) (int, bool, error) {
	n := p(c.Map())
	if n < 0 {
		return 0, false, fmt.Errorf("PerCycle(%s) = %d: %w", c, n, ErrInvalidTicks)
	}

	return n, true, nil
}

// Sequence gives the count of cycle i as element i. Cycles past the end
// have no count.
type Sequence []int

// Ticks implements TickSpec.
func (s Sequence) Ticks(cycle int, _ Combination) (int, bool, error) {
	if cycle >= len(s) {
		return 0, false, nil
	}
	if s[cycle] < 0 {
		return 0, false, fmt.Errorf("Sequence[%d] = %d: %w", cycle, s[cycle], ErrInvalidTicks)
	}

	return s[cycle], true, nil
}

// TicksFrom converts the accepted specifier forms into a TickSpec:
// a TickSpec, any integer, a func(map[string]any) int, or a slice/array of
// integers. Other types yield ErrInvalidTicks.
func TicksFrom(spec any) (TickSpec, error) {
	switch s := spec.(type) {
	case TickSpec:
		return s, nil
	case func(map[string]any) int:
		return PerCycle(s), nil
	case []int:
		return Sequence(s), nil
	case nil:
		return nil, fmt.Errorf("TicksFrom(nil): %w", ErrInvalidTicks)
	}

	rv := reflect.ValueOf(spec)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Fixed(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Fixed(rv.Uint()), nil
	case reflect.Slice, reflect.Array:
		seq := make(Sequence, rv.Len())
		for i := range seq {
			n, ok := asInt(rv.Index(i))
			if !ok {
				return nil, fmt.Errorf("TicksFrom(%T): element %d is not an integer: %w", spec, i, ErrInvalidTicks)
			}
			seq[i] = n
		}
		return seq, nil
	default:
		return nil, fmt.Errorf("TicksFrom(%T): %w", spec, ErrInvalidTicks)
	}
}

func asInt(v reflect.Value) (int, bool) {
	if v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(v.Uint()), true
	default:
		return 0, false
	}
}
