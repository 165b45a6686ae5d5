// SPDX-License-Identifier: MIT
// Package: tohu/looping
//
// variable.go - LoopVariable, a generator stepping through a fixed value list.
//
// State machine:
//
//	Unassigned --AssignValues(non-empty)--> Ready
//	Ready      --Advance (next in range)--> Ready
//	Ready      --Advance (past last)------> Exhausted
//	Ready|Exhausted --Rewind/Seek---------> Ready
//
// Advance, Rewind and Seek are mirrored onto every clone, so generators
// that draw from a clone see the variable's current value.

package looping

import (
	"fmt"
	"reflect"

	"github.com/katalvlaran/tohu/core"
)

// State is the lifecycle state of a Variable.
type State uint8

const (
	// Unassigned means no values were given yet.
	Unassigned State = iota
	// Ready means the current index points at a value.
	Ready
	// Exhausted means Advance moved past the last value.
	Exhausted
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Unassigned:
		return "unassigned"
	case Ready:
		return "ready"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Variable yields its current value on every Next. It is not random: seeds
// passed to Reset are accepted for the generator contract only.
type Variable struct {
	core.Base
	varName string
	values  []any
	idx     int
	state   State
	level   int // 0 until placed in a runner
	policy  ResetPolicy
}

// NewVariable declares a loop variable. An empty values list leaves it
// Unassigned. Returns ErrEmptyName for an empty name.
func NewVariable(name string, values []any, opts ...VariableOption) (*Variable, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	v := &Variable{Base: core.NewBase("LoopVariable"), varName: name}
	v.SetName(name)
	for _, opt := range opts {
		opt(v)
	}
	v.AssignValues(values)

	return v, nil
}

// MustVariable is NewVariable for names known to be valid. Panics on error.
func MustVariable(name string, values ...any) *Variable {
	v, err := NewVariable(name, values)
	if err != nil {
		panic(err)
	}

	return v
}

// ValuesFrom converts any slice or array into a value list.
// Returns ErrInvalidValues for other kinds; nil yields a nil list.
func ValuesFrom(values any) ([]any, error) {
	if values == nil {
		return nil, nil
	}
	if vs, ok := values.([]any); ok {
		return vs, nil
	}
	rv := reflect.ValueOf(values)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out, nil
	default:
		return nil, fmt.Errorf("ValuesFrom(%T): %w", values, ErrInvalidValues)
	}
}

// VarName returns the loop variable name.
func (v *Variable) VarName() string { return v.varName }

// Values returns a copy of the value list.
func (v *Variable) Values() []any {
	out := make([]any, len(v.values))
	copy(out, v.values)
	return out
}

// Len returns the number of values.
func (v *Variable) Len() int { return len(v.values) }

// State returns the current state.
func (v *Variable) State() State { return v.state }

// Index returns the current index.
func (v *Variable) Index() int { return v.idx }

// Level returns the nesting level, 0 if the variable has none yet.
func (v *Variable) Level() int { return v.level }

// SetLevel assigns the nesting level. Returns ErrInvalidLevel for level < 1.
func (v *Variable) SetLevel(level int) error {
	if level < 1 {
		return fmt.Errorf("%s.SetLevel(%d): %w", v.varName, level, ErrInvalidLevel)
	}
	v.level = level

	return nil
}

// AssignValues replaces the value list and moves to the first value. An
// empty list leaves (or puts) the variable in Unassigned.
func (v *Variable) AssignValues(values []any) {
	if len(values) == 0 {
		v.values, v.idx, v.state = nil, 0, Unassigned
		return
	}
	v.values = make([]any, len(values))
	copy(v.values, values)
	v.idx, v.state = 0, Ready
}

// Current returns the current value.
// Returns core.ErrUnassigned or ErrVariableExhausted outside Ready.
func (v *Variable) Current() (any, error) {
	switch v.state {
	case Unassigned:
		return nil, fmt.Errorf("%s: %w", v.varName, core.ErrUnassigned)
	case Exhausted:
		return nil, fmt.Errorf("%s: %w", v.varName, ErrVariableExhausted)
	}

	return v.values[v.idx], nil
}

// Next returns the current value without moving.
func (v *Variable) Next() (any, error) { return v.Current() }

// Advance moves to the next value. Past the last value the variable becomes
// Exhausted and AdvanceExhausted is returned; it never wraps around.
// Returns core.ErrUnassigned when no values are assigned.
func (v *Variable) Advance() (core.Advance, error) {
	if v.state == Unassigned {
		return core.AdvanceExhausted, fmt.Errorf("%s.Advance: %w", v.varName, core.ErrUnassigned)
	}
	res := core.AdvanceOk
	if v.state == Exhausted || v.idx+1 >= len(v.values) {
		v.state = Exhausted
		res = core.AdvanceExhausted
	} else {
		v.idx++
	}
	v.mirror()

	return res, nil
}

// Rewind moves back to the first value.
// Returns core.ErrUnassigned when no values are assigned.
func (v *Variable) Rewind() error {
	return v.Seek(0)
}

// Seek jumps to index idx. Returns core.ErrUnassigned or ErrUnknownValue
// for an index out of range.
func (v *Variable) Seek(idx int) error {
	if v.state == Unassigned {
		return fmt.Errorf("%s.Seek: %w", v.varName, core.ErrUnassigned)
	}
	if idx < 0 || idx >= len(v.values) {
		return fmt.Errorf("%s.Seek(%d): %w", v.varName, idx, ErrUnknownValue)
	}
	v.idx, v.state = idx, Ready
	v.mirror()

	return nil
}

// SeekValue jumps to the first occurrence of value.
func (v *Variable) SeekValue(value any) error {
	for i, x := range v.values {
		if reflect.DeepEqual(x, value) {
			return v.Seek(i)
		}
	}
	if v.state == Unassigned {
		return fmt.Errorf("%s.SeekValue: %w", v.varName, core.ErrUnassigned)
	}

	return fmt.Errorf("%s.SeekValue(%v): %w", v.varName, value, ErrUnknownValue)
}

// Reset follows the variable's ResetPolicy; by default it rewinds. The seed
// is ignored. Returns core.ErrUnassigned when no values are assigned.
func (v *Variable) Reset(int64) error {
	if v.state == Unassigned {
		return fmt.Errorf("%s.Reset: %w", v.varName, core.ErrUnassigned)
	}
	if v.policy == KeepOnReset {
		return nil
	}

	return v.Rewind()
}

// Spawn returns a variable with the same name, values, level and policy,
// positioned at the first value. On the Clone path (nil mapping) the new
// variable starts at v's current position instead, since it will follow v
// from then on.
func (v *Variable) Spawn(m *core.SpawnMapping) (core.Generator, error) {
	out := v.spawn()
	if m == nil {
		out.idx, out.state = v.idx, v.state
	}

	return out, nil
}

func (v *Variable) spawn() *Variable {
	out := &Variable{
		Base:    v.Derive(),
		varName: v.varName,
		values:  v.values,
		level:   v.level,
		policy:  v.policy,
	}
	if len(out.values) > 0 {
		out.state = Ready
	}

	return out
}

// mirror copies position and state onto all clones, recursively.
func (v *Variable) mirror() {
	for _, c := range v.Clones() {
		if cv, ok := c.(*Variable); ok {
			cv.idx, cv.state = v.idx, v.state
			cv.mirror()
		}
	}
}

// String renders the variable for debugging.
func (v *Variable) String() string {
	cur := "-"
	if v.state == Ready {
		cur = fmt.Sprint(v.values[v.idx])
	}

	return fmt.Sprintf("<LoopVariable: name=%s, level=%d, values=%v, current=%s, state=%s>",
		v.varName, v.level, v.values, cur, v.state)
}
