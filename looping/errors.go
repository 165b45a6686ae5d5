// SPDX-License-Identifier: MIT
// Package: tohu/looping
//
// errors.go - sentinel errors for loop variables and runners.
//
// Exhaustion is not an error here: Variable.Advance and Runner.Advance
// report it as core.AdvanceExhausted, tick specifiers as ok == false.

package looping

import "errors"

var (
	// ErrInvalidValues indicates a value list that is not a slice or array.
	ErrInvalidValues = errors.New("looping: values must be a slice or array")

	// ErrEmptyName indicates a loop variable without a name.
	ErrEmptyName = errors.New("looping: empty variable name")

	// ErrInvalidLevel indicates a loop level below 1.
	ErrInvalidLevel = errors.New("looping: loop level must be >= 1")

	// ErrLevelLength indicates loop variables of one level whose value lists
	// differ in length, so they cannot be paired element-wise.
	ErrLevelLength = errors.New("looping: variables of one level must have equally many values")

	// ErrDuplicateVariable indicates a variable name declared twice in one runner.
	ErrDuplicateVariable = errors.New("looping: duplicate loop variable")

	// ErrUnknownVariable indicates a name that no variable of the runner has.
	ErrUnknownVariable = errors.New("looping: unknown loop variable")

	// ErrUnknownValue indicates a value a variable cannot take.
	ErrUnknownValue = errors.New("looping: value not among the variable's values")

	// ErrInvalidTicks indicates an unusable item-count specifier: an
	// unsupported type or a negative count.
	ErrInvalidTicks = errors.New("looping: invalid ticks specifier")

	// ErrVariableExhausted indicates Next on a variable that was advanced
	// past its last value and not rewound.
	ErrVariableExhausted = errors.New("looping: loop variable exhausted")
)
