// SPDX-License-Identifier: MIT
// Package: tohu/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Errors from schema, looping, namespace and depgraph pass through
//     wrapped, so their sentinels stay visible too.
//   - Operations never panic; option constructors (WithX) do on
//     meaningless values.

package builder

import (
	"errors"
	"fmt"
)

// ErrUndeclaredLoopVariable indicates a field that draws from a loop
// variable the definition never declared with Foreach.
var ErrUndeclaredLoopVariable = errors.New("builder: field depends on an undeclared loop variable")

// ErrFrozen indicates a change to a definition after Build.
var ErrFrozen = errors.New("builder: definition already built")

// ErrMissingTicks indicates looped generation without a ticks specifier.
var ErrMissingTicks = errors.New("builder: looped generation needs WithTicks")

// builderErrorf prefixes an error with the method it came from:
// "<Method>: <formatted message>". %w verbs are preserved.
func builderErrorf(method, format string, args ...any) error {
	return fmt.Errorf(method+": "+format, args...)
}
