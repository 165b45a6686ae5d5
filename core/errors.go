// SPDX-License-Identifier: MIT
// Package: tohu/core
//
// errors.go - sentinel errors for the core package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Implementations attach context with %w ("Method: detail: %w").

package core

import "errors"

var (
	// ErrUnassigned indicates that a generator was used before one of its
	// required parameters was assigned (e.g. a loop variable without values).
	ErrUnassigned = errors.New("core: value not assigned")

	// ErrMappingLookup indicates that a dependency could not be resolved
	// through the SpawnMapping of the current spawn operation. Well-formed
	// definitions never surface it; it marks a broken lineage.
	ErrMappingLookup = errors.New("core: dependency missing from spawn mapping")

	// ErrNilGenerator indicates a nil Generator where one is required.
	ErrNilGenerator = errors.New("core: nil generator")

	// ErrNoIdentity indicates a generator whose Base was never initialised
	// with NewBase, so it has no identity to key a SpawnMapping with.
	ErrNoIdentity = errors.New("core: generator has no identity")

	// ErrNegativeCount indicates a negative number of items was requested.
	ErrNegativeCount = errors.New("core: negative item count")
)
