// Package core defines the generator contract shared by every value
// producer in tohu, together with the bookkeeping that makes composite
// generators reproducible:
//
//   - Generator: Next / Reset / Spawn / Lineage.
//   - Base: identity (uuid), debug name, clone list and parent back-reference.
//   - Clone: spawn + register as clone, so that Reset on the parent
//     re-seeds every clone with the same seed (lockstep reset).
//   - SpawnMapping: identity-keyed table used while copying a generator
//     graph, so that a generator shared by several dependents is spawned
//     exactly once per copy.
//   - SeedDeriver: deterministic stream of child seeds in [0, 2^32-1]
//     derived from one parent seed.
//   - Stream / List / Take: lazy and eager draws from any generator.
//
// Determinism:
//
//	Reset(seed) followed by N calls to Next always yields the same N
//	values for the same generator definition. Composite generators derive
//	child seeds through SeedDeriver in a stable order.
//
// Concurrency:
//
//	Generators are single-threaded values. Two graphs produced by separate
//	Spawn operations share no mutable state and may be driven from
//	different goroutines; one graph must not.
//
// Errors:
//
//	ErrUnassigned      - a required parameter (e.g. loop variable values) is not set.
//	ErrMappingLookup   - a dependency could not be resolved through a SpawnMapping.
//	ErrNilGenerator    - a nil generator was passed where one is required.
//	ErrNoIdentity      - a generator without identity (zero Base) was registered.
//	ErrNegativeCount   - a negative item count was requested.
package core
