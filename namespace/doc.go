// Package namespace assembles the generator graph of one custom-generator
// instance.
//
// Fields are registered in declaration order. Each declared generator is
// spawned through a shared core.SpawnMapping, so a generator referenced by
// several fields (or by several derived generators) is spawned exactly once
// per namespace. A field whose generator was already spawned receives a
// clone of the spawn, which keeps the positions correlated.
//
// Reset derives one sub-seed per spawned generator from a seed that is
// first separated by the class name; two custom generators with identical
// field layouts therefore never produce the same data by coincidence.
package namespace
