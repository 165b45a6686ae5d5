// Package primitives provides the leaf value generators of tohu: constants,
// uniform integer and float draws, booleans, categorical choices, hash
// digests, timestamps and fake personal data.
//
// Every generator satisfies core.Generator:
//
//   - Reset(seed) reseeds the generator's own RNG and then resets its clones.
//   - Spawn returns a generator with the same parameters and a fresh RNG.
//
// Primitive generators are plain uniform/categorical draws; tohu is not a
// statistical distribution engine.
//
// Constructors validate their parameters and return sentinel errors
// (ErrInvalidParam); ineffective parameter combinations are reported as
// slog warnings and otherwise ignored.
package primitives
