// Package builder declares custom generators: named record types whose
// fields are drawn from generators, optionally swept over loop variables.
//
// The package offers the following key components:
//
//   - Declaration:
//     – Define:          start a definition for a class name ("FooGenerator").
//     – Field:           a named field drawing from a generator.
//     – Foreach:         a loop level of paired variables, nested outward.
//     – Build:           validate and freeze; all declaration errors at once.
//   - Instances (Definition.New):
//     – Generate:        a list of N records, restartable with WithSeed.
//     – GenerateLooped:  records for every loop cycle, ticks per cycle.
//     – GenerateGrouped: looped generation split by loop variable values.
//     – GenerateParallel: looped generation on errgroup workers.
//   - Options (Option):
//     – WithSeed, WithTicks, WithWorkers, WithLogger.
//
// Guarantees:
//
//   - Isolation: every instance spawns its own generator graph; two
//     instances never share RNG state.
//   - Determinism: the same definition and seed yield the same records,
//     sequentially or in parallel.
//   - Fast-fail on invalid option parameters via panics in option
//     constructors; operations return sentinel errors instead.
//
// Example:
//
//	x := looping.MustVariable("x", 1, 2)
//	def := builder.Define("PointGenerator").
//		Field("x", x).
//		Field("noise", noise).
//		Foreach(x).
//		MustBuild()
//	inst, _ := def.New()
//	list, _ := inst.GenerateLooped(builder.WithSeed(7), builder.WithTicks(3))
package builder
