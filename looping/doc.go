// Package looping implements loop variables and the runner that sweeps a
// custom generator through every combination of their values.
//
// A Runner represents a nested loop:
//
//	for x in values_x:             // level 2, outer
//	    for (y, z) in zip(ys, zs): // level 1, inner, paired
//	        produce n items with a fresh seed
//
// Each combination is a loop cycle; the items produced inside one cycle are
// its ticks. The number of ticks comes from a TickSpec (Fixed, PerCycle or
// Sequence) and the seed from a SeedDeriver seeded once with the overall
// seed, so the whole sweep is reproducible.
//
// Variables are generators whose Next returns their current value. Field
// generators that draw from a loop variable therefore see the value of the
// running cycle. Runner.Spawn copies all variables and returns the
// mapping needed to rewire field generators onto the copies.
//
// Exhaustion is a result, not an error: Variable.Advance and Runner.Advance
// return core.AdvanceExhausted, and a Sequence that runs out simply ends
// the enumeration early with a logged warning.
package looping
