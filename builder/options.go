// SPDX-License-Identifier: MIT
// Package: tohu/builder
//
// options.go - functional options for definitions and generation calls.
//
// Options given to Define are defaults for every generation call of the
// definition's instances; options given to a call override them.
// Option constructors validate and panic on meaningless input.

package builder

import (
	"log/slog"

	"github.com/katalvlaran/tohu/looping"
)

// Option customises a definition or a generation call.
type Option func(*genConfig)

// WithSeed resets the generator with seed before producing. For looped
// generation it is the overall seed the cycle seeds derive from.
func WithSeed(seed int64) Option {
	return func(c *genConfig) { c.seed, c.hasSeed = seed, true }
}

// WithLogger routes debug and warning records to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *genConfig) { c.logger = l }
}

// WithTicks sets the number of items per loop cycle. spec is anything
// looping.TicksFrom accepts: an int, a []int sequence, a
// func(map[string]any) int or a looping.TickSpec. Panics on other types.
func WithTicks(spec any) Option {
	ts, err := looping.TicksFrom(spec)
	if err != nil {
		panic("builder: WithTicks: " + err.Error())
	}
	return func(c *genConfig) { c.ticks = ts }
}

// WithWorkers bounds the goroutines of GenerateParallel. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("builder: WithWorkers(n<1)")
	}
	return func(c *genConfig) { c.workers = n }
}
