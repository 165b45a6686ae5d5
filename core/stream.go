// SPDX-License-Identifier: MIT
// Package: tohu/core
//
// stream.go - drawing finite prefixes from infinite generators.
//
// Determinism policy:
//   - Stream/List reset the generator at the start of each iteration when a
//     seed is given, so re-ranging a seeded stream restarts it.
//   - Without a seed they continue from the generator's current state.

package core

import (
	"fmt"
	"iter"
)

// StreamOption customises Stream and List.
type StreamOption func(*streamConfig)

type streamConfig struct {
	seed    int64
	hasSeed bool
}

// WithSeed resets the generator with seed before the first draw.
func WithSeed(seed int64) StreamOption {
	return func(c *streamConfig) {
		c.seed, c.hasSeed = seed, true
	}
}

// Stream returns a lazy sequence of n values drawn from g. A failing draw
// is yielded once as (nil, err) and ends the sequence.
func Stream(g Generator, n int, opts ...StreamOption) iter.Seq2[any, error] {
	var cfg streamConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(yield func(any, error) bool) {
		if g == nil {
			yield(nil, fmt.Errorf("Stream: %w", ErrNilGenerator))
			return
		}
		if n < 0 {
			yield(nil, fmt.Errorf("Stream(%d): %w", n, ErrNegativeCount))
			return
		}
		if cfg.hasSeed {
			if err := g.Reset(cfg.seed); err != nil {
				yield(nil, fmt.Errorf("Stream: reset: %w", err))
				return
			}
		}
		for i := 0; i < n; i++ {
			v, err := g.Next()
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}

// List materialises Stream into a slice.
func List(g Generator, n int, opts ...StreamOption) ([]any, error) {
	out := make([]any, 0, max(n, 0))
	for v, err := range Stream(g, n, opts...) {
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

// Take draws n values from g's current state without resetting it.
func Take(g Generator, n int) ([]any, error) {
	return List(g, n)
}
