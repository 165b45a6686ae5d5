// SPDX-License-Identifier: MIT
// Package: tohu/primitives
//
// options.go - functional options shared by primitive constructors.

package primitives

import "log/slog"

// Option customises a primitive generator at construction time.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger routes construction warnings to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("primitives: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}
