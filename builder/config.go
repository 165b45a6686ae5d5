// SPDX-License-Identifier: MIT
// Package: tohu/builder
//
// config.go - generation configuration and deterministic defaults.
//
// Defaults:
//   - seed     = DefaultSeed, applied only by looped generation unless set
//   - logger   = slog.Default()
//   - ticks    = nil (looped generation fails with ErrMissingTicks)
//   - workers  = DefaultWorkers

package builder

import (
	"log/slog"

	"github.com/katalvlaran/tohu/looping"
)

// genConfig aggregates the knobs of definitions and generation calls. It is
// passed by value.
type genConfig struct {
	seed    int64
	hasSeed bool
	logger  *slog.Logger
	ticks   looping.TickSpec
	workers int
}

// newGenConfig applies opts in order over the defaults; later options win.
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{
		seed:    DefaultSeed,
		logger:  slog.Default(),
		workers: DefaultWorkers,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
