// SPDX-License-Identifier: MIT
// Package: tohu/builder
//
// parallel.go - looped generation with one goroutine per loop cycle.
//
// Every cycle is an independent unit of work: it runs on an instance of its
// own (spawned graph, own runner), positioned on the cycle's combination
// and reset with the cycle's seed. The result is record-for-record equal
// to GenerateLooped with the same options.

package builder

import (
	"context"
	"log/slog"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tohu/items"
	"github.com/katalvlaran/tohu/looping"
	"github.com/katalvlaran/tohu/schema"
)

// GenerateParallel computes looped generation concurrently, using at most
// WithWorkers goroutines, and returns an already computed list. The first
// error (or the cancellation of ctx) stops the remaining cycles.
func (in *Instance) GenerateParallel(ctx context.Context, opts ...Option) (*items.List, error) {
	cfg := in.config(opts)
	if cfg.ticks == nil {
		return nil, builderErrorf(MethodGenerateParallel, "%w", ErrMissingTicks)
	}
	var cycles []looping.Cycle
	for c, err := range in.runner.Cycles(cfg.ticks, cfg.seed) {
		if err != nil {
			return nil, builderErrorf(MethodGenerateParallel, "%w", err)
		}
		cycles = append(cycles, c)
	}

	// Instances are spawned up front, one per worker, and handed out
	// through pool; SetLimit guarantees a free one for every running task.
	workers := min(cfg.workers, max(len(cycles), 1))
	pool := make(chan *Instance, workers)
	for range workers {
		w, err := in.def.New()
		if err != nil {
			return nil, builderErrorf(MethodGenerateParallel, "%w", err)
		}
		pool <- w
	}
	cfg.logger.Debug("parallel looped generation",
		slog.String("class", in.def.className),
		slog.Int("cycles", len(cycles)),
		slog.Int("workers", workers))

	results := make([][]schema.Record, len(cycles))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, c := range cycles {
		g.Go(func() error {
			w := <-pool
			defer func() { pool <- w }()

			if err := w.runner.Seek(c.Combination); err != nil {
				return err
			}
			out := make([]schema.Record, 0, c.Ticks)
			for r, err := range w.cycle(c) {
				if err != nil {
					return err
				}
				if err = ctx.Err(); err != nil {
					return err
				}
				out = append(out, r)
			}
			results[c.Index] = out

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, builderErrorf(MethodGenerateParallel, "%w", err)
	}

	return items.FromRecords(in.ns.Schema(), slices.Concat(results...)), nil
}
