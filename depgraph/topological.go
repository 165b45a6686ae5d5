// SPDX-License-Identifier: MIT
// Package: tohu/depgraph
//
// topological.go - DFS topological sort with cycle detection.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)

package depgraph

import (
	"context"
	"fmt"
)

// Visitation states of the DFS.
const (
	white = iota
	gray
	black
)

// TopoOption configures TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
}

func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext sets the cancellation context. Panics on nil.
func WithCancelContext(ctx context.Context) TopoOption {
	if ctx == nil {
		panic("depgraph: WithCancelContext(nil)")
	}
	return func(o *topoOptions) { o.ctx = ctx }
}

type topoSorter struct {
	graph *Graph
	opts  topoOptions
	state map[string]int
	order []string
}

// TopologicalSort orders all vertices so that every generator comes before
// the generators it draws from. Roots are visited in insertion order, which
// makes the result deterministic.
// Returns ErrGraphNil, ErrCycleDetected, or the context error.
func TopologicalSort(g *Graph, options ...TopoOption) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	verts := g.Vertices()
	t := &topoSorter{
		graph: g,
		opts:  opts,
		state: make(map[string]int, len(verts)),
		order: make([]string, 0, len(verts)),
	}
	for _, v := range verts {
		if t.state[v] == white {
			if err := t.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// reverse post-order
	for i, j := 0, len(t.order)-1; i < j; i, j = i+1, j-1 {
		t.order[i], t.order[j] = t.order[j], t.order[i]
	}

	return t.order, nil
}

// DependencyOrder is TopologicalSort reversed: every generator comes after
// all the generators it draws from.
func DependencyOrder(g *Graph, options ...TopoOption) ([]string, error) {
	order, err := TopologicalSort(g, options...)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}

func (t *topoSorter) visit(id string) error {
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	switch t.state[id] {
	case gray:
		return fmt.Errorf("TopologicalSort: at %s: %w", t.label(id), ErrCycleDetected)
	case black:
		return nil
	}
	t.state[id] = gray

	neighbors, err := t.graph.Neighbors(id)
	if err != nil {
		return err
	}
	for _, to := range neighbors {
		if err = t.visit(to); err != nil {
			return err
		}
	}

	t.state[id] = black
	t.order = append(t.order, id)

	return nil
}

func (t *topoSorter) label(id string) string {
	if v, err := t.graph.Vertex(id); err == nil && v.Label != "" {
		return v.Label
	}

	return id
}
