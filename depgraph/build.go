// SPDX-License-Identifier: MIT
// Package: tohu/depgraph
//
// build.go - graphs built by walking generator dependencies.

package depgraph

import (
	"fmt"

	"github.com/katalvlaran/tohu/core"
)

// Root is a labelled starting point for FromGenerators.
type Root struct {
	Label     string
	Generator core.Generator
}

// FromGenerators walks roots and everything they draw from (through
// core.Dependent) and returns the resulting graph. Every generator is
// folded into core.Root of its clone chain, so clones of one generator
// share a vertex.
// Complexity: O(V + E).
func FromGenerators(roots ...Root) (*Graph, error) {
	g := NewGraph()
	seen := make(map[string]bool)

	var walk func(gen core.Generator, label string) (string, error)
	walk = func(gen core.Generator, label string) (string, error) {
		if gen == nil {
			return "", fmt.Errorf("FromGenerators: %w", core.ErrNilGenerator)
		}
		node := core.Root(gen)
		id := VertexID(node)
		if err := g.AddVertex(Vertex{ID: id, Label: label, Generator: node}); err != nil {
			return "", err
		}
		if seen[id] {
			return id, nil
		}
		seen[id] = true
		dep, ok := gen.(core.Dependent)
		if !ok {
			return id, nil
		}
		for _, d := range dep.Dependencies() {
			to, err := walk(d, "")
			if err != nil {
				return "", err
			}
			if err = g.AddEdge(id, to); err != nil {
				return "", err
			}
		}

		return id, nil
	}

	for _, r := range roots {
		if _, err := walk(r.Generator, r.Label); err != nil {
			return nil, err
		}
	}

	return g, nil
}
