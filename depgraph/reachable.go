// SPDX-License-Identifier: MIT
// Package: tohu/depgraph
//
// reachable.go - breadth-first reachability.

package depgraph

import "fmt"

// Reachable returns every vertex some root draws from, directly or
// transitively, in BFS visit order. Roots themselves are included.
// Returns ErrGraphNil or ErrVertexNotFound for unknown roots.
// Complexity: O(V + E).
func Reachable(g *Graph, roots ...string) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	visited := make(map[string]bool, len(roots))
	queue := make([]string, 0, len(roots))
	for _, r := range roots {
		if !g.HasVertex(r) {
			return nil, fmt.Errorf("Reachable(%s): %w", r, ErrVertexNotFound)
		}
		if !visited[r] {
			visited[r] = true
			queue = append(queue, r)
		}
	}

	order := make([]string, 0, g.VertexCount())
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, id)
		neighbors, err := g.Neighbors(id)
		if err != nil {
			return nil, err
		}
		for _, n := range neighbors {
			if !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}

	return order, nil
}
