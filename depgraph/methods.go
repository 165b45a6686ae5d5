// SPDX-License-Identifier: MIT
// Package: tohu/depgraph
//
// methods.go - vertex and edge management.
//
// Determinism:
//   - Vertices and Neighbors return IDs in insertion order, so walks over
//     the graph follow declaration order.

package depgraph

import (
	"fmt"
	"sort"
)

// AddVertex inserts v. Re-adding an existing ID only fills in an empty
// Label; it is otherwise a no-op.
// Returns ErrEmptyVertexID if v.ID is empty.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(v Vertex) error {
	if v.ID == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if cur, exists := g.vertices[v.ID]; exists {
		if cur.Label == "" {
			cur.Label = v.Label
		}
		return nil
	}
	g.vertices[v.ID] = &Vertex{ID: v.ID, Label: v.Label, Generator: v.Generator}
	g.order = append(g.order, v.ID)

	g.muAdj.Lock()
	g.adjacency[v.ID] = make(map[string]int)
	g.muAdj.Unlock()

	return nil
}

// HasVertex reports whether id exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns a copy of the vertex stored under id.
func (g *Graph) Vertex(id string) (Vertex, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, fmt.Errorf("Vertex(%s): %w", id, ErrVertexNotFound)
	}

	return *v, nil
}

// Vertices returns all vertex IDs in insertion order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	return len(g.order)
}

// EdgeCount returns the number of distinct edges.
func (g *Graph) EdgeCount() int {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()
	return g.edgeCount
}

// AddEdge records that from draws from to. Both vertices must exist.
// Parallel edges collapse into one.
// Returns ErrEmptyVertexID, ErrVertexNotFound, ErrLoopNotAllowed.
// Complexity: O(1).
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return fmt.Errorf("AddEdge(%s, %s): %w", from, to, ErrLoopNotAllowed)
	}
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return fmt.Errorf("AddEdge(%s, %s): %w", from, to, ErrVertexNotFound)
	}
	g.muAdj.Lock()
	defer g.muAdj.Unlock()
	out := g.adjacency[from]
	if _, exists := out[to]; exists {
		return nil
	}
	out[to] = len(out)
	g.edgeCount++

	return nil
}

// HasEdge reports whether from draws directly from to.
func (g *Graph) HasEdge(from, to string) bool {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// Neighbors returns the direct dependencies of id in the order the edges
// were added. Returns ErrVertexNotFound for unknown ids.
// Complexity: O(d log d), d = out-degree.
func (g *Graph) Neighbors(id string) ([]string, error) {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()
	out, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("Neighbors(%s): %w", id, ErrVertexNotFound)
	}
	ids := make([]string, 0, len(out))
	for to := range out {
		ids = append(ids, to)
	}
	sort.Slice(ids, func(i, j int) bool { return out[ids[i]] < out[ids[j]] })

	return ids, nil
}
