// SPDX-License-Identifier: MIT
// Package: tohu/depgraph
//
// types.go - Vertex, Graph and sentinel errors.

package depgraph

import (
	"errors"
	"sync"

	"github.com/katalvlaran/tohu/core"
)

// Sentinel errors for graph operations.
var (
	// ErrEmptyVertexID indicates an empty vertex ID.
	ErrEmptyVertexID = errors.New("depgraph: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("depgraph: vertex not found")

	// ErrLoopNotAllowed indicates a generator declared as its own dependency.
	ErrLoopNotAllowed = errors.New("depgraph: self-loop not allowed")

	// ErrCycleDetected indicates a dependency cycle.
	ErrCycleDetected = errors.New("depgraph: dependency cycle detected")

	// ErrGraphNil indicates a nil *Graph argument.
	ErrGraphNil = errors.New("depgraph: graph is nil")
)

// Vertex is one generator of a dependency graph.
type Vertex struct {
	// ID is the generator identity as a string.
	ID string

	// Label is a human readable tag, the field name for field generators.
	Label string

	// Generator is the generator this vertex stands for.
	Generator core.Generator
}

// Graph is a directed dependency graph. muVert guards vertices and order;
// muAdj guards the adjacency maps.
type Graph struct {
	muVert sync.RWMutex
	muAdj  sync.RWMutex

	vertices map[string]*Vertex
	order    []string // insertion order of vertex IDs

	// adjacency[from][to] = position of the edge among from's edges
	adjacency map[string]map[string]int
	edgeCount int
}

// NewGraph returns an empty graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]*Vertex),
		adjacency: make(map[string]map[string]int),
	}
}

// VertexID returns the vertex ID a generator is stored under.
func VertexID(g core.Generator) string {
	return g.Lineage().ID().String()
}
