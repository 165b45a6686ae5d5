// Package depgraph records which generators a custom generator's fields
// depend on.
//
// A Graph is directed: an edge u→v means "u draws from v". Vertices are
// keyed by the generator identity (core.Base.ID) and carry the generator
// itself plus a free-form label (usually the field name).
//
// Clones are folded into the generator they were cloned from, so a field
// built on a shared generator and the derived generators drawing from it
// meet at one vertex.
//
// Algorithms:
//
//	TopologicalSort  - dependents before their dependencies (DFS, cycle check)
//	DependencyOrder  - the reverse: dependencies first
//	Reachable        - every vertex a set of roots draws from (BFS)
//
// All Graph methods are safe for concurrent use.
package depgraph
