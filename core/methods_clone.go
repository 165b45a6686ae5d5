// File: methods_clone.go
// Role: Cloning generators and registering the parent/clone relationship.
// Determinism:
//   - A clone starts with the parameters of its parent and is re-seeded
//     whenever the parent is reset, with the parent's seed.

package core

import "fmt"

// Clone spawns g without a mapping and registers the result as a clone of g.
// From then on g.Reset(seed) also resets the clone with seed, which keeps
// generators that are used in several composite positions synchronised to
// the same causal seed while their draws stay independent.
//
// Complexity: O(cost of g.Spawn(nil)).
func Clone(g Generator) (Generator, error) {
	if g == nil {
		return nil, fmt.Errorf("Clone: %w", ErrNilGenerator)
	}
	c, err := g.Spawn(nil)
	if err != nil {
		return nil, fmt.Errorf("Clone(%s): %w", g.Lineage(), err)
	}
	parent, child := g.Lineage(), c.Lineage()
	parent.clones = append(parent.clones, c)
	child.parent = g

	return c, nil
}

// Root follows parent links up to the generator that was not cloned from
// anything.
func Root(g Generator) Generator {
	for g != nil && g.Lineage().parent != nil {
		g = g.Lineage().parent
	}

	return g
}
