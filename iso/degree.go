package iso

import "github.com/katalvlaran/isograph/core"

// VertexDegreeComparator is the built-in structural comparator: two
// vertices, one from each graph, are possibly equivalent iff their total
// degrees are numerically equal. Degree equality is a necessary condition
// for correspondence under any isomorphism, and it is the cheapest
// discriminator available, so the factory always places it first in the
// vertex chain.
//
// The zero value is ready to use; the type carries no state.
type VertexDegreeComparator struct{}

// NewVertexDegreeComparator returns the built-in degree comparator.
func NewVertexDegreeComparator() VertexDegreeComparator {
	return VertexDegreeComparator{}
}

// Equivalent reports whether vertex a of ga and vertex b of gb have equal
// total degree. A vertex missing from its graph is never equivalent to
// anything.
// Complexity: O(E) per call (degree is computed from the edge catalog).
func (VertexDegreeComparator) Equivalent(a string, ga *core.Graph, b string, gb *core.Graph) bool {
	da, err := ga.DegreeOf(a)
	if err != nil {
		return false
	}
	db, err := gb.DegreeOf(b)
	if err != nil {
		return false
	}

	return da == db
}
