package iso

import (
	"fmt"

	"github.com/katalvlaran/isograph/core"
)

// NewInspector creates an isomorphism inspector for g1 and g2, letting the
// classifier pick the matching strategy. Both comparators default to absent;
// install them with WithVertexComparator / WithEdgeComparator.
//
// Errors:
//   - ErrGraphNil             if either graph is nil.
//   - ErrUnsupportedGraphType if either graph permits parallel edges.
//   - ErrNotImplemented       if the classified category has no algorithm.
//
// Complexity: O(1) — construction only; the search runs on the returned
// Inspector.
func NewInspector(g1, g2 *core.Graph, opts ...Option) (Inspector, error) {
	if g1 == nil || g2 == nil {
		return nil, ErrGraphNil
	}

	return dispatch(Classify(g1, g2), g1, g2, resolveOptions(opts))
}

// NewInspectorByType creates an inspector for a caller-asserted topology
// category, skipping classification. Use it when the topology is already
// known (e.g. "these are trees") and the classification cost is unwanted.
// Errors are the same as NewInspector.
// Complexity: O(1)
func NewInspectorByType(cat TopologyCategory, g1, g2 *core.Graph, opts ...Option) (Inspector, error) {
	if g1 == nil || g2 == nil {
		return nil, ErrGraphNil
	}

	return dispatch(cat, g1, g2, resolveOptions(opts))
}

// resolveOptions folds the option list into a value; absent comparators
// stay nil and append nothing downstream.
func resolveOptions(opts []Option) options {
	var o options
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// dispatch is the single funnel behind both entry points.
//
// 1. Run the unsupported-type guard; propagate its failure unchanged.
// 2. Branch on category. Arbitrary, Planar and Tree currently share the
//    exhaustive strategy — no category-specialized algorithm exists yet,
//    and keeping the branches separate makes future specialization a
//    localized change.
// 3. Any other category has no backing algorithm: fail with an explicit
//    ErrNotImplemented, never a usable-looking nil handle.
func dispatch(cat TopologyCategory, g1, g2 *core.Graph, o options) (Inspector, error) {
	if err := validateSupported(g1, g2); err != nil {
		return nil, err
	}

	switch cat {
	case CategoryArbitrary, CategoryPlanar, CategoryTree:
		return newTopologicalExhaustiveInspector(g1, g2, o), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrNotImplemented, cat)
	}
}

// newTopologicalExhaustiveInspector assembles the comparator pipeline and
// the backtracking matcher behind it.
//
// Vertex chain: [degree comparator, caller comparator?]. The degree check
// always goes first — it is the cheapest discriminator and should prune a
// candidate pairing before any caller-supplied, potentially expensive,
// check runs. Edge chain: [caller comparator?]; when no edge comparator is
// installed the chain is empty and accepts every edge pair.
func newTopologicalExhaustiveInspector(g1, g2 *core.Graph, o options) *ExhaustiveInspector {
	vertexChain := NewChain(NewVertexDegreeComparator())
	vertexChain.Append(o.vertexComparator)

	edgeChain := NewChain()
	edgeChain.Append(o.edgeComparator)

	return NewExhaustiveInspector(g1, g2, vertexChain, edgeChain)
}
