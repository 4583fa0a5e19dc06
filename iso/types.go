// Package iso defines the comparator capability, topology categories,
// sentinel errors, and factory options for isomorphism inspection.
package iso

import (
	"errors"
	"strconv"

	"github.com/katalvlaran/isograph/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to
	// NewInspector or NewInspectorByType.
	ErrGraphNil = errors.New("iso: graph is nil")

	// ErrUnsupportedGraphType indicates that an input graph permits parallel
	// edges; the exhaustive matcher assumes simple adjacency and would
	// silently produce wrong answers on multigraphs, so they are refused
	// before any algorithm is constructed.
	ErrUnsupportedGraphType = errors.New("iso: graph type not supported")

	// ErrNotImplemented indicates that the classified or requested topology
	// category has no backing algorithm yet.
	ErrNotImplemented = errors.New("iso: no inspector implemented for category")
)

// TopologyCategory is a coarse structural classification of a graph pair,
// used to select a matching strategy.
type TopologyCategory int

const (
	// CategoryArbitrary is the generic category: no structural assumption.
	CategoryArbitrary TopologyCategory = iota

	// CategoryPlanar marks a pair of planar graphs. Reserved: no specialized
	// algorithm exists yet; dispatch treats it like CategoryArbitrary.
	CategoryPlanar

	// CategoryTree marks a pair of trees. Reserved: no specialized algorithm
	// exists yet; dispatch treats it like CategoryArbitrary.
	CategoryTree

	// CategoryMultigraph marks graphs with parallel edges. No backing
	// algorithm exists; dispatching on it fails with ErrNotImplemented.
	CategoryMultigraph
)

// String returns the human-readable category name.
func (c TopologyCategory) String() string {
	switch c {
	case CategoryArbitrary:
		return "arbitrary"
	case CategoryPlanar:
		return "planar"
	case CategoryTree:
		return "tree"
	case CategoryMultigraph:
		return "multigraph"
	default:
		return "category(" + strconv.Itoa(int(c)) + ")"
	}
}

// EquivalenceComparator decides whether two elements — vertex IDs or edge
// IDs, one from each graph — are allowed to correspond under a candidate
// mapping. Implementations must be pure and stateless per call, so a single
// comparator value may be shared across concurrent inspections.
//
// A comparator expresses a necessary condition, not a sufficient one:
// returning true means "possibly equivalent", never "matched".
type EquivalenceComparator interface {
	// Equivalent reports whether element a of ga may correspond to
	// element b of gb.
	Equivalent(a string, ga *core.Graph, b string, gb *core.Graph) bool
}

// ComparatorFunc adapts an ordinary function to the EquivalenceComparator
// interface, mirroring http.HandlerFunc.
type ComparatorFunc func(a string, ga *core.Graph, b string, gb *core.Graph) bool

// Equivalent calls f.
func (f ComparatorFunc) Equivalent(a string, ga *core.Graph, b string, gb *core.Graph) bool {
	return f(a, ga, b, gb)
}

// Mapping is a vertex correspondence: graph1 vertex ID → graph2 vertex ID.
type Mapping map[string]string

// Inspector answers the isomorphism question for the graph pair it was
// constructed over and enumerates witness bijections.
type Inspector interface {
	// IsIsomorphic reports whether the two graphs are isomorphic under the
	// configured comparator chains. It stops at the first witness.
	IsIsomorphic() bool

	// Mappings returns a lazy iterator over every valid bijection.
	Mappings() *MappingIter
}

// Option configures optional behavior of inspector construction.
// Use with NewInspector(g1, g2, opts...) or NewInspectorByType.
type Option func(*options)

// options holds resolved factory parameters. Both comparators default to
// absent, which appends nothing to the respective chain.
type options struct {
	vertexComparator EquivalenceComparator
	edgeComparator   EquivalenceComparator
}

// WithVertexComparator installs a caller-supplied vertex comparator.
// It is appended to the vertex chain after the built-in degree comparator.
// Passing nil is a no-op.
func WithVertexComparator(c EquivalenceComparator) Option {
	return func(o *options) { o.vertexComparator = c }
}

// WithEdgeComparator installs a caller-supplied edge comparator as the sole
// member of the edge chain. Passing nil is a no-op (the empty edge chain
// accepts every pair).
func WithEdgeComparator(c EquivalenceComparator) Option {
	return func(o *options) { o.edgeComparator = c }
}
