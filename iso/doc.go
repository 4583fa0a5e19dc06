// Package iso decides whether two graphs are structurally identical
// (isomorphic) and, if so, enumerates the vertex correspondences.
//
// The package is organized around an adaptive factory: callers hand it two
// core.Graph values, the factory classifies the pair into a topology
// category, refuses unsupported structures (multigraphs), assembles a
// chained pipeline of cheap equivalence comparators that prunes the search
// space, and returns an Inspector backed by an exhaustive backtracking
// matcher.
//
// Control flow:
//
//	NewInspector(g1, g2, opts...)            // classify, then dispatch
//	NewInspectorByType(cat, g1, g2, opts...) // caller asserts the category
//	  └─ dispatch: guard → build comparator chains → ExhaustiveInspector
//
// The vertex chain always starts with the built-in degree comparator —
// degree equality is a necessary condition for two vertices to correspond
// under any isomorphism, and checking it first eliminates most candidate
// pairings before a caller-supplied (potentially expensive) comparator or
// the backtracking search ever runs. A caller comparator installed via
// WithVertexComparator is appended after it; WithEdgeComparator seeds the
// edge chain, which is otherwise empty (and an empty chain accepts every
// pair).
//
// Key types:
//
//   - EquivalenceComparator — single-method capability deciding whether two
//     elements (vertex or edge IDs, one per graph) may correspond.
//   - Chain — ordered, short-circuiting composition of comparators.
//   - Inspector — the returned handle: IsIsomorphic() and Mappings().
//   - MappingIter — lazy, pull-style enumeration of valid bijections.
//
// Classification is currently a stub: Classify always reports
// CategoryArbitrary. The Planar and Tree categories exist so that a future
// specialized algorithm (e.g. linear-time tree isomorphism) is a localized
// change to the dispatch switch; today all three share the exhaustive
// strategy. CategoryMultigraph has no backing algorithm and dispatching on
// it fails with ErrNotImplemented.
//
// Complexity:
//
//   - Factory (classify + guard + chain assembly): O(1).
//   - IsIsomorphic / Mappings: O(V!·V) worst case, heavily pruned in
//     practice by degree buckets and early structural rejects
//     (vertex count, edge count, sorted degree sequence).
//
// Errors:
//
//   - ErrGraphNil             if either graph handle is nil.
//   - ErrUnsupportedGraphType if either graph permits parallel edges.
//   - ErrNotImplemented       if the category has no backing algorithm.
//
// Concurrency: the factory and all comparators are stateless per call;
// distinct inspections may run concurrently as long as the underlying
// graphs are not mutated mid-flight. Each MappingIter is single-goroutine.
package iso
