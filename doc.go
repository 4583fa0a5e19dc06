// Package isograph answers one question about two graphs: are they
// structurally identical?
//
// 🚀 What is isograph?
//
//	A small, thread-safe, zero-dependency library for graph isomorphism:
//		• Core primitives: create vertices & edges, mutate safely under locks
//		• Adaptive factory: classifies a graph pair, refuses multigraphs,
//		  and wires a pruning comparator pipeline before the search runs
//		• Exhaustive matcher: backtracking over degree-filtered candidates,
//		  lazy enumeration of every witness bijection
//		• Builders: deterministic path/cycle/complete/star/tree fixtures
//
// Everything is organized under three subpackages:
//
//	core/    — fundamental Graph, Vertex, Edge types & thread-safe primitives
//	iso/     — comparators, chains, classification, factory, inspector
//	builder/ — deterministic topology fixtures for tests and experiments
//
// Quick ASCII example — a square is a square no matter how you label it:
//
//	    A───B        3───1
//	    │   │   ≅    │   │
//	    D───C        0───2
//
//	g1, _ := builder.BuildGraph(nil, builder.Cycle(4))
//	g2 := permuted(g1) // any relabeling
//	insp, err := iso.NewInspector(g1, g2)
//	if err != nil { ... }
//	insp.IsIsomorphic() // true
//
// Pure Go — no cgo, no hidden deps.
package isograph
