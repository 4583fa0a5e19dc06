// Package builder provides deterministic topology constructors for
// assembling core.Graph fixtures: paths, cycles, complete graphs, stars,
// and complete binary trees.
//
// One orchestrator, BuildGraph, creates the graph with the given core
// options and applies the requested constructors in order; the same inputs
// and constructor order always produce identical graphs. Vertex IDs follow
// the fixed scheme "v0", "v1", …, so two independently built fixtures of
// the same shape are equal vertex-for-vertex.
//
//	g, err := builder.BuildGraph(nil, builder.Cycle(4))
//
// Errors:
//
//	ErrTooFewVertices – a size parameter is below the constructor's minimum.
//
// Constructors never panic and leave no partial cleanup behind on error;
// callers should discard the graph when BuildGraph fails.
package builder
