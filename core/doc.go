// Package core provides a thread-safe in-memory Graph used as the structural
// substrate for isomorphism inspection.
//
// The Graph G = (V,E) supports a composable mix of behaviors:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Self-loops (WithLoops)
//   - Parallel edges / multigraphs (WithMultiEdges)
//   - Constant-time edge operations via nested maps:
//     adjacency[from][to][edgeID] = struct{}{}
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …)
//
// Capability flags are fixed at construction time and queryable afterwards
// (Directed, Weighted, Looped, Multigraph); higher layers use them to admit
// or reject a graph before running an algorithm — the isomorphism factory,
// for example, refuses graphs whose Multigraph flag is set.
//
// Core methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error            // O(1)
//	HasVertex(id string) bool             // O(1)
//	RemoveVertex(id string) error         // O(deg(v))
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight int64) (edgeID string, err error) // O(1)
//	RemoveEdge(edgeID string) error       // O(1)
//	HasEdge(from, to string) bool         // O(1)
//
//	// Query
//	Vertices() []string                      // O(V·log V), sorted
//	Edges() []*Edge                          // O(E·log E), deterministic order
//	NeighborIDs(id string) ([]string, error) // O(d·log d), unique, sorted
//	DegreeOf(id string) (int, error)         // O(E), loops count twice (undirected)
//	VertexCount() int                        // O(1)
//	EdgeCount() int                          // O(1)
//
//	// Cloning
//	Clone() *Graph                        // O(V+E) deep copy
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrBadWeight           – non-zero weight on unweighted graph
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
//
// All methods are safe for concurrent use; a single sync.RWMutex guards the
// vertex catalog, the edge catalog, and adjacency together, so readers never
// observe a half-applied mutation.
package core
