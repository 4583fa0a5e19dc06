// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: deep-copy support. Clones preserve capability flags and edge IDs so
// that a clone is indistinguishable from the original to read-only callers.

package core

// Clone returns a deep copy of the graph: flags, vertices, edges, and
// adjacency are all duplicated. Vertex Metadata maps are shared, not copied.
// Complexity: O(V+E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		directed:   g.directed,
		weighted:   g.weighted,
		allowLoops: g.allowLoops,
		allowMulti: g.allowMulti,
		nextEdgeID: g.nextEdgeID,
		vertices:   make(map[string]*Vertex, len(g.vertices)),
		edges:      make(map[string]*Edge, len(g.edges)),
		adjacency:  make(map[string]map[string]map[string]struct{}, len(g.adjacency)),
	}

	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
	}
	for eid, e := range g.edges {
		cp := *e
		clone.edges[eid] = &cp
	}
	for from, tos := range g.adjacency {
		bucket := make(map[string]map[string]struct{}, len(tos))
		for to, eids := range tos {
			set := make(map[string]struct{}, len(eids))
			for eid := range eids {
				set[eid] = struct{}{}
			}
			bucket[to] = set
		}
		clone.adjacency[from] = bucket
	}

	return clone
}
