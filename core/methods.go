// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: vertex lifecycle and read-only structural queries.
// Adjacency is stored as a nested map adjacency[from][to][edgeID] = struct{}{},
// allowing constant-time existence, insertion, and deletion of edges.

package core

import "sort"

// AddVertex inserts a new vertex with the given ID into the Graph.
// Returns ErrEmptyVertexID if id is empty.
// If the vertex already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	// Validate input: empty IDs are not allowed.
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(id)

	return nil
}

// addVertexLocked inserts id into the vertex catalog and seeds its adjacency
// bucket. Caller must hold g.mu for writing.
func (g *Graph) addVertexLocked(id string) {
	if _, exists := g.vertices[id]; exists {
		return // no-op for existing vertex
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]map[string]struct{})
	}
}

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1)
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false // empty ID considered absent
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, exists := g.vertices[id]

	return exists
}

// RemoveVertex deletes the vertex and all incident edges.
// Returns ErrVertexNotFound if the vertex does not exist.
// Complexity: O(deg(v)) amortized.
func (g *Graph) RemoveVertex(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.vertices[id]; !exists {
		return ErrVertexNotFound
	}

	// Collect incident edge IDs first; removeEdgeLocked mutates adjacency.
	incident := make([]string, 0)
	for _, e := range g.edges {
		if e.From == id || e.To == id {
			incident = append(incident, e.ID)
		}
	}
	for _, eid := range incident {
		g.removeEdgeLocked(eid)
	}

	delete(g.adjacency, id)
	delete(g.vertices, id)

	return nil
}

// Vertices returns all vertex IDs in ascending lexicographic order.
// Complexity: O(V·log V)
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.mu.RUnlock()

	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
// Complexity: O(1)
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// NeighborIDs returns the sorted, de-duplicated IDs adjacent to id.
// In directed graphs only out-neighbors are reported.
// Returns ErrVertexNotFound if id does not exist.
// Complexity: O(d·log d) where d = deg(id).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	if _, exists := g.vertices[id]; !exists {
		g.mu.RUnlock()

		return nil, ErrVertexNotFound
	}
	bucket := g.adjacency[id]
	ids := make([]string, 0, len(bucket))
	for to, edgeSet := range bucket {
		if len(edgeSet) > 0 {
			ids = append(ids, to)
		}
	}
	g.mu.RUnlock()

	sort.Strings(ids)

	return ids, nil
}

// DegreeOf returns the total degree of id: in undirected graphs the number
// of incident edge endpoints (a self-loop contributes two), in directed
// graphs the sum of in-degree and out-degree.
// Returns ErrVertexNotFound if id does not exist.
// Complexity: O(E)
func (g *Graph) DegreeOf(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, exists := g.vertices[id]; !exists {
		return 0, ErrVertexNotFound
	}

	// Single pass over the edge catalog; each matching endpoint counts once,
	// so a loop (From == To == id) contributes two.
	degree := 0
	for _, e := range g.edges {
		if e.From == id {
			degree++
		}
		if e.To == id {
			degree++
		}
	}

	return degree, nil
}
