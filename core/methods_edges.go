// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: edge lifecycle (AddEdge / RemoveEdge / HasEdge) and edge queries.
// Edge IDs are generated from an atomic counter ("e1", "e2", …); undirected
// edges are mirrored in adjacency[to][from] but stored once in the catalog.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

const edgeIDPrefix = "e"

// AddEdge inserts an edge from → to with the given weight, creating missing
// endpoint vertices on the fly. The generated edge ID is returned.
//
// Errors:
//   - ErrEmptyVertexID       if either endpoint ID is empty.
//   - ErrBadWeight           if weight ≠ 0 on an unweighted graph.
//   - ErrLoopNotAllowed      if from == to and loops are disabled.
//   - ErrMultiEdgeNotAllowed if an edge from → to already exists and
//     multi-edges are disabled (undirected graphs also reject to → from).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	// 1. Validate endpoints and policy flags before touching state.
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if weight != 0 && !g.weighted {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	if !g.allowMulti && g.hasEdgeLocked(from, to) {
		return "", ErrMultiEdgeNotAllowed
	}

	// 2. Ensure both endpoints exist.
	g.addVertexLocked(from)
	g.addVertexLocked(to)

	// 3. Allocate a unique edge ID and record the edge.
	eid := edgeIDPrefix + strconv.FormatUint(atomic.AddUint64(&g.nextEdgeID, 1), 10)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: weight}

	// 4. Wire adjacency; mirror for undirected graphs.
	g.linkLocked(from, to, eid)
	if !g.directed && from != to {
		g.linkLocked(to, from, eid)
	}

	return eid, nil
}

// linkLocked records eid in adjacency[from][to]. Caller holds g.mu.
func (g *Graph) linkLocked(from, to, eid string) {
	bucket, ok := g.adjacency[from][to]
	if !ok {
		bucket = make(map[string]struct{})
		g.adjacency[from][to] = bucket
	}
	bucket[eid] = struct{}{}
}

// hasEdgeLocked reports whether any edge from → to exists (mirror included
// for undirected graphs). Caller holds g.mu.
func (g *Graph) hasEdgeLocked(from, to string) bool {
	return len(g.adjacency[from][to]) > 0
}

// HasEdge reports whether at least one edge from → to exists.
// For undirected graphs the orientation of the arguments is irrelevant.
// Complexity: O(1)
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasEdgeLocked(from, to)
}

// RemoveEdge deletes the edge with the given ID from the catalog and
// adjacency (both directions for undirected graphs).
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1) amortized.
func (g *Graph) RemoveEdge(eid string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.edges[eid]; !exists {
		return ErrEdgeNotFound
	}
	g.removeEdgeLocked(eid)

	return nil
}

// removeEdgeLocked unlinks eid everywhere. Caller holds g.mu.
func (g *Graph) removeEdgeLocked(eid string) {
	e := g.edges[eid]
	if e == nil {
		return
	}
	g.unlinkLocked(e.From, e.To, eid)
	if !g.directed && e.From != e.To {
		g.unlinkLocked(e.To, e.From, eid)
	}
	delete(g.edges, eid)
}

// unlinkLocked removes eid from adjacency[from][to], pruning empty buckets.
func (g *Graph) unlinkLocked(from, to, eid string) {
	if bucket, ok := g.adjacency[from][to]; ok {
		delete(bucket, eid)
		if len(bucket) == 0 {
			delete(g.adjacency[from], to)
		}
	}
}

// EdgeBetween returns a copy of the edge from → to with the lowest ID
// (the only one, in simple graphs). For undirected graphs the orientation
// of the arguments is irrelevant.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(k) over the parallel-edge bucket.
func (g *Graph) EdgeBetween(from, to string) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	best := ""
	for eid := range g.adjacency[from][to] {
		if best == "" || eid < best {
			best = eid
		}
	}
	if best == "" {
		return nil, ErrEdgeNotFound
	}
	cp := *g.edges[best]

	return &cp, nil
}

// GetEdge returns a copy of the edge with the given ID.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1)
func (g *Graph) GetEdge(eid string) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, exists := g.edges[eid]
	if !exists {
		return nil, ErrEdgeNotFound
	}
	cp := *e

	return &cp, nil
}

// Edges returns copies of all edges, ordered by (From, To, ID) for
// deterministic iteration.
// Complexity: O(E·log E)
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		cp := *e
		out = append(out, &cp)
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		if out[i].To != out[j].To {
			return out[i].To < out[j].To
		}

		return out[i].ID < out[j].ID
	})

	return out
}

// EdgeCount returns the number of edges in the catalog (mirrored undirected
// entries count once).
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
