package iso

import (
	"sort"

	"github.com/katalvlaran/isograph/core"
)

// ExhaustiveInspector answers the isomorphism question by backtracking over
// candidate vertex bijections graph1 → graph2, constrained by adjacency in
// both directions and by the vertex and edge comparator chains.
//
// A bijection is valid iff it is total and injective, every adjacency in
// graph1 maps to an adjacency in graph2 and vice versa, every mapped vertex
// pair satisfies the vertex chain, and every mapped edge pair satisfies the
// edge chain.
//
// The inspector holds the graphs by reference and never mutates them; the
// chains are cloned at construction, so later appends by the caller are not
// observable here.
type ExhaustiveInspector struct {
	g1, g2      *core.Graph
	vertexChain *Chain
	edgeChain   *Chain
}

// NewExhaustiveInspector constructs the backtracking matcher over g1 and g2
// with the given comparator chains. Nil chains are treated as empty.
// Complexity: O(len(chains)) — the search is deferred to IsIsomorphic /
// Mappings.
func NewExhaustiveInspector(g1, g2 *core.Graph, vertexChain, edgeChain *Chain) *ExhaustiveInspector {
	if vertexChain == nil {
		vertexChain = NewChain()
	}
	if edgeChain == nil {
		edgeChain = NewChain()
	}

	return &ExhaustiveInspector{
		g1:          g1,
		g2:          g2,
		vertexChain: vertexChain.Clone(),
		edgeChain:   edgeChain.Clone(),
	}
}

// IsIsomorphic reports whether the graphs admit at least one valid
// bijection. The search stops at the first witness.
// Complexity: O(V!·V) worst case; degree pruning and structural quick
// rejects cut this drastically on non-pathological inputs.
func (ei *ExhaustiveInspector) IsIsomorphic() bool {
	_, ok := ei.Mappings().Next()

	return ok
}

// Mappings returns a lazy iterator over all valid bijections. Candidate
// sets are built eagerly (vertex chain applied to every cross pair); the
// factorial part of the search only advances as Next is pulled.
// Complexity: O(V²) construction plus deferred search.
func (ei *ExhaustiveInspector) Mappings() *MappingIter {
	it := &MappingIter{insp: ei}

	// Structural quick rejects: a bijection preserving adjacency forces
	// equal vertex counts, edge counts, and sorted degree sequences.
	if ei.g1.VertexCount() != ei.g2.VertexCount() ||
		ei.g1.EdgeCount() != ei.g2.EdgeCount() ||
		!equalDegreeSequences(ei.g1, ei.g2) {
		it.done = true

		return it
	}

	it.order = ei.g1.Vertices()
	it.directed = ei.g1.Directed() || ei.g2.Directed()

	// Pre-filter candidates per g1 vertex through the vertex chain; the
	// degree comparator sits first, so mismatched-degree pairings are
	// rejected here, before backtracking ever explores them.
	targets := ei.g2.Vertices()
	it.cand = make([][]string, len(it.order))
	for i, v := range it.order {
		for _, w := range targets {
			if ei.vertexChain.Evaluate(v, ei.g1, w, ei.g2) {
				it.cand[i] = append(it.cand[i], w)
			}
		}
		if len(it.cand[i]) == 0 {
			it.done = true // some vertex has no possible image

			return it
		}
	}

	it.choice = make([]int, len(it.order))
	for i := range it.choice {
		it.choice[i] = -1
	}
	it.used = make(map[string]bool, len(it.order))

	return it
}

// AllMappings drains a fresh iterator and returns every valid bijection.
// Intended for small graphs and tests; prefer Mappings for streaming.
func (ei *ExhaustiveInspector) AllMappings() []Mapping {
	var out []Mapping
	it := ei.Mappings()
	for m, ok := it.Next(); ok; m, ok = it.Next() {
		out = append(out, m)
	}

	return out
}

// equalDegreeSequences compares the sorted total-degree multisets of both
// graphs.
// Complexity: O(V·E + V·log V)
func equalDegreeSequences(g1, g2 *core.Graph) bool {
	s1 := degreeSequence(g1)
	s2 := degreeSequence(g2)
	if len(s1) != len(s2) {
		return false
	}
	for i := range s1 {
		if s1[i] != s2[i] {
			return false
		}
	}

	return true
}

// degreeSequence returns the ascending total-degree sequence of g.
func degreeSequence(g *core.Graph) []int {
	ids := g.Vertices()
	seq := make([]int, 0, len(ids))
	for _, id := range ids {
		d, err := g.DegreeOf(id)
		if err != nil {
			continue // vertex removed concurrently; caller broke the contract
		}
		seq = append(seq, d)
	}
	sort.Ints(seq)

	return seq
}

// MappingIter enumerates valid bijections lazily. Each Next call resumes
// the backtracking search where the previous call left off; the iterator
// is exhausted once Next returns false. Not safe for concurrent use.
type MappingIter struct {
	insp *ExhaustiveInspector

	order    []string   // g1 vertices in fixed (sorted) assignment order
	cand     [][]string // chain-filtered g2 candidates per assignment slot
	choice   []int      // current candidate index per slot; -1 = unassigned
	used     map[string]bool
	directed bool // either graph is directed → check both edge orientations

	depth        int  // slot the search is currently extending
	emittedEmpty bool // the single empty bijection of two empty graphs
	done         bool
}

// Next returns the next valid bijection, or (nil, false) once the search
// space is exhausted. The returned Mapping is a snapshot owned by the
// caller.
func (it *MappingIter) Next() (Mapping, bool) {
	if it.done {
		return nil, false
	}

	n := len(it.order)
	if n == 0 {
		// Two empty graphs are isomorphic under exactly one (empty) mapping.
		if it.emittedEmpty {
			it.done = true

			return nil, false
		}
		it.emittedEmpty = true

		return Mapping{}, true
	}

	depth := it.depth
	for depth >= 0 {
		// Release this slot's previous image (present when resuming or
		// re-trying a slot) and continue from the following candidate.
		next := it.choice[depth] + 1
		if it.choice[depth] >= 0 {
			delete(it.used, it.cand[depth][it.choice[depth]])
			it.choice[depth] = -1
		}

		advanced := false
		for ; next < len(it.cand[depth]); next++ {
			w := it.cand[depth][next]
			if it.used[w] || !it.consistent(depth, w) {
				continue
			}
			it.choice[depth] = next
			it.used[w] = true
			advanced = true

			break
		}

		if !advanced {
			depth-- // slot exhausted: backtrack

			continue
		}

		if depth == n-1 {
			// Full assignment: emit and stay at this slot so the next call
			// resumes with its next candidate.
			it.depth = depth

			return it.snapshot(), true
		}
		depth++
	}

	it.done = true

	return nil, false
}

// consistent reports whether mapping v = order[depth] to w preserves
// adjacency and edge-chain satisfaction against every earlier assignment,
// including self-loop parity on v itself.
func (it *MappingIter) consistent(depth int, w string) bool {
	v := it.order[depth]

	// Self-loop parity first: v has a loop iff w has one.
	if !it.edgePairOK(v, v, w, w) {
		return false
	}

	for j := 0; j < depth; j++ {
		u := it.order[j]
		x := it.cand[j][it.choice[j]]
		if !it.edgePairOK(v, u, w, x) {
			return false
		}
		if it.directed && !it.edgePairOK(u, v, x, w) {
			return false
		}
	}

	return true
}

// edgePairOK checks that the edge f1→t1 exists in graph1 exactly when
// f2→t2 exists in graph2, and, when both exist, that the pair satisfies
// the edge chain. An empty edge chain accepts every pair.
func (it *MappingIter) edgePairOK(f1, t1, f2, t2 string) bool {
	has1 := it.insp.g1.HasEdge(f1, t1)
	if has1 != it.insp.g2.HasEdge(f2, t2) {
		return false
	}
	if !has1 || it.insp.edgeChain.Len() == 0 {
		return true
	}

	e1, err := it.insp.g1.EdgeBetween(f1, t1)
	if err != nil {
		return false
	}
	e2, err := it.insp.g2.EdgeBetween(f2, t2)
	if err != nil {
		return false
	}

	return it.insp.edgeChain.Evaluate(e1.ID, it.insp.g1, e2.ID, it.insp.g2)
}

// snapshot materializes the current full assignment as a caller-owned map.
func (it *MappingIter) snapshot() Mapping {
	m := make(Mapping, len(it.order))
	for j, v := range it.order {
		m[v] = it.cand[j][it.choice[j]]
	}

	return m
}
