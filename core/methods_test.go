package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isograph/core"
)

func TestAddVertex_EmptyID(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
}

func TestAddVertex_Idempotent(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A"))
	assert.Equal(t, 1, g.VertexCount())
	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex("B"))
	assert.False(t, g.HasVertex(""))
}

func TestRemoveVertex_NotFound(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.RemoveVertex("X"), core.ErrVertexNotFound)
}

func TestRemoveVertex_DropsIncidentEdges(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 0)
	require.NoError(t, err)

	require.NoError(t, g.RemoveVertex("B"))
	assert.Equal(t, 0, g.EdgeCount())
	assert.False(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "C"))
	assert.Equal(t, []string{"A", "C"}, g.Vertices())
}

func TestAddEdge_AutoCreatesVertices(t *testing.T) {
	g := core.NewGraph()
	eid, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	assert.Equal(t, "e1", eid)
	assert.True(t, g.HasVertex("A"))
	assert.True(t, g.HasVertex("B"))
	assert.True(t, g.HasEdge("A", "B"))
	// Undirected: mirrored adjacency, single catalog entry.
	assert.True(t, g.HasEdge("B", "A"))
	assert.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge_EmptyEndpoint(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("", "B", 0)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestAddEdge_WeightPolicy(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 7)
	assert.ErrorIs(t, err, core.ErrBadWeight)

	wg := core.NewGraph(core.WithWeighted())
	eid, err := wg.AddEdge("A", "B", 7)
	require.NoError(t, err)
	e, err := wg.GetEdge(eid)
	require.NoError(t, err)
	assert.Equal(t, int64(7), e.Weight)
}

func TestAddEdge_LoopPolicy(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "A", 0)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	lg := core.NewGraph(core.WithLoops())
	_, err = lg.AddEdge("A", "A", 0)
	require.NoError(t, err)
	assert.True(t, lg.HasEdge("A", "A"))
}

func TestAddEdge_MultiEdgePolicy(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 0)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
	// Undirected: the mirror orientation is the same edge.
	_, err = g.AddEdge("B", "A", 0)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	mg := core.NewGraph(core.WithMultiEdges())
	_, err = mg.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = mg.AddEdge("A", "B", 0)
	require.NoError(t, err)
	assert.Equal(t, 2, mg.EdgeCount())
	assert.True(t, mg.Multigraph())
}

func TestHasEdge_DirectedOrientation(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	assert.True(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))
}

func TestRemoveEdge(t *testing.T) {
	g := core.NewGraph()
	eid, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)

	assert.ErrorIs(t, g.RemoveEdge("nope"), core.ErrEdgeNotFound)
	require.NoError(t, g.RemoveEdge(eid))
	assert.False(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))
	assert.Equal(t, 0, g.EdgeCount())
	// Endpoints survive edge removal.
	assert.True(t, g.HasVertex("A"))
}

func TestVertices_Sorted(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"C", "A", "B"} {
		require.NoError(t, g.AddVertex(id))
	}
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
}

func TestEdges_DeterministicOrder(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("B", "C", 0)
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("A", "C", 0)

	edges := g.Edges()
	require.Len(t, edges, 3)
	assert.Equal(t, "A", edges[0].From)
	assert.Equal(t, "B", edges[0].To)
	assert.Equal(t, "A", edges[1].From)
	assert.Equal(t, "C", edges[1].To)
	assert.Equal(t, "B", edges[2].From)
}

func TestNeighborIDs(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "C", 0)
	_, _ = g.AddEdge("A", "B", 0)

	_, err := g.NeighborIDs("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	nbs, err := g.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, nbs)
}

func TestDegreeOf_Undirected(t *testing.T) {
	// Path A—B—C: degrees 1, 2, 1.
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)

	for id, want := range map[string]int{"A": 1, "B": 2, "C": 1} {
		d, err := g.DegreeOf(id)
		require.NoError(t, err)
		assert.Equal(t, want, d, "degree of %s", id)
	}

	_, err := g.DegreeOf("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestDegreeOf_LoopCountsTwice(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	_, _ = g.AddEdge("A", "A", 0)
	d, err := g.DegreeOf("A")
	require.NoError(t, err)
	assert.Equal(t, 2, d)
}

func TestDegreeOf_DirectedTotals(t *testing.T) {
	// A→B, C→B: total degree of B is in(2)+out(0) = 2.
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("C", "B", 0)

	d, err := g.DegreeOf("B")
	require.NoError(t, err)
	assert.Equal(t, 2, d)
	d, err = g.DegreeOf("A")
	require.NoError(t, err)
	assert.Equal(t, 1, d)
}

func TestEdgeBetween(t *testing.T) {
	g := core.NewGraph()
	eid, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)

	e, err := g.EdgeBetween("A", "B")
	require.NoError(t, err)
	assert.Equal(t, eid, e.ID)

	// Undirected: reverse orientation resolves to the same edge.
	e, err = g.EdgeBetween("B", "A")
	require.NoError(t, err)
	assert.Equal(t, eid, e.ID)

	_, err = g.EdgeBetween("A", "Z")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestClone_Independence(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 3)

	c := g.Clone()
	assert.True(t, c.Weighted())
	assert.Equal(t, g.Vertices(), c.Vertices())
	assert.Equal(t, g.EdgeCount(), c.EdgeCount())

	// Mutating the clone must not leak into the original.
	_, err := c.AddEdge("B", "C", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 2, c.EdgeCount())
	assert.False(t, g.HasVertex("C"))
}
