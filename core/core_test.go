package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/multinet/core"
)

func TestAddVertex_Basic(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex("B"))
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A")) // idempotent

	require.True(t, g.HasVertex("A"))
	require.False(t, g.HasVertex("Z"))
	require.False(t, g.HasVertex(""))
	require.Equal(t, 2, g.VertexCount())
	// Lexicographic enumeration regardless of insertion order.
	require.Equal(t, []string{"A", "B"}, g.Vertices())
}

func TestAddEdge_Constraints(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge("", "B", 0)
	require.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = g.AddEdge("A", "B", 3.5)
	require.ErrorIs(t, err, core.ErrBadWeight) // unweighted graph

	_, err = g.AddEdge("A", "A", 0)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 0)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
	// Undirected: the mirrored direction is the same edge.
	_, err = g.AddEdge("B", "A", 0)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
}

func TestAddEdge_NonFiniteWeight(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())

	for _, w := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := g.AddEdge("A", "B", w)
		require.ErrorIs(t, err, core.ErrNonFiniteWeight)
	}
}

func TestAddEdge_MirrorAndAutoVertices(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())

	eid, err := g.AddEdge("A", "B", 2.5)
	require.NoError(t, err)
	require.Equal(t, "e1", eid)

	// Endpoints were inserted automatically.
	require.True(t, g.HasVertex("A"))
	require.True(t, g.HasVertex("B"))
	// Undirected adjacency is mirrored.
	require.True(t, g.HasEdge("A", "B"))
	require.True(t, g.HasEdge("B", "A"))
	require.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge_DirectedNoMirror(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))

	_, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	require.True(t, g.HasEdge("A", "B"))
	require.False(t, g.HasEdge("B", "A"))
}

func TestEdges_InsertionOrder(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())

	// Insert enough edges that lexicographic ID order ("e10" < "e2") would
	// differ from numeric insertion order.
	pairs := [][2]string{
		{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "E"}, {"E", "F"},
		{"F", "G"}, {"G", "H"}, {"H", "I"}, {"I", "J"}, {"J", "K"}, {"K", "L"},
	}
	for i, p := range pairs {
		_, err := g.AddEdge(p[0], p[1], float64(i))
		require.NoError(t, err)
	}

	edges := g.Edges()
	require.Len(t, edges, len(pairs))
	for i, e := range edges {
		require.Equal(t, pairs[i][0], e.From)
		require.Equal(t, pairs[i][1], e.To)
	}
}

func TestSimplify_CollapsesDuplicatesAndLoops(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges(), core.WithLoops())
	_, _ = g.AddEdge("A", "B", 1) // survives
	_, _ = g.AddEdge("A", "B", 9) // duplicate, dropped
	_, _ = g.AddEdge("B", "A", 7) // mirrored duplicate, dropped
	_, _ = g.AddEdge("A", "A", 3) // loop, dropped
	_, _ = g.AddEdge("B", "C", 2)
	_ = g.AddVertex("Z") // isolated

	s := g.Simplify()
	require.Equal(t, 2, s.EdgeCount())
	require.True(t, s.HasEdge("A", "B"))
	require.True(t, s.HasEdge("B", "C"))
	require.False(t, s.HasEdge("A", "A"))
	// Isolated vertices carry over.
	require.True(t, s.HasVertex("Z"))
	require.Equal(t, []string{"A", "B", "C", "Z"}, s.Vertices())

	// First-edge-wins: the surviving A-B edge keeps the first weight.
	for _, e := range s.Edges() {
		if e.From == "A" && e.To == "B" {
			require.Equal(t, 1.0, e.Weight)
		}
	}

	// Result forbids loops and multi-edges from now on.
	_, err := s.AddEdge("A", "A", 0)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)
	_, err = s.AddEdge("A", "B", 0)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	// The receiver was not mutated.
	require.Equal(t, 5, g.EdgeCount())
}

func TestSimplify_DirectedKeepsBothDirections(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "A", 0) // opposite direction is a distinct edge
	_, _ = g.AddEdge("A", "B", 0) // true duplicate

	s := g.Simplify()
	require.Equal(t, 2, s.EdgeCount())
	require.True(t, s.HasEdge("A", "B"))
	require.True(t, s.HasEdge("B", "A"))
}

func TestTagLayer_StampsEveryEdge(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)

	g.TagLayer("PPI")
	for _, e := range g.Edges() {
		require.Equal(t, "PPI", e.Layer)
	}
}

func TestClone_Independence(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 4)
	g.TagLayer("L1")

	c := g.Clone()
	require.Equal(t, g.Vertices(), c.Vertices())
	require.Equal(t, g.EdgeCount(), c.EdgeCount())
	require.Equal(t, "L1", c.Edges()[0].Layer)

	// Mutating the clone leaves the original untouched.
	_, err := c.AddEdge("B", "C", 1)
	require.NoError(t, err)
	require.Equal(t, 1, g.EdgeCount())
	require.Equal(t, 2, c.EdgeCount())
	require.False(t, g.HasVertex("C"))
}

func TestCloneEmpty_KeepsVerticesDropsEdges(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)

	c := g.CloneEmpty()
	require.Equal(t, []string{"A", "B"}, c.Vertices())
	require.Equal(t, 0, c.EdgeCount())

	// Edge IDs on the clone continue the sequence, never colliding.
	eid, err := c.AddEdge("A", "B", 0)
	require.NoError(t, err)
	require.Equal(t, "e2", eid)
}

func TestNeighbors_SortedAndValidated(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "C", 0)
	_, _ = g.AddEdge("A", "B", 0)

	n, err := g.Neighbors("A")
	require.NoError(t, err)
	require.Equal(t, []string{"B", "C"}, n)

	// Undirected: mirrored adjacency makes the relation symmetric.
	n, err = g.Neighbors("B")
	require.NoError(t, err)
	require.Equal(t, []string{"A"}, n)

	_, err = g.Neighbors("missing")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGetEdge(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	eid, _ := g.AddEdge("A", "B", 1.5)

	e, err := g.GetEdge(eid)
	require.NoError(t, err)
	require.Equal(t, "A", e.From)
	require.Equal(t, 1.5, e.Weight)

	_, err = g.GetEdge("e999")
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
}
