package dijkstra_test

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lvlath-sparse/bellmanford"
	"github.com/katalvlaran/lvlath-sparse/dijkstra"
	"github.com/katalvlaran/lvlath-sparse/graph"
)

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_Validation(t *testing.T) {
	g := graph.New[int]()
	require.NoError(t, g.AddEdge("A", "B", 1))

	_, _, err := dijkstra.Dijkstra(g)
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)

	_, _, err = dijkstra.Dijkstra[int](nil, dijkstra.Source("A"))
	assert.ErrorIs(t, err, graph.ErrGraphNil)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source("X"))
	assert.ErrorIs(t, err, graph.ErrNodeNotFound)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(-1))
	assert.ErrorIs(t, err, dijkstra.ErrBadMaxDistance)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithInfEdgeThreshold(0))
	assert.ErrorIs(t, err, dijkstra.ErrBadInfThreshold)
}

func TestDijkstra_NegativeWeight(t *testing.T) {
	g := graph.New[int](graph.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "B", 2))
	require.NoError(t, g.AddEdge("B", "C", -5))

	_, err := dijkstra.Lengths(g, "A")
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
	assert.Contains(t, err.Error(), "B→C")
}

// ------------------------------------------------------------------------
// 2. Basic functionality
// ------------------------------------------------------------------------

func TestDijkstra_Triangle(t *testing.T) {
	// A-B(1), B-C(2), A-C(5), undirected
	g := graph.New[int]()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("A", "C", 5))

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("C"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"A": 3, "B": 2, "C": 0}, dist)
	assert.Equal(t, map[string]string{"A": "B", "B": "C"}, prev)

	dist, prev, err = dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Nil(t, prev)
	assert.Equal(t, 3, dist["C"])
}

func TestDijkstra_DirectedUnreachable(t *testing.T) {
	g := graph.New[float64](graph.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "B", 0.5))
	require.NoError(t, g.AddEdge("C", "A", 1))
	require.NoError(t, g.AddNode("D"))

	dist, err := dijkstra.Lengths(g, "A")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"A": 0, "B": 0.5}, dist)
}

func TestDijkstra_MaxDistanceAndThreshold(t *testing.T) {
	// A→B(2)→C(2)→D(2), plus a heavy shortcut A→D(3)
	g := graph.New[int](graph.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "B", 2))
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("C", "D", 2))
	require.NoError(t, g.AddEdge("A", "D", 3))

	dist, err := dijkstra.Lengths(g, "A", dijkstra.WithMaxDistance(3))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"A": 0, "B": 2, "D": 3}, dist)

	dist, err = dijkstra.Lengths(g, "A", dijkstra.WithInfEdgeThreshold(3))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"A": 0, "B": 2, "C": 4, "D": 6}, dist)
}

func TestDijkstra_SelfLoopAndSingleVertex(t *testing.T) {
	g := graph.New[int](graph.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "A", 4))
	dist, err := dijkstra.Lengths(g, "A")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"A": 0}, dist)
}

// ------------------------------------------------------------------------
// 3. Cross-checks
// ------------------------------------------------------------------------

// TestDijkstra_AgreesWithRelaxation compares against gonum's Dijkstra and
// the min-plus relaxation on random non-negative digraphs.
func TestDijkstra_AgreesWithRelaxation(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for trial := 0; trial < 15; trial++ {
		n := 5 + rng.Intn(25)
		dg := simple.NewWeightedDirectedGraph(0, math.Inf(1))
		for i := 0; i < n; i++ {
			dg.AddNode(simple.Node(i))
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i != j && rng.Float64() < 0.15 {
					dg.SetWeightedEdge(dg.NewWeightedEdge(simple.Node(i), simple.Node(j), float64(rng.Intn(10))))
				}
			}
		}
		g, err := graph.FromGonum(dg)
		require.NoError(t, err)

		src := rng.Intn(n)
		dist, err := dijkstra.Lengths(g, strconv.Itoa(src))
		require.NoError(t, err)

		sh := path.DijkstraFrom(simple.Node(src), dg)
		for i := 0; i < n; i++ {
			want := sh.WeightTo(int64(i))
			got, ok := dist[strconv.Itoa(i)]
			if math.IsInf(want, 1) {
				assert.False(t, ok)
				continue
			}
			assert.Equal(t, want, got, "trial %d node %d", trial, i)
		}

		d, err := bellmanford.SingleSourceLength(g, strconv.Itoa(src))
		require.NoError(t, err)
		assert.Equal(t, graph.VectorToMap(g, d), dist, "trial %d", trial)
	}
}
