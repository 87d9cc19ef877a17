package graph_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-sparse/graph"
)

func directed(t *testing.T, edges [][3]int) *graph.Graph[int] {
	t.Helper()
	g := graph.New[int](graph.WithDirected(true))
	for _, e := range edges {
		require.NoError(t, g.AddEdge(string(rune('a'+e[0])), string(rune('a'+e[1])), e[2]))
	}
	return g
}

// TestProperties_Derived covers every derived property on one graph.
func TestProperties_Derived(t *testing.T) {
	// a->b 2, b->c -1, c->c 4, d isolated
	g := directed(t, [][3]int{{0, 1, 2}, {1, 2, -1}, {2, 2, 4}})
	require.NoError(t, g.AddNode("d"))

	A := g.Adjacency()
	assert.Equal(t, 3, A.NVals())
	assert.Equal(t, 2, g.OffDiagonal().NVals())

	diag := g.Diagonal()
	assert.Equal(t, []int{2}, diag.Indices())
	assert.True(t, g.HasSelfLoop(2))
	assert.False(t, g.HasSelfLoop(0))

	x, ok := g.Transpose().Get(1, 0)
	assert.True(t, ok)
	assert.Equal(t, 2, x)

	assert.False(t, g.IsIso())
	_, ok = g.IsoValue()
	assert.False(t, ok)
	assert.True(t, g.HasNegativeEdges())
	assert.False(t, g.HasNegativeDiagonal())

	deg := g.Degrees()
	assert.Equal(t, []int{0, 1, 2}, deg.Indices(), "isolated d is absent")
	c, _ := deg.Get(1)
	assert.Equal(t, 2, c, "in + out")
	c, _ = deg.Get(2)
	assert.Equal(t, 3, c, "self-loop counts in both directions")
	assert.Equal(t, 1, g.OutDegree(1))
}

// TestProperties_Iso recognises a single shared weight.
func TestProperties_Iso(t *testing.T) {
	g := directed(t, [][3]int{{0, 1, 2}, {1, 2, 2}})
	assert.True(t, g.IsIso())
	v, ok := g.IsoValue()
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	empty := graph.New[int]()
	require.NoError(t, empty.AddNode("x"))
	assert.False(t, empty.IsIso(), "no edges, no iso value")
	assert.False(t, empty.HasNegativeEdges())
}

// TestProperties_InvalidatedOnMutation checks the memo table is dropped.
func TestProperties_InvalidatedOnMutation(t *testing.T) {
	g := directed(t, [][3]int{{0, 1, 1}})
	assert.False(t, g.HasNegativeDiagonal())
	assert.True(t, g.Cached(graph.PropHasNegativeDiagonal))
	assert.True(t, g.Cached(graph.PropAdjacency))

	require.NoError(t, g.AddEdge("b", "b", -1))
	assert.False(t, g.Cached(graph.PropHasNegativeDiagonal))
	assert.True(t, g.HasNegativeDiagonal())
	assert.Equal(t, 2, g.Adjacency().NVals())

	require.NoError(t, g.RemoveEdge("b", "b"))
	assert.False(t, g.HasNegativeDiagonal())
}

// TestProperties_ConcurrentReaders hammers a shared handle from many goroutines.
func TestProperties_ConcurrentReaders(t *testing.T) {
	g := directed(t, [][3]int{{0, 1, 1}, {1, 2, 1}, {2, 0, 1}})
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.True(t, g.IsIso())
			assert.Equal(t, 3, g.OffDiagonal().NVals())
			assert.Equal(t, 3, g.Degrees().NVals())
		}()
	}
	wg.Wait()
}
