package bfs_test

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/katalvlaran/lvlath-sparse/bfs"
	"github.com/katalvlaran/lvlath-sparse/graph"
)

// chain builds the directed path v0 -> v1 -> ... -> v{n-1}.
func chain(n int) *graph.Graph[int] {
	g := graph.New[int](graph.WithDirected(true), graph.WithUnweighted())
	for i := 0; i+1 < n; i++ {
		_ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), 0)
	}
	return g
}

// TestLevel_Errors verifies that invalid inputs and options are rejected.
func TestLevel_Errors(t *testing.T) {
	if _, err := bfs.Level[int](nil, "A"); !errors.Is(err, graph.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := chain(2)
	if _, err := bfs.Level(g, "missing"); !errors.Is(err, graph.ErrNodeNotFound) {
		t.Errorf("missing source: want ErrNodeNotFound, got %v", err)
	}
	if _, err := bfs.Level(g, "v0", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
	if _, err := bfs.Levels(g, []string{"v0", "nope"}); !errors.Is(err, graph.ErrNodeNotFound) {
		t.Errorf("missing source in Levels: want ErrNodeNotFound, got %v", err)
	}
}

// TestLevel_Chain checks hop counts along a path.
func TestLevel_Chain(t *testing.T) {
	g := chain(4)
	v, err := bfs.Level(g, "v1")
	if err != nil {
		t.Fatal(err)
	}
	got := graph.VectorToMap(g, v)
	want := map[string]int{"v1": 0, "v2": 1, "v3": 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Level = %v; want %v", got, want)
	}
}

// TestLevel_WideDomain reports levels beyond 255 when W is wide enough.
func TestLevel_WideDomain(t *testing.T) {
	g := graph.New[int16](graph.WithDirected(true), graph.WithUnweighted())
	for i := 0; i+1 < 300; i++ {
		_ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), 0)
	}
	v, err := bfs.Level(g, "v0")
	if err != nil {
		t.Fatal(err)
	}
	id, _ := g.ID("v299")
	if lvl, ok := v.Get(id); !ok || lvl != 299 {
		t.Errorf("level of v299 = %d (present %v); want 299", lvl, ok)
	}
}

// TestLevel_MaxDepth verifies the inclusive bound, including 0.
func TestLevel_MaxDepth(t *testing.T) {
	g := chain(5)
	for _, tc := range []struct {
		depth int
		want  []int
	}{
		{0, []int{0}},
		{1, []int{0, 1}},
		{3, []int{0, 1, 2, 3}},
		{10, []int{0, 1, 2, 3, 4}},
	} {
		v, err := bfs.Level(g, "v0", bfs.WithMaxDepth(tc.depth))
		if err != nil {
			t.Fatal(err)
		}
		if got := v.Indices(); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("MaxDepth=%d: got %v; want %v", tc.depth, got, tc.want)
		}
	}
}

// TestLevel_CycleAndSelfLoop ensures loops and cycles do not revisit nodes.
func TestLevel_CycleAndSelfLoop(t *testing.T) {
	// A–B–C–D–A undirected cycle, plus a self-loop on A
	g := graph.New[int](graph.WithUnweighted())
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}, {"A", "A"}} {
		_ = g.AddEdge(e[0], e[1], 0)
	}
	v, err := bfs.Level(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}
	if got := graph.VectorToMap(g, v); !reflect.DeepEqual(got, want) {
		t.Errorf("Level = %v; want %v", got, want)
	}
}

// TestLevel_Transpose walks edges backwards.
func TestLevel_Transpose(t *testing.T) {
	g := chain(3)
	v, err := bfs.Level(g, "v2", bfs.WithTranspose())
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]int{"v2": 0, "v1": 1, "v0": 2}
	if got := graph.VectorToMap(g, v); !reflect.DeepEqual(got, want) {
		t.Errorf("transposed Level = %v; want %v", got, want)
	}
}

// TestLevels_MatchesLevel compares every row of the matrix engine with the
// vector engine.
func TestLevels_MatchesLevel(t *testing.T) {
	g := graph.New[int](graph.WithDirected(true), graph.WithUnweighted())
	for _, e := range [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}, {"c", "d"}, {"e", "a"}} {
		_ = g.AddEdge(e[0], e[1], 0)
	}
	D, err := bfs.Levels(g, nil)
	if err != nil {
		t.Fatal(err)
	}
	if D.NRows() != g.Order() {
		t.Fatalf("rows = %d; want %d", D.NRows(), g.Order())
	}
	for i, key := range g.Keys() {
		want, _ := bfs.Level(g, key)
		got, _ := D.RowVector(i)
		if !want.Equal(got) {
			t.Errorf("row %s differs: %v vs %v", key, got.Indices(), want.Indices())
		}
	}

	sub, err := bfs.Levels(g, []string{"e", "d"}, bfs.WithMaxDepth(1))
	if err != nil {
		t.Fatal(err)
	}
	if got := graph.MatrixToMap(g, sub, []string{"e", "d"}); !reflect.DeepEqual(got, map[string]map[string]int{
		"e": {"e": 0, "a": 1},
		"d": {"d": 0},
	}) {
		t.Errorf("bounded Levels = %v", got)
	}
}

// TestReachable_Disconnected only covers the source's component.
func TestReachable_Disconnected(t *testing.T) {
	g := graph.New[int](graph.WithUnweighted())
	_ = g.AddEdge("X", "Y", 0)
	_ = g.AddEdge("P", "Q", 0)
	m, err := bfs.Reachable(g, "P")
	if err != nil {
		t.Fatal(err)
	}
	if got := g.KeysOf(m.Positions()); !reflect.DeepEqual(got, []string{"P", "Q"}) {
		t.Errorf("Reachable(P) = %v; want [P Q]", got)
	}
}
