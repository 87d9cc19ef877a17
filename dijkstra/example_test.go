package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath-sparse/dijkstra"
	"github.com/katalvlaran/lvlath-sparse/graph"
)

// ExampleDijkstra demonstrates path reconstruction with WithReturnPath.
func ExampleDijkstra() {
	g := graph.New[int](graph.WithDirected(true))
	_ = g.AddEdge("A", "B", 2)
	_ = g.AddEdge("A", "C", 1)
	_ = g.AddEdge("C", "B", 1)
	_ = g.AddEdge("B", "D", 3)
	_ = g.AddEdge("C", "D", 5)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// walk predecessors back from D
	path := []string{"D"}
	for v := "D"; prev[v] != ""; v = prev[v] {
		path = append([]string{prev[v]}, path...)
	}
	fmt.Println("dist[D] =", dist["D"])
	fmt.Println("path:", path)
	// Output:
	// dist[D] = 5
	// path: [A B D]
}

// ExampleLengths caps the search radius.
func ExampleLengths() {
	g := graph.New[float64]()
	_ = g.AddEdge("home", "shop", 1.5)
	_ = g.AddEdge("shop", "park", 2)
	_ = g.AddEdge("park", "lake", 4)

	dist, _ := dijkstra.Lengths(g, "home", dijkstra.WithMaxDistance(4))
	fmt.Println(len(dist), dist["park"])
	// Output: 3 3.5
}
