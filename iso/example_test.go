package iso_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/isograph/builder"
	"github.com/katalvlaran/isograph/core"
	"github.com/katalvlaran/isograph/iso"
)

// A square is a square no matter how its corners are labeled.
func ExampleNewInspector() {
	g1, _ := builder.BuildGraph(nil, builder.Cycle(4))

	g2 := core.NewGraph()
	for _, pair := range [][2]string{
		{"north", "east"}, {"east", "south"}, {"south", "west"}, {"west", "north"},
	} {
		_, _ = g2.AddEdge(pair[0], pair[1], 0)
	}

	insp, err := iso.NewInspector(g1, g2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("isomorphic:", insp.IsIsomorphic())
	// Output:
	// isomorphic: true
}

// Callers that already know their topology can assert it and skip
// classification; categories without a backing algorithm fail loudly.
func ExampleNewInspectorByType() {
	g1, _ := builder.BuildGraph(nil, builder.Tree(3))
	g2, _ := builder.BuildGraph(nil, builder.Tree(3))

	insp, err := iso.NewInspectorByType(iso.CategoryTree, g1, g2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("isomorphic:", insp.IsIsomorphic())

	_, err = iso.NewInspectorByType(iso.CategoryMultigraph, g1, g2)
	fmt.Println("multigraph supported:", !errors.Is(err, iso.ErrNotImplemented))
	// Output:
	// isomorphic: true
	// multigraph supported: false
}

// A caller-supplied comparator narrows equivalence beyond structure: here
// vertices may only correspond when they share a "color" metadata tag.
func ExampleWithVertexComparator() {
	color := func(g *core.Graph, id string) string {
		// Fixture convention for this example: the ID's first letter is the color.
		return id[:1]
	}
	sameColor := iso.ComparatorFunc(func(a string, ga *core.Graph, b string, gb *core.Graph) bool {
		return color(ga, a) == color(gb, b)
	})

	// Two 2-paths; structurally isomorphic, but the colors force the only
	// valid correspondence r↔r, g↔g, b↔b, which reverses the path.
	g1 := core.NewGraph()
	_, _ = g1.AddEdge("r1", "g1", 0)
	_, _ = g1.AddEdge("g1", "b1", 0)

	g2 := core.NewGraph()
	_, _ = g2.AddEdge("b2", "g2", 0)
	_, _ = g2.AddEdge("g2", "r2", 0)

	insp, err := iso.NewInspector(g1, g2, iso.WithVertexComparator(sameColor))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	it := insp.Mappings()
	m, ok := it.Next()
	fmt.Println("isomorphic:", ok)
	fmt.Println("r1 →", m["r1"])
	// Output:
	// isomorphic: true
	// r1 → r2
}
