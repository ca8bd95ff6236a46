package clique_test

import (
	"fmt"

	"github.com/katalvlaran/corenet/clique"
	"github.com/katalvlaran/corenet/core"
)

// ExampleMaximalCliques walks the full clique workflow: enumerate, census,
// derive the core group.
func ExampleMaximalCliques() {
	g, _ := core.Build([]core.Edge{
		{From: "ann", To: "bob"}, {From: "bob", To: "carol"}, {From: "carol", To: "ann"},
		{From: "bob", To: "dave"}, {From: "carol", To: "dave"},
		{From: "dave", To: "eve"},
	})

	res, _ := clique.MaximalCliques(g)
	fmt.Println("cliques:", res.Cliques)
	fmt.Println("census:", clique.Census(res.Cliques))

	coreSet, _ := clique.DeriveCoreSet(res.Cliques, clique.Largest(1))
	fmt.Println("core size:", len(coreSet))

	// Output:
	// cliques: [[ann bob carol] [bob carol dave] [dave eve]]
	// census: map[2:1 3:2]
	// core size: 4
}
