package sampling_test

import (
	"fmt"

	"github.com/katalvlaran/graphflow/bipartite"
	"github.com/katalvlaran/graphflow/idarray"
	"github.com/katalvlaran/graphflow/nodeflow"
	"github.com/katalvlaran/graphflow/sampling"
)

// ExampleUniformSampling samples a 2-hop neighborhood around seed 0 of the
// line graph 0->1->2->3->4 and prints the layered result.
func ExampleUniformSampling() {
	g, err := bipartite.NewFromCOO(5, 5,
		idarray.FromSlice([]int64{0, 1, 2, 3}),
		idarray.FromSlice([]int64{1, 2, 3, 4}))
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	flows, err := sampling.UniformSampling(g, sampling.Request{
		Seeds:        idarray.FromSlice([]int64{0}),
		BatchSize:    1,
		MaxWorkers:   1,
		ExpandFactor: 2,
		NumHops:      2,
		NeighType:    nodeflow.NeighOut,
	})
	if err != nil {
		fmt.Println("sample:", err)
		return
	}

	nf := flows[0]
	fmt.Println("layers:", nf.NumLayers())
	fmt.Println("node mapping:", nf.NodeMapping)
	fmt.Println("edges:", len(nf.EdgeMapping))
	// Output:
	// layers: 3
	// node mapping: [2 1 0]
	// edges: 2
}
