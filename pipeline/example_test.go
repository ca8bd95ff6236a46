package pipeline_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/corenet/pipeline"
	"github.com/katalvlaran/corenet/sanitize"
)

// ExampleRun analyzes a small noisy mail log end to end.
func ExampleRun() {
	raw := []sanitize.RawEdge{
		{"ann", "bob"}, {"bob", "ann"}, {"ann", "carol"},
		{"bob", "carol"}, {"carol", "ann"},
		{"dave", "eve"},
		{"0", "bob"},   // sentinel noise
		{"eve", "eve"}, // self-loop noise
	}

	res, _ := pipeline.Run(context.Background(), raw, pipeline.WithTopK(3))

	top, _ := res.Mapping.ID(0)
	fmt.Println("dropped:", res.Report.Input-res.Report.Kept)
	fmt.Println("top ranked:", top)
	fmt.Println("census:", res.Census)
	fmt.Println("core size:", len(res.CoreSet))

	// Output:
	// dropped: 2
	// top ranked: ann
	// census: map[3:1]
	// core size: 3
}
