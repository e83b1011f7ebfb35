package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-classd/dsp/core"
)

func ExampleApplyTimeBaseOptions() {
	cfg := core.ApplyTimeBaseOptions(
		core.WithMaxTime(1e-3),
		core.WithStep(2e-7),
	)

	x, err := cfg.Samples()
	if err != nil {
		panic(err)
	}

	fmt.Printf("samples=%d rate=%.0f\n", len(x), cfg.SampleRate())

	// Output:
	// samples=5000 rate=5000000
}

func ExampleArange() {
	x, err := core.Arange(0, 1, 0.25)
	if err != nil {
		panic(err)
	}
	fmt.Println(x)

	// Output:
	// [0 0.25 0.5 0.75]
}
