package gretl_test

import (
	"fmt"
	"os"

	"github.com/LLNL/gretl"
)

func ExampleAdvanceAndReverseSteps() {
	const (
		n        = 5
		capacity = 3
	)
	update := func(_ gretl.Step, x float64) (float64, error) { return x + 1, nil }
	reverse := func(i gretl.Step, x float64) error {
		fmt.Printf("step %d: x=%.0f\n", i, x)
		return nil
	}
	final, err := gretl.AdvanceAndReverseSteps(n, capacity, 0.0, update, reverse, nil)
	if err != nil {
		panic(err)
	}
	fmt.Printf("final: %.0f\n", final)
	// Output:
	// step 5: x=5
	// step 4: x=4
	// step 3: x=3
	// step 2: x=2
	// step 1: x=1
	// final: 5
}

func ExampleOnlineR2CheckpointStrategy() {
	strategy, err := gretl.NewOnlineR2CheckpointStrategy(3)
	if err != nil {
		panic(err)
	}
	strategy.AddCheckpointAndGetIndexToRemove(0, true)
	for step := gretl.Step(1); step <= 6; step++ {
		if erased := strategy.AddCheckpointAndGetIndexToRemove(step, false); gretl.ValidCheckpointIndex(erased) {
			fmt.Printf("evicted step %d\n", erased)
		}
	}
	strategy.Print(os.Stdout)
	// Output:
	// evicted step 1
	// evicted step 3
	// evicted step 5
	// CHECKPOINTS (OnlineR2): capacity = 4
	//    step=0 (persistent)
	//    step=2
	//    step=4
	//    step=6
}

func ExampleCheckpointManager() {
	manager := gretl.NewCheckpointManager(2)
	manager.AddCheckpointAndGetIndexToRemove(0, true)
	manager.AddCheckpointAndGetIndexToRemove(1, false)
	manager.AddCheckpointAndGetIndexToRemove(2, false)
	erased := manager.AddCheckpointAndGetIndexToRemove(3, false)
	fmt.Printf("evicted: %t, step: %d\n", manager.ValidCheckpointIndex(erased), erased)
	// Output:
	// evicted: true, step: 1
}
