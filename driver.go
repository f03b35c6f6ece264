package gretl

// AdvanceAndReverseSteps runs a linear forward sweep of n iterations from
// x0, checkpointing intermediate states under strategy (constructing a
// [WangCheckpointStrategy] of the given capacity if strategy is nil), then
// runs the matching reverse sweep, replaying forward iteration on demand
// to reconstruct any state the strategy has evicted, and invoking
// reverseCB once per step in strictly decreasing order.
//
// update(i, x) must compute x_{i+1} from x_i; it is called exactly once
// per forward step and again, deterministically, whenever a recomputation
// is needed during the reverse sweep. If update or reverseCB returns an
// error, the sweep stops immediately and that error is returned unchanged;
// no strategy mutation beyond what already succeeded occurs.
//
// reverseCB(i, x) is invoked exactly once for every i in [1, n], in
// strictly decreasing order, with x equal to the forward state at step i.
//
// AdvanceAndReverseSteps returns the final forward state x_n.
func AdvanceAndReverseSteps[T any](
	n Step,
	capacity int,
	x0 T,
	update func(i Step, x T) (T, error),
	reverseCB func(i Step, x T) error,
	strategy CheckpointStrategy,
) (T, error) {
	if strategy == nil {
		wang, err := NewWangCheckpointStrategy(capacity)
		if err != nil {
			var zero T
			return zero, err
		}
		strategy = wang
	}

	store := map[Step]T{0: x0}
	strategy.AddCheckpointAndGetIndexToRemove(0, true)

	x := x0
	for i := Step(0); i < n; i++ {
		next, err := update(i, store[i])
		if err != nil {
			var zero T
			return zero, err
		}
		x = next
		if erased := strategy.AddCheckpointAndGetIndexToRemove(i+1, false); ValidCheckpointIndex(erased) {
			delete(store, erased)
		}
		store[i+1] = x
	}
	xFinal := x

	for i := n; i >= 1; i-- {
		for strategy.LastCheckpointStep() < i {
			last := strategy.LastCheckpointStep()
			replayed, err := update(last, store[last])
			if err != nil {
				var zero T
				return zero, err
			}
			if erased := strategy.AddCheckpointAndGetIndexToRemove(last+1, false); ValidCheckpointIndex(erased) {
				delete(store, erased)
			}
			store[last+1] = replayed
			strategy.RecordRecomputation()
		}
		if err := reverseCB(i, store[i]); err != nil {
			return xFinal, err
		}
		strategy.EraseStep(i)
		delete(store, i)
	}

	return xFinal, nil
}
