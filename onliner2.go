package gretl

import (
	"fmt"
	"io"

	"github.com/LLNL/gretl/internal/slotset"
)

// OnlineR2CheckpointStrategy implements Stumm & Walther's "Online r=2"
// checkpointing strategy (SIAM J. Sci. Comput. 32(2), 836-854, 2010,
// DOI: 10.1137/080742439). Unlike [WangCheckpointStrategy], there is no
// level concept: at capacity, the non-persistent slot whose removal would
// create the smallest merged gap between its neighbors is evicted. This
// keeps retained steps approximately uniformly spaced without knowing the
// eventual step count N in advance.
type OnlineR2CheckpointStrategy struct {
	maxNumSlots int
	slots       slotset.List[struct{}]
	metrics     CheckpointMetrics
}

// NewOnlineR2CheckpointStrategy constructs a strategy with the given base
// capacity.
func NewOnlineR2CheckpointStrategy(maxStates int) (*OnlineR2CheckpointStrategy, error) {
	if maxStates < 0 {
		return nil, minCapacityError(maxStates)
	}
	return &OnlineR2CheckpointStrategy{maxNumSlots: maxStates}, nil
}

// evictionCandidate returns the sorted-position index of the
// non-persistent slot minimizing the merged gap right-left between its
// neighbors, where newStep stands in as the virtual right boundary for
// the rightmost slot (so the most recently added slot is never trivially
// evicted). Ties keep the incumbent, so the lowest index with a strictly
// smaller gap wins.
func (o *OnlineR2CheckpointStrategy) evictionCandidate(newStep Step) (int, bool) {
	slots := o.slots.All()
	bestIdx := -1
	var bestGap uint64
	for i, s := range slots {
		if s.Persistent {
			continue
		}
		var left uint64
		if i > 0 {
			left = slots[i-1].Step
		}
		right := newStep
		if i+1 < len(slots) {
			right = slots[i+1].Step
		}
		gap := right - left
		if bestIdx == -1 || gap < bestGap {
			bestIdx, bestGap = i, gap
		}
	}
	return bestIdx, bestIdx != -1
}

// AddCheckpointAndGetIndexToRemove implements [CheckpointStrategy].
//
// If the strategy is at capacity and every stored slot is persistent,
// there is no eviction candidate; per the algorithm's contract this is
// unreachable for any base capacity >= 1, but when it does occur the new
// slot is silently dropped (not inserted) rather than evicting nothing,
// matching the reference implementation.
func (o *OnlineR2CheckpointStrategy) AddCheckpointAndGetIndexToRemove(step Step, persistent bool) Step {
	if o.slots.Contains(step) {
		duplicateStepPanic(step)
	}
	if persistent {
		o.maxNumSlots++
	}
	evicted := InvalidStep
	inserted := true
	if o.slots.Len() >= o.maxNumSlots {
		idx, ok := o.evictionCandidate(step)
		if ok {
			evicted = o.slots.At(idx).Step
			o.slots.RemoveAt(idx)
			o.metrics.Evictions++
		} else {
			inserted = false
		}
	}
	if inserted {
		o.slots.Insert(step, persistent, struct{}{})
		o.metrics.Stores++
	}
	assert(o.slots.Len() <= o.maxNumSlots, "onliner2: size exceeds capacity after insert")
	return evicted
}

// LastCheckpointStep implements [CheckpointStrategy].
func (o *OnlineR2CheckpointStrategy) LastCheckpointStep() Step {
	last, ok := o.slots.Last()
	if !ok {
		emptyStrategyPanic()
	}
	return last.Step
}

// EraseStep implements [CheckpointStrategy].
func (o *OnlineR2CheckpointStrategy) EraseStep(step Step) bool { return o.slots.Remove(step) }

// ContainsStep implements [CheckpointStrategy].
func (o *OnlineR2CheckpointStrategy) ContainsStep(step Step) bool { return o.slots.Contains(step) }

// Reset implements [CheckpointStrategy].
func (o *OnlineR2CheckpointStrategy) Reset() { o.slots.RemoveAllNonPersistent() }

// Capacity implements [CheckpointStrategy].
func (o *OnlineR2CheckpointStrategy) Capacity() int { return o.maxNumSlots }

// Size implements [CheckpointStrategy].
func (o *OnlineR2CheckpointStrategy) Size() int { return o.slots.Len() }

// Print implements [CheckpointStrategy].
func (o *OnlineR2CheckpointStrategy) Print(out io.Writer) {
	fmt.Fprintf(out, "CHECKPOINTS (OnlineR2): capacity = %d\n", o.maxNumSlots)
	for _, s := range o.slots.All() {
		if s.Persistent {
			fmt.Fprintf(out, "   step=%d (persistent)\n", s.Step)
		} else {
			fmt.Fprintf(out, "   step=%d\n", s.Step)
		}
	}
}

// Metrics implements [CheckpointStrategy].
func (o *OnlineR2CheckpointStrategy) Metrics() CheckpointMetrics { return o.metrics }

// ResetMetrics implements [CheckpointStrategy].
func (o *OnlineR2CheckpointStrategy) ResetMetrics() { o.metrics = CheckpointMetrics{} }

// RecordRecomputation implements [CheckpointStrategy].
func (o *OnlineR2CheckpointStrategy) RecordRecomputation() { o.metrics.Recomputations++ }

var _ CheckpointStrategy = (*OnlineR2CheckpointStrategy)(nil)
