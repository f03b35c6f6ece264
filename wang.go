package gretl

import (
	"fmt"
	"io"
	"math/bits"

	"github.com/LLNL/gretl/internal/slotset"
)

// WangCheckpointStrategy implements a level-based online checkpointing
// policy. Each retained step is assigned a level equal to the number of
// trailing zero bits in its binary representation (step 0 — always
// persistent in practice — is treated as maximally sparse). Steps that
// are multiples of a larger power of two therefore occupy higher levels
// and are spaced farther apart than low-level steps, the same way a
// deterministic skip list's index levels thin out geometrically; at
// capacity, the lowest-level slot is always the first evicted, which
// keeps the retained set self-similar as more steps arrive regardless of
// how many steps there will ultimately be.
type WangCheckpointStrategy struct {
	maxNumSlots int
	slots       slotset.List[int] // Aux = level
	metrics     CheckpointMetrics
}

// NewWangCheckpointStrategy constructs a strategy with the given base
// capacity (the number of non-persistent slots it can hold before the
// first persistent registration grows its effective capacity).
func NewWangCheckpointStrategy(maxStates int) (*WangCheckpointStrategy, error) {
	if maxStates < 0 {
		return nil, minCapacityError(maxStates)
	}
	return &WangCheckpointStrategy{maxNumSlots: maxStates}, nil
}

// wangLevel returns the dispensability level of step: the count of
// trailing zero bits, so that level 0 covers every odd step (evicted
// first) and each successive level is half as dense as the one below it.
func wangLevel(step Step) int {
	if step == 0 {
		return bits.UintSize
	}
	return bits.TrailingZeros64(step)
}

// AddCheckpointAndGetIndexToRemove implements [CheckpointStrategy].
func (w *WangCheckpointStrategy) AddCheckpointAndGetIndexToRemove(step Step, persistent bool) Step {
	if w.slots.Contains(step) {
		duplicateStepPanic(step)
	}
	if persistent {
		w.maxNumSlots++
	}
	evicted := InvalidStep
	if w.slots.Len() >= w.maxNumSlots {
		idx, ok := w.evictionCandidate()
		if !ok {
			noEvictionCandidatePanic(w.maxNumSlots)
		}
		evicted = w.slots.At(idx).Step
		w.slots.RemoveAt(idx)
		w.metrics.Evictions++
	}
	w.slots.Insert(step, persistent, wangLevel(step))
	w.metrics.Stores++
	assert(w.slots.Len() <= w.maxNumSlots, "wang: size exceeds capacity after insert")
	return evicted
}

// evictionCandidate returns the sorted-position index of the
// non-persistent slot with the lowest level, ties broken toward the
// earliest (smallest) step by virtue of the ascending scan only
// replacing the incumbent on a strictly lower level.
func (w *WangCheckpointStrategy) evictionCandidate() (int, bool) {
	bestIdx, bestLevel := -1, 0
	for i, s := range w.slots.All() {
		if s.Persistent {
			continue
		}
		if bestIdx == -1 || s.Aux < bestLevel {
			bestIdx, bestLevel = i, s.Aux
		}
	}
	return bestIdx, bestIdx != -1
}

// LastCheckpointStep implements [CheckpointStrategy].
func (w *WangCheckpointStrategy) LastCheckpointStep() Step {
	last, ok := w.slots.Last()
	if !ok {
		emptyStrategyPanic()
	}
	return last.Step
}

// EraseStep implements [CheckpointStrategy].
func (w *WangCheckpointStrategy) EraseStep(step Step) bool { return w.slots.Remove(step) }

// ContainsStep implements [CheckpointStrategy].
func (w *WangCheckpointStrategy) ContainsStep(step Step) bool { return w.slots.Contains(step) }

// Reset implements [CheckpointStrategy].
func (w *WangCheckpointStrategy) Reset() { w.slots.RemoveAllNonPersistent() }

// Capacity implements [CheckpointStrategy].
func (w *WangCheckpointStrategy) Capacity() int { return w.maxNumSlots }

// Size implements [CheckpointStrategy].
func (w *WangCheckpointStrategy) Size() int { return w.slots.Len() }

// Print implements [CheckpointStrategy].
func (w *WangCheckpointStrategy) Print(out io.Writer) {
	fmt.Fprintf(out, "CHECKPOINTS (Wang): capacity = %d\n", w.maxNumSlots)
	for _, s := range w.slots.All() {
		if s.Persistent {
			fmt.Fprintf(out, "   step=%d (persistent)\n", s.Step)
		} else {
			fmt.Fprintf(out, "   step=%d\n", s.Step)
		}
	}
}

// Metrics implements [CheckpointStrategy].
func (w *WangCheckpointStrategy) Metrics() CheckpointMetrics { return w.metrics }

// ResetMetrics implements [CheckpointStrategy].
func (w *WangCheckpointStrategy) ResetMetrics() { w.metrics = CheckpointMetrics{} }

// RecordRecomputation implements [CheckpointStrategy].
func (w *WangCheckpointStrategy) RecordRecomputation() { w.metrics.Recomputations++ }

var _ CheckpointStrategy = (*WangCheckpointStrategy)(nil)
