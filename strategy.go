package gretl

import "io"

// Step identifies a forward-sweep iteration, in [0, N] where N is the
// total number of forward iterations. Step 0 is the initial condition.
type Step = uint64

// InvalidStep is the sentinel returned by
// [CheckpointStrategy.AddCheckpointAndGetIndexToRemove] when no eviction
// occurred. It is the maximum representable [Step] value; test it with
// [ValidCheckpointIndex] rather than comparing directly, so that callers
// do not depend on the sentinel's concrete representation.
const InvalidStep Step = ^Step(0)

// ValidCheckpointIndex reports whether i is not the [InvalidStep] sentinel.
func ValidCheckpointIndex(i Step) bool { return i != InvalidStep }

// CheckpointStrategy is the contract every checkpoint-placement policy
// satisfies: given a fixed slot budget, decide for each newly produced
// step which existing checkpoint, if any, to evict.
//
// Implementations: [WangCheckpointStrategy], [OnlineR2CheckpointStrategy].
//
// Concurrent calls into the same strategy value are not supported; the
// caller owns the strategy for the duration of a sweep.
type CheckpointStrategy interface {
	// AddCheckpointAndGetIndexToRemove records step as checkpointed. After
	// it returns, step is stored. If the return value is a valid index
	// (see [ValidCheckpointIndex]), that step's slot has just been evicted
	// and is no longer stored; at most one eviction happens per call.
	// It panics, without mutating state, if step is already stored.
	AddCheckpointAndGetIndexToRemove(step Step, persistent bool) Step

	// LastCheckpointStep returns the greatest stored step. It panics if no
	// slot is stored.
	LastCheckpointStep() Step

	// EraseStep removes the slot for step iff it is present and
	// non-persistent, and reports whether a removal occurred. Persistent
	// slots are never removed by this call.
	EraseStep(step Step) bool

	// ContainsStep reports whether a slot for step is stored.
	ContainsStep(step Step) bool

	// Reset removes every non-persistent slot, restoring the
	// persistent-only state.
	Reset()

	// Capacity returns the current effective capacity, including grants
	// made by persistent registrations.
	Capacity() int

	// Size returns the current slot count.
	Size() int

	// Print writes a human-readable dump of the currently stored slots to w.
	Print(w io.Writer)

	// Metrics returns the strategy's current counters.
	Metrics() CheckpointMetrics

	// ResetMetrics clears the strategy's counters. It does not affect
	// stored slots.
	ResetMetrics()

	// RecordRecomputation increments the recomputation counter by one.
	RecordRecomputation()
}
