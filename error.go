package gretl

import "fmt"

type constError string

// ErrInvalidCapacity may be returned from [NewWangCheckpointStrategy] or
// [NewOnlineR2CheckpointStrategy].
const ErrInvalidCapacity = constError("invalid capacity")

// ErrInvariantViolation is the value every invariant-violation panic wraps:
// calling [CheckpointStrategy.LastCheckpointStep] on an empty strategy,
// calling [CheckpointStrategy.AddCheckpointAndGetIndexToRemove] with a step
// already present, or adding a non-persistent step to a
// [WangCheckpointStrategy] of base capacity 0, which has no slot it may
// evict ([OnlineR2CheckpointStrategy] drops the new slot in that case
// instead of panicking). These are programming errors in the caller, not recoverable
// runtime conditions, so the strategies panic rather than return an error
// — matching the source's gretl_assert macro, which throws unconditionally
// in both debug and release builds.
const ErrInvariantViolation = constError("invariant violation")

func (errStr constError) Error() string { return string(errStr) }

func minCapacityError(capacity int) error {
	return fmt.Errorf(
		"%w: capacity must be >=0 but %d was requested",
		ErrInvalidCapacity, capacity)
}

func duplicateStepPanic(step Step) {
	panic(fmt.Errorf("%w: step %d already has a checkpoint", ErrInvariantViolation, step))
}

func emptyStrategyPanic() {
	panic(fmt.Errorf("%w: last_checkpoint_step called on an empty strategy", ErrInvariantViolation))
}

func noEvictionCandidatePanic(capacity int) {
	panic(fmt.Errorf(
		"%w: no non-persistent slot available to evict at capacity %d",
		ErrInvariantViolation, capacity))
}
