package gretl

// CheckpointMetrics is a plain record of monotonically non-decreasing
// counts observed by a [CheckpointStrategy]: how many checkpoints have
// been stored, how many have been evicted to make room for a new one, and
// how many forward-replay steps the reverse sweep has had to recompute
// because the step it needed was no longer resident.
type CheckpointMetrics struct {
	Stores         uint64
	Evictions      uint64
	Recomputations uint64
}
